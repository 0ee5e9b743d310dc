package stygen

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseMetadata decodes the Font Awesome icons.yml payload into an IconSet.
// YAML is a superset of JSON, so the icons.json variant of the metadata
// parses through the same path. Per-icon fields beyond unicode and styles
// (label, search, changes, ...) are ignored.
//
// The whole load succeeds or fails: an empty document or a record missing
// its code point or styles is an error naming the offending icon, never a
// silently skipped entry.
func ParseMetadata(data []byte) (IconSet, error) {
	var raw map[string]Icon
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding icon metadata: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("icon metadata is empty")
	}

	set := make(IconSet, len(raw))
	for name, icon := range raw {
		if icon.Unicode == "" {
			return nil, fmt.Errorf("icon %q has no unicode code point", name)
		}
		if len(icon.Styles) == 0 {
			return nil, fmt.Errorf("icon %q has no styles", name)
		}
		icon.Name = name
		set[name] = icon
	}

	return set, nil
}
