package stygen

import "sort"

// Icon is one entry from the Font Awesome metadata: a hyphenated name, the
// hex code point of its glyph, and the styles the glyph ships in. Records
// are immutable once loaded.
type Icon struct {
	Name    string   `yaml:"-"`
	Unicode string   `yaml:"unicode"`
	Styles  []string `yaml:"styles"`
}

// HasStyle reports whether the icon ships in the given style. Style tags
// outside the Font Awesome 5 Free set simply never match.
func (i Icon) HasStyle(s Style) bool {
	for _, tag := range i.Styles {
		if tag == s.String() {
			return true
		}
	}
	return false
}

// IconSet holds icons keyed by name.
type IconSet map[string]Icon

// Names returns the icon names in lexicographic order. All generated output
// iterates in this order, so the same set produces identical text regardless
// of insertion order.
func (s IconSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
