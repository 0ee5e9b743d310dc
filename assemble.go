package stygen

import "fmt"

// Artifacts holds the generated statement lists in the order they appear in
// the package body.
type Artifacts struct {
	Mappings []string // one faicon@ mapping per icon
	Solid    []string // \fa commands typeset in the solid font
	Regular  []string // \fa commands typeset in the regular font
	Brands   []string // \fa commands typeset in the brands font
}

// BuildArtifacts produces the mapping list and the three per-style command
// lists for the icon set. Icons are processed in lexicographic name order.
// The mapping list always has one entry per icon; a style's command list
// skips icons that resolve to neither the style nor its fallback.
func BuildArtifacts(set IconSet) (*Artifacts, error) {
	names := set.Names()

	artifacts := &Artifacts{
		Mappings: make([]string, 0, len(names)),
	}
	for _, name := range names {
		artifacts.Mappings = append(artifacts.Mappings, MappingStatement(set[name]))
	}

	var err error
	if artifacts.Solid, err = commandList(set, names, StyleSolid); err != nil {
		return nil, err
	}
	if artifacts.Regular, err = commandList(set, names, StyleRegular); err != nil {
		return nil, err
	}
	if artifacts.Brands, err = commandList(set, names, StyleBrands); err != nil {
		return nil, err
	}

	return artifacts, nil
}

// commandList collects the command statements that resolve for the style,
// preserving the given icon order.
func commandList(set IconSet, names []string, style Style) ([]string, error) {
	var cmds []string
	for _, name := range names {
		stmt, ok, err := CommandStatement(set[name], style)
		if err != nil {
			return nil, fmt.Errorf("building %s commands: %w", style, err)
		}
		if !ok {
			continue
		}
		cmds = append(cmds, stmt)
	}
	return cmds, nil
}
