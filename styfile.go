package stygen

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// StyCommand is one \fa command definition extracted from a generated
// package.
type StyCommand struct {
	Name   string // command name without the \fa prefix: "FaceSmile"
	Icon   string // icon the command resolves through: "face-smile"
	Family string // font family it is typeset with: "FontAwesomeSolid"
	Style  Style  // style block the definition appears in
}

// StyLookup indexes a generated package for the linter: which \fa commands
// exist and which code points the icon mappings cover.
type StyLookup struct {
	// Commands maps command name to its definition. A command defined in
	// both the solid and regular blocks keeps the first definition seen.
	Commands map[string]StyCommand

	// Icons maps icon name to its uppercased hex code point.
	Icons map[string]string

	// Symbols is the reverse of Icons: uppercased code point to icon name.
	Symbols map[string]string

	// Blocks counts the command definitions per style block.
	Blocks map[Style]int
}

var (
	styMappingRe = regexp.MustCompile(`^\\expandafter\\def\\csname faicon@([a-z0-9-]+)\\endcsname\{\\symbol\{"([0-9A-Fa-f]+)"?\}\}$`)
	styCommandRe = regexp.MustCompile(`^\\def\\fa([A-Za-z0-9]+)\{\{\\(FontAwesome[A-Za-z]+)\\csname faicon@([a-z0-9-]+)\\endcsname\}\}$`)
)

// styBlockMarkers are the section comments the generator writes ahead of
// each command block. The parser tracks them to attribute definitions to
// their style.
var styBlockMarkers = []struct {
	prefix string
	style  Style
}{
	{`%% [Solid]`, StyleSolid},
	{`%% [Regular]`, StyleRegular},
	{`%% [Brands]`, StyleBrands},
}

// ParseStyFile reads a generated .sty file and extracts its command
// definitions and icon mappings. A file with neither is rejected: it is
// not a package this tool generated.
func ParseStyFile(path string) (*StyLookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lookup := &StyLookup{
		Commands: make(map[string]StyCommand),
		Icons:    make(map[string]string),
		Symbols:  make(map[string]string),
		Blocks:   make(map[Style]int),
	}

	current := StyleSolid
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		for _, marker := range styBlockMarkers {
			if strings.HasPrefix(line, marker.prefix) {
				current = marker.style
				break
			}
		}

		if m := styMappingRe.FindStringSubmatch(line); m != nil {
			name, hex := m[1], strings.ToUpper(m[2])
			lookup.Icons[name] = hex
			lookup.Symbols[hex] = name
			continue
		}

		if m := styCommandRe.FindStringSubmatch(line); m != nil {
			lookup.Blocks[current]++
			name := m[1]
			if _, seen := lookup.Commands[name]; !seen {
				lookup.Commands[name] = StyCommand{
					Name:   name,
					Icon:   m[3],
					Family: m[2],
					Style:  current,
				}
			}
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(lookup.Commands) == 0 && len(lookup.Icons) == 0 {
		return nil, fmt.Errorf("%s contains no icon definitions (not a generated package?)", path)
	}

	return lookup, nil
}
