package stygen

import (
	"errors"
	"fmt"
)

// Style identifies one of the Font Awesome 5 style variants. The set is
// closed: the metadata may carry additional tags (Pro styles such as
// "light"), but only these three participate in generation.
type Style int

// The three styles shipped with Font Awesome 5 Free.
const (
	StyleRegular Style = iota
	StyleSolid
	StyleBrands
)

// ErrInvalidStyle is returned when a style outside the Font Awesome 5 set
// is requested. It signals a caller defect, not bad metadata.
var ErrInvalidStyle = errors.New("invalid style")

// ParseStyle converts a metadata style tag to a Style.
func ParseStyle(tag string) (Style, error) {
	switch tag {
	case "regular":
		return StyleRegular, nil
	case "solid":
		return StyleSolid, nil
	case "brands":
		return StyleBrands, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStyle, tag)
}

// String returns the metadata tag for the style.
func (s Style) String() string {
	switch s {
	case StyleRegular:
		return "regular"
	case StyleSolid:
		return "solid"
	case StyleBrands:
		return "brands"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// FontFamily returns the fontspec family name the style is typeset with.
func (s Style) FontFamily() string {
	switch s {
	case StyleRegular:
		return "FontAwesomeRegular"
	case StyleSolid:
		return "FontAwesomeSolid"
	case StyleBrands:
		return "FontAwesomeBrands"
	}
	return ""
}

// Fallback returns the style substituted when an icon is not available in s.
// Regular and solid stand in for each other; brands has no substitute, so
// the second result is false.
func (s Style) Fallback() (Style, bool) {
	switch s {
	case StyleRegular:
		return StyleSolid, true
	case StyleSolid:
		return StyleRegular, true
	}
	return 0, false
}

// valid reports whether s is one of the three Font Awesome 5 styles.
func (s Style) valid() bool {
	switch s {
	case StyleRegular, StyleSolid, StyleBrands:
		return true
	}
	return false
}
