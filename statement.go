package stygen

import (
	"fmt"
	"strings"
)

// MappingStatement returns the TeX definition binding faicon@<name> to the
// icon's code point:
//
//	\expandafter\def\csname faicon@face-smile\endcsname{\symbol{"F118"}}
//
// Every icon gets a mapping regardless of which styles it ships in; the
// mapping list is what the per-style commands resolve through.
func MappingStatement(icon Icon) string {
	return fmt.Sprintf(`\expandafter\def\csname faicon@%s\endcsname{\symbol{"%s"}}`,
		icon.Name, strings.ToUpper(icon.Unicode))
}

// CommandStatement returns the \fa<Name> definition for the icon in the
// target style:
//
//	\def\faFaceSmile{{\FontAwesomeSolid\csname faicon@face-smile\endcsname}}
//
// When the icon does not ship in the target style, the fallback style is
// tried. The ok result is false when neither carries the icon: the icon is
// simply absent from that style's command list, which is a normal outcome,
// not an error. A target outside the Font Awesome 5 styles returns an error
// wrapping ErrInvalidStyle.
func CommandStatement(icon Icon, target Style) (string, bool, error) {
	if !target.valid() {
		return "", false, fmt.Errorf("%w: Style(%d)", ErrInvalidStyle, int(target))
	}

	style := target
	if !icon.HasStyle(style) {
		fallback, ok := style.Fallback()
		if !ok || !icon.HasStyle(fallback) {
			return "", false, nil
		}
		style = fallback
	}

	return fmt.Sprintf(`\def\fa%s{{\%s\csname faicon@%s\endcsname}}`,
		CommandName(icon.Name), style.FontFamily(), icon.Name), true, nil
}
