package stygen

import (
	"strings"
	"unicode"
)

// CommandName converts a hyphenated icon name to its TeX command form:
// "face-smile" becomes "FaceSmile", "github" becomes "Github". Hyphens are
// dropped and the character after each one is uppercased, as is the first
// character. Digits pass through unchanged.
func CommandName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	upperNext := true
	for _, r := range name {
		if r == '-' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
