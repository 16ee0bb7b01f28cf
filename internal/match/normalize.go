package match

import (
	"strings"
	"unicode"
)

// NormalizeKey folds an identifier written in config into registry key form.
// The normalization pipeline:
// 1. Trim surrounding whitespace.
// 2. Case-fold to lower.
// 3. Collapse runs of separators (spaces, dashes, underscores) into one underscore.
//
// Examples:
//   - "Diamond Sword" -> "diamond_sword"
//   - "STRONG-HEALING" -> "strong_healing"
//   - "  gold   ingot " -> "gold_ingot"
func NormalizeKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder

	b.Grow(len(s))

	pendingSep := false

	for _, r := range s {
		if isSeparator(r) {
			pendingSep = b.Len() > 0
			continue
		}

		if pendingSep {
			b.WriteByte('_')

			pendingSep = false
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune separates words in an identifier.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
