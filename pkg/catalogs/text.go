package catalogs

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// fold normalizes s for case- and width-insensitive substring matching.
// Full-width ASCII folds to half-width and half-width katakana to full-width,
// then Unicode case folding applies.
//
// A Caser holds state, so each call builds its own.
func fold(s string) string {
	return cases.Fold().String(width.Fold.String(s))
}

// containsFolded reports whether needle, already folded, occurs in s.
func containsFolded(s, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold(s), needle)
}
