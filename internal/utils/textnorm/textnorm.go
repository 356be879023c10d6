// Package textnorm provides the text normalization used by free-text
// transaction search: lowercase, accent-insensitive, trimmed.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks and recomposes,
// so "Salário" folds to "Salario".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes s for case- and accent-insensitive comparison.
func Fold(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		// The transform only fails on malformed UTF-8; fall back to the input.
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}

// ContainsFold reports whether needle is a substring of hay after both are
// normalized. An empty needle matches everything.
func ContainsFold(hay, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	return strings.Contains(Fold(hay), n)
}
