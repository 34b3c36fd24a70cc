package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// newNormalizer builds the transform chain that strips combining marks and
// punctuation. Transformers carry state, so each call site gets its own.
func newNormalizer() transform.Transformer {
	isRemovable := func(r rune) bool {
		return unicode.Is(unicode.Mn, r) || unicode.IsPunct(r)
	}
	return transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isRemovable)), norm.NFC)
}

// Normalize lowercases a token and removes accents and punctuation, so that
// "Résumé," and "resume" stem identically.
func Normalize(token string) string {
	out, _, err := transform.String(newNormalizer(), token)
	if err != nil {
		out = token
	}
	return strings.ToLower(out)
}
