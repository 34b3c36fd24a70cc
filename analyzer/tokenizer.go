package analyzer

import (
	"strings"
	"unicode"
)

// Tokenize splits text into tokens on any rune that is neither a letter nor a
// number.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
