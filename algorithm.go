package stemmers

import "github.com/kljensen/snowball"

// StemFunc computes the stemmed root of a word for a language.
// Implementations must be deterministic, side-effect free, and safe for
// concurrent invocation with identical or distinct arguments.
type StemFunc func(language, word string) string

// SnowballStem is the default StemFunc, backed by the kljensen/snowball
// algorithms. Any language reaching this function has already been validated
// at handle construction; if the library still reports an error the word is
// returned unchanged.
func SnowballStem(language, word string) string {
	stemmed, err := snowball.Stem(word, language, false)
	if err != nil {
		return word
	}
	return stemmed
}
