package stemmers

// Key generates the shared-cache key for a (language, word) pair.
//
// The word is used verbatim: no case folding or trimming is applied, so equal
// language+word pairs map to the same key regardless of which handle produced
// them. Language identifiers never contain ':', which keeps keys unambiguous.
func Key(language, word string) string {
	return language + ":" + word
}
