package stemmers

import (
	"sort"
	"strings"
)

// SupportedLanguages maps language identifiers to human-readable names.
// The set is fixed by the Snowball algorithms the stemmer ships with.
var SupportedLanguages = map[string]string{
	"english":   "English",
	"french":    "French",
	"hungarian": "Hungarian",
	"norwegian": "Norwegian",
	"russian":   "Russian",
	"spanish":   "Spanish",
	"swedish":   "Swedish",
}

// Languages returns the supported language identifiers in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(SupportedLanguages))
	for lang := range SupportedLanguages {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether a language identifier is in the supported set.
// Matching is case-insensitive; "English" and "english" name the same algorithm.
func IsSupported(language string) bool {
	_, ok := SupportedLanguages[NormalizeLanguage(language)]
	return ok
}

// NormalizeLanguage converts a language identifier to its canonical lowercase
// form (e.g., "English" → "english").
func NormalizeLanguage(language string) string {
	return strings.ToLower(language)
}

// LanguageName returns the human-readable name for a language identifier.
// Falls back to the identifier itself if not found.
func LanguageName(language string) string {
	if name, ok := SupportedLanguages[NormalizeLanguage(language)]; ok {
		return name
	}
	return language
}
