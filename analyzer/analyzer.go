// Package analyzer turns raw text into normalized, stemmed tokens.
//
// The pipeline is tokenize → normalize (strip accents and punctuation,
// lowercase) → stem. Stemming goes through a SnowballStemmer handle, so every
// analyzer shares the process-wide stem cache with all other callers.
package analyzer

import (
	stemmers "github.com/andreribeiro87/py-rust-stemmers-tuned"
)

// Analyzer produces stemmed tokens for a single language.
type Analyzer struct {
	stemmer *stemmers.SnowballStemmer
}

// New creates an analyzer for the given language. Options are forwarded to
// the underlying stemmer handle. Returns *stemmers.InvalidLanguageError for
// an unsupported language.
func New(language string, opts ...stemmers.Option) (*Analyzer, error) {
	s, err := stemmers.New(language, opts...)
	if err != nil {
		return nil, err
	}
	return &Analyzer{stemmer: s}, nil
}

// Stemmer returns the underlying stemmer handle.
func (a *Analyzer) Stemmer() *stemmers.SnowballStemmer {
	return a.stemmer
}

// Analyze tokenizes and normalizes text, then returns the stemmed tokens in
// document order. Tokens that normalize to the empty string are dropped.
func (a *Analyzer) Analyze(text string) []string {
	tokens := Tokenize(text)
	normalized := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if n := Normalize(tok); n != "" {
			normalized = append(normalized, n)
		}
	}
	return a.stemmer.StemWords(normalized)
}

// AnalyzeHTML extracts the visible text from an HTML document and analyzes
// it. Content inside script, style, code, pre, textarea, and noscript tags is
// ignored.
func (a *Analyzer) AnalyzeHTML(content string) ([]string, error) {
	text, err := ExtractText(content)
	if err != nil {
		return nil, err
	}
	return a.Analyze(text), nil
}
