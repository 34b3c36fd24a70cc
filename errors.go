package stemmers

import (
	"fmt"
	"strings"
)

// InvalidLanguageError indicates a stemmer was requested for a language
// outside the supported set. It is returned at construction time only;
// stemming operations never fail once a handle exists.
type InvalidLanguageError struct {
	Language string
}

func (e *InvalidLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %q (supported: %s)",
		e.Language, strings.Join(Languages(), ", "))
}
