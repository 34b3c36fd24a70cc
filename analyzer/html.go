package analyzer

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// skippedTags are HTML tags whose content is not visible prose and should not
// be stemmed.
var skippedTags = []string{"script", "style", "code", "pre", "textarea", "noscript"}

// ExtractText parses an HTML document and returns its visible text content.
func ExtractText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	doc.Find(strings.Join(skippedTags, ",")).Remove()
	return doc.Text(), nil
}
