// ABOUTME: HTML cleanup for provider article bodies before persistence
// ABOUTME: Strips markup with a strict sanitizer and extracts paragraph text
package htmltext

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// StripTags removes all HTML markup, unescapes entities and collapses
// whitespace runs into single spaces.
func StripTags(raw string) string {
	text := strict.Sanitize(raw)
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// Paragraphs extracts the text of each <p> element in document order.
// Empty paragraphs are dropped.
func Paragraphs(raw string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}

	var out []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text != "" {
			out = append(out, text)
		}
	})
	return out
}

// CleanContent normalizes a provider body for storage. Markup with
// paragraphs keeps paragraph boundaries as blank lines; anything else is
// flattened to plain text.
func CleanContent(raw string) string {
	if !strings.Contains(raw, "<") {
		return strings.Join(strings.Fields(raw), " ")
	}

	if paras := Paragraphs(raw); len(paras) > 0 {
		return strings.Join(paras, "\n\n")
	}
	return StripTags(raw)
}
