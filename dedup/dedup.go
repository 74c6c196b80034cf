// ABOUTME: Duplicate article filtering keyed on normalized URL and title
// ABOUTME: Pure functions, no I/O; first occurrence always wins
package dedup

import (
	"regexp"
	"strings"

	"news-remix/domain"
)

var punctuation = regexp.MustCompile(`[^\w\s]`)

// NormalizeURL strips the query string so tracking parameters do not
// defeat duplicate detection.
func NormalizeURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}

// NormalizeTitle lowercases and strips punctuation so trivially restyled
// headlines compare equal.
func NormalizeTitle(title string) string {
	return strings.TrimSpace(punctuation.ReplaceAllString(strings.ToLower(title), ""))
}

// Articles removes duplicates from a slice, keeping the first occurrence.
// An article is a duplicate when its normalized URL or normalized title has
// been seen earlier in the slice. Empty keys never count as seen, so
// articles without a URL or title cannot shadow each other.
func Articles(in []*domain.Article) []*domain.Article {
	seenURLs := make(map[string]struct{}, len(in))
	seenTitles := make(map[string]struct{}, len(in))

	out := make([]*domain.Article, 0, len(in))
	for _, a := range in {
		urlKey := NormalizeURL(a.URL)
		titleKey := NormalizeTitle(a.Title)

		if _, dup := seenURLs[urlKey]; dup && urlKey != "" {
			continue
		}
		if _, dup := seenTitles[titleKey]; dup && titleKey != "" {
			continue
		}

		if urlKey != "" {
			seenURLs[urlKey] = struct{}{}
		}
		if titleKey != "" {
			seenTitles[titleKey] = struct{}{}
		}
		out = append(out, a)
	}
	return out
}
