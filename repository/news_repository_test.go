package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"news-remix/domain"
	"news-remix/driver"
)

func TestMapRecordFallbacks(t *testing.T) {
	tests := map[string]struct {
		rec         driver.ProviderRecord
		wantTitle   string
		wantContent string
		wantAuthor  string
	}{
		"complete record": {
			rec: driver.ProviderRecord{
				Title:       "Headline",
				Content:     "Full body",
				Description: "Short",
				Creator:     []string{"Jo Writer"},
			},
			wantTitle:   "Headline",
			wantContent: "Full body",
			wantAuthor:  "Jo Writer",
		},
		"content falls back to description": {
			rec: driver.ProviderRecord{
				Title:       "Headline",
				Description: "Only a description",
			},
			wantTitle:   "Headline",
			wantContent: "Only a description",
			wantAuthor:  "Unknown",
		},
		"missing title defaults": {
			rec:         driver.ProviderRecord{Content: "body"},
			wantTitle:   "No Title",
			wantContent: "body",
			wantAuthor:  "Unknown",
		},
		"empty creator entry defaults": {
			rec:         driver.ProviderRecord{Title: "T", Content: "c", Creator: []string{""}},
			wantTitle:   "T",
			wantContent: "c",
			wantAuthor:  "Unknown",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			a := mapRecord(tc.rec, "top")
			assert.Equal(t, tc.wantTitle, a.Title)
			assert.Equal(t, tc.wantContent, a.Content)
			assert.Equal(t, tc.wantAuthor, a.Author)
			assert.Equal(t, "top", a.Category)
			assert.Equal(t, domain.StatusPending, a.ProcessingStatus)
			assert.NotEmpty(t, a.ID)
		})
	}
}

func TestMapRecordStripsHTML(t *testing.T) {
	a := mapRecord(driver.ProviderRecord{
		Title:   "<b>Bold</b> headline",
		Content: "<p>first</p><p>second</p>",
	}, "world")

	assert.Equal(t, "Bold headline", a.Title)
	assert.Equal(t, "first\n\nsecond", a.Content)
}

func TestMapRecordPubDate(t *testing.T) {
	a := mapRecord(driver.ProviderRecord{
		Title:   "T",
		Content: "c",
		PubDate: "2026-08-28 12:30:00",
	}, "top")
	assert.Equal(t, time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC), a.PublishedAt)

	// unparseable dates fall back to now
	b := mapRecord(driver.ProviderRecord{Title: "T", Content: "c", PubDate: "yesterday"}, "top")
	assert.WithinDuration(t, time.Now().UTC(), b.PublishedAt, time.Minute)
}
