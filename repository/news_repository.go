// ABOUTME: Maps provider records into domain articles with defensive fallbacks
// ABOUTME: Provider HTML is cleaned before anything reaches the database
package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"news-remix/domain"
	"news-remix/driver"
	"news-remix/utils/htmltext"
)

// providerTimeLayout is how the provider formats pubDate.
const providerTimeLayout = "2006-01-02 15:04:05"

type newsRepository struct {
	client *driver.NewsClient
	logger *slog.Logger
}

// NewNewsRepository creates a NewsRepository over the provider HTTP client.
func NewNewsRepository(client *driver.NewsClient, logger *slog.Logger) NewsRepository {
	return &newsRepository{client: client, logger: logger}
}

func (r *newsRepository) FetchCategory(ctx context.Context, category string, size int) ([]*domain.Article, error) {
	category = domain.NormalizeCategory(category)

	records, err := r.client.FetchNews(ctx, category, size)
	if err != nil {
		return nil, err
	}

	articles := make([]*domain.Article, 0, len(records))
	for _, rec := range records {
		articles = append(articles, mapRecord(rec, category))
	}
	return articles, nil
}

func mapRecord(rec driver.ProviderRecord, category string) *domain.Article {
	title := rec.Title
	if title == "" {
		title = "No Title"
	}

	content := rec.Content
	if content == "" {
		content = rec.Description
	}

	author := "Unknown"
	if len(rec.Creator) > 0 && rec.Creator[0] != "" {
		author = rec.Creator[0]
	}

	publishedAt, err := time.Parse(providerTimeLayout, rec.PubDate)
	if err != nil {
		publishedAt = time.Now().UTC()
	}

	return &domain.Article{
		ID:               uuid.NewString(),
		Title:            htmltext.StripTags(title),
		Description:      htmltext.StripTags(rec.Description),
		Content:          htmltext.CleanContent(content),
		URL:              rec.Link,
		ImageURL:         rec.ImageURL,
		Category:         category,
		Author:           author,
		PublishedAt:      publishedAt,
		CreatedAt:        time.Now().UTC(),
		ProcessingStatus: domain.StatusPending,
	}
}
