// ABOUTME: Service layer interfaces and the tagged ingestion outcome type
package service

import (
	"context"
	"io"

	"news-remix/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

// IngestSource says where the articles of an ingestion run came from, so
// callers can tell "nothing new today" apart from "provider unreachable".
type IngestSource string

const (
	// SourceFetched means fresh articles were pulled from the provider.
	SourceFetched IngestSource = "fetched"
	// SourceCached means today's articles were already stored, no fetch ran.
	SourceCached IngestSource = "cached"
	// SourceFallback means the provider rate limit was exhausted and stored
	// articles were served instead.
	SourceFallback IngestSource = "fallback"
)

// IngestOutcome is the result of an ingestion run.
type IngestOutcome struct {
	Source   IngestSource
	Articles []*domain.Article
}

// IngestionService pulls provider news into the store and reads it back out.
type IngestionService interface {
	FetchCategory(ctx context.Context, category string, pageSize int) (*IngestOutcome, error)
	FetchAllCategories(ctx context.Context, pageSize int) (*IngestOutcome, error)
	DailyFetchAndClean(ctx context.Context, pageSize, keepCount int) (*IngestOutcome, error)

	ListArticles(ctx context.Context, filter domain.CategoryFilter, limit int) ([]*domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

// TransformService drives the bias transformation state machine.
type TransformService interface {
	Transform(ctx context.Context, id string, bias domain.Bias) (*domain.Article, error)
	Explain(ctx context.Context, id string, bias domain.Bias) (*domain.Article, error)
}

// AudioService produces listenable audio for an article.
type AudioService interface {
	Stream(ctx context.Context, id string) (io.ReadCloser, error)
}
