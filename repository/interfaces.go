// ABOUTME: Repository interfaces consumed by the service layer
// ABOUTME: Service tests double these with hand-rolled fakes
package repository

import (
	"context"
	"io"
	"time"

	"news-remix/domain"
)

// ArticleRepository persists and queries stored articles.
type ArticleRepository interface {
	// SaveAll bulk-inserts articles tolerating per-row URL conflicts, then
	// returns what is actually stored for the given URLs.
	SaveAll(ctx context.Context, articles []*domain.Article) ([]*domain.Article, error)

	FindByCategory(ctx context.Context, filter domain.CategoryFilter, limit int) ([]*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	CountFetchedSince(ctx context.Context, since time.Time, filter domain.CategoryFilter) (int, error)

	UpdateTransform(ctx context.Context, article *domain.Article) error
	// UpdateRewrite persists the rewritten title/content, originals and bias
	// together with the article's current status.
	UpdateRewrite(ctx context.Context, article *domain.Article) error
	UpdateGeneratedImage(ctx context.Context, id, imageURL string, status domain.ProcessingStatus) error
	UpdateStatus(ctx context.Context, id string, status domain.ProcessingStatus, processingError string) error
	UpdateExplanation(ctx context.Context, id, explanation string) error
	UpdateAudio(ctx context.Context, id string, audio []byte) error

	Delete(ctx context.Context, id string) error
	CleanupKeeping(ctx context.Context, keep int) (int64, error)
}

// NewsRepository fetches provider articles already mapped to the domain model.
type NewsRepository interface {
	FetchCategory(ctx context.Context, category string, size int) ([]*domain.Article, error)
}

// RewriteRepository is the text and image transformation collaborator.
type RewriteRepository interface {
	RewriteTitle(ctx context.Context, title string, bias domain.Bias) (string, error)
	RewriteContent(ctx context.Context, content, title string, bias domain.Bias) (string, error)
	GenerateImage(ctx context.Context, title, content string) (string, error)
	GenerateExplanation(ctx context.Context, title, content string, bias domain.Bias) (string, error)
}

// SpeechRepository synthesizes audio for article text.
type SpeechRepository interface {
	Synthesize(ctx context.Context, text string) (io.ReadCloser, error)
	SynthesizeBytes(ctx context.Context, text string) ([]byte, error)
}

// ProcessingLockRepository guards per-article transformation runs.
type ProcessingLockRepository interface {
	// Acquire returns false when another holder owns the article's lock.
	Acquire(ctx context.Context, articleID string) (bool, error)
	Release(ctx context.Context, articleID string) error
}
