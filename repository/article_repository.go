// ABOUTME: Article repository wrapping the raw SQL driver with validation and logging
// ABOUTME: All article ids are validated as UUIDs before touching the database
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"news-remix/domain"
	"news-remix/driver"
)

type articleRepository struct {
	pool   driver.Pool
	logger *slog.Logger
}

// NewArticleRepository creates an ArticleRepository backed by Postgres.
func NewArticleRepository(pool driver.Pool, logger *slog.Logger) ArticleRepository {
	return &articleRepository{pool: pool, logger: logger}
}

func (r *articleRepository) SaveAll(ctx context.Context, articles []*domain.Article) ([]*domain.Article, error) {
	if len(articles) == 0 {
		return nil, nil
	}

	if err := driver.InsertArticles(ctx, r.pool, articles); err != nil {
		return nil, fmt.Errorf("bulk insert failed: %w", err)
	}

	urls := make([]string, 0, len(articles))
	for _, a := range articles {
		urls = append(urls, a.URL)
	}

	stored, err := driver.GetArticlesByURLs(ctx, r.pool, urls)
	if err != nil {
		return nil, fmt.Errorf("re-read after insert failed: %w", err)
	}

	r.logger.Info("saved articles",
		"submitted", len(articles),
		"stored", len(stored))
	return stored, nil
}

func (r *articleRepository) FindByCategory(ctx context.Context, filter domain.CategoryFilter, limit int) ([]*domain.Article, error) {
	return driver.GetArticles(ctx, r.pool, filter, limit)
}

func (r *articleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return driver.GetArticleByID(ctx, r.pool, id)
}

func (r *articleRepository) CountFetchedSince(ctx context.Context, since time.Time, filter domain.CategoryFilter) (int, error) {
	return driver.CountCreatedSince(ctx, r.pool, since, filter)
}

func (r *articleRepository) UpdateTransform(ctx context.Context, article *domain.Article) error {
	if err := validateID(article.ID); err != nil {
		return err
	}
	return driver.UpdateTransform(ctx, r.pool, article)
}

func (r *articleRepository) UpdateRewrite(ctx context.Context, article *domain.Article) error {
	if err := validateID(article.ID); err != nil {
		return err
	}
	r.logger.Info("article status change",
		"article_id", article.ID,
		"status", string(article.ProcessingStatus))
	return driver.UpdateRewrite(ctx, r.pool, article)
}

func (r *articleRepository) UpdateGeneratedImage(ctx context.Context, id, imageURL string, status domain.ProcessingStatus) error {
	if err := validateID(id); err != nil {
		return err
	}
	r.logger.Info("article status change",
		"article_id", id,
		"status", string(status))
	return driver.UpdateGeneratedImage(ctx, r.pool, id, imageURL, status)
}

func (r *articleRepository) UpdateStatus(ctx context.Context, id string, status domain.ProcessingStatus, processingError string) error {
	if err := validateID(id); err != nil {
		return err
	}
	r.logger.Info("article status change",
		"article_id", id,
		"status", string(status))
	return driver.UpdateStatus(ctx, r.pool, id, status, processingError)
}

func (r *articleRepository) UpdateExplanation(ctx context.Context, id, explanation string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return driver.UpdateExplanation(ctx, r.pool, id, explanation)
}

func (r *articleRepository) UpdateAudio(ctx context.Context, id string, audio []byte) error {
	if err := validateID(id); err != nil {
		return err
	}
	return driver.UpdateAudio(ctx, r.pool, id, audio)
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return driver.DeleteArticle(ctx, r.pool, id)
}

func (r *articleRepository) CleanupKeeping(ctx context.Context, keep int) (int64, error) {
	deleted, err := driver.DeleteOlderKeeping(ctx, r.pool, keep)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		r.logger.Info("cleaned up old articles", "deleted", deleted, "kept", keep)
	}
	return deleted, nil
}

func validateID(id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrInvalidArticleID
	}
	return nil
}
