// ABOUTME: Raw SQL operations for the articles table
// ABOUTME: Insert is batch-based and conflict-tolerant so one duplicate never aborts a run
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"news-remix/domain"
)

const articleColumns = `id, title, description, content, url, image_url, category, author,
	published_at, created_at, original_title, original_content, bias,
	generated_image_url, explanation, audio_data, is_processed,
	processing_status, processing_error`

// InsertArticles inserts articles in a single batch. Rows whose URL already
// exists are skipped rather than failing the batch, mirroring an unordered
// bulk insert. Callers re-read by URL to learn what is actually stored.
func InsertArticles(ctx context.Context, pool Pool, articles []*domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, a := range articles {
		batch.Queue(`
			INSERT INTO articles (id, title, description, content, url, image_url,
				category, author, published_at, created_at, processing_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (url) DO NOTHING`,
			a.ID, a.Title, a.Description, a.Content, a.URL, a.ImageURL,
			a.Category, a.Author, a.PublishedAt, a.CreatedAt, string(domain.StatusPending))
	}

	results := pool.SendBatch(ctx, batch)
	defer results.Close()

	for range articles {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert articles: %w", err)
		}
	}
	return nil
}

// GetArticlesByURLs returns stored articles whose URL is in the given set,
// newest first.
func GetArticlesByURLs(ctx context.Context, pool Pool, urls []string) ([]*domain.Article, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	rows, err := pool.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE url = ANY($1)
		ORDER BY published_at DESC`, urls)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles by URL: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetArticles returns articles matching the category filter, newest first.
// A non-positive limit means no limit.
func GetArticles(ctx context.Context, pool Pool, filter domain.CategoryFilter, limit int) ([]*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	args := []any{}

	if !filter.All() {
		query += ` WHERE category = $1`
		args = append(args, filter.Name())
	}
	query += ` ORDER BY published_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetArticleByID returns a single article or domain.ErrArticleNotFound.
func GetArticleByID(ctx context.Context, pool Pool, id string) (*domain.Article, error) {
	row := pool.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE id = $1`, id)

	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query article %s: %w", id, err)
	}
	return a, nil
}

// CountCreatedSince counts articles stored at or after the cutoff.
func CountCreatedSince(ctx context.Context, pool Pool, since time.Time, filter domain.CategoryFilter) (int, error) {
	query := `SELECT COUNT(*) FROM articles WHERE created_at >= $1`
	args := []any{since}

	if !filter.All() {
		query += ` AND category = $2`
		args = append(args, filter.Name())
	}

	var count int
	if err := pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

// UpdateTransform persists the bias-specific rewrite fields and status.
func UpdateTransform(ctx context.Context, pool Pool, a *domain.Article) error {
	tag, err := pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, content = $3, original_title = $4, original_content = $5,
			bias = $6, generated_image_url = $7, is_processed = $8,
			processing_status = $9, processing_error = ''
		WHERE id = $1`,
		a.ID, a.Title, a.Content, a.OriginalTitle, a.OriginalContent,
		string(a.Bias), a.GeneratedImageURL, a.IsProcessed, string(a.ProcessingStatus))
	if err != nil {
		return fmt.Errorf("failed to update transform for %s: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// UpdateRewrite persists the rewritten text fields together with the status
// they were produced under, so a later pipeline stage failing cannot lose them.
func UpdateRewrite(ctx context.Context, pool Pool, a *domain.Article) error {
	tag, err := pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, content = $3, original_title = $4, original_content = $5,
			bias = $6, processing_status = $7, processing_error = ''
		WHERE id = $1`,
		a.ID, a.Title, a.Content, a.OriginalTitle, a.OriginalContent,
		string(a.Bias), string(a.ProcessingStatus))
	if err != nil {
		return fmt.Errorf("failed to update rewrite for %s: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// UpdateGeneratedImage stores a generated image URL with its status.
func UpdateGeneratedImage(ctx context.Context, pool Pool, id, imageURL string, status domain.ProcessingStatus) error {
	tag, err := pool.Exec(ctx, `
		UPDATE articles
		SET generated_image_url = $2, processing_status = $3, processing_error = ''
		WHERE id = $1`,
		id, imageURL, string(status))
	if err != nil {
		return fmt.Errorf("failed to update generated image for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// UpdateStatus records a pipeline status change, optionally with an error message.
func UpdateStatus(ctx context.Context, pool Pool, id string, status domain.ProcessingStatus, processingError string) error {
	tag, err := pool.Exec(ctx, `
		UPDATE articles
		SET processing_status = $2, processing_error = $3
		WHERE id = $1`,
		id, string(status), processingError)
	if err != nil {
		return fmt.Errorf("failed to update status for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// UpdateExplanation stores a generated explanation.
func UpdateExplanation(ctx context.Context, pool Pool, id, explanation string) error {
	tag, err := pool.Exec(ctx, `
		UPDATE articles SET explanation = $2 WHERE id = $1`, id, explanation)
	if err != nil {
		return fmt.Errorf("failed to update explanation for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// UpdateAudio stores synthesized audio bytes.
func UpdateAudio(ctx context.Context, pool Pool, id string, audio []byte) error {
	tag, err := pool.Exec(ctx, `
		UPDATE articles SET audio_data = $2 WHERE id = $1`, id, audio)
	if err != nil {
		return fmt.Errorf("failed to update audio for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// DeleteArticle removes an article by id.
func DeleteArticle(ctx context.Context, pool Pool, id string) error {
	tag, err := pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// DeleteOlderKeeping removes everything except the keep most recently
// published articles. Returns the number of deleted rows.
func DeleteOlderKeeping(ctx context.Context, pool Pool, keep int) (int64, error) {
	tag, err := pool.Exec(ctx, `
		DELETE FROM articles
		WHERE id NOT IN (
			SELECT id FROM articles ORDER BY published_at DESC LIMIT $1
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up old articles: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanArticles(rows pgx.Rows) ([]*domain.Article, error) {
	var articles []*domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("article rows iteration failed: %w", err)
	}
	return articles, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	var bias, status string

	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Content, &a.URL,
		&a.ImageURL, &a.Category, &a.Author, &a.PublishedAt, &a.CreatedAt,
		&a.OriginalTitle, &a.OriginalContent, &bias, &a.GeneratedImageURL,
		&a.Explanation, &a.AudioData, &a.IsProcessed, &status, &a.ProcessingError)
	if err != nil {
		return nil, err
	}

	a.Bias = domain.Bias(bias)
	a.ProcessingStatus = domain.ProcessingStatus(status)
	return &a, nil
}
