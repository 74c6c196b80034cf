// ABOUTME: Ingestion pipeline: daily cache check, provider fetch, dedupe, store
// ABOUTME: Falls back to stored articles when the provider rate limit is exhausted
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"news-remix/dedup"
	"news-remix/domain"
	"news-remix/repository"
)

type ingestionService struct {
	articles     repository.ArticleRepository
	news         repository.NewsRepository
	defaultLimit int
	fetchDelay   time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// NewIngestionService wires the ingestion pipeline. defaultLimit caps list
// reads and fallbacks; fetchDelay spaces the per-category fetches of a full
// run on top of the client's own rate limiting.
func NewIngestionService(articles repository.ArticleRepository, news repository.NewsRepository, defaultLimit int, fetchDelay time.Duration, logger *slog.Logger) IngestionService {
	return &ingestionService{
		articles:     articles,
		news:         news,
		defaultLimit: defaultLimit,
		fetchDelay:   fetchDelay,
		now:          time.Now,
		logger:       logger,
	}
}

// startOfDayUTC is the daily cache boundary.
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *ingestionService) FetchCategory(ctx context.Context, category string, pageSize int) (*IngestOutcome, error) {
	filter := domain.NamedCategory(category)

	count, err := s.articles.CountFetchedSince(ctx, startOfDayUTC(s.now()), filter)
	if err != nil {
		return nil, fmt.Errorf("daily cache check failed: %w", err)
	}
	if count > 0 {
		s.logger.Info("serving cached articles", "category", filter.Name(), "count", count)
		return s.storedOutcome(ctx, filter, SourceCached)
	}

	fetched, err := s.news.FetchCategory(ctx, filter.Name(), pageSize)
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			s.logger.Warn("provider rate limited, serving stored articles",
				"category", filter.Name())
			return s.storedOutcome(ctx, filter, SourceFallback)
		}
		return nil, err
	}

	stored, err := s.store(ctx, fetched)
	if err != nil {
		return nil, err
	}
	return &IngestOutcome{Source: SourceFetched, Articles: stored}, nil
}

func (s *ingestionService) FetchAllCategories(ctx context.Context, pageSize int) (*IngestOutcome, error) {
	all := domain.AllCategories()

	count, err := s.articles.CountFetchedSince(ctx, startOfDayUTC(s.now()), all)
	if err != nil {
		return nil, fmt.Errorf("daily cache check failed: %w", err)
	}
	if count > 0 {
		s.logger.Info("serving cached articles for full run", "count", count)
		return s.storedOutcome(ctx, all, SourceCached)
	}

	var fetched []*domain.Article
	var lastErr error
	failedCategories := 0

	for i, category := range domain.FetchAllCategories {
		if i > 0 {
			if err := sleepCtx(ctx, s.fetchDelay); err != nil {
				return nil, err
			}
		}

		batch, err := s.news.FetchCategory(ctx, category, pageSize)
		if err != nil {
			if errors.Is(err, domain.ErrRateLimited) {
				s.logger.Warn("rate limit exhausted mid-run, stopping fetches",
					"category", category,
					"collected", len(fetched))
				break
			}
			s.logger.Error("category fetch failed, continuing",
				"category", category,
				"error", err)
			failedCategories++
			lastErr = err
			continue
		}
		fetched = append(fetched, batch...)
	}

	if len(fetched) == 0 {
		if failedCategories == len(domain.FetchAllCategories) {
			return nil, fmt.Errorf("all categories failed: %w", lastErr)
		}
		// rate limited before anything was collected
		return s.storedOutcome(ctx, all, SourceFallback)
	}

	stored, err := s.store(ctx, fetched)
	if err != nil {
		return nil, err
	}
	return &IngestOutcome{Source: SourceFetched, Articles: stored}, nil
}

func (s *ingestionService) DailyFetchAndClean(ctx context.Context, pageSize, keepCount int) (*IngestOutcome, error) {
	outcome, err := s.FetchAllCategories(ctx, pageSize)
	if err != nil {
		return nil, err
	}

	if _, err := s.articles.CleanupKeeping(ctx, keepCount); err != nil {
		return nil, fmt.Errorf("retention cleanup failed: %w", err)
	}
	return outcome, nil
}

func (s *ingestionService) ListArticles(ctx context.Context, filter domain.CategoryFilter, limit int) ([]*domain.Article, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}

	articles, err := s.articles.FindByCategory(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	return dedup.Articles(articles), nil
}

func (s *ingestionService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.articles.FindByID(ctx, id)
}

func (s *ingestionService) DeleteArticle(ctx context.Context, id string) error {
	return s.articles.Delete(ctx, id)
}

// store dedupes a fetched batch, bulk-inserts it and returns the rows the
// database actually holds for those URLs.
func (s *ingestionService) store(ctx context.Context, fetched []*domain.Article) ([]*domain.Article, error) {
	deduped := dedup.Articles(fetched)
	if len(deduped) < len(fetched) {
		s.logger.Info("dropped duplicate articles",
			"fetched", len(fetched),
			"kept", len(deduped))
	}

	stored, err := s.articles.SaveAll(ctx, deduped)
	if err != nil {
		return nil, fmt.Errorf("storing fetched articles failed: %w", err)
	}
	return stored, nil
}

func (s *ingestionService) storedOutcome(ctx context.Context, filter domain.CategoryFilter, source IngestSource) (*IngestOutcome, error) {
	articles, err := s.articles.FindByCategory(ctx, filter, s.defaultLimit)
	if err != nil {
		return nil, err
	}
	return &IngestOutcome{Source: source, Articles: dedup.Articles(articles)}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
