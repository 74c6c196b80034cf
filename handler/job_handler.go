// ABOUTME: Daily ingestion job running at midnight UTC
// ABOUTME: Fetches all categories and trims the store to the retention count
package handler

import (
	"context"
	"log/slog"
	"time"

	"news-remix/service"
)

// JobHandler owns the background ingestion schedule.
type JobHandler struct {
	ingestion service.IngestionService
	pageSize  int
	keepCount int
	logger    *slog.Logger
}

func NewJobHandler(ingestion service.IngestionService, pageSize, keepCount int, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		ingestion: ingestion,
		pageSize:  pageSize,
		keepCount: keepCount,
		logger:    logger,
	}
}

// nextMidnightUTC returns the next UTC day boundary after now.
func nextMidnightUTC(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
}

// StartDailyJob runs the fetch-and-clean cycle at every midnight UTC until
// the context is cancelled. It returns immediately; the loop runs in a
// goroutine that survives per-run panics.
func (h *JobHandler) StartDailyJob(ctx context.Context) {
	go func() {
		for {
			wait := time.Until(nextMidnightUTC(time.Now()))
			h.logger.Info("daily job scheduled", "next_run_in", wait.Round(time.Second))

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				h.logger.Info("daily job stopped")
				return
			case <-timer.C:
			}

			h.runOnce(ctx)
		}
	}()
}

func (h *JobHandler) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("daily job panicked", "panic", r)
		}
	}()

	start := time.Now()
	outcome, err := h.ingestion.DailyFetchAndClean(ctx, h.pageSize, h.keepCount)
	if err != nil {
		h.logger.Error("daily job failed", "error", err)
		return
	}

	h.logger.Info("daily job completed",
		"source", string(outcome.Source),
		"articles", len(outcome.Articles),
		"duration", time.Since(start).Round(time.Millisecond))
}
