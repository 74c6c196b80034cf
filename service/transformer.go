// ABOUTME: Bias transformation pipeline driving the article state machine
// ABOUTME: Holds a per-article advisory lock for the duration of a run
package service

import (
	"context"
	"fmt"
	"log/slog"

	"news-remix/domain"
	"news-remix/repository"
)

type transformService struct {
	articles repository.ArticleRepository
	rewriter repository.RewriteRepository
	speech   repository.SpeechRepository
	locks    repository.ProcessingLockRepository
	logger   *slog.Logger
}

// NewTransformService wires the transformation pipeline.
func NewTransformService(articles repository.ArticleRepository, rewriter repository.RewriteRepository, speech repository.SpeechRepository, locks repository.ProcessingLockRepository, logger *slog.Logger) TransformService {
	return &transformService{
		articles: articles,
		rewriter: rewriter,
		speech:   speech,
		locks:    locks,
		logger:   logger,
	}
}

// Transform rewrites an article in the requested bias, walking the full
// pipeline: text, image, audio, completed. Rewriting is idempotent per
// (article, bias): a processed article with the same bias is returned
// untouched. A different bias reprocesses from the original fields.
func (s *transformService) Transform(ctx context.Context, id string, bias domain.Bias) (*domain.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if article.IsProcessed && article.Bias == bias {
		s.logger.Info("article already transformed with requested bias",
			"article_id", id,
			"bias", string(bias))
		return article, nil
	}

	if !article.HasText() {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNoContent)
	}

	acquired, err := s.locks.Acquire(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock acquisition failed: %w", err)
	}
	if !acquired {
		return nil, domain.ErrAlreadyProcessing
	}
	defer func() {
		if err := s.locks.Release(ctx, id); err != nil {
			s.logger.Error("lock release failed", "article_id", id, "error", err)
		}
	}()

	transformed, err := s.runPipeline(ctx, article, bias)
	if err != nil {
		if statusErr := s.articles.UpdateStatus(ctx, id, domain.StatusError, err.Error()); statusErr != nil {
			s.logger.Error("failed to record error status",
				"article_id", id,
				"error", statusErr)
		}
		return nil, err
	}
	return transformed, nil
}

func (s *transformService) runPipeline(ctx context.Context, article *domain.Article, bias domain.Bias) (*domain.Article, error) {
	// Reprocessing with a different bias starts over from the originals.
	baseTitle := article.Title
	baseContent := article.BodyText()
	if article.OriginalTitle != "" {
		baseTitle = article.OriginalTitle
	}
	if article.OriginalContent != "" {
		baseContent = article.OriginalContent
	}

	if err := s.articles.UpdateStatus(ctx, article.ID, domain.StatusPending, ""); err != nil {
		return nil, err
	}
	article.ProcessingStatus = domain.StatusPending

	// Each transition persists the stage's artifacts with the new status,
	// so a failure in a later stage never loses earlier results.
	newTitle, err := s.rewriter.RewriteTitle(ctx, baseTitle, bias)
	if err != nil {
		return nil, fmt.Errorf("title rewrite failed: %w", err)
	}
	newContent, err := s.rewriter.RewriteContent(ctx, baseContent, baseTitle, bias)
	if err != nil {
		return nil, fmt.Errorf("content rewrite failed: %w", err)
	}
	article.OriginalTitle = baseTitle
	article.OriginalContent = baseContent
	article.Title = newTitle
	article.Content = newContent
	article.Bias = bias
	if err := s.advance(article, domain.StatusTextCompleted, func() error {
		return s.articles.UpdateRewrite(ctx, article)
	}); err != nil {
		return nil, err
	}

	imageURL, err := s.rewriter.GenerateImage(ctx, newTitle, newContent)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}
	article.GeneratedImageURL = imageURL
	if err := s.advance(article, domain.StatusImageCompleted, func() error {
		return s.articles.UpdateGeneratedImage(ctx, article.ID, imageURL, domain.StatusImageCompleted)
	}); err != nil {
		return nil, err
	}

	audio, err := s.speech.SynthesizeBytes(ctx, newContent)
	if err != nil {
		return nil, fmt.Errorf("audio synthesis failed: %w", err)
	}
	article.AudioData = audio
	if err := s.articles.UpdateAudio(ctx, article.ID, audio); err != nil {
		return nil, err
	}
	if err := s.advance(article, domain.StatusAudioCompleted, func() error {
		return s.articles.UpdateStatus(ctx, article.ID, domain.StatusAudioCompleted, "")
	}); err != nil {
		return nil, err
	}

	article.IsProcessed = true
	article.ProcessingError = ""
	if err := s.advance(article, domain.StatusCompleted, func() error {
		return s.articles.UpdateTransform(ctx, article)
	}); err != nil {
		return nil, err
	}

	s.logger.Info("article transformed",
		"article_id", article.ID,
		"bias", string(bias))
	return article, nil
}

// advance validates the state machine transition, moves the in-memory
// status, then runs the persisting write for the stage.
func (s *transformService) advance(article *domain.Article, to domain.ProcessingStatus, persist func() error) error {
	if !domain.CanTransition(article.ProcessingStatus, to) {
		return fmt.Errorf("illegal status transition %s -> %s for article %s",
			article.ProcessingStatus, to, article.ID)
	}
	article.ProcessingStatus = to
	return persist()
}

// Explain generates a short framing analysis for the article and persists it.
func (s *transformService) Explain(ctx context.Context, id string, bias domain.Bias) (*domain.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !article.HasText() {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNoContent)
	}

	title := article.Title
	content := article.BodyText()
	if article.OriginalTitle != "" {
		title = article.OriginalTitle
	}
	if article.OriginalContent != "" {
		content = article.OriginalContent
	}

	explanation, err := s.rewriter.GenerateExplanation(ctx, title, content, bias)
	if err != nil {
		return nil, fmt.Errorf("explanation generation failed: %w", err)
	}

	if err := s.articles.UpdateExplanation(ctx, id, explanation); err != nil {
		return nil, err
	}

	article.Explanation = explanation
	return article, nil
}
