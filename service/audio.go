// ABOUTME: Audio service serving stored synthesis results or synthesizing on demand
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"news-remix/domain"
	"news-remix/repository"
)

type audioService struct {
	articles repository.ArticleRepository
	speech   repository.SpeechRepository
	logger   *slog.Logger
}

// NewAudioService wires audio streaming for articles.
func NewAudioService(articles repository.ArticleRepository, speech repository.SpeechRepository, logger *slog.Logger) AudioService {
	return &audioService{articles: articles, speech: speech, logger: logger}
}

// Stream returns an MPEG audio stream for the article. Audio persisted by a
// previous transformation is served directly; otherwise the current text is
// synthesized on the fly.
func (s *audioService) Stream(ctx context.Context, id string) (io.ReadCloser, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(article.AudioData) > 0 {
		return io.NopCloser(bytes.NewReader(article.AudioData)), nil
	}

	if !article.HasText() {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrNoContent)
	}

	s.logger.Info("synthesizing audio on demand", "article_id", id)
	return s.speech.Synthesize(ctx, article.BodyText())
}
