// ABOUTME: Rewrite collaborator facade combining image prompt crafting and rendering
package repository

import (
	"context"
	"log/slog"

	"news-remix/domain"
	"news-remix/driver"
)

type rewriteRepository struct {
	client *driver.RewriterClient
	logger *slog.Logger
}

// NewRewriteRepository creates a RewriteRepository over the rewriter client.
func NewRewriteRepository(client *driver.RewriterClient, logger *slog.Logger) RewriteRepository {
	return &rewriteRepository{client: client, logger: logger}
}

func (r *rewriteRepository) RewriteTitle(ctx context.Context, title string, bias domain.Bias) (string, error) {
	return r.client.RewriteTitle(ctx, title, bias)
}

func (r *rewriteRepository) RewriteContent(ctx context.Context, content, title string, bias domain.Bias) (string, error) {
	return r.client.RewriteContent(ctx, content, title, bias)
}

// GenerateImage crafts a prompt from the article and renders it.
func (r *rewriteRepository) GenerateImage(ctx context.Context, title, content string) (string, error) {
	prompt, err := r.client.GenerateImagePrompt(ctx, title, content)
	if err != nil {
		return "", err
	}

	url, err := r.client.GenerateImage(ctx, prompt)
	if err != nil {
		return "", err
	}

	r.logger.Info("generated article image", "url", url)
	return url, nil
}

func (r *rewriteRepository) GenerateExplanation(ctx context.Context, title, content string, bias domain.Bias) (string, error) {
	return r.client.GenerateExplanation(ctx, title, content, bias)
}
