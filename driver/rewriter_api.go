// ABOUTME: Chat-completions client used for title/content rewriting and image generation
// ABOUTME: All calls go through a retrier since the upstream is slow and occasionally flaky
package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"news-remix/config"
	"news-remix/domain"
	"news-remix/retry"
)

// RewriterClient calls an OpenAI-style API for text rewriting, image prompt
// crafting and image generation.
type RewriterClient struct {
	httpClient *http.Client
	cfg        config.RewriterConfig
	retrier    *retry.Retrier
	logger     *slog.Logger
}

func NewRewriterClient(httpClient *http.Client, cfg config.RewriterConfig, retryCfg config.RetryConfig, logger *slog.Logger) *RewriterClient {
	retrier := retry.New(retry.Config{
		MaxAttempts:   retryCfg.MaxAttempts,
		BaseDelay:     retryCfg.BaseDelay,
		MaxDelay:      retryCfg.MaxDelay,
		BackoffFactor: retryCfg.BackoffFactor,
		JitterFactor:  retryCfg.JitterFactor,
	}, isRetryableUpstream, logger)

	return &RewriterClient{
		httpClient: httpClient,
		cfg:        cfg,
		retrier:    retrier,
		logger:     logger,
	}
}

func isRetryableUpstream(err error) bool {
	if errors.Is(err, domain.ErrRateLimited) {
		return true
	}
	var transient *transientUpstreamError
	return errors.As(err, &transient)
}

// transientUpstreamError marks 5xx responses and transport timeouts as
// retryable without losing the underlying cause.
type transientUpstreamError struct{ cause error }

func (e *transientUpstreamError) Error() string { return e.cause.Error() }
func (e *transientUpstreamError) Unwrap() error { return e.cause }

var biasDirectives = map[domain.Bias]string{
	domain.BiasLeft: "Rewrite with a strong left-leaning slant: emphasize collective action, " +
		"social justice framing, corporate accountability and systemic causes.",
	domain.BiasRight: "Rewrite with a strong right-leaning slant: emphasize individual liberty, " +
		"traditional values, free-market framing and distrust of government overreach.",
	domain.BiasNeutral: "Rewrite in an exaggerated, sensationalist tabloid register without " +
		"taking a political side.",
}

// RewriteTitle transforms a headline in the requested bias.
func (c *RewriterClient) RewriteTitle(ctx context.Context, title string, bias domain.Bias) (string, error) {
	prompt := fmt.Sprintf(`You are a news editor crafting attention-grabbing headlines.
%s
Keep the core subject of the headline but amplify its emotional impact dramatically.

ORIGINAL HEADLINE:
%s

REWRITTEN HEADLINE:`, biasDirectives[bias], title)

	out, err := c.chat(ctx, prompt, 1.2, 100)
	if err != nil {
		return "", err
	}
	if out == "" {
		return title, nil
	}
	return out, nil
}

// RewriteContent transforms an article body in the requested bias.
func (c *RewriterClient) RewriteContent(ctx context.Context, content, title string, bias domain.Bias) (string, error) {
	prompt := fmt.Sprintf(`You are rewriting a news article to demonstrate how framing changes perception.
%s
Guidelines:
- Maintain the general topic and key figures of the original article
- Use hyperbolic language and extreme adjectives
- Keep the length similar to the original content

TITLE: %s

ORIGINAL CONTENT:
%s

REWRITTEN CONTENT:`, biasDirectives[bias], title, content)

	out, err := c.chat(ctx, prompt, 1.3, 2000)
	if err != nil {
		return "", err
	}
	if out == "" {
		return content, nil
	}
	return out, nil
}

// GenerateImagePrompt crafts an image-generation prompt from an article.
func (c *RewriterClient) GenerateImagePrompt(ctx context.Context, title, content string) (string, error) {
	excerpt := content
	if len(excerpt) > c.cfg.ContentExcerpt {
		excerpt = excerpt[:c.cfg.ContentExcerpt]
	}

	prompt := fmt.Sprintf(`You are a specialist in prompts for AI image generation. Craft a detailed,
visually rich prompt for a surreal, exaggerated news image based on the article below.

ARTICLE TITLE: %s

CONTENT EXCERPT: %s...

The prompt should capture the main subject, add satirical visual elements,
specify a photorealistic news-photograph style with dramatic lighting, and
stay between 50 and 100 words.

IMAGE GENERATION PROMPT:`, title, excerpt)

	return c.chat(ctx, prompt, 0.8, 200)
}

// GenerateExplanation summarizes how the rewrite distorted the original.
func (c *RewriterClient) GenerateExplanation(ctx context.Context, originalTitle, originalContent string, bias domain.Bias) (string, error) {
	prompt := fmt.Sprintf(`Explain in two or three plain sentences how a %s rewrite of the
article below would shift its framing, and which rhetorical techniques it would rely on.

TITLE: %s

CONTENT:
%s

EXPLANATION:`, bias, originalTitle, originalContent)

	return c.chat(ctx, prompt, 0.7, 300)
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *RewriterClient) chat(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if c.cfg.APIKey == "" {
		return "", domain.ErrMissingAPIKey
	}

	reqBody := chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var result chatResponse
	err := c.retrier.Do(ctx, func() error {
		return c.postJSON(ctx, c.cfg.BaseURL+"/chat/completions", reqBody, &result)
	})
	if err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

type imageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	Style   string `json:"style"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateImage renders an image for the given prompt and returns its URL.
func (c *RewriterClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", domain.ErrMissingAPIKey
	}

	reqBody := imageRequest{
		Model:   c.cfg.ImageModel,
		Prompt:  prompt,
		N:       1,
		Size:    "1024x1024",
		Quality: "standard",
		Style:   "vivid",
	}

	var result imageResponse
	err := c.retrier.Do(ctx, func() error {
		return c.postJSON(ctx, c.cfg.BaseURL+"/images/generations", reqBody, &result)
	})
	if err != nil {
		return "", err
	}

	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", fmt.Errorf("image generation returned no URL: %w", domain.ErrUpstream)
	}
	return result.Data[0].URL, nil
}

func (c *RewriterClient) postJSON(ctx context.Context, url string, reqBody, result any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("request marshal failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &transientUpstreamError{cause: err}
		}
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("response body close failed", "error", cerr)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("response decode failed: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return domain.ErrRateLimited

	case resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &transientUpstreamError{cause: fmt.Errorf("rewriter returned status %d", resp.StatusCode)}

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("rewriter returned status %d: %s: %w", resp.StatusCode, string(body), domain.ErrUpstream)
	}
}
