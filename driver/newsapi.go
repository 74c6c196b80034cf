// ABOUTME: HTTP client for the news provider API with rate limiting and retries
// ABOUTME: 429 responses back off exponentially, transport timeouts get one retry
package driver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"news-remix/config"
	"news-remix/domain"
	"news-remix/ratelimit"
)

// ProviderRecord is one article as the news provider returns it.
type ProviderRecord struct {
	ArticleID   string   `json:"article_id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	PubDate     string   `json:"pubDate"`
	ImageURL    string   `json:"image_url"`
	Creator     []string `json:"creator"`
	Category    []string `json:"category"`
}

type providerResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Results      []ProviderRecord `json:"results"`
	Message      string           `json:"message,omitempty"`
}

// NewsClient talks to the provider's /news endpoint. All requests pass
// through the shared rate limiter so the process as a whole honors the
// provider's request spacing.
type NewsClient struct {
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	cfg        config.NewsConfig
	rateCfg    config.RateLimitConfig
	userAgent  string
	logger     *slog.Logger
}

// NewHTTPClient builds an HTTP client in the shared transport configuration.
func NewHTTPClient(cfg config.HTTPConfig, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 10 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 10 * time.Second,
			MaxIdleConns:        cfg.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		},
	}
}

func NewNewsClient(httpClient *http.Client, limiter *ratelimit.Limiter, cfg config.NewsConfig, rateCfg config.RateLimitConfig, userAgent string, logger *slog.Logger) *NewsClient {
	return &NewsClient{
		httpClient: httpClient,
		limiter:    limiter,
		cfg:        cfg,
		rateCfg:    rateCfg,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// FetchNews pulls up to size articles for a category. The category must
// already be normalized. Retry policy:
//   - 429: exponential backoff starting at BackoffBase, doubling, at most
//     MaxBackoffRetries retries, then domain.ErrRateLimited
//   - transport timeout: a single retry after TimeoutRetryDelay
//   - anything else: no retry, wrapped as domain.ErrUpstream
func (c *NewsClient) FetchNews(ctx context.Context, category string, size int) ([]ProviderRecord, error) {
	if c.cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	reqURL := c.buildURL(category, size)
	backoff := c.rateCfg.BackoffBase
	rateLimitRetries := 0
	timeoutRetried := false

	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		records, status, err := c.doFetch(ctx, reqURL)

		switch {
		case err == nil && status == http.StatusOK:
			c.logger.Info("fetched news",
				"category", category,
				"count", len(records))
			return records, nil

		case status == http.StatusTooManyRequests:
			rateLimitRetries++
			if rateLimitRetries > c.rateCfg.MaxBackoffRetries {
				return nil, fmt.Errorf("category %s: %w", category, domain.ErrRateLimited)
			}
			c.logger.Warn("provider rate limited, backing off",
				"category", category,
				"retry", rateLimitRetries,
				"backoff", backoff)
			if err := sleepCtx(ctx, backoff); err != nil {
				return nil, err
			}
			backoff *= 2

		case isTimeout(err):
			if timeoutRetried {
				return nil, fmt.Errorf("category %s timed out twice: %w", category, domain.ErrUpstream)
			}
			timeoutRetried = true
			c.logger.Warn("provider request timed out, retrying once",
				"category", category,
				"delay", c.rateCfg.TimeoutRetryDelay)
			if err := sleepCtx(ctx, c.rateCfg.TimeoutRetryDelay); err != nil {
				return nil, err
			}

		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("category %s fetch failed: %v: %w", category, err, domain.ErrUpstream)

		default:
			return nil, fmt.Errorf("category %s returned status %d: %w", category, status, domain.ErrUpstream)
		}
	}
}

func (c *NewsClient) buildURL(category string, size int) string {
	q := url.Values{}
	q.Set("apikey", c.cfg.APIKey)
	q.Set("category", category)
	q.Set("language", c.cfg.Language)
	q.Set("country", c.cfg.Country)
	q.Set("timeframe", c.cfg.Timeframe)
	q.Set("size", strconv.Itoa(size))
	return c.cfg.BaseURL + "/news?" + q.Encode()
}

func (c *NewsClient) doFetch(ctx context.Context, reqURL string) ([]ProviderRecord, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("response body close failed", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, resp.StatusCode, nil
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("response decode failed: %w", err)
	}
	return body.Results, resp.StatusCode, nil
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
