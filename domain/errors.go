// ABOUTME: Domain-level sentinel errors for the news-remix service
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Article-related errors
var (
	// ErrArticleNotFound indicates the requested article does not exist
	ErrArticleNotFound = errors.New("article not found")

	// ErrNoContent indicates the article has neither content nor description,
	// so there is nothing to rewrite
	ErrNoContent = errors.New("article has no content to transform")
)

// Validation errors
var (
	// ErrInvalidArticleID indicates the id path parameter is malformed
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrInvalidBias indicates the bias parameter is not left, right or neutral
	ErrInvalidBias = errors.New("invalid bias, must be left, right or neutral")
)

// Configuration errors
var (
	// ErrMissingAPIKey indicates a required upstream credential is not set
	ErrMissingAPIKey = errors.New("API key is not configured")
)

// External service errors
var (
	// ErrRateLimited indicates the upstream returned 429 and retries were exhausted
	ErrRateLimited = errors.New("upstream rate limit exceeded")

	// ErrUpstream indicates a non-retryable upstream failure
	ErrUpstream = errors.New("upstream service error")
)

// Concurrency errors
var (
	// ErrAlreadyProcessing indicates another request holds the article's
	// processing lock
	ErrAlreadyProcessing = errors.New("article is already being processed")
)
