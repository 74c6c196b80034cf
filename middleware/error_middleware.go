// ABOUTME: Centralized error handling for the Echo server
// ABOUTME: Maps domain sentinel errors to status codes, hides 5xx details
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-remix/domain"
)

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const genericMessage = "An unexpected error occurred. Please try again later."

// statusFor maps domain sentinels onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidBias),
		errors.Is(err, domain.ErrInvalidArticleID),
		errors.Is(err, domain.ErrNoContent):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyProcessing):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// CustomHTTPErrorHandler creates the centralized HTTP error handler.
// Domain errors produce their mapped status with the sentinel's message;
// anything else becomes a generic 500 so internals never leak.
func CustomHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var status int
		var message string

		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
			if status >= 500 || message == "" {
				message = genericMessage
			}

		default:
			status = statusFor(err)
			if status < 500 {
				message = userMessage(err)
			} else {
				message = genericMessage
			}
		}

		if status >= 500 {
			logger.Error("request failed",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", status,
				"error", err)
		} else {
			logger.Warn("request rejected",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", status,
				"error", err)
		}

		if err := c.JSON(status, ErrorResponse{Success: false, Message: message}); err != nil {
			logger.Error("failed to send error response", "error", err)
		}
	}
}

// userMessage strips wrapping context off 4xx errors, exposing only the
// sentinel text.
func userMessage(err error) string {
	for _, sentinel := range []error{
		domain.ErrInvalidBias,
		domain.ErrInvalidArticleID,
		domain.ErrNoContent,
		domain.ErrArticleNotFound,
		domain.ErrAlreadyProcessing,
		domain.ErrRateLimited,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
