// ABOUTME: HTTP handlers for the article API
// ABOUTME: Responses use the {success, count, message, data} envelope
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-remix/domain"
	"news-remix/service"
)

// Response is the standard success envelope.
type Response struct {
	Success bool   `json:"success"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ArticleHandler exposes article listing, ingestion and transformation.
type ArticleHandler struct {
	ingestion service.IngestionService
	transform service.TransformService
	audio     service.AudioService
	pageSize  int
	logger    *slog.Logger
}

func NewArticleHandler(ingestion service.IngestionService, transform service.TransformService, audio service.AudioService, pageSize int, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		ingestion: ingestion,
		transform: transform,
		audio:     audio,
		pageSize:  pageSize,
		logger:    logger,
	}
}

// categoryFilter maps the query parameter onto a filter. Empty and
// "general" mean no category restriction.
func categoryFilter(raw string) domain.CategoryFilter {
	if raw == "" || raw == "general" {
		return domain.AllCategories()
	}
	return domain.NamedCategory(raw)
}

// List returns the default page of stored articles, deduplicated.
func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.ingestion.ListArticles(c.Request().Context(),
		categoryFilter(c.QueryParam("category")), 0)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   len(articles),
		Data:    articles,
	})
}

// ListAll returns every stored article without a limit.
func (h *ArticleHandler) ListAll(c echo.Context) error {
	articles, err := h.ingestion.ListArticles(c.Request().Context(),
		categoryFilter(c.QueryParam("category")), -1)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   len(articles),
		Data:    articles,
	})
}

// Get returns one article by id.
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.ingestion.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: article})
}

var sourceMessages = map[service.IngestSource]string{
	service.SourceFetched:  "Fetched latest articles",
	service.SourceCached:   "Serving today's cached articles",
	service.SourceFallback: "News provider unavailable, serving stored articles",
}

// Fetch ingests the latest articles for one category.
func (h *ArticleHandler) Fetch(c echo.Context) error {
	outcome, err := h.ingestion.FetchCategory(c.Request().Context(),
		c.QueryParam("category"), h.pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   len(outcome.Articles),
		Message: sourceMessages[outcome.Source],
		Data:    outcome.Articles,
	})
}

// FetchAll ingests the latest articles across all categories.
func (h *ArticleHandler) FetchAll(c echo.Context) error {
	outcome, err := h.ingestion.FetchAllCategories(c.Request().Context(), h.pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   len(outcome.Articles),
		Message: sourceMessages[outcome.Source],
		Data:    outcome.Articles,
	})
}

// Transform rewrites an article with the requested bias.
func (h *ArticleHandler) Transform(c echo.Context) error {
	bias, err := domain.ParseBias(c.QueryParam("bias"))
	if err != nil {
		return err
	}

	article, err := h.transform.Transform(c.Request().Context(), c.Param("id"), bias)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Article transformed with " + string(bias) + " bias",
		Data:    article,
	})
}

// Explain generates a framing explanation for an article.
func (h *ArticleHandler) Explain(c echo.Context) error {
	bias, err := domain.ParseBias(c.QueryParam("bias"))
	if err != nil {
		return err
	}

	article, err := h.transform.Explain(c.Request().Context(), c.Param("id"), bias)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: article})
}

// Audio streams MPEG audio for an article.
func (h *ArticleHandler) Audio(c echo.Context) error {
	stream, err := h.audio.Stream(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			h.logger.Error("audio stream close failed", "error", cerr)
		}
	}()

	return c.Stream(http.StatusOK, "audio/mpeg", stream)
}

// Delete removes an article.
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.ingestion.DeleteArticle(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Article deleted",
	})
}
