package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-remix/domain"
	"news-remix/service"
	"news-remix/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type handlerMocks struct {
	ingestion *mocks.MockIngestionService
	transform *mocks.MockTransformService
	audio     *mocks.MockAudioService
}

func newTestHandler(t *testing.T) (*ArticleHandler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		ingestion: mocks.NewMockIngestionService(ctrl),
		transform: mocks.NewMockTransformService(ctrl),
		audio:     mocks.NewMockAudioService(ctrl),
	}
	return NewArticleHandler(m.ingestion, m.transform, m.audio, 10, testLogger()), m
}

func newHandlerContext(method, target string, pathParams map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range pathParams {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestListEnvelope(t *testing.T) {
	h, m := newTestHandler(t)
	m.ingestion.EXPECT().
		ListArticles(gomock.Any(), gomock.Eq(domain.AllCategories()), 0).
		Return([]*domain.Article{{ID: "a1", Title: "One"}, {ID: "a2", Title: "Two"}}, nil)

	c, rec := newHandlerContext(http.MethodGet, "/api/v1/articles", nil)
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
}

func TestListCategoryFilterMapping(t *testing.T) {
	tests := map[string]struct {
		query      string
		wantFilter domain.CategoryFilter
	}{
		"no category means all": {query: "", wantFilter: domain.AllCategories()},
		"general means all":     {query: "?category=general", wantFilter: domain.AllCategories()},
		"named category":        {query: "?category=sports", wantFilter: domain.NamedCategory("sports")},
		"unknown normalized":    {query: "?category=gossip", wantFilter: domain.NamedCategory("top")},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.ingestion.EXPECT().
				ListArticles(gomock.Any(), gomock.Eq(tc.wantFilter), 0).
				Return(nil, nil)

			c, _ := newHandlerContext(http.MethodGet, "/api/v1/articles"+tc.query, nil)
			require.NoError(t, h.List(c))
		})
	}
}

func TestFetchMessagesBySource(t *testing.T) {
	tests := map[string]struct {
		source      service.IngestSource
		wantMessage string
	}{
		"fetched":  {source: service.SourceFetched, wantMessage: "Fetched latest articles"},
		"cached":   {source: service.SourceCached, wantMessage: "Serving today's cached articles"},
		"fallback": {source: service.SourceFallback, wantMessage: "News provider unavailable, serving stored articles"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.ingestion.EXPECT().
				FetchCategory(gomock.Any(), "top", 10).
				Return(&service.IngestOutcome{
					Source:   tc.source,
					Articles: []*domain.Article{{ID: "a1"}},
				}, nil)

			c, rec := newHandlerContext(http.MethodGet, "/api/v1/articles/fetch?category=top", nil)
			require.NoError(t, h.Fetch(c))

			resp := decodeResponse(t, rec)
			assert.Equal(t, tc.wantMessage, resp.Message)
			assert.Equal(t, 1, resp.Count)
		})
	}
}

func TestTransformParsesBias(t *testing.T) {
	h, m := newTestHandler(t)
	m.transform.EXPECT().
		Transform(gomock.Any(), "a1", domain.BiasLeft).
		Return(&domain.Article{ID: "a1"}, nil)

	c, rec := newHandlerContext(http.MethodPost, "/api/v1/articles/a1/transform?bias=left",
		map[string]string{"id": "a1"})
	require.NoError(t, h.Transform(c))

	resp := decodeResponse(t, rec)
	assert.Contains(t, resp.Message, "left")
}

func TestTransformDefaultsToNeutral(t *testing.T) {
	h, m := newTestHandler(t)
	m.transform.EXPECT().
		Transform(gomock.Any(), "a1", domain.BiasNeutral).
		Return(&domain.Article{ID: "a1"}, nil)

	c, _ := newHandlerContext(http.MethodPost, "/api/v1/articles/a1/transform",
		map[string]string{"id": "a1"})
	require.NoError(t, h.Transform(c))
}

func TestTransformInvalidBias(t *testing.T) {
	h, _ := newTestHandler(t)

	c, _ := newHandlerContext(http.MethodPost, "/api/v1/articles/a1/transform?bias=extreme",
		map[string]string{"id": "a1"})
	err := h.Transform(c)
	assert.ErrorIs(t, err, domain.ErrInvalidBias)
}

func TestTransformServiceErrorPropagates(t *testing.T) {
	h, m := newTestHandler(t)
	m.transform.EXPECT().
		Transform(gomock.Any(), "a1", domain.BiasNeutral).
		Return(nil, domain.ErrAlreadyProcessing)

	c, _ := newHandlerContext(http.MethodPost, "/api/v1/articles/a1/transform",
		map[string]string{"id": "a1"})
	assert.ErrorIs(t, h.Transform(c), domain.ErrAlreadyProcessing)
}

func TestAudioStreamsMPEG(t *testing.T) {
	h, m := newTestHandler(t)
	m.audio.EXPECT().
		Stream(gomock.Any(), "a1").
		Return(io.NopCloser(bytes.NewReader([]byte("mpeg-bytes"))), nil)

	c, rec := newHandlerContext(http.MethodGet, "/api/v1/articles/a1/audio",
		map[string]string{"id": "a1"})
	require.NoError(t, h.Audio(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "mpeg-bytes", rec.Body.String())
}

func TestDelete(t *testing.T) {
	h, m := newTestHandler(t)
	m.ingestion.EXPECT().
		DeleteArticle(gomock.Any(), "a1").
		Return(nil)

	c, rec := newHandlerContext(http.MethodDelete, "/api/v1/articles/a1",
		map[string]string{"id": "a1"})
	require.NoError(t, h.Delete(c))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Article deleted", resp.Message)
}
