package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

type stubLister struct {
	filter domain.TVShowFilter
	data   []domain.TVShowDetails
	total  int
	err    error
}

func (s *stubLister) List(_ context.Context, filter domain.TVShowFilter) ([]domain.TVShowDetails, int, error) {
	s.filter = filter
	return s.data, s.total, s.err
}

func newTestRouter(lister *stubLister) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRouter(lister, nil, logger)
}

func TestListTVShows_Defaults(t *testing.T) {
	lister := &stubLister{
		data: []domain.TVShowDetails{
			{
				TVShow:      domain.TVShow{ID: 1, ExternalID: 10, Name: "Night Watch"},
				Distributor: domain.Distributor{ID: 7, Name: "HBO"},
			},
		},
		total: 1,
	}

	rec := httptest.NewRecorder()
	newTestRouter(lister).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tv_shows", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, lister.filter.Page)
	assert.Equal(t, 20, lister.filter.PerPage)
	assert.Empty(t, lister.filter.Distributor)
	assert.Nil(t, lister.filter.MinRating)

	var resp struct {
		Data    []domain.TVShowDetails `json:"data"`
		Page    int                    `json:"page"`
		PerPage int                    `json:"per_page"`
		Total   int                    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Night Watch", resp.Data[0].Name)
	assert.Equal(t, "HBO", resp.Data[0].Distributor.Name)
}

func TestListTVShows_Filters(t *testing.T) {
	lister := &stubLister{}

	req := httptest.NewRequest(http.MethodGet,
		"/tv_shows?distributor=HBO&country=US&min_rating=7.5&page=3&per_page=50", nil)
	rec := httptest.NewRecorder()
	newTestRouter(lister).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HBO", lister.filter.Distributor)
	assert.Equal(t, "US", lister.filter.Country)
	require.NotNil(t, lister.filter.MinRating)
	assert.Equal(t, 7.5, *lister.filter.MinRating)
	assert.Equal(t, 3, lister.filter.Page)
	assert.Equal(t, 50, lister.filter.PerPage)
}

func TestListTVShows_InvalidMinRating(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&stubLister{}).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/tv_shows?min_rating=best", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "min_rating")
}

func TestListTVShows_PerPageClamped(t *testing.T) {
	lister := &stubLister{}

	rec := httptest.NewRecorder()
	newTestRouter(lister).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/tv_shows?per_page=5000", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, maxPerPage, lister.filter.PerPage)
}

func TestListTVShows_StoreError(t *testing.T) {
	lister := &stubLister{err: errors.New("db down")}

	rec := httptest.NewRecorder()
	newTestRouter(lister).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tv_shows", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListTVShows_EmptyResultIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&stubLister{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tv_shows", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&stubLister{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
