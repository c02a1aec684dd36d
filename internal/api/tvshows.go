package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type listResponse struct {
	Data    []domain.TVShowDetails `json:"data"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
	Total   int                    `json:"total"`
}

func listTVShows(shows ShowLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := domain.TVShowFilter{
			Distributor: q.Get("distributor"),
			Country:     q.Get("country"),
			Page:        1,
			PerPage:     defaultPerPage,
		}

		if raw := q.Get("min_rating"); raw != "" {
			rating, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid min_rating parameter")
				return
			}
			filter.MinRating = &rating
		}

		if raw := q.Get("page"); raw != "" {
			if page, err := strconv.Atoi(raw); err == nil && page > 0 {
				filter.Page = page
			}
		}
		if raw := q.Get("per_page"); raw != "" {
			if perPage, err := strconv.Atoi(raw); err == nil && perPage > 0 {
				filter.PerPage = perPage
			}
		}
		if filter.PerPage > maxPerPage {
			filter.PerPage = maxPerPage
		}

		data, total, err := shows.List(r.Context(), filter)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list tv shows")
			return
		}
		if data == nil {
			data = []domain.TVShowDetails{}
		}

		writeJSON(w, http.StatusOK, listResponse{
			Data:    data,
			Page:    filter.Page,
			PerPage: filter.PerPage,
			Total:   total,
		})
	}
}

// writeJSON encodes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a {"error": message} body with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
