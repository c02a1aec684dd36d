package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

// ShowLister is the read side of the TV show store.
type ShowLister interface {
	List(ctx context.Context, filter domain.TVShowFilter) ([]domain.TVShowDetails, int, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewRouter configures the read API routes.
func NewRouter(shows ShowLister, pinger Pinger, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestLogger(logger))
	r.Use(Recovery(logger))
	r.Use(CORS)

	r.Get("/tv_shows", listTVShows(shows))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if pinger != nil {
			if err := pinger.PingContext(req.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
