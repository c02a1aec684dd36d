package tvmaze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

const (
	SourceID   = "tvmaze"
	SourceName = "TVMaze Schedule"
)

// Config holds TVMaze source configuration.
type Config struct {
	URL     string
	Timeout time.Duration
}

// Source fetches the full schedule dataset from the TVMaze feed.
type Source struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

// New creates a new TVMaze source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:    cfg.URL,
		logger: logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchSchedule performs a single GET against the feed endpoint and returns
// the deserialized dataset. Transport failures surface with their native
// message; upstream format problems surface with a fixed message per case.
func (s *Source) FetchSchedule(ctx context.Context) ([]domain.EpisodeRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tv-shows-api/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var records []domain.EpisodeRecord
	if err := json.Unmarshal(body, &records); err != nil {
		if json.Valid(body) {
			return nil, errors.New("Unexpected response format")
		}
		return nil, errors.New("Invalid JSON response")
	}

	s.logger.Debug("fetched schedule", "records", len(records))

	return records, nil
}
