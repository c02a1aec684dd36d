package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

// ErrNoRecords is returned when Persist is handed an empty batch. The
// caller is expected to have filtered upstream, so an empty batch is a
// contract violation, not a no-op.
var ErrNoRecords = errors.New("no data provided")

const (
	unknownDistributor = "Unknown"
	defaultCountry     = "US"
	dateLayout         = "2006-01-02"
)

// Reconciler maps episode records into normalized entities and upserts
// them into the relational store. The whole batch runs inside one
// transaction; individual record failures are caught and collected so a
// bad record never rolls back the rest.
type Reconciler struct {
	distributors DistributorStore
	shows        TVShowStore
	releaseDates ReleaseDateStore
	txManager    TransactionManager
	publisher    Publisher
	logger       *slog.Logger
	sanitizer    *bluemonday.Policy
}

func NewReconciler(
	distributors DistributorStore,
	shows TVShowStore,
	releaseDates ReleaseDateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		distributors: distributors,
		shows:        shows,
		releaseDates: releaseDates,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger.With("component", "reconciler"),
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

type persistedShow struct {
	show    *domain.TVShow
	created bool
}

// Persist upserts a non-empty batch of records. Per-record errors land in
// stats.Errors and never abort the transaction; only unexpected failures
// (connectivity loss, commit failure) surface as an error. Processed
// counts attempts, not successes.
func (r *Reconciler) Persist(ctx context.Context, records []domain.EpisodeRecord) (*domain.ReconcileStats, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	stats := &domain.ReconcileStats{}
	var persisted []persistedShow

	err := r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range records {
			rec := &records[i]
			stats.Processed++

			show, created, err := r.persistRecord(txCtx, rec)
			if err != nil {
				stats.Errors = append(stats.Errors, domain.RecordError{
					RecordID: rec.IdentityKey(),
					Message:  err.Error(),
				})
				r.logger.Warn("record reconciliation failed",
					"record", rec.IdentityKey(),
					"error", err,
				)
				continue
			}

			if created {
				stats.Created++
			} else {
				stats.Updated++
			}
			persisted = append(persisted, persistedShow{show: show, created: created})
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("reconcile batch: %w", err)
	}

	// Events go out only after the batch has committed.
	if r.publisher != nil {
		for _, p := range persisted {
			if err := r.publisher.Publish(ctx, p.show, p.created); err != nil {
				r.logger.Warn("publish failed",
					"external_id", p.show.ExternalID,
					"error", err,
				)
				continue
			}
			stats.Published++
		}
	}

	return stats, nil
}

func (r *Reconciler) persistRecord(ctx context.Context, rec *domain.EpisodeRecord) (*domain.TVShow, bool, error) {
	show := rec.ShowView()
	if show == nil || show.ID == 0 {
		return nil, false, errors.New("record carries no show")
	}

	distributorID, err := r.distributors.FindOrCreate(ctx, distributorName(show))
	if err != nil {
		return nil, false, fmt.Errorf("resolve distributor: %w", err)
	}

	existing, err := r.shows.GetByExternalID(ctx, show.ID)
	if err != nil {
		return nil, false, fmt.Errorf("look up show: %w", err)
	}

	created := existing == nil
	target := existing
	if created {
		// Distributor is assigned at creation only; updates refresh
		// attribute fields and keep the original association.
		target = &domain.TVShow{
			ExternalID:    show.ID,
			DistributorID: distributorID,
		}
	}

	r.applyShowFields(target, show)

	if err := target.Validate(); err != nil {
		return nil, false, err
	}

	if created {
		id, err := r.shows.Create(ctx, target)
		if err != nil {
			return nil, false, fmt.Errorf("create show: %w", err)
		}
		target.ID = id
	} else {
		if err := r.shows.Update(ctx, target); err != nil {
			return nil, false, fmt.Errorf("update show: %w", err)
		}
	}

	if date, ok := releaseDateOf(rec); ok {
		rd := &domain.ReleaseDate{
			TVShowID:    target.ID,
			Country:     countryOf(show),
			ReleaseDate: date,
		}
		if err := r.releaseDates.FindOrCreate(ctx, rd); err != nil {
			return nil, false, fmt.Errorf("release date: %w", err)
		}
	}

	return target, created, nil
}

func (r *Reconciler) applyShowFields(target *domain.TVShow, show *domain.ShowInfo) {
	target.Name = show.Name
	target.ShowType = optional(show.Type)
	target.Language = optional(show.Language)
	target.Status = optional(show.Status)
	target.OfficialSite = optional(show.OfficialSite)

	if show.Runtime != nil && *show.Runtime > 0 {
		runtime := *show.Runtime
		target.Runtime = &runtime
	} else {
		target.Runtime = nil
	}

	target.PremiereDate = nil
	if show.Premiered != "" {
		if premiere, err := time.Parse(dateLayout, show.Premiered); err == nil {
			target.PremiereDate = &premiere
		}
	}

	target.Summary = optional(r.stripHTML(show.Summary))

	target.ImageURL = nil
	if show.Image != nil {
		if url := show.Image.Original; url != "" {
			target.ImageURL = &url
		} else if url := show.Image.Medium; url != "" {
			target.ImageURL = &url
		}
	}

	target.Rating = nil
	if show.Rating != nil && show.Rating.Average != nil {
		rating := *show.Rating.Average
		target.Rating = &rating
	}
}

func (r *Reconciler) stripHTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(r.sanitizer.Sanitize(s)))
}

func distributorName(show *domain.ShowInfo) string {
	if show.Network != nil && show.Network.Name != "" {
		return show.Network.Name
	}
	if show.WebChannel != nil && show.WebChannel.Name != "" {
		return show.WebChannel.Name
	}
	return unknownDistributor
}

func countryOf(show *domain.ShowInfo) string {
	if show.Network != nil && show.Network.Country != nil && show.Network.Country.Code != "" {
		return show.Network.Country.Code
	}
	if show.WebChannel != nil && show.WebChannel.Country != nil && show.WebChannel.Country.Code != "" {
		return show.WebChannel.Country.Code
	}
	return defaultCountry
}

func releaseDateOf(rec *domain.EpisodeRecord) (time.Time, bool) {
	if rec.Airstamp != "" {
		if t, err := time.Parse(time.RFC3339, rec.Airstamp); err == nil {
			return t, true
		}
	}
	if rec.AirDate != "" {
		if t, err := time.Parse(dateLayout, rec.AirDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
