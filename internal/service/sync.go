package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bszymi/tv-shows-api/internal/config"
	"github.com/bszymi/tv-shows-api/internal/domain"
)

// SyncService drives one sync cycle: fetch, detect, reconcile. Fetch
// failures and unexpected reconciliation failures are cycle failures and
// propagate for the scheduler to retry; everything else (no change,
// nothing to persist, per-record errors) reports as a completed cycle.
type SyncService struct {
	source     Source
	detector   ChangeDetector
	reconciler ShowReconciler
	syncState  SyncStateStore
	logger     *slog.Logger
	config     config.SyncConfig
}

func NewSyncService(
	source Source,
	detector ChangeDetector,
	reconciler ShowReconciler,
	syncState SyncStateStore,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		source:     source,
		detector:   detector,
		reconciler: reconciler,
		syncState:  syncState,
		logger:     logger.With("source", source.ID()),
		config:     cfg,
	}
}

func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	startTime := time.Now()
	s.logger.Info("starting sync",
		"source_name", s.source.Name(),
		"force_full_refresh", s.config.ForceFullRefresh,
	)

	records, err := s.source.FetchSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}

	s.logger.Info("fetched schedule", "count", len(records))

	outcome := s.detector.Detect(records, s.config.ForceFullRefresh)

	stats := &domain.SyncStats{
		SourceID:      s.source.ID(),
		Fetched:       len(records),
		Outcome:       outcome.Kind,
		Changes:       outcome.Changes,
		Skipped:       outcome.Skipped,
		SnapshotSaved: outcome.SnapshotSaved,
	}

	if outcome.Kind == domain.OutcomeNoChange {
		stats.Duration = time.Since(startTime)
		s.logger.Info("dataset unchanged, nothing to persist", "skipped", outcome.Skipped)
		if err := s.updateSyncState(ctx, stats); err != nil {
			return stats, fmt.Errorf("update sync state: %w", err)
		}
		return stats, nil
	}

	if len(outcome.Records) == 0 {
		stats.Duration = time.Since(startTime)
		s.logger.Info("empty delta, nothing to persist", "outcome", string(outcome.Kind))
		if err := s.updateSyncState(ctx, stats); err != nil {
			return stats, fmt.Errorf("update sync state: %w", err)
		}
		return stats, nil
	}

	result, err := s.reconciler.Persist(ctx, outcome.Records)
	if err != nil {
		return stats, fmt.Errorf("persist records: %w", err)
	}

	stats.Created = result.Created
	stats.Updated = result.Updated
	stats.Published = result.Published
	stats.Errors = len(result.Errors)

	// A partially-successful batch is not a cycle failure; each record
	// error is logged and the cycle is reported as having run.
	for _, recErr := range result.Errors {
		s.logger.Warn("record failed",
			"record", recErr.RecordID,
			"error", recErr.Message,
		)
	}

	if err := s.updateSyncState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update sync state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("sync completed",
		"outcome", string(stats.Outcome),
		"created", stats.Created,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"snapshot_saved", stats.SnapshotSaved,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *SyncService) updateSyncState(ctx context.Context, stats *domain.SyncStats) error {
	state, err := s.syncState.Get(ctx, s.source.ID())
	if err != nil {
		return err
	}

	state.SourceID = s.source.ID()
	state.LastSyncedAt = time.Now()
	state.TotalSynced += int64(stats.Created + stats.Updated)

	return s.syncState.Update(ctx, state)
}
