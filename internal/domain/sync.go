package domain

import "time"

// OutcomeKind classifies what the change detector decided for one cycle.
type OutcomeKind string

const (
	OutcomeNoChange    OutcomeKind = "no_change"
	OutcomeDelta       OutcomeKind = "delta"
	OutcomeFullDataset OutcomeKind = "full_dataset"
)

// Outcome is the change detector's verdict: the records requiring
// persistence plus bookkeeping counts. SnapshotSaved reports whether the
// snapshot overwrite succeeded; it is independent of the computed delta.
type Outcome struct {
	Kind          OutcomeKind
	Records       []EpisodeRecord
	Changes       int
	Examined      int
	Skipped       int
	SnapshotSaved bool
}

// RecordError captures a single record's reconciliation failure.
type RecordError struct {
	RecordID string `json:"record_id"`
	Message  string `json:"message"`
}

// ReconcileStats aggregates one persistence batch. Processed counts
// attempts, not successes.
type ReconcileStats struct {
	Processed int
	Created   int
	Updated   int
	Published int
	Errors    []RecordError
}

func (s *ReconcileStats) Success() bool {
	return len(s.Errors) == 0
}

// SyncStats holds statistics about one sync cycle.
type SyncStats struct {
	SourceID      string
	Fetched       int
	Outcome       OutcomeKind
	Changes       int
	Skipped       int
	Created       int
	Updated       int
	Errors        int
	Published     int
	SnapshotSaved bool
	Duration      time.Duration
}

type SyncState struct {
	ID           int64     `db:"id"`
	SourceID     string    `db:"source_id"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	TotalSynced  int64     `db:"total_synced"`
}
