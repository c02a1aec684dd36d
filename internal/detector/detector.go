package detector

import (
	"log/slog"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

// SnapshotStore is the blob storage the detector diffs against. The
// contract is deliberately forgiving: Read returns nil for a missing or
// corrupt snapshot and Write reports failure as false, so snapshot
// problems degrade to full-dataset mode instead of failing the cycle.
type SnapshotStore interface {
	Exists() bool
	Read() []domain.EpisodeRecord
	Write(records []domain.EpisodeRecord) bool
	Delete() bool
}

// Detector decides, given freshly fetched data and the stored snapshot,
// exactly which records are new or changed.
type Detector struct {
	snapshots SnapshotStore
	logger    *slog.Logger
}

func New(snapshots SnapshotStore, logger *slog.Logger) *Detector {
	return &Detector{
		snapshots: snapshots,
		logger:    logger.With("component", "detector"),
	}
}

// Detect compares newData against the stored snapshot.
//
// With forceFullRefresh, or when no usable snapshot exists, the outcome is
// FullDataset carrying all of newData. When the dataset fingerprints match,
// the outcome is NoChange and the snapshot is left untouched. Otherwise the
// outcome is a Delta holding records whose identity key is new or whose
// content fingerprint differs; records present only in the snapshot are
// never reported — the detector is additive and update-only, mirroring the
// forward-only schedule upstream.
//
// After a FullDataset or Delta the snapshot is overwritten with the
// complete newData. Whether that write succeeded is reported on the
// outcome; it never blocks returning the computed delta.
func (d *Detector) Detect(newData []domain.EpisodeRecord, forceFullRefresh bool) domain.Outcome {
	if forceFullRefresh {
		d.logger.Info("full refresh forced")
		return d.fullDataset(newData)
	}
	if !d.snapshots.Exists() {
		d.logger.Info("no snapshot, treating dataset as full")
		return d.fullDataset(newData)
	}

	previous := d.snapshots.Read()
	if previous == nil {
		d.logger.Warn("snapshot unusable, treating dataset as full")
		return d.fullDataset(newData)
	}

	if domain.DatasetFingerprint(previous) == domain.DatasetFingerprint(newData) {
		d.logger.Debug("dataset unchanged", "records", len(newData))
		return domain.Outcome{
			Kind:     domain.OutcomeNoChange,
			Examined: len(newData),
			Skipped:  len(newData),
		}
	}

	previousByKey := make(map[string]*domain.EpisodeRecord, len(previous))
	for i := range previous {
		previousByKey[previous[i].IdentityKey()] = &previous[i]
	}

	var changed []domain.EpisodeRecord
	for i := range newData {
		rec := &newData[i]
		old, ok := previousByKey[rec.IdentityKey()]
		if !ok || old.ContentFingerprint() != rec.ContentFingerprint() {
			changed = append(changed, *rec)
		}
	}

	saved := d.snapshots.Write(newData)

	d.logger.Info("delta computed",
		"changes", len(changed),
		"examined", len(newData),
		"snapshot_saved", saved,
	)

	return domain.Outcome{
		Kind:          domain.OutcomeDelta,
		Records:       changed,
		Changes:       len(changed),
		Examined:      len(newData),
		Skipped:       len(newData) - len(changed),
		SnapshotSaved: saved,
	}
}

func (d *Detector) fullDataset(newData []domain.EpisodeRecord) domain.Outcome {
	saved := d.snapshots.Write(newData)

	return domain.Outcome{
		Kind:          domain.OutcomeFullDataset,
		Records:       newData,
		Changes:       len(newData),
		Examined:      len(newData),
		SnapshotSaved: saved,
	}
}
