package snapshot

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

// FileStore keeps the last successfully synced dataset as a single JSON
// blob on local disk. It is advisory storage for change detection, never
// the system of record, so every operation degrades instead of failing:
// Read reports missing and corrupt content the same way (nil) and Write
// reports failure as false.
type FileStore struct {
	path   string
	logger *slog.Logger
}

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.With("snapshot", path),
	}
}

func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read returns the stored dataset, or nil when the snapshot is missing or
// unparsable.
func (s *FileStore) Read() []domain.EpisodeRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("snapshot unreadable", "error", err)
		}
		return nil
	}

	var records []domain.EpisodeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("snapshot corrupted", "error", err)
		return nil
	}
	return records
}

// Write replaces the snapshot wholesale. The new version is written to a
// temp file and renamed into place so a crash mid-write never leaves a
// partial snapshot behind.
func (s *FileStore) Write(records []domain.EpisodeRecord) bool {
	if records == nil {
		records = []domain.EpisodeRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		s.logger.Warn("snapshot marshal failed", "error", err)
		return false
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Warn("snapshot directory unavailable", "error", err)
			return false
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Warn("snapshot write failed", "error", err)
		return false
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Warn("snapshot rename failed", "error", err)
		_ = os.Remove(tmp)
		return false
	}
	return true
}

func (s *FileStore) Delete() bool {
	err := os.Remove(s.path)
	return err == nil || os.IsNotExist(err)
}
