package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

type Source interface {
	ID() string
	Name() string
	FetchSchedule(ctx context.Context) ([]domain.EpisodeRecord, error)
}

type ChangeDetector interface {
	Detect(newData []domain.EpisodeRecord, forceFullRefresh bool) domain.Outcome
}

type ShowReconciler interface {
	Persist(ctx context.Context, records []domain.EpisodeRecord) (*domain.ReconcileStats, error)
}

type DistributorStore interface {
	FindOrCreate(ctx context.Context, name string) (int64, error)
}

type TVShowStore interface {
	GetByExternalID(ctx context.Context, externalID int64) (*domain.TVShow, error)
	Create(ctx context.Context, show *domain.TVShow) (int64, error)
	Update(ctx context.Context, show *domain.TVShow) error
}

type ReleaseDateStore interface {
	FindOrCreate(ctx context.Context, rd *domain.ReleaseDate) error
}

type SyncStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SyncState, error)
	Update(ctx context.Context, state *domain.SyncState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, show *domain.TVShow, isNew bool) error
	Close() error
}
