package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

type DistributorStore struct {
	db *sqlx.DB
}

func NewDistributorStore(db *sqlx.DB) *DistributorStore {
	return &DistributorStore{db: db}
}

// FindOrCreate resolves a distributor id by unique name, creating the row
// when absent. The no-op DO UPDATE makes RETURNING yield the id for the
// existing row as well.
func (s *DistributorStore) FindOrCreate(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO distributors (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query, name)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *DistributorStore) GetByName(ctx context.Context, name string) (*domain.Distributor, error) {
	var dist domain.Distributor
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &dist,
		"SELECT id, name FROM distributors WHERE name = $1", name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dist, nil
}

// Delete removes a distributor; its shows go with it via the schema
// cascade.
func (s *DistributorStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM distributors WHERE id = $1", id)
	return err
}
