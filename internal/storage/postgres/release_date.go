package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

type ReleaseDateStore struct {
	db *sqlx.DB
}

func NewReleaseDateStore(db *sqlx.DB) *ReleaseDateStore {
	return &ReleaseDateStore{db: db}
}

// FindOrCreate inserts the release date unless one already exists for the
// (show, country) pair; an existing row is left untouched and its id is
// loaded back onto rd.
func (s *ReleaseDateStore) FindOrCreate(ctx context.Context, rd *domain.ReleaseDate) error {
	ex := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO release_dates (tv_show_id, country, release_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (tv_show_id, country) DO NOTHING
		RETURNING id`

	err := sqlx.GetContext(ctx, ex, &rd.ID, query, rd.TVShowID, rd.Country, rd.ReleaseDate)
	if err == sql.ErrNoRows {
		err = sqlx.GetContext(ctx, ex, &rd.ID,
			"SELECT id FROM release_dates WHERE tv_show_id = $1 AND country = $2",
			rd.TVShowID, rd.Country,
		)
	}
	return err
}

func (s *ReleaseDateStore) GetByShowID(ctx context.Context, showID int64) ([]domain.ReleaseDate, error) {
	query := `
		SELECT id, tv_show_id, country, release_date
		FROM release_dates
		WHERE tv_show_id = $1
		ORDER BY country`

	var dates []domain.ReleaseDate
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &dates, query, showID)
	return dates, err
}
