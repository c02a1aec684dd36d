package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

type TVShowStore struct {
	db *sqlx.DB
}

func NewTVShowStore(db *sqlx.DB) *TVShowStore {
	return &TVShowStore{db: db}
}

// GetByExternalID returns the show keyed by the upstream identifier, or nil
// when no such show exists.
func (s *TVShowStore) GetByExternalID(ctx context.Context, externalID int64) (*domain.TVShow, error) {
	query := `
		SELECT id, external_id, name, show_type, language, status, runtime,
		       premiere_date, summary, official_site, image_url, rating,
		       distributor_id, created_at, updated_at
		FROM tv_shows
		WHERE external_id = $1`

	var show domain.TVShow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &show, query, externalID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (s *TVShowStore) Create(ctx context.Context, show *domain.TVShow) (int64, error) {
	query := `
		INSERT INTO tv_shows (
			external_id, name, show_type, language, status, runtime,
			premiere_date, summary, official_site, image_url, rating,
			distributor_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query,
		show.ExternalID,
		show.Name,
		show.ShowType,
		show.Language,
		show.Status,
		show.Runtime,
		show.PremiereDate,
		show.Summary,
		show.OfficialSite,
		show.ImageURL,
		show.Rating,
		show.DistributorID,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update refreshes attribute fields only; the distributor association set
// at creation time is left alone.
func (s *TVShowStore) Update(ctx context.Context, show *domain.TVShow) error {
	query := `
		UPDATE tv_shows SET
			name = $1,
			show_type = $2,
			language = $3,
			status = $4,
			runtime = $5,
			premiere_date = $6,
			summary = $7,
			official_site = $8,
			image_url = $9,
			rating = $10,
			updated_at = now()
		WHERE id = $11`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		show.Name,
		show.ShowType,
		show.Language,
		show.Status,
		show.Runtime,
		show.PremiereDate,
		show.Summary,
		show.OfficialSite,
		show.ImageURL,
		show.Rating,
		show.ID,
	)
	return err
}

type tvShowRow struct {
	domain.TVShow
	DistributorName string `db:"distributor_name"`
}

// List serves the read API: filtered, paginated shows with nested
// distributor and release dates, ordered by name then id.
func (s *TVShowStore) List(ctx context.Context, filter domain.TVShowFilter) ([]domain.TVShowDetails, int, error) {
	var conditions []string
	var args []interface{}

	if filter.Distributor != "" {
		args = append(args, filter.Distributor)
		conditions = append(conditions, fmt.Sprintf("d.name = $%d", len(args)))
	}
	if filter.Country != "" {
		args = append(args, filter.Country)
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM release_dates rd WHERE rd.tv_show_id = s.id AND rd.country = $%d)", len(args)))
	}
	if filter.MinRating != nil {
		args = append(args, *filter.MinRating)
		conditions = append(conditions, fmt.Sprintf("s.rating >= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	ex := GetExecutor(ctx, s.db)

	var total int
	countQuery := "SELECT COUNT(*) FROM tv_shows s JOIN distributors d ON d.id = s.distributor_id" + where
	if err := sqlx.GetContext(ctx, ex, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count shows: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}

	args = append(args, perPage, (page-1)*perPage)
	listQuery := fmt.Sprintf(`
		SELECT s.id, s.external_id, s.name, s.show_type, s.language, s.status,
		       s.runtime, s.premiere_date, s.summary, s.official_site,
		       s.image_url, s.rating, s.distributor_id, s.created_at,
		       s.updated_at, d.name AS distributor_name
		FROM tv_shows s
		JOIN distributors d ON d.id = s.distributor_id%s
		ORDER BY s.name, s.id
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var rows []tvShowRow
	if err := sqlx.SelectContext(ctx, ex, &rows, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list shows: %w", err)
	}

	showIDs := make([]int64, len(rows))
	for i, row := range rows {
		showIDs[i] = row.ID
	}
	releaseDates, err := s.releaseDatesByShowIDs(ctx, showIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("load release dates: %w", err)
	}

	details := make([]domain.TVShowDetails, len(rows))
	for i, row := range rows {
		details[i] = domain.TVShowDetails{
			TVShow: row.TVShow,
			Distributor: domain.Distributor{
				ID:   row.DistributorID,
				Name: row.DistributorName,
			},
			ReleaseDates: releaseDates[row.ID],
		}
	}

	return details, total, nil
}

func (s *TVShowStore) releaseDatesByShowIDs(ctx context.Context, showIDs []int64) (map[int64][]domain.ReleaseDate, error) {
	result := make(map[int64][]domain.ReleaseDate)
	if len(showIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, tv_show_id, country, release_date
		FROM release_dates
		WHERE tv_show_id = ANY($1)
		ORDER BY country`

	var dates []domain.ReleaseDate
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &dates, query, pq.Array(showIDs)); err != nil {
		return nil, err
	}

	for _, rd := range dates {
		result[rd.TVShowID] = append(result[rd.TVShowID], rd)
	}
	return result, nil
}
