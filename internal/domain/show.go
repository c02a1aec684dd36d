package domain

import (
	"errors"
	"fmt"
	"time"
)

// Distributor is the network or channel owning shows. Deleting a
// distributor cascades to its shows at the schema level.
type Distributor struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// TVShow is the persisted show entity. ExternalID is the stable reference
// into the upstream feed and the upsert key.
type TVShow struct {
	ID            int64      `db:"id" json:"id"`
	ExternalID    int64      `db:"external_id" json:"external_id"`
	Name          string     `db:"name" json:"name"`
	ShowType      *string    `db:"show_type" json:"show_type,omitempty"`
	Language      *string    `db:"language" json:"language,omitempty"`
	Status        *string    `db:"status" json:"status,omitempty"`
	Runtime       *int       `db:"runtime" json:"runtime,omitempty"`
	PremiereDate  *time.Time `db:"premiere_date" json:"premiere_date,omitempty"`
	Summary       *string    `db:"summary" json:"summary,omitempty"`
	OfficialSite  *string    `db:"official_site" json:"official_site,omitempty"`
	ImageURL      *string    `db:"image_url" json:"image_url,omitempty"`
	Rating        *float64   `db:"rating" json:"rating,omitempty"`
	DistributorID int64      `db:"distributor_id" json:"-"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

var ErrShowNameRequired = errors.New("tv show name is required")

func (s *TVShow) Validate() error {
	if s.Name == "" {
		return ErrShowNameRequired
	}
	if s.Rating != nil && (*s.Rating < 0 || *s.Rating > 10) {
		return fmt.Errorf("rating %.1f out of range [0,10]", *s.Rating)
	}
	if s.Runtime != nil && *s.Runtime <= 0 {
		return fmt.Errorf("runtime %d must be positive", *s.Runtime)
	}
	return nil
}

// ReleaseDate belongs to one TV show; (tv_show_id, country) is unique.
type ReleaseDate struct {
	ID          int64     `db:"id" json:"id"`
	TVShowID    int64     `db:"tv_show_id" json:"-"`
	Country     string    `db:"country" json:"country"`
	ReleaseDate time.Time `db:"release_date" json:"release_date"`
}

// TVShowDetails is a show with its distributor and release dates resolved,
// as served by the read API.
type TVShowDetails struct {
	TVShow
	Distributor  Distributor   `json:"distributor"`
	ReleaseDates []ReleaseDate `json:"release_dates"`
}

// TVShowFilter narrows and pages the read API listing.
type TVShowFilter struct {
	Distributor string
	Country     string
	MinRating   *float64
	Page        int
	PerPage     int
}
