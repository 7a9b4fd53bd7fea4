package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/AKHILESH2208/GramSeva-API/internal/model"
)

// ErrMissingText marks a stored complaint whose text column is NULL. The
// lookup fails rather than silently dropping the record, so upstream data
// corruption stays visible.
var ErrMissingText = errors.New("complaint record has no text")

type ComplaintRepository struct {
	db *sql.DB
}

func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// FindByLocation returns every complaint stored for the normalized location,
// matched exactly, in insertion order.
func (r *ComplaintRepository) FindByLocation(location string) ([]model.Complaint, error) {
	rows, err := r.db.Query(`
		SELECT id, location, text, category, reported_at
		FROM complaint
		WHERE location = $1
		ORDER BY id ASC
	`, location)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []model.Complaint
	for rows.Next() {
		var c model.Complaint
		var text, category sql.NullString
		err := rows.Scan(&c.ID, &c.Location, &text, &category, &c.ReportedAt)
		if err != nil {
			return nil, err
		}

		if !text.Valid {
			return nil, fmt.Errorf("complaint %d: %w", c.ID, ErrMissingText)
		}
		c.Text = text.String
		c.Category = category.String

		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

func (r *ComplaintRepository) Save(c *model.Complaint) error {
	var category sql.NullString
	if c.Category != "" {
		category = sql.NullString{String: c.Category, Valid: true}
	}

	return r.db.QueryRow(`
		INSERT INTO complaint(location, text, category)
		VALUES($1, $2, $3)
		RETURNING id, reported_at
	`, c.Location, c.Text, category).Scan(&c.ID, &c.ReportedAt)
}

// List pages through stored complaints, newest first. An empty location
// returns all locations.
func (r *ComplaintRepository) List(location string, limit, offset int) ([]model.Complaint, error) {
	rows, err := r.db.Query(`
		SELECT id, location, COALESCE(text, ''), COALESCE(category, ''), reported_at
		FROM complaint
		WHERE $1 = '' OR location = $1
		ORDER BY reported_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, location, limit, offset)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []model.Complaint
	for rows.Next() {
		var c model.Complaint
		err := rows.Scan(&c.ID, &c.Location, &c.Text, &c.Category, &c.ReportedAt)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return complaints, nil
}

func (r *ComplaintRepository) Total(location string) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM complaint
		WHERE $1 = '' OR location = $1
	`, location).Scan(&total)
	return total, err
}

// EnsureSchema creates the complaint table when it does not exist yet. The
// text column stays nullable on purpose: a NULL body is the corruption case
// FindByLocation detects.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS complaint (
			id BIGSERIAL PRIMARY KEY,
			location TEXT NOT NULL,
			text TEXT,
			category TEXT,
			reported_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS complaint_location_idx ON complaint(location);
	`)
	return err
}
