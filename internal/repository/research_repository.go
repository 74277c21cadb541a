package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sihs-edu/campus-backend/internal/model"
)

const researchColumns = `id, title, description, authors, status, file_url, published_date,
	 views, downloads, created_at, updated_at`

// ResearchRepository handles research entry data access.
type ResearchRepository struct {
	pool *pgxpool.Pool
}

// NewResearchRepository creates a new ResearchRepository.
func NewResearchRepository(pool *pgxpool.Pool) *ResearchRepository {
	return &ResearchRepository{pool: pool}
}

func scanResearch(row interface{ Scan(...any) error }) (*model.Research, error) {
	e := &model.Research{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Authors, &e.Status, &e.FileURL,
		&e.PublishedDate, &e.Views, &e.Downloads, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List retrieves research entries, optionally filtered by status, newest
// publication first.
func (r *ResearchRepository) List(ctx context.Context, status string) ([]model.Research, error) {
	query := `SELECT ` + researchColumns + ` FROM research`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY published_date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Research
	for rows.Next() {
		e, err := scanResearch(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// GetByID retrieves a research entry by ID.
func (r *ResearchRepository) GetByID(ctx context.Context, id int) (*model.Research, error) {
	return scanResearch(r.pool.QueryRow(ctx,
		`SELECT `+researchColumns+` FROM research WHERE id = $1`, id))
}

// Create inserts a new research entry.
func (r *ResearchRepository) Create(ctx context.Context, e *model.Research) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO research (title, description, authors, status, file_url, published_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		e.Title, e.Description, e.Authors, e.Status, e.FileURL, e.PublishedDate,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update modifies an existing research entry.
func (r *ResearchRepository) Update(ctx context.Context, e *model.Research) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE research SET title = $1, description = $2, authors = $3, status = $4,
		  file_url = $5, published_date = $6, updated_at = NOW()
		 WHERE id = $7`,
		e.Title, e.Description, e.Authors, e.Status, e.FileURL, e.PublishedDate, e.ID)
	return err
}

// IncrementViews bumps the view counter by one.
func (r *ResearchRepository) IncrementViews(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE research SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// IncrementDownloads bumps the download counter by one.
func (r *ResearchRepository) IncrementDownloads(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE research SET downloads = downloads + 1 WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a research entry. Research has no soft-delete flag in the
// schema; entries move through the Draft/Published/Under Review statuses.
func (r *ResearchRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM research WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
