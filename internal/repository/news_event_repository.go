package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sihs-edu/campus-backend/internal/model"
)

const newsEventColumns = `id, title, description, date, image_url, category, location,
	 start_time, end_time, event_type, facebook_embed_url, is_active, created_at, updated_at`

// NewsEventRepository handles news/event data access.
type NewsEventRepository struct {
	pool *pgxpool.Pool
}

// NewNewsEventRepository creates a new NewsEventRepository.
func NewNewsEventRepository(pool *pgxpool.Pool) *NewsEventRepository {
	return &NewsEventRepository{pool: pool}
}

func scanNewsEvent(row interface{ Scan(...any) error }) (*model.NewsEvent, error) {
	n := &model.NewsEvent{}
	err := row.Scan(&n.ID, &n.Title, &n.Description, &n.Date, &n.ImageURL, &n.Category,
		&n.Location, &n.StartTime, &n.EndTime, &n.EventType, &n.FacebookEmbedURL,
		&n.IsActive, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// List retrieves news/event posts newest first, optionally filtered by
// category and active state.
func (r *NewsEventRepository) List(ctx context.Context, category string, activeOnly bool) ([]model.NewsEvent, error) {
	query := `SELECT ` + newsEventColumns + ` FROM news_events`
	var args []any
	where := ""
	if category != "" {
		where = ` WHERE category = $1`
		args = append(args, category)
	}
	if activeOnly {
		if where == "" {
			where = ` WHERE is_active = TRUE`
		} else {
			where += ` AND is_active = TRUE`
		}
	}
	query += where + ` ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.NewsEvent
	for rows.Next() {
		n, err := scanNewsEvent(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *n)
	}
	return posts, rows.Err()
}

// GetByID retrieves a post by ID.
func (r *NewsEventRepository) GetByID(ctx context.Context, id int) (*model.NewsEvent, error) {
	return scanNewsEvent(r.pool.QueryRow(ctx,
		`SELECT `+newsEventColumns+` FROM news_events WHERE id = $1`, id))
}

// Create inserts a new post.
func (r *NewsEventRepository) Create(ctx context.Context, n *model.NewsEvent) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO news_events (title, description, date, image_url, category, location,
		  start_time, end_time, event_type, facebook_embed_url, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		n.Title, n.Description, n.Date, n.ImageURL, n.Category, n.Location,
		n.StartTime, n.EndTime, n.EventType, n.FacebookEmbedURL, n.IsActive,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

// Update modifies an existing post.
func (r *NewsEventRepository) Update(ctx context.Context, n *model.NewsEvent) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE news_events SET title = $1, description = $2, date = $3, image_url = $4,
		  category = $5, location = $6, start_time = $7, end_time = $8, event_type = $9,
		  facebook_embed_url = $10, is_active = $11, updated_at = NOW()
		 WHERE id = $12`,
		n.Title, n.Description, n.Date, n.ImageURL, n.Category, n.Location,
		n.StartTime, n.EndTime, n.EventType, n.FacebookEmbedURL, n.IsActive, n.ID)
	return err
}

// SoftDelete clears the active flag.
func (r *NewsEventRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE news_events SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
