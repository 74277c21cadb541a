package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sihs-edu/campus-backend/internal/model"
)

const sliderColumns = `id, title, description, image_url, button_text, button_link,
	 sort_order, auto_play, auto_play_interval, is_active, created_at, updated_at`

// SliderRepository handles homepage slider data access.
type SliderRepository struct {
	pool *pgxpool.Pool
}

// NewSliderRepository creates a new SliderRepository.
func NewSliderRepository(pool *pgxpool.Pool) *SliderRepository {
	return &SliderRepository{pool: pool}
}

func scanSlider(row interface{ Scan(...any) error }) (*model.Slider, error) {
	s := &model.Slider{}
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.ImageURL, &s.ButtonText,
		&s.ButtonLink, &s.SortOrder, &s.AutoPlay, &s.AutoPlayInterval,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves sliders ordered for display. When activeOnly is set only
// active sliders are returned.
func (r *SliderRepository) List(ctx context.Context, activeOnly bool) ([]model.Slider, error) {
	query := `SELECT ` + sliderColumns + ` FROM sliders`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sliders []model.Slider
	for rows.Next() {
		s, err := scanSlider(rows)
		if err != nil {
			return nil, err
		}
		sliders = append(sliders, *s)
	}
	return sliders, rows.Err()
}

// GetByID retrieves a slider by ID.
func (r *SliderRepository) GetByID(ctx context.Context, id int) (*model.Slider, error) {
	return scanSlider(r.pool.QueryRow(ctx,
		`SELECT `+sliderColumns+` FROM sliders WHERE id = $1`, id))
}

// Create inserts a new slider.
func (r *SliderRepository) Create(ctx context.Context, s *model.Slider) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sliders (title, description, image_url, button_text, button_link,
		  sort_order, auto_play, auto_play_interval, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		s.Title, s.Description, s.ImageURL, s.ButtonText, s.ButtonLink,
		s.SortOrder, s.AutoPlay, s.AutoPlayInterval, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies an existing slider.
func (r *SliderRepository) Update(ctx context.Context, s *model.Slider) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE sliders SET title = $1, description = $2, image_url = $3, button_text = $4,
		  button_link = $5, sort_order = $6, auto_play = $7, auto_play_interval = $8,
		  is_active = $9, updated_at = NOW()
		 WHERE id = $10`,
		s.Title, s.Description, s.ImageURL, s.ButtonText, s.ButtonLink,
		s.SortOrder, s.AutoPlay, s.AutoPlayInterval, s.IsActive, s.ID)
	return err
}

// SoftDelete clears the active flag.
func (r *SliderRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE sliders SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
