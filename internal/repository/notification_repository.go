package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sihs-edu/campus-backend/internal/model"
)

const notificationColumns = `id, title, message, date, category, priority, department,
	 target_audience, image_url, expires_at, is_active, created_at, updated_at`

// NotificationRepository handles notification data access.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func scanNotification(row interface{ Scan(...any) error }) (*model.Notification, error) {
	n := &model.Notification{}
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Date, &n.Category, &n.Priority,
		&n.Department, &n.TargetAudience, &n.ImageURL, &n.ExpiresAt,
		&n.IsActive, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ListAll retrieves every notification for the admin view, newest first.
func (r *NotificationRepository) ListAll(ctx context.Context) ([]model.Notification, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+notificationColumns+` FROM notifications ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

// ListActive retrieves active, unexpired notifications for the given audience
// ("" means no audience filter), highest priority first.
func (r *NotificationRepository) ListActive(ctx context.Context, audience string) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		 WHERE is_active = TRUE AND (expires_at IS NULL OR expires_at > NOW())`
	var args []any
	if audience != "" {
		query += ` AND (target_audience = 'All' OR target_audience = $1)`
		args = append(args, audience)
	}
	query += ` ORDER BY
		 CASE priority WHEN 'Critical' THEN 0 WHEN 'High' THEN 1 WHEN 'Normal' THEN 2 ELSE 3 END,
		 date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func collectNotifications(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]model.Notification, error) {
	var notices []model.Notification
	for rows.Next() {
		n := model.Notification{}
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Date, &n.Category, &n.Priority,
			&n.Department, &n.TargetAudience, &n.ImageURL, &n.ExpiresAt,
			&n.IsActive, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

// GetByID retrieves a notification by ID.
func (r *NotificationRepository) GetByID(ctx context.Context, id int) (*model.Notification, error) {
	return scanNotification(r.pool.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
}

// Create inserts a new notification.
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO notifications (title, message, date, category, priority, department,
		  target_audience, image_url, expires_at, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		n.Title, n.Message, n.Date, n.Category, n.Priority, n.Department,
		n.TargetAudience, n.ImageURL, n.ExpiresAt, n.IsActive,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

// Update modifies an existing notification.
func (r *NotificationRepository) Update(ctx context.Context, n *model.Notification) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications SET title = $1, message = $2, date = $3, category = $4,
		  priority = $5, department = $6, target_audience = $7, image_url = $8,
		  expires_at = $9, is_active = $10, updated_at = NOW()
		 WHERE id = $11`,
		n.Title, n.Message, n.Date, n.Category, n.Priority, n.Department,
		n.TargetAudience, n.ImageURL, n.ExpiresAt, n.IsActive, n.ID)
	return err
}

// SoftDelete clears the active flag.
func (r *NotificationRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
