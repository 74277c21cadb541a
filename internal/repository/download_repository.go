package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sihs-edu/campus-backend/internal/model"
)

const downloadColumns = `id, title, description, file_url, file_name, file_size, category,
	 department, file_type, download_count, uploaded_by, last_downloaded, is_active,
	 created_at, updated_at`

// DownloadRepository handles download entry data access.
type DownloadRepository struct {
	pool *pgxpool.Pool
}

// NewDownloadRepository creates a new DownloadRepository.
func NewDownloadRepository(pool *pgxpool.Pool) *DownloadRepository {
	return &DownloadRepository{pool: pool}
}

func scanDownload(row interface{ Scan(...any) error }) (*model.Download, error) {
	d := &model.Download{}
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.FileURL, &d.FileName, &d.FileSize,
		&d.Category, &d.Department, &d.FileType, &d.DownloadCount, &d.UploadedBy,
		&d.LastDownloaded, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// List retrieves download entries with optional department/category filters.
// Department filtering includes the general ("GEN") pool.
func (r *DownloadRepository) List(ctx context.Context, department, category string, activeOnly bool) ([]model.Download, error) {
	query := `SELECT ` + downloadColumns + ` FROM downloads WHERE 1=1`
	var args []any
	argIdx := 1

	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	if department != "" {
		query += ` AND (department = 'GEN' OR department = $1)`
		args = append(args, department)
		argIdx++
	}
	if category != "" {
		query += ` AND category = $` + strconv.Itoa(argIdx)
		args = append(args, category)
	}
	query += ` ORDER BY category, title`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var downloads []model.Download
	for rows.Next() {
		d, err := scanDownload(rows)
		if err != nil {
			return nil, err
		}
		downloads = append(downloads, *d)
	}
	return downloads, rows.Err()
}

// GetByID retrieves a download entry by ID.
func (r *DownloadRepository) GetByID(ctx context.Context, id int) (*model.Download, error) {
	return scanDownload(r.pool.QueryRow(ctx,
		`SELECT `+downloadColumns+` FROM downloads WHERE id = $1`, id))
}

// Create inserts a new download entry.
func (r *DownloadRepository) Create(ctx context.Context, d *model.Download) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO downloads (title, description, file_url, file_name, file_size, category,
		  department, file_type, uploaded_by, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		d.Title, d.Description, d.FileURL, d.FileName, d.FileSize, d.Category,
		d.Department, d.FileType, d.UploadedBy, d.IsActive,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

// Update modifies an existing download entry.
func (r *DownloadRepository) Update(ctx context.Context, d *model.Download) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE downloads SET title = $1, description = $2, file_url = $3, file_name = $4,
		  file_size = $5, category = $6, department = $7, file_type = $8, uploaded_by = $9,
		  is_active = $10, updated_at = NOW()
		 WHERE id = $11`,
		d.Title, d.Description, d.FileURL, d.FileName, d.FileSize, d.Category,
		d.Department, d.FileType, d.UploadedBy, d.IsActive, d.ID)
	return err
}

// Track records one download: a single atomic counter increment plus the
// last-downloaded timestamp. Returns false when no such active entry exists.
func (r *DownloadRepository) Track(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE downloads SET download_count = download_count + 1, last_downloaded = NOW()
		 WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SoftDelete clears the active flag.
func (r *DownloadRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE downloads SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
