package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sihs-edu/campus-backend/internal/model"
)

// ErrDuplicateDepartment signals a unique violation on name, code, or path.
var ErrDuplicateDepartment = errors.New("department with this name, code, or path already exists")

const departmentColumns = `id, name, description, code, head_of_dept, founded_year, total_faculty,
	 image_url, path, programs, facilities, research_areas, contact_email, contact_phone,
	 is_active, created_at, updated_at`

// DepartmentRepository handles department data access.
type DepartmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func scanDepartment(row interface{ Scan(...any) error }) (*model.Department, error) {
	d := &model.Department{}
	var programs []byte
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Code, &d.HeadOfDept,
		&d.FoundedYear, &d.TotalFaculty, &d.ImageURL, &d.Path, &programs,
		&d.Facilities, &d.ResearchAreas, &d.ContactEmail, &d.ContactPhone,
		&d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(programs) > 0 {
		if err := json.Unmarshal(programs, &d.Programs); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// List retrieves departments ordered by name. When activeOnly is set,
// soft-deleted departments are excluded.
func (r *DepartmentRepository) List(ctx context.Context, activeOnly bool) ([]model.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []model.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}
	return departments, rows.Err()
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (*model.Department, error) {
	return scanDepartment(r.pool.QueryRow(ctx,
		`SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id))
}

// GetByPath retrieves a department by its public URL slug.
func (r *DepartmentRepository) GetByPath(ctx context.Context, path string) (*model.Department, error) {
	return scanDepartment(r.pool.QueryRow(ctx,
		`SELECT `+departmentColumns+` FROM departments WHERE path = $1 AND is_active = TRUE`, path))
}

// Create inserts a new department.
func (r *DepartmentRepository) Create(ctx context.Context, d *model.Department) error {
	programs, err := json.Marshal(d.Programs)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO departments (name, description, code, head_of_dept, founded_year, total_faculty,
		  image_url, path, programs, facilities, research_areas, contact_email, contact_phone, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING id, created_at, updated_at`,
		d.Name, d.Description, d.Code, d.HeadOfDept, d.FoundedYear, d.TotalFaculty,
		d.ImageURL, d.Path, programs, d.Facilities, d.ResearchAreas,
		d.ContactEmail, d.ContactPhone, d.IsActive,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateDepartment
		}
		return err
	}
	return nil
}

// Update modifies an existing department.
func (r *DepartmentRepository) Update(ctx context.Context, d *model.Department) error {
	programs, err := json.Marshal(d.Programs)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE departments SET name = $1, description = $2, code = $3, head_of_dept = $4,
		  founded_year = $5, total_faculty = $6, image_url = $7, path = $8, programs = $9,
		  facilities = $10, research_areas = $11, contact_email = $12, contact_phone = $13,
		  is_active = $14, updated_at = NOW()
		 WHERE id = $15`,
		d.Name, d.Description, d.Code, d.HeadOfDept, d.FoundedYear, d.TotalFaculty,
		d.ImageURL, d.Path, programs, d.Facilities, d.ResearchAreas,
		d.ContactEmail, d.ContactPhone, d.IsActive, d.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateDepartment
		}
	}
	return err
}

// SoftDelete clears the active flag.
func (r *DepartmentRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE departments SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
