package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sihs-edu/campus-backend/internal/model"
)

// ErrDuplicateFacultyEmail signals a unique violation on the faculty email.
var ErrDuplicateFacultyEmail = errors.New("faculty member with this email already exists")

const facultyColumns = `f.id, f.name, f.department_id, d.name, f.designation, f.email, f.phone,
	 f.image, f.education, f.specialization, f.bio, f.research_interest, f.joining_date,
	 f.experience, f.publications, f.social_links, f.office_location, f.office_hours,
	 f.is_active, f.created_at, f.updated_at`

// FacultyRepository handles faculty data access.
type FacultyRepository struct {
	pool *pgxpool.Pool
}

// NewFacultyRepository creates a new FacultyRepository.
func NewFacultyRepository(pool *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{pool: pool}
}

func scanFaculty(row interface{ Scan(...any) error }) (*model.Faculty, error) {
	f := &model.Faculty{}
	var publications, socialLinks []byte
	err := row.Scan(&f.ID, &f.Name, &f.DepartmentID, &f.DepartmentName, &f.Designation,
		&f.Email, &f.Phone, &f.Image, &f.Education, &f.Specialization, &f.Bio,
		&f.ResearchInterest, &f.JoiningDate, &f.Experience, &publications, &socialLinks,
		&f.OfficeLocation, &f.OfficeHours, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(publications) > 0 {
		if err := json.Unmarshal(publications, &f.Publications); err != nil {
			return nil, err
		}
	}
	if len(socialLinks) > 0 {
		if err := json.Unmarshal(socialLinks, &f.SocialLinks); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// List retrieves faculty members, optionally filtered by department, ordered
// by designation then name.
func (r *FacultyRepository) List(ctx context.Context, departmentID *int, activeOnly bool) ([]model.Faculty, error) {
	query := `SELECT ` + facultyColumns + `
		 FROM faculty f JOIN departments d ON f.department_id = d.id`
	var args []any
	where := ""
	if departmentID != nil {
		where = ` WHERE f.department_id = $1`
		args = append(args, *departmentID)
	}
	if activeOnly {
		if where == "" {
			where = ` WHERE f.is_active = TRUE`
		} else {
			where += ` AND f.is_active = TRUE`
		}
	}
	query += where + ` ORDER BY f.designation, f.name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []model.Faculty
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *f)
	}
	return members, rows.Err()
}

// GetByID retrieves a faculty member by ID.
func (r *FacultyRepository) GetByID(ctx context.Context, id int) (*model.Faculty, error) {
	return scanFaculty(r.pool.QueryRow(ctx,
		`SELECT `+facultyColumns+`
		 FROM faculty f JOIN departments d ON f.department_id = d.id
		 WHERE f.id = $1`, id))
}

// Create inserts a new faculty member.
func (r *FacultyRepository) Create(ctx context.Context, f *model.Faculty) error {
	publications, err := json.Marshal(f.Publications)
	if err != nil {
		return err
	}
	socialLinks, err := json.Marshal(f.SocialLinks)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO faculty (name, department_id, designation, email, phone, image, education,
		  specialization, bio, research_interest, joining_date, experience, publications,
		  social_links, office_location, office_hours, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id, created_at, updated_at`,
		f.Name, f.DepartmentID, f.Designation, f.Email, f.Phone, f.Image, f.Education,
		f.Specialization, f.Bio, f.ResearchInterest, f.JoiningDate, f.Experience,
		publications, socialLinks, f.OfficeLocation, f.OfficeHours, f.IsActive,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateFacultyEmail
		}
		return err
	}
	return nil
}

// Update modifies an existing faculty member.
func (r *FacultyRepository) Update(ctx context.Context, f *model.Faculty) error {
	publications, err := json.Marshal(f.Publications)
	if err != nil {
		return err
	}
	socialLinks, err := json.Marshal(f.SocialLinks)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE faculty SET name = $1, department_id = $2, designation = $3, email = $4,
		  phone = $5, image = $6, education = $7, specialization = $8, bio = $9,
		  research_interest = $10, joining_date = $11, experience = $12, publications = $13,
		  social_links = $14, office_location = $15, office_hours = $16, is_active = $17,
		  updated_at = NOW()
		 WHERE id = $18`,
		f.Name, f.DepartmentID, f.Designation, f.Email, f.Phone, f.Image, f.Education,
		f.Specialization, f.Bio, f.ResearchInterest, f.JoiningDate, f.Experience,
		publications, socialLinks, f.OfficeLocation, f.OfficeHours, f.IsActive, f.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateFacultyEmail
		}
	}
	return err
}

// SoftDelete clears the active flag.
func (r *FacultyRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE faculty SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
