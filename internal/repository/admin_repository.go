package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sihs-edu/campus-backend/internal/model"
)

// ErrDuplicateEmail signals a unique violation on the admins email column.
var ErrDuplicateEmail = errors.New("admin with this email already exists")

const adminColumns = `id, name, email, password_hash, role, permissions, phone, department,
	 is_active, last_login, failed_login_attempts, locked_until, created_at, updated_at`

// AdminRepository handles admin account data access. It is the persistence
// backend of the authentication service's credential store.
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func scanAdmin(row interface{ Scan(...any) error }) (*model.Admin, error) {
	a := &model.Admin{}
	var perms []string
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &perms,
		&a.Phone, &a.Department, &a.IsActive, &a.LastLogin,
		&a.FailedLoginAttempts, &a.LockedUntil, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Permissions = toPermissions(perms)
	return a, nil
}

func toPermissions(tags []string) []model.Permission {
	perms := make([]model.Permission, 0, len(tags))
	for _, t := range tags {
		perms = append(perms, model.Permission(t))
	}
	return perms
}

func fromPermissions(perms []model.Permission) []string {
	tags := make([]string, 0, len(perms))
	for _, p := range perms {
		tags = append(tags, string(p))
	}
	return tags
}

// GetByID retrieves an admin by ID regardless of active state.
func (r *AdminRepository) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

// GetActiveByEmail retrieves an active admin by normalized email. Inactive
// accounts are treated as missing so a lookup miss and a soft-deleted account
// are indistinguishable to callers.
func (r *AdminRepository) GetActiveByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = $1 AND is_active = TRUE`, email))
}

// EmailTaken reports whether any account (active or not) holds the email.
func (r *AdminRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&taken)
	return taken, err
}

// Create inserts a new admin account.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (name, email, password_hash, role, permissions, phone, department, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.Email, a.PasswordHash, a.Role, fromPermissions(a.Permissions),
		a.Phone, a.Department, a.IsActive,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// RecordLoginFailure persists the failed-attempt counter and, when the lock
// threshold was reached, the lock expiry. Concurrent failures race at the
// storage layer; a lost increment merely delays lockout by one attempt.
func (r *AdminRepository) RecordLoginFailure(ctx context.Context, id, attempts int, lockedUntil *time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admins SET failed_login_attempts = $1, locked_until = $2, updated_at = NOW()
		 WHERE id = $3`,
		attempts, lockedUntil, id)
	return err
}

// RecordLoginSuccess resets the failure counter, clears any lock, and stamps
// the last login time.
func (r *AdminRepository) RecordLoginSuccess(ctx context.Context, id int, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admins SET failed_login_attempts = 0, locked_until = NULL, last_login = $1, updated_at = NOW()
		 WHERE id = $2`,
		at, id)
	return err
}

// UpdatePassword replaces the stored hash.
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int, hash string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admins SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		hash, id)
	return err
}

// UpdateProfile updates the admin's own contact fields.
func (r *AdminRepository) UpdateProfile(ctx context.Context, id int, name, phone, department string) (*model.Admin, error) {
	return scanAdmin(r.pool.QueryRow(ctx,
		`UPDATE admins SET name = $1, phone = $2, department = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING `+adminColumns,
		name, phone, department, id))
}

// ListActive retrieves all active admin accounts, newest first.
func (r *AdminRepository) ListActive(ctx context.Context) ([]model.Admin, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE is_active = TRUE ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

// Update modifies another account's identity, role, permissions, and active
// flag (super-admin management path).
func (r *AdminRepository) Update(ctx context.Context, a *model.Admin) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE admins SET name = $1, email = $2, role = $3, permissions = $4, is_active = $5, updated_at = NOW()
		 WHERE id = $6`,
		a.Name, a.Email, a.Role, fromPermissions(a.Permissions), a.IsActive, a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
	}
	return err
}

// SoftDelete clears the active flag. Accounts are never hard-deleted.
func (r *AdminRepository) SoftDelete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE admins SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
