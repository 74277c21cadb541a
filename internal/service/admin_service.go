package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

var (
	ErrAdminNotFound     = errors.New("admin not found")
	ErrSelfDelete        = errors.New("cannot delete own account")
	ErrInvalidPermission = errors.New("unknown permission tag")
)

// AdminService implements account management for super admins plus profile
// updates for the authenticated account itself.
type AdminService struct {
	repo *repository.AdminRepository
	auth *AuthService
	log  zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(repo *repository.AdminRepository, auth *AuthService, log zerolog.Logger) *AdminService {
	return &AdminService{
		repo: repo,
		auth: auth,
		log:  log.With().Str("component", "admin_service").Logger(),
	}
}

// List returns all active admin accounts.
func (s *AdminService) List(ctx context.Context) ([]model.Admin, error) {
	return s.repo.ListActive(ctx)
}

// GetByID returns a single admin account.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// Create provisions an account with an explicit role and permission set.
// Unlike self-registration, any role including super_admin may be assigned.
// An empty permission list falls back to the role defaults.
func (s *AdminService) Create(ctx context.Context, req *model.CreateAdminRequest) (*model.Admin, error) {
	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}

	email := NormalizeEmail(req.Email)
	taken, err := s.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, repository.ErrDuplicateEmail
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	perms := req.Permissions
	if len(perms) == 0 {
		perms = model.DefaultPermissions(req.Role)
	}

	admin := &model.Admin{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		Permissions:  perms,
		Phone:        req.Phone,
		Department:   req.Department,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.log.Info().Int("admin_id", admin.ID).Str("role", string(admin.Role)).Msg("admin account created")
	return admin, nil
}

// Update edits another account's identity, role, permissions, and active
// flag. Deactivating an account invalidates its tokens on the next request.
func (s *AdminService) Update(ctx context.Context, id int, req *model.UpdateAdminRequest) (*model.Admin, error) {
	if err := validatePermissions(req.Permissions); err != nil {
		return nil, err
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAdminNotFound
	}

	admin.Name = strings.TrimSpace(req.Name)
	admin.Email = NormalizeEmail(req.Email)
	admin.Role = req.Role
	if req.Permissions != nil {
		admin.Permissions = req.Permissions
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete soft-deletes an account. Admins cannot delete themselves, which
// guarantees at least one active super admin survives the operation.
func (s *AdminService) Delete(ctx context.Context, actorID, targetID int) error {
	if actorID == targetID {
		return ErrSelfDelete
	}
	deleted, err := s.repo.SoftDelete(ctx, targetID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAdminNotFound
	}
	s.log.Info().Int("admin_id", targetID).Int("actor_id", actorID).Msg("admin account deactivated")
	return nil
}

// UpdateProfile updates the authenticated admin's own contact fields.
func (s *AdminService) UpdateProfile(ctx context.Context, id int, req *model.UpdateProfileRequest) (*model.Admin, error) {
	admin, err := s.repo.UpdateProfile(ctx, id, strings.TrimSpace(req.Name), req.Phone, req.Department)
	if err != nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

func validatePermissions(perms []model.Permission) error {
	for _, p := range perms {
		if !model.ValidPermission(p) {
			return fmt.Errorf("%w: %s", ErrInvalidPermission, p)
		}
	}
	return nil
}
