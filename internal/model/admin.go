package model

import "time"

// Role is a fixed administrative role enumeration.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleModerator  Role = "moderator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

// Admin represents one administrative identity.
//
// PasswordHash is never serialized. FailedLoginAttempts and LockedUntil back
// the login lockout state machine; LockedUntil is nil unless a lock is
// pending or active. Accounts are soft-deleted by clearing IsActive.
type Admin struct {
	ID                  int          `json:"id"`
	Name                string       `json:"name"`
	Email               string       `json:"email"`
	PasswordHash        string       `json:"-"`
	Role                Role         `json:"role"`
	Permissions         []Permission `json:"permissions"`
	Phone               string       `json:"phone,omitempty"`
	Department          string       `json:"department,omitempty"`
	IsActive            bool         `json:"is_active"`
	LastLogin           *time.Time   `json:"last_login,omitempty"`
	FailedLoginAttempts int          `json:"-"`
	LockedUntil         *time.Time   `json:"-"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// HasPermission reports whether the admin carries the given permission tag.
func (a *Admin) HasPermission(p Permission) bool {
	for _, have := range a.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// RegisterRequest is the payload for self-service admin registration.
type RegisterRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Password        string `json:"password" binding:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Role            Role   `json:"role,omitempty" binding:"omitempty,oneof=super_admin admin moderator"`
	Phone           string `json:"phone,omitempty" binding:"omitempty,max=32"`
	Department      string `json:"department,omitempty" binding:"omitempty,max=100"`
}

// LoginRequest is the payload for admin authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// UpdateProfileRequest updates the authenticated admin's own contact fields.
type UpdateProfileRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Phone      string `json:"phone,omitempty" binding:"omitempty,max=32"`
	Department string `json:"department,omitempty" binding:"omitempty,max=100"`
}

// ChangePasswordRequest is the payload for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// CreateAdminRequest is the super-admin payload for creating an admin with an
// explicit role and permission set.
type CreateAdminRequest struct {
	Name        string       `json:"name" binding:"required,min=2,max=100"`
	Email       string       `json:"email" binding:"required,email,max=255"`
	Password    string       `json:"password" binding:"required,min=6,max=128"`
	Role        Role         `json:"role" binding:"required,oneof=super_admin admin moderator"`
	Permissions []Permission `json:"permissions,omitempty"`
	Phone       string       `json:"phone,omitempty" binding:"omitempty,max=32"`
	Department  string       `json:"department,omitempty" binding:"omitempty,max=100"`
}

// UpdateAdminRequest is the super-admin payload for editing another account.
type UpdateAdminRequest struct {
	Name        string       `json:"name" binding:"required,min=2,max=100"`
	Email       string       `json:"email" binding:"required,email,max=255"`
	Role        Role         `json:"role" binding:"required,oneof=super_admin admin moderator"`
	Permissions []Permission `json:"permissions,omitempty"`
	IsActive    *bool        `json:"is_active,omitempty"`
}
