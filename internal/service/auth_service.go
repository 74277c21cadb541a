package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sihs-edu/campus-backend/internal/config"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors. ErrInvalidCredentials covers both an unknown email and
// a wrong password so responses cannot be used to enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSamePassword       = errors.New("new password must differ from the current password")
)

// AccountLockedError is returned while a login lockout is active.
type AccountLockedError struct {
	Until     time.Time
	Remaining time.Duration
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %d minute(s)", e.RemainingMinutes())
}

// RemainingMinutes reports the remaining lock duration rounded up to whole
// minutes, as surfaced to the client.
func (e *AccountLockedError) RemainingMinutes() int {
	return int(math.Ceil(e.Remaining.Minutes()))
}

// TokenType marks the audience of an issued token.
type TokenType string

const TokenTypeAdmin TokenType = "admin"

// Claims extends JWT registered claims with app-specific fields. The token
// carries only the account identity; role and permissions are resolved from
// the database on every request so revocations take effect immediately.
type Claims struct {
	jwt.RegisteredClaims
	TokenType TokenType `json:"token_type"`
	AdminID   int       `json:"admin_id"`
}

// CredentialStore is the persistence surface the authenticator needs.
// Implemented by repository.AdminRepository.
type CredentialStore interface {
	GetByID(ctx context.Context, id int) (*model.Admin, error)
	GetActiveByEmail(ctx context.Context, email string) (*model.Admin, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, a *model.Admin) error
	RecordLoginFailure(ctx context.Context, id, attempts int, lockedUntil *time.Time) error
	RecordLoginSuccess(ctx context.Context, id int, at time.Time) error
	UpdatePassword(ctx context.Context, id int, hash string) error
}

// AuthService handles authentication, JWT issuance, and the login lockout
// state machine.
type AuthService struct {
	cfg   *config.Config
	store CredentialStore
	log   zerolog.Logger

	now func() time.Time // injectable for tests
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, store CredentialStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		cfg:   cfg,
		store: store,
		log:   log.With().Str("component", "auth_service").Logger(),
		now:   time.Now,
	}
}

// NormalizeEmail lowercases and trims an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login verifies an email/password pair and applies the lockout policy.
//
// A lookup miss and a wrong password produce the same ErrInvalidCredentials.
// While a lock is active the password is not even checked; the caller gets an
// AccountLockedError with the remaining duration. The failure counter is a
// read-modify-write against the stored record: concurrent failures may lose
// an increment, which only delays lockout by one attempt.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	admin, err := s.store.GetActiveByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		// Unknown or inactive account. No state is mutated on this path.
		return nil, "", ErrInvalidCredentials
	}

	now := s.now()
	if admin.LockedUntil != nil && admin.LockedUntil.After(now) {
		return nil, "", &AccountLockedError{
			Until:     *admin.LockedUntil,
			Remaining: admin.LockedUntil.Sub(now),
		}
	}

	if err := s.CheckPassword(admin.PasswordHash, password); err != nil {
		attempts := admin.FailedLoginAttempts + 1
		if admin.LockedUntil != nil {
			// An expired lock starts a fresh window.
			attempts = 1
		}
		var lockedUntil *time.Time
		if attempts >= s.cfg.LockoutThreshold {
			until := now.Add(s.cfg.LockoutDuration)
			lockedUntil = &until
		}
		if perr := s.store.RecordLoginFailure(ctx, admin.ID, attempts, lockedUntil); perr != nil {
			s.log.Error().Err(perr).Int("admin_id", admin.ID).Msg("failed to persist login failure")
		}
		if lockedUntil != nil {
			s.log.Warn().Int("admin_id", admin.ID).Time("locked_until", *lockedUntil).
				Msg("account locked after repeated failed logins")
		}
		return nil, "", ErrInvalidCredentials
	}

	if err := s.store.RecordLoginSuccess(ctx, admin.ID, now); err != nil {
		s.log.Error().Err(err).Int("admin_id", admin.ID).Msg("failed to persist login success")
	}
	admin.FailedLoginAttempts = 0
	admin.LockedUntil = nil
	admin.LastLogin = &now

	token, err := s.GenerateToken(admin.ID)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return admin, token, nil
}

// Register creates a new admin account from the public registration path.
// The highest-privilege role is not selectable here: a super_admin request is
// silently downgraded to admin, and the permission set is derived from the
// effective role. Explicit role/permission grants go through the super-admin
// management endpoints instead.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Admin, string, error) {
	email := NormalizeEmail(req.Email)

	taken, err := s.store.EmailTaken(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, "", repository.ErrDuplicateEmail
	}

	role := req.Role
	if role == "" || role == model.RoleSuperAdmin {
		role = model.RoleAdmin
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	admin := &model.Admin{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Permissions:  model.DefaultPermissions(role),
		Phone:        req.Phone,
		Department:   req.Department,
		IsActive:     true,
	}

	if err := s.store.Create(ctx, admin); err != nil {
		// A concurrent registration can still trip the unique constraint.
		return nil, "", err
	}

	token, err := s.GenerateToken(admin.ID)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	s.log.Info().Int("admin_id", admin.ID).Str("role", string(admin.Role)).Msg("admin registered")
	return admin, token, nil
}

// ChangePassword verifies the current password and replaces the stored hash.
// The new password must differ from the current one; length and confirmation
// equality are enforced by request validation before this is reached.
func (s *AuthService) ChangePassword(ctx context.Context, adminID int, current, next string) error {
	admin, err := s.store.GetByID(ctx, adminID)
	if err != nil {
		return ErrInvalidCredentials
	}

	if err := s.CheckPassword(admin.PasswordHash, current); err != nil {
		return ErrInvalidCredentials
	}
	if next == current {
		return ErrSamePassword
	}

	hash, err := s.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.store.UpdatePassword(ctx, adminID, hash)
}

// GenerateToken creates a signed JWT encoding the account identifier with the
// configured expiry window.
func (s *AuthService) GenerateToken(adminID int) (string, error) {
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		TokenType: TokenTypeAdmin,
		AdminID:   adminID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a JWT, returning the claims. An expired
// token surfaces jwt.ErrTokenExpired via errors.Is.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
