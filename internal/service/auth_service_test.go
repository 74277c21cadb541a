package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/sihs-edu/campus-backend/internal/config"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// memStore is an in-memory CredentialStore for exercising the auth flows
// without a database.
type memStore struct {
	admins map[int]model.Admin
	nextID int
}

func newMemStore() *memStore {
	return &memStore{admins: make(map[int]model.Admin), nextID: 1}
}

func (s *memStore) GetByID(_ context.Context, id int) (*model.Admin, error) {
	a, ok := s.admins[id]
	if !ok {
		return nil, errors.New("not found")
	}
	out := a
	return &out, nil
}

func (s *memStore) GetActiveByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range s.admins {
		if a.Email == email && a.IsActive {
			out := a
			return &out, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *memStore) EmailTaken(_ context.Context, email string) (bool, error) {
	for _, a := range s.admins {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) Create(_ context.Context, a *model.Admin) error {
	for _, existing := range s.admins {
		if existing.Email == a.Email {
			return repository.ErrDuplicateEmail
		}
	}
	a.ID = s.nextID
	s.nextID++
	s.admins[a.ID] = *a
	return nil
}

func (s *memStore) RecordLoginFailure(_ context.Context, id, attempts int, lockedUntil *time.Time) error {
	a := s.admins[id]
	a.FailedLoginAttempts = attempts
	a.LockedUntil = lockedUntil
	s.admins[id] = a
	return nil
}

func (s *memStore) RecordLoginSuccess(_ context.Context, id int, at time.Time) error {
	a := s.admins[id]
	a.FailedLoginAttempts = 0
	a.LockedUntil = nil
	a.LastLogin = &at
	s.admins[id] = a
	return nil
}

func (s *memStore) UpdatePassword(_ context.Context, id int, hash string) error {
	a := s.admins[id]
	a.PasswordHash = hash
	s.admins[id] = a
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTExpiry:        time.Hour,
		BcryptCost:       bcrypt.MinCost,
		LockoutThreshold: 5,
		LockoutDuration:  15 * time.Minute,
	}
}

func newTestAuth(t *testing.T) (*AuthService, *memStore) {
	t.Helper()
	store := newMemStore()
	return NewAuthService(testConfig(), store, zerolog.Nop()), store
}

func seedAdmin(t *testing.T, svc *AuthService, store *memStore, email, password string) int {
	t.Helper()
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	admin := &model.Admin{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		Permissions:  model.DefaultPermissions(model.RoleAdmin),
		IsActive:     true,
	}
	if err := store.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin.ID
}

func TestLoginSuccess(t *testing.T) {
	svc, store := newTestAuth(t)
	seedAdmin(t, svc, store, "admin@school.edu", "secret123")

	admin, token, err := svc.Login(context.Background(), "Admin@School.EDU", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if admin.LastLogin == nil {
		t.Error("expected last login to be set")
	}
	if admin.FailedLoginAttempts != 0 {
		t.Errorf("expected counter reset, got %d", admin.FailedLoginAttempts)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, store := newTestAuth(t)
	id := seedAdmin(t, svc, store, "admin@school.edu", "secret123")

	_, _, err := svc.Login(context.Background(), "admin@school.edu", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if got := store.admins[id].FailedLoginAttempts; got != 1 {
		t.Errorf("expected 1 failed attempt persisted, got %d", got)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, _, err := svc.Login(context.Background(), "nobody@school.edu", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginLockoutAfterThreshold(t *testing.T) {
	svc, store := newTestAuth(t)
	id := seedAdmin(t, svc, store, "admin@school.edu", "secret123")

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, _, err := svc.Login(ctx, "admin@school.edu", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	stored := store.admins[id]
	if stored.LockedUntil == nil {
		t.Fatal("expected lock to be set after fifth failure")
	}
	if want := now.Add(15 * time.Minute); !stored.LockedUntil.Equal(want) {
		t.Errorf("locked until %v, want %v", stored.LockedUntil, want)
	}

	// Even the correct password is rejected while the lock holds.
	_, _, err := svc.Login(ctx, "admin@school.edu", "secret123")
	var locked *AccountLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("expected AccountLockedError, got %v", err)
	}
	if locked.RemainingMinutes() != 15 {
		t.Errorf("remaining minutes = %d, want 15", locked.RemainingMinutes())
	}
}

func TestLoginLockRemainingMinutesRoundsUp(t *testing.T) {
	svc, store := newTestAuth(t)
	id := seedAdmin(t, svc, store, "admin@school.edu", "secret123")

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	until := now.Add(30 * time.Second)
	a := store.admins[id]
	a.LockedUntil = &until
	store.admins[id] = a
	svc.now = func() time.Time { return now }

	_, _, err := svc.Login(context.Background(), "admin@school.edu", "secret123")
	var locked *AccountLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("expected AccountLockedError, got %v", err)
	}
	if locked.RemainingMinutes() != 1 {
		t.Errorf("remaining minutes = %d, want 1 (rounded up)", locked.RemainingMinutes())
	}
}

func TestLoginAfterLockExpires(t *testing.T) {
	svc, store := newTestAuth(t)
	id := seedAdmin(t, svc, store, "admin@school.edu", "secret123")

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	a := store.admins[id]
	a.FailedLoginAttempts = 5
	a.LockedUntil = &past
	store.admins[id] = a
	svc.now = func() time.Time { return now }

	admin, _, err := svc.Login(context.Background(), "admin@school.edu", "secret123")
	if err != nil {
		t.Fatalf("login after lock expiry: %v", err)
	}
	if admin.FailedLoginAttempts != 0 || admin.LockedUntil != nil {
		t.Error("expected lock state to be cleared on success")
	}

	stored := store.admins[id]
	if stored.FailedLoginAttempts != 0 || stored.LockedUntil != nil {
		t.Error("expected persisted lock state to be cleared")
	}
}

func TestLoginExpiredLockStartsFreshWindow(t *testing.T) {
	svc, store := newTestAuth(t)
	id := seedAdmin(t, svc, store, "admin@school.edu", "secret123")

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	a := store.admins[id]
	a.FailedLoginAttempts = 5
	a.LockedUntil = &past
	store.admins[id] = a
	svc.now = func() time.Time { return now }

	_, _, err := svc.Login(context.Background(), "admin@school.edu", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	stored := store.admins[id]
	if stored.FailedLoginAttempts != 1 {
		t.Errorf("expected counter restart at 1, got %d", stored.FailedLoginAttempts)
	}
	if stored.LockedUntil != nil {
		t.Error("expected no new lock after a single failure")
	}
}

func TestRegisterDowngradesSuperAdmin(t *testing.T) {
	svc, _ := newTestAuth(t)

	admin, token, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:            "New Admin",
		Email:           "NEW@School.edu",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            model.RoleSuperAdmin,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if admin.Role != model.RoleAdmin {
		t.Errorf("role = %s, want admin (super_admin must not be self-assignable)", admin.Role)
	}
	if admin.Email != "new@school.edu" {
		t.Errorf("email = %s, want normalized lowercase", admin.Email)
	}
	if admin.HasPermission(model.PermissionManageAdmins) {
		t.Error("registered admin must not hold manage_admins")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, store := newTestAuth(t)
	seedAdmin(t, svc, store, "taken@school.edu", "secret123")

	_, _, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:            "Other",
		Email:           "Taken@school.edu",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestRegisterModeratorDefaults(t *testing.T) {
	svc, _ := newTestAuth(t)

	admin, _, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:            "Mod",
		Email:           "mod@school.edu",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Role:            model.RoleModerator,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if admin.Role != model.RoleModerator {
		t.Errorf("role = %s, want moderator", admin.Role)
	}
	if admin.HasPermission(model.PermissionManageDepartments) {
		t.Error("moderator must not hold manage_departments by default")
	}
	if !admin.HasPermission(model.PermissionManageNews) {
		t.Error("moderator should hold manage_news by default")
	}
}

func TestChangePassword(t *testing.T) {
	svc, store := newTestAuth(t)
	id := seedAdmin(t, svc, store, "admin@school.edu", "secret123")
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, id, "wrong", "newsecret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong current password: expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.ChangePassword(ctx, id, "secret123", "secret123"); !errors.Is(err, ErrSamePassword) {
		t.Fatalf("unchanged password: expected ErrSamePassword, got %v", err)
	}
	if err := svc.ChangePassword(ctx, id, "secret123", "newsecret1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := svc.Login(ctx, "admin@school.edu", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password should no longer work")
	}
	if _, _, err := svc.Login(ctx, "admin@school.edu", "newsecret1"); err != nil {
		t.Errorf("new password should work: %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuth(t)

	token, err := svc.GenerateToken(42)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.AdminID != 42 {
		t.Errorf("admin_id = %d, want 42", claims.AdminID)
	}
	if claims.TokenType != TokenTypeAdmin {
		t.Errorf("token_type = %s, want admin", claims.TokenType)
	}
}

func TestTokenExpiryDetected(t *testing.T) {
	svc, _ := newTestAuth(t)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateToken(7)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	svc, _ := newTestAuth(t)
	token, err := svc.GenerateToken(7)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour}, newMemStore(), zerolog.Nop())
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Admin@School.EDU "); got != "admin@school.edu" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}
