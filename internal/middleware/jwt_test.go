package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sihs-edu/campus-backend/internal/config"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/response"
	"github.com/sihs-edu/campus-backend/internal/service"
)

// fakeResolver serves accounts from a map, standing in for the admin
// repository.
type fakeResolver struct {
	admins map[int]*model.Admin
}

func (r *fakeResolver) GetByID(_ context.Context, id int) (*model.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return a, nil
}

func newAuthService(expiry time.Duration) *service.AuthService {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: expiry}
	return service.NewAuthService(cfg, nil, zerolog.Nop())
}

func setupRouter(auth *service.AuthService, accounts AccountResolver, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{RequireAdmin(auth, accounts)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		admin := GetCurrentAdmin(c)
		response.Success(c, http.StatusOK, gin.H{"admin_id": admin.ID})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return w, body
}

func TestRequireAdminMissingToken(t *testing.T) {
	auth := newAuthService(time.Hour)
	r := setupRouter(auth, &fakeResolver{})

	w, body := doRequest(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body.Error == nil || body.Error.Code != response.ErrTokenRequired {
		t.Errorf("error = %+v, want TOKEN_REQUIRED", body.Error)
	}
}

func TestRequireAdminGarbageToken(t *testing.T) {
	auth := newAuthService(time.Hour)
	r := setupRouter(auth, &fakeResolver{})

	w, body := doRequest(t, r, "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body.Error == nil || body.Error.Code != response.ErrTokenInvalid {
		t.Errorf("error = %+v, want TOKEN_INVALID", body.Error)
	}
}

func TestRequireAdminExpiredToken(t *testing.T) {
	auth := newAuthService(-time.Hour)
	token, err := auth.GenerateToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	r := setupRouter(auth, &fakeResolver{})

	w, body := doRequest(t, r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body.Error == nil || body.Error.Code != response.ErrTokenExpired {
		t.Errorf("error = %+v, want TOKEN_EXPIRED", body.Error)
	}
}

func TestRequireAdminDeactivatedAccount(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(1)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	accounts := &fakeResolver{admins: map[int]*model.Admin{
		1: {ID: 1, Role: model.RoleAdmin, IsActive: false},
	}}
	r := setupRouter(auth, accounts)

	// A valid token over a deactivated account is rejected like a bad token.
	w, body := doRequest(t, r, token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body.Error == nil || body.Error.Code != response.ErrTokenInvalid {
		t.Errorf("error = %+v, want TOKEN_INVALID", body.Error)
	}
}

func TestRequireAdminActiveAccount(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(7)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	accounts := &fakeResolver{admins: map[int]*model.Admin{
		7: {ID: 7, Role: model.RoleAdmin, IsActive: true},
	}}
	r := setupRouter(auth, accounts)

	w, body := doRequest(t, r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data, ok := body.Data.(map[string]interface{})
	if !ok || data["admin_id"] != float64(7) {
		t.Errorf("data = %v, want admin_id 7", body.Data)
	}
}

func TestRequirePermissionDenied(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(2)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	accounts := &fakeResolver{admins: map[int]*model.Admin{
		2: {
			ID:          2,
			Role:        model.RoleModerator,
			Permissions: model.DefaultPermissions(model.RoleModerator),
			IsActive:    true,
		},
	}}
	r := setupRouter(auth, accounts, RequirePermission(model.PermissionManageDepartments))

	w, body := doRequest(t, r, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if body.Error == nil || body.Error.Code != response.ErrPermissionDenied {
		t.Errorf("error = %+v, want PERMISSION_DENIED", body.Error)
	}
}

func TestRequirePermissionSuperAdminBypass(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(3)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	// Deliberately no stored tags: the role alone must grant access.
	accounts := &fakeResolver{admins: map[int]*model.Admin{
		3: {ID: 3, Role: model.RoleSuperAdmin, IsActive: true},
	}}
	r := setupRouter(auth, accounts, RequirePermission(model.PermissionManageDepartments))

	w, _ := doRequest(t, r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireRoleRejectsLesserRole(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(4)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	accounts := &fakeResolver{admins: map[int]*model.Admin{
		4: {
			ID:          4,
			Role:        model.RoleAdmin,
			Permissions: model.DefaultPermissions(model.RoleAdmin),
			IsActive:    true,
		},
	}}
	r := setupRouter(auth, accounts, RequireRole(model.RoleSuperAdmin))

	w, body := doRequest(t, r, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if body.Error == nil || body.Error.Code != response.ErrForbidden {
		t.Errorf("error = %+v, want FORBIDDEN", body.Error)
	}
}

func TestQueryTokenFallback(t *testing.T) {
	auth := newAuthService(time.Hour)
	token, err := auth.GenerateToken(5)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	accounts := &fakeResolver{admins: map[int]*model.Admin{
		5: {ID: 5, Role: model.RoleAdmin, IsActive: true},
	}}
	r := setupRouter(auth, accounts)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
