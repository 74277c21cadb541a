package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sihs-edu/campus-backend/internal/middleware"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
	"github.com/sihs-edu/campus-backend/internal/response"
	"github.com/sihs-edu/campus-backend/internal/service"
	"github.com/sihs-edu/campus-backend/internal/validator"
)

// AuthHandler handles registration, login, and self-service account routes.
type AuthHandler struct {
	authService  *service.AuthService
	adminService *service.AdminService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, adminService *service.AdminService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		adminService: adminService,
	}
}

// Register godoc
// POST /api/v1/auth/register
// Creates an admin account and returns a token. Requesting super_admin here
// silently yields a regular admin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, token, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusBadRequest, response.ErrDuplicateEmail)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"admin": admin,
	})
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password, returns JWT. Unknown email and wrong password
// produce the same response; a locked account reports remaining minutes.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var locked *service.AccountLockedError
		if errors.As(err, &locked) {
			msg := fmt.Sprintf("Account locked due to repeated failed logins. Try again in %d minute(s).", locked.RemainingMinutes())
			response.FailWithMessage(c, http.StatusTooManyRequests, response.ErrAccountLocked, msg)
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"admin": admin,
	})
}

// GetProfile godoc
// GET /api/v1/auth/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

// UpdateProfile godoc
// PUT /api/v1/auth/profile
// Updates the authenticated admin's own contact fields. Email, role, and
// permissions are not editable here.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	updated, err := h.adminService.UpdateProfile(c.Request.Context(), admin.ID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": updated})
}

// ChangePassword godoc
// PUT /api/v1/auth/change-password
// Replaces the authenticated admin's password after verifying the current one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.ChangePasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), admin.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		if errors.Is(err, service.ErrSamePassword) {
			response.FailWithMessage(c, http.StatusBadRequest, response.ErrValidation, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "password changed successfully"})
}

// Logout godoc
// POST /api/v1/auth/logout
// Tokens are stateless, so logout is a client-side discard. The endpoint
// exists so clients have a uniform call to end a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"message": "logged out successfully"})
}
