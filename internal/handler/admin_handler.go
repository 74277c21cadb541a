package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sihs-edu/campus-backend/internal/middleware"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
	"github.com/sihs-edu/campus-backend/internal/response"
	"github.com/sihs-edu/campus-backend/internal/service"
	"github.com/sihs-edu/campus-backend/internal/validator"
)

// AdminHandler handles super-admin account management (CRUD).
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListAdmins godoc
// GET /api/v1/admin/admins
// Lists all active admin accounts.
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admins": admins})
}

// CreateAdmin godoc
// POST /api/v1/admin/admins
// Creates an account with an explicit role and permission set.
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusBadRequest, response.ErrDuplicateEmail)
			return
		}
		if errors.Is(err, service.ErrInvalidPermission) {
			response.FailWithMessage(c, http.StatusBadRequest, response.ErrValidation, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"admin": admin})
}

// UpdateAdmin godoc
// PUT /api/v1/admin/admins/:id
// Edits another account's identity, role, permissions, and active flag.
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAdminRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Fail(c, http.StatusBadRequest, response.ErrDuplicateEmail)
			return
		}
		if errors.Is(err, service.ErrInvalidPermission) {
			response.FailWithMessage(c, http.StatusBadRequest, response.ErrValidation, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}

// DeleteAdmin godoc
// DELETE /api/v1/admin/admins/:id
// Soft-deletes an account. Self-deletion is rejected.
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	actor := middleware.GetCurrentAdmin(c)
	if actor == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.adminService.Delete(c.Request.Context(), actor.ID, id); err != nil {
		if errors.Is(err, service.ErrSelfDelete) {
			response.FailWithMessage(c, http.StatusBadRequest, response.ErrValidation, err.Error())
			return
		}
		if errors.Is(err, service.ErrAdminNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "admin deleted successfully"})
}
