package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
	"github.com/sihs-edu/campus-backend/internal/response"
	"github.com/sihs-edu/campus-backend/internal/service"
	"github.com/sihs-edu/campus-backend/internal/validator"
)

// FacultyHandler handles faculty profile routes.
type FacultyHandler struct {
	facultyService *service.FacultyService
}

// NewFacultyHandler creates a new FacultyHandler.
func NewFacultyHandler(facultyService *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService}
}

// ListFaculty godoc
// GET /api/v1/faculty
// Lists active faculty members, optionally filtered by ?department_id=N.
func (h *FacultyHandler) ListFaculty(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	var departmentID *int
	if raw := c.Query("department_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		departmentID = &id
	}

	faculty, err := h.facultyService.List(c.Request.Context(), departmentID, activeOnly)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// GetFaculty godoc
// GET /api/v1/faculty/:id
// Returns one faculty profile.
func (h *FacultyHandler) GetFaculty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	faculty, err := h.facultyService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// CreateFaculty godoc
// POST /api/v1/admin/faculty
// Creates a faculty profile under an existing department.
func (h *FacultyHandler) CreateFaculty(c *gin.Context) {
	var req model.FacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty, err := h.facultyService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.FailWithMessage(c, http.StatusBadRequest, response.ErrValidation, err.Error())
			return
		}
		if errors.Is(err, repository.ErrDuplicateFacultyEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"faculty": faculty})
}

// UpdateFaculty godoc
// PUT /api/v1/admin/faculty/:id
// Updates a faculty profile.
func (h *FacultyHandler) UpdateFaculty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.FacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	faculty, err := h.facultyService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		if errors.Is(err, service.ErrDepartmentNotFound) {
			response.FailWithMessage(c, http.StatusBadRequest, response.ErrValidation, err.Error())
			return
		}
		if errors.Is(err, repository.ErrDuplicateFacultyEmail) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"faculty": faculty})
}

// DeleteFaculty godoc
// DELETE /api/v1/admin/faculty/:id
// Soft-deletes a faculty profile.
func (h *FacultyHandler) DeleteFaculty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.facultyService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "faculty member deleted successfully"})
}
