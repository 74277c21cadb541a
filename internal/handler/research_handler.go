package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/response"
	"github.com/sihs-edu/campus-backend/internal/service"
	"github.com/sihs-edu/campus-backend/internal/validator"
)

// ResearchHandler handles research entry routes.
type ResearchHandler struct {
	researchService *service.ResearchService
}

// NewResearchHandler creates a new ResearchHandler.
func NewResearchHandler(researchService *service.ResearchService) *ResearchHandler {
	return &ResearchHandler{researchService: researchService}
}

// ListResearch godoc
// GET /api/v1/research
// Lists entries, optionally filtered by ?status=Published.
func (h *ResearchHandler) ListResearch(c *gin.Context) {
	entries, err := h.researchService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"research": entries})
}

// GetResearch godoc
// GET /api/v1/research/:id
// Returns one entry and records a view.
func (h *ResearchHandler) GetResearch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	entry, err := h.researchService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"research": entry})
}

// TrackResearchDownload godoc
// POST /api/v1/research/:id/track-download
// Records one download of the entry's attached file.
func (h *ResearchHandler) TrackResearchDownload(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.researchService.TrackDownload(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrResearchNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "download tracked"})
}

// CreateResearch godoc
// POST /api/v1/admin/research
// Creates an entry.
func (h *ResearchHandler) CreateResearch(c *gin.Context) {
	var req model.ResearchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entry, err := h.researchService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"research": entry})
}

// UpdateResearch godoc
// PUT /api/v1/admin/research/:id
// Updates an entry.
func (h *ResearchHandler) UpdateResearch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ResearchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entry, err := h.researchService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrResearchNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"research": entry})
}

// DeleteResearch godoc
// DELETE /api/v1/admin/research/:id
// Removes an entry permanently.
func (h *ResearchHandler) DeleteResearch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.researchService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrResearchNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "research entry deleted successfully"})
}
