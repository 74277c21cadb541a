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

// DownloadHandler handles the downloadable document catalog.
type DownloadHandler struct {
	downloadService *service.DownloadService
}

// NewDownloadHandler creates a new DownloadHandler.
func NewDownloadHandler(downloadService *service.DownloadService) *DownloadHandler {
	return &DownloadHandler{downloadService: downloadService}
}

// ListDownloads godoc
// GET /api/v1/downloads
// Lists active entries, optionally filtered by ?department= and ?category=.
func (h *DownloadHandler) ListDownloads(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	downloads, err := h.downloadService.List(c.Request.Context(), c.Query("department"), c.Query("category"), activeOnly)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"downloads": downloads})
}

// GetDownload godoc
// GET /api/v1/downloads/:id
// Returns one entry.
func (h *DownloadHandler) GetDownload(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	download, err := h.downloadService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"download": download})
}

// TrackDownload godoc
// POST /api/v1/downloads/:id/track
// Records one download of an entry. Public, called by the frontend right
// before it opens the file URL.
func (h *DownloadHandler) TrackDownload(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.downloadService.Track(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDownloadNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "download tracked"})
}

// CreateDownload godoc
// POST /api/v1/admin/downloads
// Creates a catalog entry.
func (h *DownloadHandler) CreateDownload(c *gin.Context) {
	var req model.DownloadRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	download, err := h.downloadService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"download": download})
}

// UpdateDownload godoc
// PUT /api/v1/admin/downloads/:id
// Updates a catalog entry.
func (h *DownloadHandler) UpdateDownload(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.DownloadRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	download, err := h.downloadService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrDownloadNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"download": download})
}

// DeleteDownload godoc
// DELETE /api/v1/admin/downloads/:id
// Soft-deletes a catalog entry.
func (h *DownloadHandler) DeleteDownload(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.downloadService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDownloadNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "download deleted successfully"})
}
