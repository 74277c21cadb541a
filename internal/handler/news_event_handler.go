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

// NewsEventHandler handles news, event, and announcement routes.
type NewsEventHandler struct {
	newsEventService *service.NewsEventService
}

// NewNewsEventHandler creates a new NewsEventHandler.
func NewNewsEventHandler(newsEventService *service.NewsEventService) *NewsEventHandler {
	return &NewsEventHandler{newsEventService: newsEventService}
}

// ListNewsEvents godoc
// GET /api/v1/news-events
// Lists active posts, optionally filtered by ?category=News|Event|Announcement.
func (h *NewsEventHandler) ListNewsEvents(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	posts, err := h.newsEventService.List(c.Request.Context(), c.Query("category"), activeOnly)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"news_events": posts})
}

// GetNewsEvent godoc
// GET /api/v1/news-events/:id
// Returns one post.
func (h *NewsEventHandler) GetNewsEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	post, err := h.newsEventService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"news_event": post})
}

// CreateNewsEvent godoc
// POST /api/v1/admin/news-events
// Creates a post.
func (h *NewsEventHandler) CreateNewsEvent(c *gin.Context) {
	var req model.NewsEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	post, err := h.newsEventService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"news_event": post})
}

// UpdateNewsEvent godoc
// PUT /api/v1/admin/news-events/:id
// Updates a post.
func (h *NewsEventHandler) UpdateNewsEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.NewsEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	post, err := h.newsEventService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNewsEventNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"news_event": post})
}

// DeleteNewsEvent godoc
// DELETE /api/v1/admin/news-events/:id
// Soft-deletes a post.
func (h *NewsEventHandler) DeleteNewsEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.newsEventService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNewsEventNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "post deleted successfully"})
}
