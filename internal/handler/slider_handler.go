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

// SliderHandler handles homepage carousel routes.
type SliderHandler struct {
	sliderService *service.SliderService
}

// NewSliderHandler creates a new SliderHandler.
func NewSliderHandler(sliderService *service.SliderService) *SliderHandler {
	return &SliderHandler{sliderService: sliderService}
}

// ListSliders godoc
// GET /api/v1/sliders
// Lists active sliders ordered for display.
func (h *SliderHandler) ListSliders(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	sliders, err := h.sliderService.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sliders": sliders})
}

// GetSlider godoc
// GET /api/v1/sliders/:id
// Returns one slider.
func (h *SliderHandler) GetSlider(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	slider, err := h.sliderService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slider": slider})
}

// CreateSlider godoc
// POST /api/v1/admin/sliders
// Creates a slider.
func (h *SliderHandler) CreateSlider(c *gin.Context) {
	var req model.SliderRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	slider, err := h.sliderService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"slider": slider})
}

// UpdateSlider godoc
// PUT /api/v1/admin/sliders/:id
// Updates a slider.
func (h *SliderHandler) UpdateSlider(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SliderRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	slider, err := h.sliderService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrSliderNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slider": slider})
}

// DeleteSlider godoc
// DELETE /api/v1/admin/sliders/:id
// Soft-deletes a slider.
func (h *SliderHandler) DeleteSlider(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.sliderService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrSliderNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "slider deleted successfully"})
}
