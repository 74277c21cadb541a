package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

var ErrSliderNotFound = errors.New("slider not found")

// SliderService handles homepage carousel entries.
type SliderService struct {
	repo *repository.SliderRepository
}

// NewSliderService creates a new SliderService.
func NewSliderService(repo *repository.SliderRepository) *SliderService {
	return &SliderService{repo: repo}
}

// List retrieves sliders ordered by sort order.
func (s *SliderService) List(ctx context.Context, activeOnly bool) ([]model.Slider, error) {
	return s.repo.List(ctx, activeOnly)
}

// GetByID retrieves a slider by ID.
func (s *SliderService) GetByID(ctx context.Context, id int) (*model.Slider, error) {
	sl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrSliderNotFound
	}
	return sl, nil
}

// Create creates a slider. Autoplay defaults on with a 5 second interval.
func (s *SliderService) Create(ctx context.Context, req *model.SliderRequest) (*model.Slider, error) {
	sl := &model.Slider{IsActive: true, AutoPlay: true}
	applySliderRequest(sl, req)
	if err := s.repo.Create(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

// Update modifies an existing slider.
func (s *SliderService) Update(ctx context.Context, id int, req *model.SliderRequest) (*model.Slider, error) {
	sl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrSliderNotFound
	}
	applySliderRequest(sl, req)
	if err := s.repo.Update(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

// Delete soft-deletes a slider.
func (s *SliderService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSliderNotFound
	}
	return nil
}

func applySliderRequest(sl *model.Slider, req *model.SliderRequest) {
	sl.Title = strings.TrimSpace(req.Title)
	sl.Description = req.Description
	sl.ImageURL = req.ImageURL
	sl.ButtonText = req.ButtonText
	sl.ButtonLink = req.ButtonLink
	sl.SortOrder = req.SortOrder
	if req.AutoPlay != nil {
		sl.AutoPlay = *req.AutoPlay
	}
	sl.AutoPlayInterval = req.AutoPlayInterval
	if sl.AutoPlayInterval == 0 {
		sl.AutoPlayInterval = 5000
	}
	if req.IsActive != nil {
		sl.IsActive = *req.IsActive
	}
}
