package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

var ErrNewsEventNotFound = errors.New("news/event post not found")

// NewsEventService handles news, event, and announcement posts.
type NewsEventService struct {
	repo *repository.NewsEventRepository
}

// NewNewsEventService creates a new NewsEventService.
func NewNewsEventService(repo *repository.NewsEventRepository) *NewsEventService {
	return &NewsEventService{repo: repo}
}

// List retrieves posts, optionally filtered by category.
func (s *NewsEventService) List(ctx context.Context, category string, activeOnly bool) ([]model.NewsEvent, error) {
	return s.repo.List(ctx, category, activeOnly)
}

// GetByID retrieves a post by ID.
func (s *NewsEventService) GetByID(ctx context.Context, id int) (*model.NewsEvent, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNewsEventNotFound
	}
	return n, nil
}

// Create creates a post. Category defaults to News and event type to Other.
func (s *NewsEventService) Create(ctx context.Context, req *model.NewsEventRequest) (*model.NewsEvent, error) {
	n := &model.NewsEvent{IsActive: true}
	applyNewsEventRequest(n, req)
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Update modifies an existing post.
func (s *NewsEventService) Update(ctx context.Context, id int, req *model.NewsEventRequest) (*model.NewsEvent, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNewsEventNotFound
	}
	applyNewsEventRequest(n, req)
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// Delete soft-deletes a post.
func (s *NewsEventService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNewsEventNotFound
	}
	return nil
}

func applyNewsEventRequest(n *model.NewsEvent, req *model.NewsEventRequest) {
	n.Title = strings.TrimSpace(req.Title)
	n.Description = req.Description
	n.Date = req.Date
	n.ImageURL = req.ImageURL
	n.Category = req.Category
	if n.Category == "" {
		n.Category = "News"
	}
	n.Location = req.Location
	n.StartTime = req.StartTime
	n.EndTime = req.EndTime
	n.EventType = req.EventType
	if n.EventType == "" {
		n.EventType = "Other"
	}
	n.FacebookEmbedURL = req.FacebookEmbedURL
	if req.IsActive != nil {
		n.IsActive = *req.IsActive
	}
}
