package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

var ErrResearchNotFound = errors.New("research entry not found")

// ResearchService handles research entries and their view/download counters.
type ResearchService struct {
	repo *repository.ResearchRepository

	now func() time.Time
}

// NewResearchService creates a new ResearchService.
func NewResearchService(repo *repository.ResearchRepository) *ResearchService {
	return &ResearchService{repo: repo, now: time.Now}
}

// List retrieves entries, optionally filtered by status.
func (s *ResearchService) List(ctx context.Context, status string) ([]model.Research, error) {
	return s.repo.List(ctx, status)
}

// GetByID retrieves an entry and records one view.
func (s *ResearchService) GetByID(ctx context.Context, id int) (*model.Research, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrResearchNotFound
	}
	if _, err := s.repo.IncrementViews(ctx, id); err == nil {
		e.Views++
	}
	return e, nil
}

// Create creates a research entry. Status defaults to Draft.
func (s *ResearchService) Create(ctx context.Context, req *model.ResearchRequest) (*model.Research, error) {
	e := &model.Research{}
	s.applyRequest(e, req)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update modifies an existing entry. Counters are untouched.
func (s *ResearchService) Update(ctx context.Context, id int, req *model.ResearchRequest) (*model.Research, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrResearchNotFound
	}
	s.applyRequest(e, req)
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// TrackDownload records one download of an entry's attached file.
func (s *ResearchService) TrackDownload(ctx context.Context, id int) error {
	tracked, err := s.repo.IncrementDownloads(ctx, id)
	if err != nil {
		return err
	}
	if !tracked {
		return ErrResearchNotFound
	}
	return nil
}

// Delete removes an entry permanently. Research has no active flag, so this
// is a hard delete.
func (s *ResearchService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrResearchNotFound
	}
	return nil
}

func (s *ResearchService) applyRequest(e *model.Research, req *model.ResearchRequest) {
	e.Title = strings.TrimSpace(req.Title)
	e.Description = req.Description
	e.Authors = req.Authors
	e.Status = req.Status
	if e.Status == "" {
		e.Status = "Draft"
	}
	e.FileURL = req.FileURL
	if req.PublishedDate != nil {
		e.PublishedDate = *req.PublishedDate
	} else if e.PublishedDate.IsZero() {
		e.PublishedDate = s.now()
	}
}
