package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

var ErrDownloadNotFound = errors.New("download entry not found")

// DownloadService handles the downloadable document catalog.
type DownloadService struct {
	repo *repository.DownloadRepository
}

// NewDownloadService creates a new DownloadService.
func NewDownloadService(repo *repository.DownloadRepository) *DownloadService {
	return &DownloadService{repo: repo}
}

// List retrieves entries, optionally filtered by department and category.
func (s *DownloadService) List(ctx context.Context, department, category string, activeOnly bool) ([]model.Download, error) {
	return s.repo.List(ctx, department, category, activeOnly)
}

// GetByID retrieves an entry by ID.
func (s *DownloadService) GetByID(ctx context.Context, id int) (*model.Download, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDownloadNotFound
	}
	return d, nil
}

// Create creates a download entry.
func (s *DownloadService) Create(ctx context.Context, req *model.DownloadRequest) (*model.Download, error) {
	d := &model.Download{IsActive: true}
	applyDownloadRequest(d, req)
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update modifies an existing entry. The download counter is untouched.
func (s *DownloadService) Update(ctx context.Context, id int, req *model.DownloadRequest) (*model.Download, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDownloadNotFound
	}
	applyDownloadRequest(d, req)
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Track records one download of an entry. The increment happens in a single
// statement so concurrent downloads never lose counts.
func (s *DownloadService) Track(ctx context.Context, id int) error {
	tracked, err := s.repo.Track(ctx, id)
	if err != nil {
		return err
	}
	if !tracked {
		return ErrDownloadNotFound
	}
	return nil
}

// Delete soft-deletes an entry.
func (s *DownloadService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDownloadNotFound
	}
	return nil
}

func applyDownloadRequest(d *model.Download, req *model.DownloadRequest) {
	d.Title = strings.TrimSpace(req.Title)
	d.Description = req.Description
	d.FileURL = req.FileURL
	d.FileName = req.FileName
	d.FileSize = req.FileSize
	d.Category = req.Category
	if d.Category == "" {
		d.Category = "General"
	}
	d.Department = req.Department
	d.FileType = req.FileType
	if d.FileType == "" {
		d.FileType = "PDF"
	}
	d.UploadedBy = req.UploadedBy
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}
}
