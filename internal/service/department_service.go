package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

var ErrDepartmentNotFound = errors.New("department not found")

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// DepartmentService handles department business logic.
type DepartmentService struct {
	repo *repository.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(repo *repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

// DepartmentPath derives the public URL path for a department name, e.g.
// "Computer Science & Engineering" becomes
// "/department-of-computer-science-engineering".
func DepartmentPath(name string) string {
	slug := slugStripRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	slug = strings.Trim(slug, "-")
	return "/department-of-" + slug
}

// List retrieves departments, optionally restricted to active ones.
func (s *DepartmentService) List(ctx context.Context, activeOnly bool) ([]model.Department, error) {
	return s.repo.List(ctx, activeOnly)
}

// GetByID retrieves a department by its ID.
func (s *DepartmentService) GetByID(ctx context.Context, id int) (*model.Department, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}
	return d, nil
}

// GetByPath retrieves a department by its public URL path.
func (s *DepartmentService) GetByPath(ctx context.Context, path string) (*model.Department, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	d, err := s.repo.GetByPath(ctx, path)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}
	return d, nil
}

// Create creates a new department. The path is derived from the name unless
// the request provides one explicitly.
func (s *DepartmentService) Create(ctx context.Context, req *model.DepartmentRequest) (*model.Department, error) {
	d := &model.Department{IsActive: true}
	applyDepartmentRequest(d, req)
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update modifies an existing department. A name change without an explicit
// path re-derives the path, so stored links follow renames.
func (s *DepartmentService) Update(ctx context.Context, id int, req *model.DepartmentRequest) (*model.Department, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}
	applyDepartmentRequest(d, req)
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete soft-deletes a department.
func (s *DepartmentService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDepartmentNotFound
	}
	return nil
}

func applyDepartmentRequest(d *model.Department, req *model.DepartmentRequest) {
	d.Name = strings.TrimSpace(req.Name)
	d.Description = req.Description
	d.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	d.HeadOfDept = req.HeadOfDept
	d.FoundedYear = req.FoundedYear
	d.TotalFaculty = req.TotalFaculty
	d.ImageURL = req.ImageURL
	if req.Path != "" {
		d.Path = req.Path
	} else {
		d.Path = DepartmentPath(d.Name)
	}
	d.Programs = req.Programs
	d.Facilities = req.Facilities
	d.ResearchAreas = req.ResearchAreas
	d.ContactEmail = req.ContactEmail
	d.ContactPhone = req.ContactPhone
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}
}
