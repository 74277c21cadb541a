package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sihs-edu/campus-backend/internal/model"
	"github.com/sihs-edu/campus-backend/internal/repository"
)

var ErrFacultyNotFound = errors.New("faculty member not found")

// FacultyService handles faculty profile business logic.
type FacultyService struct {
	repo     *repository.FacultyRepository
	deptRepo *repository.DepartmentRepository
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(repo *repository.FacultyRepository, deptRepo *repository.DepartmentRepository) *FacultyService {
	return &FacultyService{repo: repo, deptRepo: deptRepo}
}

// List retrieves faculty members, optionally filtered by department.
func (s *FacultyService) List(ctx context.Context, departmentID *int, activeOnly bool) ([]model.Faculty, error) {
	return s.repo.List(ctx, departmentID, activeOnly)
}

// GetByID retrieves a faculty member by ID.
func (s *FacultyService) GetByID(ctx context.Context, id int) (*model.Faculty, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrFacultyNotFound
	}
	return f, nil
}

// Create creates a faculty profile. The referenced department must exist.
func (s *FacultyService) Create(ctx context.Context, req *model.FacultyRequest) (*model.Faculty, error) {
	if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, ErrDepartmentNotFound
	}
	f := &model.Faculty{IsActive: true}
	applyFacultyRequest(f, req)
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Update modifies an existing faculty profile.
func (s *FacultyService) Update(ctx context.Context, id int, req *model.FacultyRequest) (*model.Faculty, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrFacultyNotFound
	}
	if req.DepartmentID != f.DepartmentID {
		if _, err := s.deptRepo.GetByID(ctx, req.DepartmentID); err != nil {
			return nil, ErrDepartmentNotFound
		}
	}
	applyFacultyRequest(f, req)
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete soft-deletes a faculty profile.
func (s *FacultyService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFacultyNotFound
	}
	return nil
}

func applyFacultyRequest(f *model.Faculty, req *model.FacultyRequest) {
	f.Name = strings.TrimSpace(req.Name)
	f.DepartmentID = req.DepartmentID
	f.Designation = req.Designation
	f.Email = NormalizeEmail(req.Email)
	f.Phone = req.Phone
	f.Image = req.Image
	f.Education = req.Education
	f.Specialization = req.Specialization
	f.Bio = req.Bio
	f.ResearchInterest = req.ResearchInterest
	f.JoiningDate = req.JoiningDate
	f.Experience = req.Experience
	f.Publications = req.Publications
	f.SocialLinks = req.SocialLinks
	f.OfficeLocation = req.OfficeLocation
	f.OfficeHours = req.OfficeHours
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}
}
