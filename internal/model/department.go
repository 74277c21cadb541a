package model

import "time"

// Course is a single course inside a semester plan.
type Course struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Credits string `json:"credits" binding:"required"`
	Type    string `json:"type,omitempty" binding:"omitempty,oneof=Theory Practical Both"`
}

// Semester groups courses within a program.
type Semester struct {
	SemesterNumber int      `json:"semester_number" binding:"required,min=1"`
	Title          string   `json:"title" binding:"required"`
	Courses        []Course `json:"courses,omitempty" binding:"omitempty,dive"`
}

// Program is a degree program offered by a department.
type Program struct {
	Name        string     `json:"name" binding:"required"`
	Duration    string     `json:"duration" binding:"required"`
	DegreeType  string     `json:"degree_type" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Semesters   []Semester `json:"semesters,omitempty" binding:"omitempty,dive"`
}

// Department represents an academic department. Programs are stored as a
// JSONB document; Facilities and ResearchAreas as text arrays.
type Department struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Code          string    `json:"code"`
	HeadOfDept    string    `json:"head_of_dept"`
	FoundedYear   int       `json:"founded_year"`
	TotalFaculty  int       `json:"total_faculty"`
	ImageURL      string    `json:"image_url"`
	Path          string    `json:"path"`
	Programs      []Program `json:"programs"`
	Facilities    []string  `json:"facilities"`
	ResearchAreas []string  `json:"research_areas"`
	ContactEmail  string    `json:"contact_email,omitempty"`
	ContactPhone  string    `json:"contact_phone,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DepartmentRequest is the payload for creating or updating a department.
type DepartmentRequest struct {
	Name          string    `json:"name" binding:"required,min=2,max=100"`
	Description   string    `json:"description" binding:"required"`
	Code          string    `json:"code" binding:"required,min=2,max=10"`
	HeadOfDept    string    `json:"head_of_dept" binding:"required,max=100"`
	FoundedYear   int       `json:"founded_year" binding:"required,min=1900"`
	TotalFaculty  int       `json:"total_faculty" binding:"min=0"`
	ImageURL      string    `json:"image_url,omitempty"`
	Path          string    `json:"path,omitempty"`
	Programs      []Program `json:"programs,omitempty" binding:"omitempty,dive"`
	Facilities    []string  `json:"facilities,omitempty"`
	ResearchAreas []string  `json:"research_areas,omitempty"`
	ContactEmail  string    `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone  string    `json:"contact_phone,omitempty" binding:"omitempty,max=32"`
	IsActive      *bool     `json:"is_active,omitempty"`
}
