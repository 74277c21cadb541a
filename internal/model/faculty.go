package model

import "time"

// Designations recognized for faculty members.
var FacultyDesignations = []string{
	"Professor",
	"Associate Professor",
	"Assistant Professor",
	"Lecturer",
	"Instructor",
	"Visiting Faculty",
	"Head of Department",
	"Dean",
	"Vice Chancellor",
	"Research Scholar",
}

// Publication is one published work of a faculty member.
type Publication struct {
	Title   string `json:"title"`
	Journal string `json:"journal,omitempty"`
	Year    int    `json:"year,omitempty"`
	Link    string `json:"link,omitempty"`
}

// SocialLinks holds a faculty member's external profiles.
type SocialLinks struct {
	LinkedIn      string `json:"linkedin,omitempty"`
	GoogleScholar string `json:"google_scholar,omitempty"`
	ResearchGate  string `json:"research_gate,omitempty"`
	Website       string `json:"website,omitempty"`
}

// Faculty represents a faculty member profile. Publications and SocialLinks
// are stored as JSONB documents.
type Faculty struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	DepartmentID     int           `json:"department_id"`
	DepartmentName   string        `json:"department_name,omitempty"`
	Designation      string        `json:"designation"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone,omitempty"`
	Image            string        `json:"image,omitempty"`
	Education        string        `json:"education,omitempty"`
	Specialization   string        `json:"specialization,omitempty"`
	Bio              string        `json:"bio,omitempty"`
	ResearchInterest string        `json:"research_interest,omitempty"`
	JoiningDate      *time.Time    `json:"joining_date,omitempty"`
	Experience       string        `json:"experience,omitempty"`
	Publications     []Publication `json:"publications"`
	SocialLinks      SocialLinks   `json:"social_links"`
	OfficeLocation   string        `json:"office_location,omitempty"`
	OfficeHours      string        `json:"office_hours,omitempty"`
	IsActive         bool          `json:"is_active"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// FacultyRequest is the payload for creating or updating a faculty member.
type FacultyRequest struct {
	Name             string        `json:"name" binding:"required,min=2,max=100"`
	DepartmentID     int           `json:"department_id" binding:"required,min=1"`
	Designation      string        `json:"designation" binding:"required,oneof='Professor' 'Associate Professor' 'Assistant Professor' 'Lecturer' 'Instructor' 'Visiting Faculty' 'Head of Department' 'Dean' 'Vice Chancellor' 'Research Scholar'"`
	Email            string        `json:"email" binding:"required,email,max=255"`
	Phone            string        `json:"phone,omitempty" binding:"omitempty,max=32"`
	Image            string        `json:"image,omitempty"`
	Education        string        `json:"education,omitempty" binding:"omitempty,max=200"`
	Specialization   string        `json:"specialization,omitempty" binding:"omitempty,max=150"`
	Bio              string        `json:"bio,omitempty" binding:"omitempty,max=1000"`
	ResearchInterest string        `json:"research_interest,omitempty" binding:"omitempty,max=300"`
	JoiningDate      *time.Time    `json:"joining_date,omitempty"`
	Experience       string        `json:"experience,omitempty"`
	Publications     []Publication `json:"publications,omitempty"`
	SocialLinks      SocialLinks   `json:"social_links,omitempty"`
	OfficeLocation   string        `json:"office_location,omitempty"`
	OfficeHours      string        `json:"office_hours,omitempty"`
	IsActive         *bool         `json:"is_active,omitempty"`
}
