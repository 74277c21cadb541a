package model

import "time"

// Download represents a downloadable document reference.
type Download struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	FileURL        string     `json:"file_url"`
	FileName       string     `json:"file_name,omitempty"`
	FileSize       string     `json:"file_size,omitempty"`
	Category       string     `json:"category"`
	Department     string     `json:"department"`
	FileType       string     `json:"file_type"`
	DownloadCount  int        `json:"download_count"`
	UploadedBy     string     `json:"uploaded_by,omitempty"`
	LastDownloaded *time.Time `json:"last_downloaded,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// DownloadRequest is the payload for creating or updating a download entry.
type DownloadRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"required"`
	FileURL     string `json:"file_url" binding:"required"`
	FileName    string `json:"file_name,omitempty" binding:"omitempty,max=255"`
	FileSize    string `json:"file_size,omitempty" binding:"omitempty,max=32"`
	Category    string `json:"category,omitempty" binding:"omitempty,oneof=General Syllabus Notes Assignment 'Question Paper' Form Guideline"`
	Department  string `json:"department" binding:"required,max=100"`
	FileType    string `json:"file_type,omitempty" binding:"omitempty,oneof=PDF DOC DOCX XLS XLSX PPT PPTX ZIP Other"`
	UploadedBy  string `json:"uploaded_by,omitempty" binding:"omitempty,max=100"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
