package model

import "time"

// Research represents a research entry or publication abstract.
type Research struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Authors       []string  `json:"authors"`
	Status        string    `json:"status"`
	FileURL       string    `json:"file_url,omitempty"`
	PublishedDate time.Time `json:"published_date"`
	Views         int       `json:"views"`
	Downloads     int       `json:"downloads"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ResearchRequest is the payload for creating or updating a research entry.
type ResearchRequest struct {
	Title         string     `json:"title" binding:"required,min=2,max=300"`
	Description   string     `json:"description" binding:"required"`
	Authors       []string   `json:"authors,omitempty"`
	Status        string     `json:"status,omitempty" binding:"omitempty,oneof=Draft Published 'Under Review'"`
	FileURL       string     `json:"file_url,omitempty"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
}
