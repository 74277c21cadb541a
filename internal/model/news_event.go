package model

import "time"

// NewsEvent represents a news post, event, or announcement.
type NewsEvent struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Date             time.Time `json:"date"`
	ImageURL         string    `json:"image_url,omitempty"`
	Category         string    `json:"category"`
	Location         string    `json:"location,omitempty"`
	StartTime        string    `json:"start_time,omitempty"`
	EndTime          string    `json:"end_time,omitempty"`
	EventType        string    `json:"event_type"`
	FacebookEmbedURL string    `json:"facebook_embed_url,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewsEventRequest is the payload for creating or updating a news/event post.
type NewsEventRequest struct {
	Title            string    `json:"title" binding:"required,min=2,max=200"`
	Description      string    `json:"description" binding:"required"`
	Date             time.Time `json:"date" binding:"required"`
	ImageURL         string    `json:"image_url,omitempty"`
	Category         string    `json:"category,omitempty" binding:"omitempty,oneof=News Event Announcement"`
	Location         string    `json:"location,omitempty" binding:"omitempty,max=200"`
	StartTime        string    `json:"start_time,omitempty" binding:"omitempty,max=20"`
	EndTime          string    `json:"end_time,omitempty" binding:"omitempty,max=20"`
	EventType        string    `json:"event_type,omitempty" binding:"omitempty,oneof=Other Seminar Workshop Conference Celebration Meeting"`
	FacebookEmbedURL string    `json:"facebook_embed_url,omitempty"`
	IsActive         *bool     `json:"is_active,omitempty"`
}
