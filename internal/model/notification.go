package model

import "time"

// Notification represents a site-wide notice. ExpiresAt, when set, hides the
// notification from active listings after it elapses.
type Notification struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Date           time.Time  `json:"date"`
	Category       string     `json:"category"`
	Priority       string     `json:"priority"`
	Department     string     `json:"department,omitempty"`
	TargetAudience string     `json:"target_audience"`
	ImageURL       string     `json:"image_url,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NotificationRequest is the payload for creating or updating a notification.
type NotificationRequest struct {
	Title          string     `json:"title" binding:"required,min=2,max=200"`
	Message        string     `json:"message" binding:"required"`
	Date           *time.Time `json:"date,omitempty"`
	Category       string     `json:"category,omitempty" binding:"omitempty,oneof=General Urgent Academic Event Maintenance"`
	Priority       string     `json:"priority,omitempty" binding:"omitempty,oneof=Low Normal High Critical"`
	Department     string     `json:"department,omitempty" binding:"omitempty,max=100"`
	TargetAudience string     `json:"target_audience,omitempty" binding:"omitempty,oneof=All Students Faculty Staff"`
	ImageURL       string     `json:"image_url,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}
