package model

import "time"

// Slider represents one homepage carousel entry.
type Slider struct {
	ID               int       `json:"id"`
	Title            string    `json:"title,omitempty"`
	Description      string    `json:"description,omitempty"`
	ImageURL         string    `json:"image_url"`
	ButtonText       string    `json:"button_text"`
	ButtonLink       string    `json:"button_link"`
	SortOrder        int       `json:"sort_order"`
	AutoPlay         bool      `json:"auto_play"`
	AutoPlayInterval int       `json:"auto_play_interval"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SliderRequest is the payload for creating or updating a slider.
type SliderRequest struct {
	Title            string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description      string `json:"description,omitempty" binding:"omitempty,max=500"`
	ImageURL         string `json:"image_url" binding:"required"`
	ButtonText       string `json:"button_text,omitempty" binding:"omitempty,max=50"`
	ButtonLink       string `json:"button_link,omitempty" binding:"omitempty,max=255"`
	SortOrder        int    `json:"sort_order,omitempty" binding:"omitempty,min=0"`
	AutoPlay         *bool  `json:"auto_play,omitempty"`
	AutoPlayInterval int    `json:"auto_play_interval,omitempty" binding:"omitempty,min=1000"`
	IsActive         *bool  `json:"is_active,omitempty"`
}
