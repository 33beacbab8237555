package models

import "time"

// Media is an entry of the media library.
type Media struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	IsFeatured bool      `json:"isFeatured"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (m Media) Key() string { return m.ID }
