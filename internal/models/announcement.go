package models

import "time"

// Announcement is a notice published to students.
type Announcement struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a Announcement) Key() string { return a.ID }
