package models

import "time"

// Course is the catalog subset used by the course list and filters.
type Course struct {
	ID                string    `json:"_id"`
	Title             string    `json:"title"`
	Slug              string    `json:"slug"`
	Category          string    `json:"category"`
	Subtitle          string    `json:"subtitle"`
	Description       string    `json:"description"`
	Duration          string    `json:"duration"`
	SuccessRate       float64   `json:"successRate"`
	YearsOfExcellence int       `json:"yearsOfExcellence"`
	BannerImageURL    string    `json:"bannerImageUrl"`
	BrochureURL       string    `json:"brochureUrl"`
	IsPublished       bool      `json:"isPublished"`
	CreatedAt         time.Time `json:"createdAt"`
}

func (c Course) Key() string { return c.ID }
