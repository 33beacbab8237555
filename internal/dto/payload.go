package dto

import (
	"errors"
	"strings"
)

// SessionPayload is the create/update form of a live class.
type SessionPayload struct {
	Course      string `json:"course" validate:"required"`
	Instructor  string `json:"instructor" validate:"required"`
	Date        string `json:"date" validate:"required,civildate"`
	Time        string `json:"time" validate:"required"`
	Mode        string `json:"mode" validate:"required,sessionmode"`
	Link        string `json:"link,omitempty" validate:"omitempty,url"`
	IsCancelled bool   `json:"isCancelled"`
}

// CoursePayload is the course catalog form.
type CoursePayload struct {
	Title          string  `json:"title" validate:"required,max=200"`
	Slug           string  `json:"slug,omitempty"`
	Category       string  `json:"category" validate:"required"`
	Subtitle       string  `json:"subtitle,omitempty"`
	Description    string  `json:"description,omitempty"`
	Duration       string  `json:"duration,omitempty"`
	SuccessRate    float64 `json:"successRate" validate:"gte=0,lte=100"`
	BannerImageURL string  `json:"bannerImageUrl,omitempty" validate:"omitempty,url"`
	IsPublished    bool    `json:"isPublished"`
}

// AnnouncementPayload is the announcement form.
type AnnouncementPayload struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// UserPayload is the staff account form. Password is optional on update and
// required on create.
type UserPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"required,userrole"`
}

// ValidateCreate enforces the create-only password rule.
func (p UserPayload) ValidateCreate() error {
	if strings.TrimSpace(p.Password) == "" {
		return errors.New("password is required")
	}
	return nil
}

// InquiryPayload is a manually entered admission inquiry.
type InquiryPayload struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required,min=7,max=20"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	CourseInterest string `json:"courseInterest" validate:"required"`
	Message        string `json:"message,omitempty"`
	Status         string `json:"status,omitempty" validate:"omitempty,inquirystatus"`
}

// MediaPayload registers a media library entry by URL.
type MediaPayload struct {
	Title      string   `json:"title" validate:"required"`
	URL        string   `json:"url" validate:"required,url"`
	Type       string   `json:"type" validate:"required,oneof=image video pdf document"`
	IsFeatured bool     `json:"isFeatured"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,dive,required"`
}

// NoPayload marks read-only resources.
type NoPayload struct{}

// CreateValidator is implemented by payloads with rules that only apply on create.
type CreateValidator interface {
	ValidateCreate() error
}
