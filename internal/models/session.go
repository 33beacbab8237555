package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// SessionMode describes how a live class is delivered.
type SessionMode string

const (
	SessionModeOnline  SessionMode = "online"
	SessionModeOffline SessionMode = "offline"
	SessionModeHybrid  SessionMode = "hybrid"
)

// Valid reports whether the mode is one of the known delivery modes.
func (m SessionMode) Valid() bool {
	switch m {
	case SessionModeOnline, SessionModeOffline, SessionModeHybrid:
		return true
	default:
		return false
	}
}

// CourseRef is the populated course reference embedded in sessions.
type CourseRef struct {
	ID             string `json:"_id"`
	Title          string `json:"title"`
	Slug           string `json:"slug,omitempty"`
	Category       string `json:"category,omitempty"`
	BannerImageURL string `json:"bannerImageUrl,omitempty"`
}

// UnmarshalJSON accepts an unpopulated reference ("id") as well as the object form.
func (c *CourseRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	type alias CourseRef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = CourseRef(a)
	return nil
}

// ClassSession is one scheduled live class as returned by the upstream API.
type ClassSession struct {
	ID          string      `json:"_id"`
	Course      *CourseRef  `json:"course"`
	Instructor  *string     `json:"instructor"`
	Date        Date        `json:"date"`
	Time        string      `json:"time"`
	Mode        SessionMode `json:"mode"`
	Link        string      `json:"link"`
	IsCancelled bool        `json:"isCancelled"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Key returns the session id.
func (s ClassSession) Key() string { return s.ID }

// CourseTitle returns the populated course title or "Untitled" when unresolved.
func (s ClassSession) CourseTitle() string {
	if s.Course == nil || s.Course.Title == "" {
		return "Untitled"
	}
	return s.Course.Title
}

// DisplayMode falls back to offline when the upstream left the mode empty.
func (s ClassSession) DisplayMode() SessionMode {
	if s.Mode == "" {
		return SessionModeOffline
	}
	return s.Mode
}
