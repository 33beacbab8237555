package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// InquiryStatus is the admission pipeline stage of an inquiry.
type InquiryStatus string

const (
	InquiryStatusPending    InquiryStatus = "pending"
	InquiryStatusApproved   InquiryStatus = "approved"
	InquiryStatusRejected   InquiryStatus = "rejected"
	InquiryStatusWaitlisted InquiryStatus = "waitlisted"
)

// Valid reports whether the status is a known pipeline stage.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusPending, InquiryStatusApproved, InquiryStatusRejected, InquiryStatusWaitlisted:
		return true
	default:
		return false
	}
}

// Inquiry is an admission inquiry.
type Inquiry struct {
	ID             string        `json:"_id"`
	Name           string        `json:"name"`
	Phone          Phone         `json:"phone"`
	Email          string        `json:"email"`
	CourseInterest string        `json:"courseInterest"`
	Message        string        `json:"message"`
	Status         InquiryStatus `json:"status"`
	FollowUps      []string      `json:"followUps,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (i Inquiry) Key() string { return i.ID }

// InquiryCard is an inquiry as rendered on the board, with any unsaved local status.
type InquiryCard struct {
	Inquiry
	PersistedStatus InquiryStatus `json:"persistedStatus"`
	PendingSave     bool          `json:"pendingSave"`
}

// Phone tolerates the upstream sending phone numbers either as strings or as JSON numbers.
type Phone string

func (p *Phone) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Phone(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = Phone(n.String())
	return nil
}
