package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() SessionPayload {
	return SessionPayload{
		Course:     "c1",
		Instructor: "Dr. Rao",
		Date:       "2025-03-10",
		Time:       "10:00",
		Mode:       "online",
		Link:       "https://meet.example.com/abc",
	}
}

func TestSessionPayloadValidation(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Struct(validSession()))

	p := validSession()
	p.Mode = "satellite"
	err := v.Struct(p)
	require.Error(t, err)
	assert.Equal(t, "mode is invalid", Describe(err))

	p = validSession()
	p.Date = "10/03/2025"
	assert.Equal(t, "date must be a date in YYYY-MM-DD format", Describe(v.Struct(p)))

	p = validSession()
	p.Link = ""
	assert.NoError(t, v.Struct(p))
}

func TestAnnouncementTitleLimit(t *testing.T) {
	v := NewValidator()
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	err := v.Struct(AnnouncementPayload{Title: string(long), Content: "body"})

	require.Error(t, err)
	assert.Equal(t, "title must be at most 100 characters", Describe(err))
	assert.NoError(t, v.Struct(AnnouncementPayload{Title: string(long[:100]), Content: "body"}))
}

func TestUserPayloadRules(t *testing.T) {
	v := NewValidator()
	p := UserPayload{Name: "Asha", Email: "asha@example.com", Role: "telecaller"}

	assert.NoError(t, v.Struct(p))
	assert.Error(t, p.ValidateCreate())

	p.Password = "abc"
	assert.Equal(t, "password must be at least 6 characters", Describe(v.Struct(p)))

	p.Password = "secret1"
	p.Role = "owner"
	assert.Equal(t, "role is invalid", Describe(v.Struct(p)))
}

func TestInquiryPayloadStatus(t *testing.T) {
	v := NewValidator()
	p := InquiryPayload{Name: "Ravi", Phone: "9876543210", CourseInterest: "JEE"}
	assert.NoError(t, v.Struct(p))

	p.Status = "waitlisted"
	assert.NoError(t, v.Struct(p))

	p.Status = "archived"
	assert.Error(t, v.Struct(p))
}
