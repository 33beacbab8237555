package models

import "time"

// Principal is the signed-in administrator as reported by the upstream session endpoint.
type Principal struct {
	ID    string   `json:"_id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

// Key identifies the principal's workspace. Upstreams that omit the id fall back to email.
func (p Principal) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Email
}

// SessionEntry is the cached form of a resolved session.
type SessionEntry struct {
	Principal Principal `json:"principal"`
	ExpiresAt time.Time `json:"expires_at"`
}
