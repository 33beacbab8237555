package models

// UserRole represents the staff roles known to the upstream API.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
	RoleTelecaller UserRole = "telecaller"
	RoleUser       UserRole = "user"
)

// Valid reports whether the role is known.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleTelecaller, RoleUser:
		return true
	default:
		return false
	}
}

// User is a staff account managed from the users & roles screen.
type User struct {
	ID    string   `json:"_id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u User) Key() string { return u.ID }

