package models

// Role identifies which directory an authenticated account belongs to.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleNone  Role = "none"
)

// Valid reports whether r is a role that can authenticate.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Session records which account is currently active in this process.
// It is ephemeral: set by a successful login, cleared by logout, and never
// persisted.
type Session struct {
	Handle      string `json:"handle"`
	Role        Role   `json:"role"`
	DisplayName string `json:"display_name"`
}

// LoggedOut is the zero session state.
var LoggedOut = Session{Role: RoleNone}
