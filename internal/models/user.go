package models

// Known roles. Any other string is still a valid role value;
// these two are the ones the system itself cares about.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Field length limits enforced at write time.
const (
	MaxUsernameLen = 50
	MaxRoleLen     = 20
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"` // unique
	PasswordHash string `json:"-"`        // don't expose hash
	Role         string `json:"role"`     // e.g. "Admin" | "User"
}
