package models

// Role is the closed set of user roles.
type Role string

// Role constants, ordered by privilege
const (
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
	RoleChairman  Role = "chairman"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleAdmin, RoleChairman:
		return true
	}
	return false
}

// Privileged reports whether the role may manage events, users and roles
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleChairman
}

// User represents a user in the system
type User struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	BirthDate    string `json:"birth_date"`
	Phone        string `json:"phone"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
	Approved     bool   `json:"approved"`
}

// UserListItem is the admin-facing projection of a user.
// The password hash is excluded structurally, not by column filtering.
type UserListItem struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Approved bool   `json:"approved"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RoleUpdateRequest carries the optional role/approved fields for
// POST /api/roles/{userId}. Nil fields are left unchanged.
type RoleUpdateRequest struct {
	Role     *Role `json:"role"`
	Approved *bool `json:"approved"`
}
