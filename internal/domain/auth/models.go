package auth

import "time"

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	RoleID    string     `json:"roleId"`
	RoleName  string     `json:"roleName"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type Role struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Modules []string `json:"modules"`
}

// UserContext is what the auth middleware places in the request context.
type UserContext struct {
	UserID   string
	RoleID   string
	RoleName string
}

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)
