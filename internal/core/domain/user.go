package domain

import "time"

// UserRole is the application-wide role of a user. Administrators
// implicitly hold every capability on every safe.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}

// IsAdmin reports whether the user holds the application-wide ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
