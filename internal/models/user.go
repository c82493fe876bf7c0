package models

import "time"

// User is the DB-shaped row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	Role         string `db:"role"` // ADMIN or USER
	PasswordHash string `db:"password_hash"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// SafePermission is the DB-shaped row of the user_safe_permissions table.
type SafePermission struct {
	UserID    string `db:"user_id"`
	SafeID    string `db:"safe_id"`
	CanRead   bool   `db:"can_read"`
	CanWrite  bool   `db:"can_write"`
	CanManage bool   `db:"can_manage"`
	AuditFields
}
