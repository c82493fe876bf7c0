package domain

import "time"

// SafeCapability is one of the three independent capabilities a user may
// hold on a safe.
type SafeCapability string

const (
	CapabilityRead   SafeCapability = "READ"
	CapabilityWrite  SafeCapability = "WRITE"
	CapabilityManage SafeCapability = "MANAGE"
)

// SafePermission grants a user a set of capabilities on one safe.
// Administrators bypass permission rows entirely.
type SafePermission struct {
	UserID        string    `json:"userID"` // FK -> users.user_id
	SafeID        string    `json:"safeID"` // FK -> safes.safe_id
	CanRead       bool      `json:"canRead"`
	CanWrite      bool      `json:"canWrite"`
	CanManage     bool      `json:"canManage"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Allows reports whether the permission row grants the given capability.
// Manage implies write access but not the reverse.
func (p *SafePermission) Allows(capability SafeCapability) bool {
	switch capability {
	case CapabilityRead:
		return p.CanRead
	case CapabilityWrite:
		return p.CanWrite || p.CanManage
	case CapabilityManage:
		return p.CanManage
	default:
		return false
	}
}
