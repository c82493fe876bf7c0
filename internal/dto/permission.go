package dto

import (
	"github.com/cashvault/cashvault_backend/internal/core/domain"
)

// UpsertPermissionRequest defines the capability flags granted to a user on
// a safe. Manage implies write; the service enforces the implication.
type UpsertPermissionRequest struct {
	CanRead   bool `json:"canRead"`
	CanWrite  bool `json:"canWrite"`
	CanManage bool `json:"canManage"`
}

// PermissionResponse defines the data returned for a safe permission.
type PermissionResponse struct {
	UserID    string `json:"userID"`
	SafeID    string `json:"safeID"`
	CanRead   bool   `json:"canRead"`
	CanWrite  bool   `json:"canWrite"`
	CanManage bool   `json:"canManage"`
}

// ListPermissionsResponse wraps the permissions held by one user.
type ListPermissionsResponse struct {
	Permissions []PermissionResponse `json:"permissions"`
}

// ToPermissionResponse converts a domain.SafePermission to its response DTO.
func ToPermissionResponse(p *domain.SafePermission) PermissionResponse {
	return PermissionResponse{
		UserID:    p.UserID,
		SafeID:    p.SafeID,
		CanRead:   p.CanRead,
		CanWrite:  p.CanWrite,
		CanManage: p.CanManage,
	}
}

// ToPermissionResponses converts a slice of domain permissions.
func ToPermissionResponses(perms []domain.SafePermission) []PermissionResponse {
	responses := make([]PermissionResponse, len(perms))
	for i := range perms {
		responses[i] = ToPermissionResponse(&perms[i])
	}
	return responses
}
