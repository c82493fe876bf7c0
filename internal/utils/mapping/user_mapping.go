package mapping

import (
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/models"
)

// ToModelUser converts a domain User to its DB row form.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		Name:         d.Name,
		Role:         string(d.Role),
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainUser converts a DB row to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		Name:         m.Name,
		Role:         domain.UserRole(m.Role),
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}

// ToModelSafePermission converts a domain SafePermission to its DB row form.
func ToModelSafePermission(d domain.SafePermission) models.SafePermission {
	return models.SafePermission{
		UserID:    d.UserID,
		SafeID:    d.SafeID,
		CanRead:   d.CanRead,
		CanWrite:  d.CanWrite,
		CanManage: d.CanManage,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainSafePermission converts a DB row to a domain SafePermission.
func ToDomainSafePermission(m models.SafePermission) domain.SafePermission {
	return domain.SafePermission{
		UserID:        m.UserID,
		SafeID:        m.SafeID,
		CanRead:       m.CanRead,
		CanWrite:      m.CanWrite,
		CanManage:     m.CanManage,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
