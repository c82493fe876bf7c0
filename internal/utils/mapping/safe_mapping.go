package mapping

import (
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/models"
)

// ToModelSafe converts a domain Safe to its DB row form.
func ToModelSafe(d domain.Safe) models.Safe {
	return models.Safe{
		SafeID:      d.SafeID,
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSafe converts a DB row to a domain Safe.
func ToDomainSafe(m models.Safe) domain.Safe {
	return domain.Safe{
		SafeID:      m.SafeID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInventory converts a domain Inventory to its DB row form.
func ToModelInventory(d domain.Inventory) (models.Inventory, error) {
	billDetails, err := MarshalBills(d.Bills)
	if err != nil {
		return models.Inventory{}, err
	}
	return models.Inventory{
		SafeID:        d.SafeID,
		BillDetails:   billDetails,
		TotalAmount:   d.TotalAmount,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}, nil
}

// ToDomainInventory converts a DB row to a domain Inventory.
func ToDomainInventory(m models.Inventory) (domain.Inventory, error) {
	bills, err := UnmarshalBills(m.BillDetails)
	if err != nil {
		return domain.Inventory{}, err
	}
	return domain.Inventory{
		SafeID:        m.SafeID,
		Bills:         bills,
		TotalAmount:   m.TotalAmount,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}, nil
}
