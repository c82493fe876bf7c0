package mapping

import (
	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/cashvault/cashvault_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to its DB row form.
func ToModelTransaction(d domain.Transaction) (models.Transaction, error) {
	billDetails, err := MarshalBills(d.Bills)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		SafeID:        d.SafeID,
		Kind:          string(d.Kind),
		Mode:          string(d.Mode),
		BillDetails:   billDetails,
		Amount:        d.Amount,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTransaction converts a DB row to a domain Transaction.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	bills, err := UnmarshalBills(m.BillDetails)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		SafeID:        m.SafeID,
		Kind:          domain.TransactionKind(m.Kind),
		Mode:          domain.TransactionMode(m.Mode),
		Bills:         bills,
		Amount:        m.Amount,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainTransactions converts a slice of DB rows, failing on the first
// undecodable payload.
func ToDomainTransactions(ms []models.Transaction) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
