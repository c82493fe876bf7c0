package dto

import (
	"fmt"
	"time"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for appending a transaction
// to a safe's ledger. Bills is keyed by denomination string ("20": 5 means
// five 20s); the billmap validation rejects unknown denominations and
// negative quantities before the service layer runs.
type CreateTransactionRequest struct {
	Kind  string           `json:"kind" binding:"required,oneof=INVENTORY MOVEMENT"`
	Mode  string           `json:"mode" binding:"required,oneof=ADD REMOVE REPLACE"`
	Bills map[string]int64 `json:"bills" binding:"required,billmap"`
	Notes string           `json:"notes"`
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID string           `json:"transactionID"`
	SafeID        string           `json:"safeID"`
	Kind          string           `json:"kind"`
	Mode          string           `json:"mode"`
	Bills         map[string]int64 `json:"bills"`
	Amount        decimal.Decimal  `json:"amount"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	CreatedBy     string           `json:"createdBy"`
}

// ListTransactionsParams defines query parameters for listing a safe's
// transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=50"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps one page of transactions with the cursor
// for the next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToBillCountMap converts a request bill payload into the domain map,
// validating every key and quantity.
func ToBillCountMap(bills map[string]int64) (domain.BillCountMap, error) {
	out := make(domain.BillCountMap, len(bills))
	for key, q := range bills {
		d, ok := domain.ParseDenomination(key)
		if !ok {
			return nil, fmt.Errorf("unknown denomination %q", key)
		}
		out[d] = q
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// ToBillDetails converts a domain bill map into its JSON representation
// with denomination string keys.
func ToBillDetails(bills domain.BillCountMap) map[string]int64 {
	out := make(map[string]int64, len(bills))
	for d, q := range bills {
		out[d.String()] = q
	}
	return out
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		SafeID:        txn.SafeID,
		Kind:          string(txn.Kind),
		Mode:          string(txn.Mode),
		Bills:         ToBillDetails(txn.Bills),
		Amount:        txn.Amount,
		Notes:         txn.Notes,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
