package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Safe is a physical cash container with its own transaction ledger and
// materialized inventory.
type Safe struct {
	SafeID      string `json:"safeID"` // Primary key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// SafeSummary is a safe enriched with its ledger size, for listing screens.
type SafeSummary struct {
	Safe
	TransactionCount int64 `json:"transactionCount"`
}

// Inventory is the materialized current bill composition of one safe. It is
// a read model: it must always equal the result of replaying the safe's
// full transaction history in creation order.
type Inventory struct {
	SafeID        string          `json:"safeID"` // 1:1 with Safe
	Bills         BillCountMap    `json:"bills"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}
