package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Safe is the DB-shaped row of the safes table.
type Safe struct {
	SafeID      string `db:"safe_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// Inventory is the DB-shaped row of the inventories table (1:1 with safes).
type Inventory struct {
	SafeID        string          `db:"safe_id"`
	BillDetails   []byte          `db:"bill_details"` // JSONB: denomination string -> quantity
	TotalAmount   decimal.Decimal `db:"total_amount"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
	LastUpdatedBy string          `db:"last_updated_by"`
}
