package models

import "github.com/shopspring/decimal"

// Transaction is the DB-shaped row of the append-only transactions table.
// BillDetails holds the JSONB payload: denomination string -> quantity.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	SafeID        string          `db:"safe_id"`
	Kind          string          `db:"kind"` // INVENTORY or MOVEMENT
	Mode          string          `db:"mode"` // ADD, REMOVE or REPLACE
	BillDetails   []byte          `db:"bill_details"`
	Amount        decimal.Decimal `db:"amount"`
	Notes         string          `db:"notes"`
	AuditFields
}
