package domain

import "github.com/shopspring/decimal"

// TransactionKind distinguishes a full stock count from a day-to-day movement.
type TransactionKind string

const (
	KindInventory TransactionKind = "INVENTORY"
	KindMovement  TransactionKind = "MOVEMENT"
)

// TransactionMode describes how a transaction's bill payload mutates the safe.
type TransactionMode string

const (
	ModeAdd     TransactionMode = "ADD"
	ModeRemove  TransactionMode = "REMOVE"
	ModeReplace TransactionMode = "REPLACE"
)

// Transaction is an immutable, append-only ledger event adjusting or
// replacing a safe's bill composition. Transactions are never updated or
// deleted once created; the safe's Inventory is derived from them.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	SafeID        string          `json:"safeID"`        // FK -> safes.safe_id (Not Null)
	Kind          TransactionKind `json:"kind"`          // INVENTORY or MOVEMENT
	Mode          TransactionMode `json:"mode"`          // ADD, REMOVE or REPLACE
	Bills         BillCountMap    `json:"bills"`         // Denomination deltas or full replacement
	Amount        decimal.Decimal `json:"amount"`        // Derived: sum of denomination x quantity over Bills
	Notes         string          `json:"notes"`         // Optional free text
	AuditFields
}
