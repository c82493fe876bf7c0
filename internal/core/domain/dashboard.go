package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayKey is the canonical calendar-day bucket for dashboard history:
// the timestamp truncated to its UTC date, formatted as 2006-01-02.
// Write-time bucketing and dashboard filtering must both use it.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// BillHistory maps each fixed denomination to its day-by-day bill count.
// Every fixed denomination is present as a key, even with an empty day map.
type BillHistory map[Denomination]map[string]int64

// NewBillHistory returns a history with an empty day map for every fixed
// denomination.
func NewBillHistory() BillHistory {
	h := make(BillHistory, len(Denominations))
	for _, d := range Denominations {
		h[d] = make(map[string]int64)
	}
	return h
}

// DashboardEntry is one ledger event projected for the cumulative-value
// chart: consumers walk the ascending list adding for ADD/INVENTORY and
// subtracting for REMOVE.
type DashboardEntry struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Kind   TransactionKind `json:"kind"`
	Mode   TransactionMode `json:"mode"`
}

// Dashboard aggregates the ledgers of every safe a user may read into one
// view: the full event list, the combined current value, and the
// per-denomination bill-count evolution summed across safes.
type Dashboard struct {
	Entries          []DashboardEntry `json:"entries"`
	TotalAmount      decimal.Decimal  `json:"totalAmount"`
	TransactionCount int              `json:"transactionCount"`
	BillEvolution    BillHistory      `json:"billEvolution"`
}

// EmptyDashboard returns the zero-valued payload served when a user can
// read no safes at all.
func EmptyDashboard() *Dashboard {
	return &Dashboard{
		Entries:          []DashboardEntry{},
		TotalAmount:      decimal.Zero,
		TransactionCount: 0,
		BillEvolution:    NewBillHistory(),
	}
}
