package dto

import (
	"time"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams defines query parameters for the dashboard endpoint.
// When SafeID is unset the dashboard aggregates every safe the requesting
// user can read.
type DashboardParams struct {
	SafeID *string `form:"safeID"`
}

// DashboardEntryResponse is one replayed transaction in dashboard order.
type DashboardEntryResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Kind   string          `json:"kind"`
	Mode   string          `json:"mode"`
}

// DashboardResponse defines the aggregated dashboard payload. BillEvolution
// is keyed by denomination string, then by day ("2006-01-02"), and holds
// the aggregated quantity at end of that day.
type DashboardResponse struct {
	Transactions     []DashboardEntryResponse    `json:"transactions"`
	TotalAmount      decimal.Decimal             `json:"totalAmount"`
	TransactionCount int                         `json:"transactionCount"`
	BillEvolution    map[string]map[string]int64 `json:"billEvolution"`
}

// ToDashboardResponse converts a domain.Dashboard to its response DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	entries := make([]DashboardEntryResponse, len(d.Entries))
	for i, e := range d.Entries {
		entries[i] = DashboardEntryResponse{
			Date:   e.Date.UTC().Format(time.RFC3339),
			Amount: e.Amount,
			Kind:   string(e.Kind),
			Mode:   string(e.Mode),
		}
	}
	evolution := make(map[string]map[string]int64, len(d.BillEvolution))
	for denom, days := range d.BillEvolution {
		byDay := make(map[string]int64, len(days))
		for day, qty := range days {
			byDay[day] = qty
		}
		evolution[denom.String()] = byDay
	}
	return DashboardResponse{
		Transactions:     entries,
		TotalAmount:      d.TotalAmount,
		TransactionCount: d.TransactionCount,
		BillEvolution:    evolution,
	}
}
