package dto

import (
	"time"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExportRow is one denomination line of an inventory export, listed even
// when the safe holds none of that denomination.
type ExportRow struct {
	Denomination string          `json:"denomination"`
	Quantity     int64           `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// InventoryExport is the printable snapshot of a safe's holdings, with one
// row per fixed denomination in ascending order.
type InventoryExport struct {
	SafeName        string          `json:"safeName"`
	SafeDescription string          `json:"safeDescription,omitempty"`
	GeneratedAt     time.Time       `json:"generatedAt"`
	Rows            []ExportRow     `json:"rows"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}

// BuildInventoryExport assembles the export payload for a safe and its
// current inventory.
func BuildInventoryExport(safe *domain.Safe, inv *domain.Inventory, generatedAt time.Time) InventoryExport {
	rows := make([]ExportRow, 0, len(domain.Denominations))
	total := decimal.Zero
	for _, d := range domain.Denominations {
		qty := inv.Bills[d]
		subtotal := decimal.NewFromInt(int64(d)).Mul(decimal.NewFromInt(qty))
		total = total.Add(subtotal)
		rows = append(rows, ExportRow{
			Denomination: d.String(),
			Quantity:     qty,
			Subtotal:     subtotal,
		})
	}
	return InventoryExport{
		SafeName:        safe.Name,
		SafeDescription: safe.Description,
		GeneratedAt:     generatedAt.UTC(),
		Rows:            rows,
		TotalAmount:     total,
	}
}
