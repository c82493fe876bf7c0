package dto

import (
	"time"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSafeRequest defines the payload for creating a safe.
type CreateSafeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// SafeResponse defines the data returned for a safe.
type SafeResponse struct {
	SafeID      string    `json:"safeID"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SafeSummaryResponse is a SafeResponse carrying the transaction count,
// used by listing endpoints.
type SafeSummaryResponse struct {
	SafeResponse
	TransactionCount int64 `json:"transactionCount"`
}

// ListSafesResponse wraps the safes visible to the requesting user.
type ListSafesResponse struct {
	Safes []SafeSummaryResponse `json:"safes"`
}

// InventoryResponse defines the current bill holdings of a safe.
type InventoryResponse struct {
	SafeID        string           `json:"safeID"`
	Bills         map[string]int64 `json:"bills"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToSafeResponse converts a domain.Safe to its response DTO.
func ToSafeResponse(safe *domain.Safe) SafeResponse {
	return SafeResponse{
		SafeID:      safe.SafeID,
		Name:        safe.Name,
		Description: safe.Description,
		IsActive:    safe.IsActive,
		CreatedAt:   safe.CreatedAt,
	}
}

// ToSafeSummaryResponses converts domain safe summaries to response DTOs.
func ToSafeSummaryResponses(summaries []domain.SafeSummary) []SafeSummaryResponse {
	responses := make([]SafeSummaryResponse, len(summaries))
	for i := range summaries {
		responses[i] = SafeSummaryResponse{
			SafeResponse:     ToSafeResponse(&summaries[i].Safe),
			TransactionCount: summaries[i].TransactionCount,
		}
	}
	return responses
}

// ToInventoryResponse converts a domain.Inventory to its response DTO.
func ToInventoryResponse(inv *domain.Inventory) InventoryResponse {
	return InventoryResponse{
		SafeID:        inv.SafeID,
		Bills:         ToBillDetails(inv.Bills),
		TotalAmount:   inv.TotalAmount,
		LastUpdatedAt: inv.LastUpdatedAt,
	}
}
