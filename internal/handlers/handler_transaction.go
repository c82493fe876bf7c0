package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// transactionHandler handles the ledger endpoints of a safe.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

func registerTransactionRoutes(safes *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnService)

	safes.GET("/:safe_id/transactions", h.listTransactions)
	safes.POST("/:safe_id/transactions", h.createTransaction)
}

// createTransactionResponse pairs the appended transaction with the
// inventory it produced, so clients refresh without a second round trip.
type createTransactionResponse struct {
	Transaction dto.TransactionResponse `json:"transaction"`
	Inventory   dto.InventoryResponse   `json:"inventory"`
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, inventory, err := h.txnService.CreateTransaction(c.Request.Context(), c.Param("safe_id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Transaction created via API", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, createTransactionResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Inventory:   dto.ToInventoryResponse(inventory),
	})
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.txnService.ListTransactions(c.Request.Context(), c.Param("safe_id"), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
