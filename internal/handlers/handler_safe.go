package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// safeHandler handles HTTP requests for safes and their inventories.
type safeHandler struct {
	safeService portssvc.SafeSvcFacade
}

func newSafeHandler(ss portssvc.SafeSvcFacade) *safeHandler {
	return &safeHandler{safeService: ss}
}

// registerSafeRoutes registers all safe-scoped routes, delegating
// transactions and permission grants to their own handlers.
func registerSafeRoutes(rg *gin.RouterGroup, safeService portssvc.SafeSvcFacade, txnService portssvc.TransactionSvcFacade, permService portssvc.PermissionSvcFacade) {
	h := newSafeHandler(safeService)

	safes := rg.Group("/safes")
	{
		safes.GET("", h.listSafes)
		safes.POST("", h.createSafe) // Admin only
		safes.GET("/:safe_id", h.getSafe)
		safes.GET("/:safe_id/inventory", h.getInventory)
		safes.GET("/:safe_id/inventory/export", h.exportInventory)

		registerTransactionRoutes(safes, txnService)
		registerSafePermissionRoutes(safes, permService)
	}
}

func (h *safeHandler) createSafe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	safe, err := h.safeService.CreateSafe(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Safe created via API", slog.String("safe_id", safe.SafeID))
	c.JSON(http.StatusCreated, dto.ToSafeResponse(safe))
}

func (h *safeHandler) listSafes(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summaries, err := h.safeService.ListAccessibleSafes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListSafesResponse{Safes: dto.ToSafeSummaryResponses(summaries)})
}

func (h *safeHandler) getSafe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	safe, err := h.safeService.GetSafeByID(c.Request.Context(), c.Param("safe_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSafeResponse(safe))
}

func (h *safeHandler) getInventory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	inventory, err := h.safeService.GetInventory(c.Request.Context(), c.Param("safe_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryResponse(inventory))
}

func (h *safeHandler) exportInventory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	export, err := h.safeService.BuildInventoryExport(c.Request.Context(), c.Param("safe_id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, export)
}
