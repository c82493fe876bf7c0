package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// permissionHandler handles per-safe capability grants.
type permissionHandler struct {
	permService portssvc.PermissionSvcFacade
}

func newPermissionHandler(ps portssvc.PermissionSvcFacade) *permissionHandler {
	return &permissionHandler{permService: ps}
}

func registerSafePermissionRoutes(safes *gin.RouterGroup, permService portssvc.PermissionSvcFacade) {
	h := newPermissionHandler(permService)

	safes.PUT("/:safe_id/permissions/:user_id", h.upsertPermission)
	safes.DELETE("/:safe_id/permissions/:user_id", h.removePermission)
}

func (h *permissionHandler) upsertPermission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	perm, err := h.permService.UpsertPermission(c.Request.Context(), requestingUserID, c.Param("user_id"), c.Param("safe_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Permission upserted via API", slog.String("safe_id", perm.SafeID), slog.String("target_user_id", perm.UserID))
	c.JSON(http.StatusOK, dto.ToPermissionResponse(perm))
}

func (h *permissionHandler) removePermission(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.permService.RemovePermission(c.Request.Context(), requestingUserID, c.Param("user_id"), c.Param("safe_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
