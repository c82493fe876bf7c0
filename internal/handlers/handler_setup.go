package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// setupHandler handles the first-run bootstrap endpoints. These are the
// only unauthenticated write routes; the service closes them permanently
// once a user exists.
type setupHandler struct {
	setupService portssvc.SetupSvcFacade
}

func newSetupHandler(ss portssvc.SetupSvcFacade) *setupHandler {
	return &setupHandler{setupService: ss}
}

func registerSetupRoutes(rg *gin.Engine, setupService portssvc.SetupSvcFacade) {
	h := newSetupHandler(setupService)

	setup := rg.Group("/api/v1/setup")
	{
		setup.GET("", h.status)
		setup.POST("", h.setupFirstAdmin)
	}
}

// status reports whether the bootstrap is still open.
func (h *setupHandler) status(c *gin.Context) {
	required, err := h.setupService.SetupRequired(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SetupStatusResponse{SetupRequired: required})
}

// setupFirstAdmin creates the first administrator and the first safe.
func (h *setupHandler) setupFirstAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	admin, safe, err := h.setupService.SetupFirstAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Setup completed", slog.String("admin_user_id", admin.UserID), slog.String("safe_id", safe.SafeID))
	c.JSON(http.StatusCreated, dto.SetupResponse{
		User: dto.ToUserResponse(admin),
		Safe: dto.ToSafeResponse(safe),
	})
}
