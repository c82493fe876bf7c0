package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashvault/cashvault_backend/internal/core/domain"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
	"github.com/cashvault/cashvault_backend/internal/dto"
	"github.com/cashvault/cashvault_backend/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService portssvc.UserSvcFacade
	permService portssvc.PermissionSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, ps portssvc.PermissionSvcFacade) *userHandler {
	return &userHandler{
		userService: us,
		permService: ps,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, permService portssvc.PermissionSvcFacade) {
	h := newUserHandler(userService, permService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)                        // Admin only
		users.POST("", h.createUser)                      // Admin only
		users.GET("/:user_id", h.getUser)                 // Own or admin
		users.PUT("/:user_id/role", h.updateRole)         // Admin only, not own
		users.PUT("/:user_id/password", h.resetPassword)  // Admin only
		users.DELETE("/:user_id", h.deleteUser)           // Admin only, not own
		users.GET("/:user_id/permissions", h.permissions) // Own or admin
	}
}

func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), requestingUserID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User created via API", slog.String("created_user_id", created.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(created))
}

func (h *userHandler) listUsers(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), requestingUserID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: dto.ToUserResponses(users)})
}

func (h *userHandler) getUser(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	targetUserID := c.Param("user_id")

	// Non-admins may only fetch themselves.
	if requestingUserID != targetUserID {
		requester, err := h.userService.GetUserByID(c.Request.Context(), requestingUserID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !requester.IsAdmin() {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access denied"})
			return
		}
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), targetUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) updateRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.userService.UpdateUserRole(c.Request.Context(), requestingUserID, c.Param("user_id"), domain.UserRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User role updated via API", slog.String("target_user_id", updated.UserID), slog.String("role", string(updated.Role)))
	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

func (h *userHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), requestingUserID, c.Param("user_id"), req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	targetUserID := c.Param("user_id")

	if err := h.userService.DeleteUser(c.Request.Context(), requestingUserID, targetUserID); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User deleted via API", slog.String("target_user_id", targetUserID))
	c.Status(http.StatusNoContent)
}

func (h *userHandler) permissions(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	perms, err := h.permService.ListUserPermissions(c.Request.Context(), requestingUserID, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListPermissionsResponse{Permissions: dto.ToPermissionResponses(perms)})
}
