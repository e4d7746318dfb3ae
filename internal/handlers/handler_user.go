package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler exposes administrator user management.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade) {
	h := &userHandler{userService: us}

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.DELETE("/:id", h.deleteUser)
		users.PUT("/:id/access-code", h.updateAccessCode)
	}
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// deleteUser godoc
// @Summary Delete a user
// @Description The user's ledger history is kept. The default administrator cannot be deleted.
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), principal, userID); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateAccessCode godoc
// @Summary Reset a user's access code
// @Tags users
// @Accept json
// @Param id path int true "User ID"
// @Param body body dto.UpdateAccessCodeRequest true "New access code"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id}/access-code [put]
func (h *userHandler) updateAccessCode(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateAccessCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.userService.UpdateAccessCode(c.Request.Context(), principal, userID, req.AccessCode); err != nil {
		respondError(c, err, "Failed to update access code")
		return
	}
	c.Status(http.StatusNoContent)
}
