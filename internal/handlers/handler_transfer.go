package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/gin-gonic/gin"
)

type transferHandler struct {
	transferService portssvc.TransferSvc
}

func registerTransferRoutes(rg *gin.RouterGroup, ts portssvc.TransferSvc) {
	h := &transferHandler{transferService: ts}

	rg.POST("/transfers", h.transfer)
	rg.POST("/moves", h.move)
}

// transfer godoc
// @Summary Transfer funds to another user
// @Description Debits the caller's project and credits the recipient's Main project atomically.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Recipient or project not found"
// @Failure 422 {object} ErrorResponse "Insufficient balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) transfer(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.transferService.TransferBetweenUsers(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to transfer funds")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransferResponse(result))
}

// move godoc
// @Summary Move funds between own projects
// @Tags transfers
// @Accept json
// @Produce json
// @Param move body dto.MoveRequest true "Move"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 422 {object} ErrorResponse "Insufficient balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /moves [post]
func (h *transferHandler) move(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.transferService.MoveBetweenProjects(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to move funds")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransferResponse(result))
}
