package handlers

import (
	"errors"
	"io"
	"net/http"

	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/gin-gonic/gin"
)

type reimbursementHandler struct {
	claimService portssvc.ReimbursementSvcFacade
}

func registerReimbursementRoutes(rg *gin.RouterGroup, rs portssvc.ReimbursementSvcFacade) {
	h := &reimbursementHandler{claimService: rs}

	claims := rg.Group("/reimbursements")
	{
		claims.GET("", h.listClaims)
		claims.GET("/stats", h.claimStats)
		claims.POST("", h.submitClaim)
		claims.POST("/:id/approve", h.approveClaim)
		claims.POST("/:id/reject", h.rejectClaim)
		claims.POST("/:id/pay", h.payClaim)
	}
}

// listClaims godoc
// @Summary List reimbursement claims
// @Description Users see their own claims; admins see all or filter by user.
// @Tags reimbursements
// @Produce json
// @Param user query string false "User name"
// @Success 200 {object} dto.ListClaimsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements [get]
func (h *reimbursementHandler) listClaims(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListClaimsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	claims, err := h.claimService.ListClaims(c.Request.Context(), principal, &params.User)
	if err != nil {
		respondError(c, err, "Failed to list claims")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClaimsResponse(claims))
}

// claimStats godoc
// @Summary Claim counts and totals per status
// @Tags reimbursements
// @Produce json
// @Param user query string false "User name"
// @Success 200 {object} domain.ClaimStats
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/stats [get]
func (h *reimbursementHandler) claimStats(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListClaimsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	stats, err := h.claimService.Stats(c.Request.Context(), principal, &params.User)
	if err != nil {
		respondError(c, err, "Failed to compute claim stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// submitClaim godoc
// @Summary Submit a reimbursement claim
// @Tags reimbursements
// @Accept json
// @Produce json
// @Param claim body dto.SubmitClaimRequest true "Claim"
// @Success 201 {object} dto.SubmitClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements [post]
func (h *reimbursementHandler) submitClaim(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.SubmitClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	claimID, err := h.claimService.Submit(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to submit claim")
		return
	}
	c.JSON(http.StatusCreated, dto.SubmitClaimResponse{ClaimID: claimID})
}

// bindProcessRequest reads the optional notes body; an empty body is allowed.
func bindProcessRequest(c *gin.Context) (dto.ProcessClaimRequest, bool) {
	var req dto.ProcessClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return req, false
	}
	return req, true
}

// approveClaim godoc
// @Summary Approve a pending claim
// @Tags reimbursements
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param body body dto.ProcessClaimRequest false "Notes"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Claim not pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{id}/approve [post]
func (h *reimbursementHandler) approveClaim(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	claimID, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindProcessRequest(c)
	if !ok {
		return
	}

	if err := h.claimService.Approve(c.Request.Context(), principal, claimID, req.Notes); err != nil {
		respondError(c, err, "Failed to approve claim")
		return
	}
	c.Status(http.StatusNoContent)
}

// rejectClaim godoc
// @Summary Reject a pending claim
// @Description A reason in notes is required.
// @Tags reimbursements
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param body body dto.ProcessClaimRequest true "Notes"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Claim not pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{id}/reject [post]
func (h *reimbursementHandler) rejectClaim(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	claimID, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindProcessRequest(c)
	if !ok {
		return
	}
	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := h.claimService.Reject(c.Request.Context(), principal, claimID, notes); err != nil {
		respondError(c, err, "Failed to reject claim")
		return
	}
	c.Status(http.StatusNoContent)
}

// payClaim godoc
// @Summary Mark an approved claim as paid
// @Tags reimbursements
// @Param id path int true "Claim ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Claim not approved"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reimbursements/{id}/pay [post]
func (h *reimbursementHandler) payClaim(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	claimID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.claimService.MarkPaid(c.Request.Context(), principal, claimID); err != nil {
		respondError(c, err, "Failed to mark claim paid")
		return
	}
	c.Status(http.StatusNoContent)
}
