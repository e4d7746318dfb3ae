package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/gin-gonic/gin"
)

type reportHandler struct {
	reportService portssvc.ReportSvc
}

func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportSvc) {
	h := &reportHandler{reportService: rs}
	rg.GET("/reports/monthly", h.monthlyReport)
}

// monthlyReport godoc
// @Summary Monthly report across all users
// @Tags reports
// @Produce json
// @Param month query string false "Month as YYYY-MM (defaults to the current month)"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportHandler) monthlyReport(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var params dto.MonthlyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	month, err := monthOrCurrent(params.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.reportService.MonthlyReport(c.Request.Context(), principal, month)
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}
