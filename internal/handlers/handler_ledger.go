package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/cashclaim/internal/core/domain"
	portssvc "github.com/SscSPs/cashclaim/internal/core/ports/services"
	"github.com/SscSPs/cashclaim/internal/dto"
	"github.com/SscSPs/cashclaim/internal/utils/money"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves balances and individual ledger entries.
type ledgerHandler struct {
	balanceService     portssvc.BalanceSvc
	transactionService portssvc.TransactionRecorderSvc
}

func newLedgerHandler(bs portssvc.BalanceSvc, ts portssvc.TransactionRecorderSvc) *ledgerHandler {
	return &ledgerHandler{balanceService: bs, transactionService: ts}
}

func registerLedgerRoutes(rg *gin.RouterGroup, bs portssvc.BalanceSvc, ts portssvc.TransactionRecorderSvc) {
	h := newLedgerHandler(bs, ts)

	rg.GET("/balance", h.getBalance)
	rg.GET("/summary", h.getSummary)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.recordEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// monthOrCurrent parses raw, defaulting to the current month when empty.
func monthOrCurrent(raw string) (domain.Month, error) {
	if raw == "" {
		return domain.MonthOf(time.Now()), nil
	}
	return domain.ParseMonth(raw)
}

// getBalance godoc
// @Summary Get a balance
// @Description Returns income minus expense for a user, optionally narrowed to one project and/or month.
// @Tags ledger
// @Produce json
// @Param user query string false "User name (defaults to caller; others require admin)"
// @Param project query string false "Project name"
// @Param month query string false "Month as YYYY-MM"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	userName := strings.TrimSpace(params.User)
	if userName == "" {
		userName = principal.UserName
	}
	var project *string
	if params.Project != "" {
		project = &params.Project
	}
	var month *domain.Month
	if params.Month != "" {
		m, err := domain.ParseMonth(params.Month)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		month = &m
	}

	balance, err := h.balanceService.Balance(c.Request.Context(), principal, userName, project, month)
	if err != nil {
		respondError(c, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		User:      userName,
		Project:   params.Project,
		Month:     params.Month,
		Balance:   balance,
		Formatted: money.FormatRupiah(balance),
	})
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Monthly income and expense plus the all-time balance. Admins without a user filter see all users combined.
// @Tags ledger
// @Produce json
// @Param user query string false "User name"
// @Param month query string false "Month as YYYY-MM (defaults to the current month)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *ledgerHandler) getSummary(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	month, err := monthOrCurrent(params.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	var userName *string
	if params.User != "" {
		userName = &params.User
	}

	summary, err := h.balanceService.Summary(c.Request.Context(), principal, userName, month)
	if err != nil {
		respondError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Newest first, paginated with nextToken.
// @Tags ledger
// @Produce json
// @Param user query string false "User name"
// @Param project query string false "Project name (requires user for admins)"
// @Param month query string false "Month as YYYY-MM"
// @Param type query string false "income or expense"
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	entries, nextToken, err := h.transactionService.ListEntries(c.Request.Context(), principal, params)
	if err != nil {
		respondError(c, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries, nextToken))
}

// recordEntry godoc
// @Summary Record an income or expense
// @Description Amounts accept Indonesian formatting such as "1.250.000" or "Rp 50.000".
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.RecordEntryRequest true "Entry"
// @Success 201 {object} dto.RecordEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [post]
func (h *ledgerHandler) recordEntry(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entryID, err := h.transactionService.RecordEntry(c.Request.Context(), principal, req)
	if err != nil {
		respondError(c, err, "Failed to record entry")
		return
	}
	c.JSON(http.StatusCreated, dto.RecordEntryResponse{EntryID: entryID})
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Description Owners may delete their own entries; admins may delete any.
// @Tags ledger
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteEntry(c.Request.Context(), principal, entryID); err != nil {
		respondError(c, err, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the :id path parameter or answers 400.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid id"})
		return 0, false
	}
	return id, true
}
