package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// cashFlowHandler handles the ledger and its pivot summaries.
type cashFlowHandler struct {
	cashFlowService  portssvc.CashFlowSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newCashFlowHandler(cs portssvc.CashFlowSvcFacade, rs portssvc.ReportingSvcFacade) *cashFlowHandler {
	return &cashFlowHandler{cashFlowService: cs, reportingService: rs}
}

// registerCashFlowRoutes registers the ledger routes.
func registerCashFlowRoutes(rg *gin.RouterGroup, cashFlowService portssvc.CashFlowSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newCashFlowHandler(cashFlowService, reportingService)

	cashflow := rg.Group("/cashflow")
	{
		cashflow.GET("", h.listEntries)
		cashflow.POST("", h.createEntries)
		cashflow.PUT("/:id/paid-at", h.setPaidAt)
		cashflow.DELETE("/:id", h.deleteEntry)
		cashflow.GET("/summary/monthly", h.summaryByMonth)
		cashflow.GET("/summary/daily", h.summaryByDay)
	}
}

// listEntries godoc
// @Summary List cash-flow entries
// @Description Lists the organization's ledger entries for a dashboard tab,
// @Description optionally narrowed by date range and client.
// @Tags cashflow
// @Produce json
// @Param tab query string false "View tab" Enums(all, IN, OUT, receivable, payable, received, paid, pending) default(all)
// @Param dateFrom query string false "Lower date bound (YYYY-MM-DD)"
// @Param dateTo query string false "Upper date bound (YYYY-MM-DD)"
// @Param clientId query string false "Restrict to entries linked to this client's service orders"
// @Success 200 {array} dto.CashFlowEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow [get]
func (h *cashFlowHandler) listEntries(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.ListCashFlowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.cashFlowService.ListEntries(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowEntryResponses(entries))
}

// createEntries godoc
// @Summary Create cash-flow entries
// @Description Creates one entry, or an installment group when
// @Description installmentsCount > 1. The group is persisted atomically and
// @Description returned in installment order.
// @Tags cashflow
// @Accept json
// @Produce json
// @Param entry body dto.CreateCashFlowRequest true "Entry details"
// @Success 201 {array} dto.CashFlowEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow [post]
func (h *cashFlowHandler) createEntries(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateCashFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entries, err := h.cashFlowService.CreateEntries(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCashFlowEntryResponses(entries))
}

// setPaidAt godoc
// @Summary Set or clear an entry's payment date
// @Description Marks the entry paid on the given date, or clears the payment
// @Description date when paidAt is empty.
// @Tags cashflow
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param body body dto.SetPaidAtRequest true "Payment date (empty clears)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/{id}/paid-at [put]
func (h *cashFlowHandler) setPaidAt(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.SetPaidAtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.cashFlowService.SetPaidAt(c.Request.Context(), caller, c.Param("id"), req.PaidAt); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteEntry godoc
// @Summary Delete a cash-flow entry
// @Tags cashflow
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/{id} [delete]
func (h *cashFlowHandler) deleteEntry(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	if err := h.cashFlowService.DeleteEntry(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// summaryByMonth godoc
// @Summary Monthly cash-flow summary
// @Description Pivots the ledger by calendar month over an inclusive YYYY-MM
// @Description range. Mode "previsao" buckets by due date, "realizado" by
// @Description payment date (unpaid entries excluded).
// @Tags cashflow
// @Produce json
// @Param dateFrom query string true "Start month (YYYY-MM)"
// @Param dateTo query string true "End month (YYYY-MM)"
// @Param mode query string true "Summary mode" Enums(previsao, realizado)
// @Success 200 {object} dto.CashFlowSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/summary/monthly [get]
func (h *cashFlowHandler) summaryByMonth(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.SummaryByMonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.SummaryByMonth(c.Request.Context(), caller, req.DateFrom, req.DateTo, domain.SummaryMode(req.Mode))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowSummaryResponse(summary))
}

// summaryByDay godoc
// @Summary Daily cash-flow summary
// @Description Pivots the ledger by day over an inclusive YYYY-MM-DD range.
// @Tags cashflow
// @Produce json
// @Param dateFrom query string true "Start day (YYYY-MM-DD)"
// @Param dateTo query string true "End day (YYYY-MM-DD)"
// @Param mode query string true "Summary mode" Enums(previsao, realizado)
// @Success 200 {object} dto.CashFlowSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashflow/summary/daily [get]
func (h *cashFlowHandler) summaryByDay(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.SummaryByDayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.reportingService.SummaryByDay(c.Request.Context(), caller, req.DateFrom, req.DateTo, domain.SummaryMode(req.Mode))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowSummaryResponse(summary))
}
