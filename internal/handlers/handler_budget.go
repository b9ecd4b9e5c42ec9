package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers all budget routes.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.GET("/:id", h.getBudget)
		budgets.POST("", h.createBudget)
	}
}

// listBudgets godoc
// @Summary List budgets
// @Description Lists the organization's budgets, newest first, without line
// @Description items.
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponses(budgets))
}

// getBudget godoc
// @Summary Get a budget by ID
// @Description Returns the budget with its line items in order.
// @Tags budgets
// @Produce json
// @Param id path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// createBudget godoc
// @Summary Issue a budget
// @Description Issues a numbered budget (ORC-YYYYMMDD-XXXX). Line totals and
// @Description the grand total are computed server-side.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	budget, err := h.budgetService.CreateBudget(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}
