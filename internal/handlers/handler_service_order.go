package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// serviceOrderHandler handles HTTP requests related to service orders.
type serviceOrderHandler struct {
	serviceOrderService portssvc.ServiceOrderSvcFacade
}

func newServiceOrderHandler(sos portssvc.ServiceOrderSvcFacade) *serviceOrderHandler {
	return &serviceOrderHandler{serviceOrderService: sos}
}

// registerServiceOrderRoutes registers all service-order routes.
func registerServiceOrderRoutes(rg *gin.RouterGroup, serviceOrderService portssvc.ServiceOrderSvcFacade) {
	h := newServiceOrderHandler(serviceOrderService)

	orders := rg.Group("/service-orders")
	{
		orders.GET("", h.listServiceOrders)
		orders.GET("/:id", h.getServiceOrder)
		orders.POST("", h.createServiceOrder)
		orders.PUT("/:id", h.updateServiceOrder)
	}
}

// listServiceOrders godoc
// @Summary List service orders
// @Tags service-orders
// @Produce json
// @Param status query string false "Filter by status" Enums(OPEN, IN_PROGRESS, FINISHED)
// @Success 200 {array} dto.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-orders [get]
func (h *serviceOrderHandler) listServiceOrders(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.ListServiceOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	var status *domain.ServiceOrderStatus
	if req.Status != "" {
		s := domain.ServiceOrderStatus(req.Status)
		status = &s
	}

	orders, err := h.serviceOrderService.ListServiceOrders(c.Request.Context(), caller, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponses(orders))
}

// getServiceOrder godoc
// @Summary Get a service order by ID
// @Tags service-orders
// @Produce json
// @Param id path string true "Service order ID"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-orders/{id} [get]
func (h *serviceOrderHandler) getServiceOrder(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	order, err := h.serviceOrderService.GetServiceOrderByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}

// createServiceOrder godoc
// @Summary Open a service order
// @Tags service-orders
// @Accept json
// @Produce json
// @Param order body dto.CreateServiceOrderRequest true "Order details"
// @Success 201 {object} dto.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /service-orders [post]
func (h *serviceOrderHandler) createServiceOrder(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	order, err := h.serviceOrderService.CreateServiceOrder(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceOrderResponse(order))
}

// updateServiceOrder godoc
// @Summary Update a service order
// @Description Updates fields and/or advances the status. Only
// @Description OPEN -> IN_PROGRESS -> FINISHED moves are legal; FINISHED is
// @Description terminal.
// @Tags service-orders
// @Accept json
// @Produce json
// @Param id path string true "Service order ID"
// @Param order body dto.UpdateServiceOrderRequest true "Fields to update"
// @Success 200 {object} dto.ServiceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-orders/{id} [put]
func (h *serviceOrderHandler) updateServiceOrder(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	order, err := h.serviceOrderService.UpdateServiceOrder(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceOrderResponse(order))
}
