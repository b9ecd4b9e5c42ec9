package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// serviceItemHandler handles HTTP requests related to the service catalog.
type serviceItemHandler struct {
	serviceItemService portssvc.ServiceItemSvcFacade
}

func newServiceItemHandler(sis portssvc.ServiceItemSvcFacade) *serviceItemHandler {
	return &serviceItemHandler{serviceItemService: sis}
}

// registerServiceItemRoutes registers all catalog routes.
func registerServiceItemRoutes(rg *gin.RouterGroup, serviceItemService portssvc.ServiceItemSvcFacade) {
	h := newServiceItemHandler(serviceItemService)

	items := rg.Group("/service-items")
	{
		items.GET("", h.listServiceItems)
		items.GET("/:id", h.getServiceItem)
		items.POST("", h.createServiceItem)
		items.PUT("/:id", h.updateServiceItem)
		items.DELETE("/:id", h.deleteServiceItem)
	}
}

// listServiceItems godoc
// @Summary List catalog items
// @Tags service-items
// @Produce json
// @Param activeOnly query bool false "Exclude inactive items" default(false)
// @Success 200 {array} dto.ServiceItemResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-items [get]
func (h *serviceItemHandler) listServiceItems(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	activeOnly := c.Query("activeOnly") == "true"
	items, err := h.serviceItemService.ListServiceItems(c.Request.Context(), caller, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceItemResponses(items))
}

// getServiceItem godoc
// @Summary Get a catalog item by ID
// @Tags service-items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} dto.ServiceItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-items/{id} [get]
func (h *serviceItemHandler) getServiceItem(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	item, err := h.serviceItemService.GetServiceItemByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceItemResponse(item))
}

// createServiceItem godoc
// @Summary Create a catalog item
// @Tags service-items
// @Accept json
// @Produce json
// @Param item body dto.CreateServiceItemRequest true "Item details"
// @Success 201 {object} dto.ServiceItemResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-items [post]
func (h *serviceItemHandler) createServiceItem(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	item, err := h.serviceItemService.CreateServiceItem(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceItemResponse(item))
}

// updateServiceItem godoc
// @Summary Update a catalog item
// @Tags service-items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.UpdateServiceItemRequest true "Fields to update"
// @Success 200 {object} dto.ServiceItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-items/{id} [put]
func (h *serviceItemHandler) updateServiceItem(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	item, err := h.serviceItemService.UpdateServiceItem(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceItemResponse(item))
}

// deleteServiceItem godoc
// @Summary Delete a catalog item
// @Tags service-items
// @Produce json
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-items/{id} [delete]
func (h *serviceItemHandler) deleteServiceItem(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	if err := h.serviceItemService.DeleteServiceItem(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
