package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
)

// organizationHandler handles HTTP requests related to organizations and
// their memberships.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{organizationService: os}
}

// registerOrganizationRoutes registers all organization routes.
func registerOrganizationRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(organizationService)

	orgs := rg.Group("/organizations")
	{
		orgs.GET("", h.listOrganizations)
		orgs.GET("/:id", h.getOrganization)
		orgs.POST("", h.createOrganization)       // Admin only
		orgs.PUT("/:id", h.updateOrganization)    // Owner/admin
		orgs.DELETE("/:id", h.deleteOrganization) // Admin only

		orgs.POST("/:id/members", h.addMember)
		orgs.PUT("/:id/members/:memberID", h.updateMember)
		orgs.DELETE("/:id/members/:memberID", h.removeMember)
	}
}

// listOrganizations godoc
// @Summary List organizations
// @Description Admins see every organization; everyone else sees the ones
// @Description they belong to.
// @Tags organizations
// @Produce json
// @Success 200 {array} dto.OrganizationResponse
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listOrganizations(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	orgs, err := h.organizationService.ListOrganizations(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponses(orgs))
}

// getOrganization godoc
// @Summary Get an organization with its members
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	org, members, err := h.organizationService.GetOrganizationByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org, members))
}

// createOrganization godoc
// @Summary Create an organization
// @Description Creates a tenant. Global admin only; the slug must be unique.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already in use"
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	org, err := h.organizationService.CreateOrganization(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org, nil))
}

// updateOrganization godoc
// @Summary Rename an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param organization body dto.UpdateOrganizationRequest true "New name"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *organizationHandler) updateOrganization(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	org, err := h.organizationService.UpdateOrganization(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org, nil))
}

// deleteOrganization godoc
// @Summary Delete an organization
// @Description Global admin only. Refused while the caller's session is
// @Description still scoped to the target organization.
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *organizationHandler) deleteOrganization(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	if err := h.organizationService.DeleteOrganization(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addMember godoc
// @Summary Add a member
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param member body dto.AddMemberRequest true "User and role"
// @Success 201 {object} dto.MemberResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /organizations/{id}/members [post]
func (h *organizationHandler) addMember(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	member, err := h.organizationService.AddMember(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// updateMember godoc
// @Summary Update a member's roles
// @Description Changes the base role and/or replaces the extra-role set
// @Description (e.g. "financeiro" for cash-flow access).
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param memberID path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Role changes"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/members/{memberID} [put]
func (h *organizationHandler) updateMember(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if err := h.organizationService.UpdateMember(c.Request.Context(), caller, c.Param("id"), c.Param("memberID"), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeMember godoc
// @Summary Remove a member
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Param memberID path string true "Member ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id}/members/{memberID} [delete]
func (h *organizationHandler) removeMember(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	if err := h.organizationService.RemoveMember(c.Request.Context(), caller, c.Param("id"), c.Param("memberID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
