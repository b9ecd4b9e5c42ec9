package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/oficinadev/oficina_backend/internal/core/ports/services"
	"github.com/oficinadev/oficina_backend/internal/dto"
	"github.com/oficinadev/oficina_backend/internal/middleware"
	"github.com/oficinadev/oficina_backend/internal/platform/config"
)

// authHandler handles authentication and session requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes, rate-limited
// per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth)

	ipLimiter, err := newLoginRateLimiter(cfg)
	if err != nil {
		panic("invalid LOGIN_RATE_LIMIT: " + err.Error())
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
	}
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	{
		auth.POST("/logout", h.logout)
		auth.PUT("/active-organization", h.setActiveOrganization)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT bearer token. The
// @Description session starts scoped to the user's oldest organization.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Log out
// @Description Discards the current session; the bearer token stops working.
// @Tags auth
// @Produce json
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// setActiveOrganization godoc
// @Summary Switch the active organization
// @Description Points the session at another organization the caller belongs
// @Description to. Subsequent requests operate in that tenant.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SetActiveOrganizationRequest true "Target organization"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/active-organization [put]
func (h *authHandler) setActiveOrganization(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SetActiveOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.authService.SetActiveOrganization(c.Request.Context(), caller, sessionID, req.OrganizationID); err != nil {
		respondError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Active organization switched",
		slog.String("organization_id", req.OrganizationID))
	c.Status(http.StatusNoContent)
}
