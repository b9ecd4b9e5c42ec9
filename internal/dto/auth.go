package dto

// LoginRequest authenticates a user with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token and the resolved tenant
// context.
type LoginResponse struct {
	Token                string  `json:"token"`
	UserID               string  `json:"userId"`
	Name                 string  `json:"name"`
	Role                 string  `json:"role"`
	ActiveOrganizationID *string `json:"activeOrganizationId"`
}

// SetActiveOrganizationRequest switches the session's tenant context.
type SetActiveOrganizationRequest struct {
	OrganizationID string `json:"organizationId" binding:"required,uuid"`
}
