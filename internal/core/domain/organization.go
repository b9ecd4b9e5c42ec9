package domain

// Organization is the tenant boundary: clients, service orders, budgets,
// catalog items and ledger entries all belong to exactly one organization.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary Key (UUID)
	Name           string `json:"name"`
	Slug           string `json:"slug"` // unique, URL-friendly identifier
	AuditFields
}
