package domain

import "time"

// Session carries the tenant context of an authenticated user. The session ID
// doubles as the JWT "jti" claim, and ActiveOrganizationID scopes every
// subsequent request. It defaults to the user's oldest membership on login.
type Session struct {
	SessionID            string    `json:"sessionID"`
	UserID               string    `json:"userID"`
	ActiveOrganizationID *string   `json:"activeOrganizationID"`
	ExpiresAt            time.Time `json:"expiresAt"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
