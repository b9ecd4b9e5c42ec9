package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrderStatus is the lifecycle state of a service order.
type ServiceOrderStatus string

const (
	ServiceOrderOpen       ServiceOrderStatus = "OPEN"
	ServiceOrderInProgress ServiceOrderStatus = "IN_PROGRESS"
	ServiceOrderFinished   ServiceOrderStatus = "FINISHED" // terminal
)

// CanTransitionTo reports whether the status may move to next.
// The only legal moves are OPEN -> IN_PROGRESS and IN_PROGRESS -> FINISHED.
func (s ServiceOrderStatus) CanTransitionTo(next ServiceOrderStatus) bool {
	switch s {
	case ServiceOrderOpen:
		return next == ServiceOrderInProgress
	case ServiceOrderInProgress:
		return next == ServiceOrderFinished
	default:
		return false
	}
}

// ServiceOrder is a repair job opened for a client.
type ServiceOrder struct {
	ServiceOrderID     string             `json:"serviceOrderID"` // Primary Key (UUID)
	OrganizationID     string             `json:"organizationID"`
	ClientID           string             `json:"clientID"`
	ProblemDescription string             `json:"problemDescription"`
	ServicesPerformed  string             `json:"servicesPerformed"`
	PartsUsed          string             `json:"partsUsed"`
	EstimatedValue     *decimal.Decimal   `json:"estimatedValue,omitempty"`
	FinalValue         *decimal.Decimal   `json:"finalValue,omitempty"`
	Status             ServiceOrderStatus `json:"status"`
	OpenedAt           time.Time          `json:"openedAt"`
	ClosedAt           *time.Time         `json:"closedAt,omitempty"` // set when status reaches FINISHED
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Finished reports whether the order has reached its terminal state. Only
// finished orders may be linked to cash-flow entries.
func (o *ServiceOrder) Finished() bool {
	return o.Status == ServiceOrderFinished
}
