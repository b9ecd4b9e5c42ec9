package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes inflows from outflows.
type EntryType string

const (
	EntryIn  EntryType = "IN"  // inflow / receivable
	EntryOut EntryType = "OUT" // outflow / payable
)

// ParseEntryType parses the wire representation of an entry type.
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case EntryIn, EntryOut:
		return EntryType(s), nil
	}
	return "", fmt.Errorf("invalid entry type %q", s)
}

// CashFlowEntry is one row of the ledger: money expected to move on Date,
// actually moved on PaidAt (nil while pending). Entries generated from one
// installment request share a GroupID and carry 1-based InstallmentIndex
// values; single entries leave both unset.
type CashFlowEntry struct {
	EntryID          string          `json:"entryID"` // Primary Key (UUID)
	OrganizationID   string          `json:"organizationID"`
	Type             EntryType       `json:"type"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"` // always > 0
	Date             time.Time       `json:"date"`   // due/schedule date
	PaidAt           *time.Time      `json:"paidAt,omitempty"`
	ServiceOrderID   *string         `json:"serviceOrderID,omitempty"` // must reference a FINISHED order
	GroupID          *string         `json:"cashFlowGroupID,omitempty"`
	InstallmentIndex *int            `json:"installmentIndex,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Paid reports whether the entry has a recorded payment date.
func (e *CashFlowEntry) Paid() bool {
	return e.PaidAt != nil
}

// ViewTab is the closed set of dashboard views over the ledger.
type ViewTab string

const (
	TabAll        ViewTab = "all"
	TabIn         ViewTab = "IN"
	TabOut        ViewTab = "OUT"
	TabReceivable ViewTab = "receivable" // IN, not yet received
	TabPayable    ViewTab = "payable"    // OUT, not yet paid
	TabReceived   ViewTab = "received"   // IN with a payment date
	TabPaid       ViewTab = "paid"       // OUT with a payment date
	TabPending    ViewTab = "pending"    // due today or later, any type
)

// ParseViewTab parses the wire representation of a view tab.
func ParseViewTab(s string) (ViewTab, error) {
	switch ViewTab(s) {
	case TabAll, TabIn, TabOut, TabReceivable, TabPayable, TabReceived, TabPaid, TabPending:
		return ViewTab(s), nil
	}
	return "", fmt.Errorf("invalid view tab %q", s)
}

// PaidState selects entries by the presence of a payment date.
type PaidState int

const (
	PaidAny    PaidState = iota // no paid-state constraint
	PaidOnly                    // paidAt is set
	UnpaidOnly                  // paidAt is null
)

// DateField selects which date column range filters and sorting apply to.
type DateField int

const (
	ByDueDate  DateField = iota // the "date" column (forecast semantics)
	ByPaidDate                  // the "paid_at" column (realized semantics)
)

// EntryFilter is the structured predicate a ViewTab translates to.
type EntryFilter struct {
	Type      *EntryType
	Paid      PaidState
	DateField DateField  // field used for range filtering and sorting
	MinDate   *time.Time // tab-implied lower bound (pending view)
}

// Filter maps a tab to its structured predicate. today is the civil date used
// by the pending view's lower bound.
func (t ViewTab) Filter(today time.Time) EntryFilter {
	in, out := EntryIn, EntryOut
	switch t {
	case TabIn:
		return EntryFilter{Type: &in}
	case TabOut:
		return EntryFilter{Type: &out}
	case TabReceivable:
		return EntryFilter{Type: &in, Paid: UnpaidOnly}
	case TabPayable:
		return EntryFilter{Type: &out, Paid: UnpaidOnly}
	case TabReceived:
		return EntryFilter{Type: &in, Paid: PaidOnly, DateField: ByPaidDate}
	case TabPaid:
		return EntryFilter{Type: &out, Paid: PaidOnly, DateField: ByPaidDate}
	case TabPending:
		return EntryFilter{MinDate: &today}
	default: // TabAll
		return EntryFilter{}
	}
}

// Matches reports whether a single entry satisfies the filter. The repository
// evaluates the same predicate in SQL; this form exists for the aggregation
// paths and for exhaustive testing of the tab semantics.
func (f EntryFilter) Matches(e *CashFlowEntry) bool {
	if e.DeletedAt != nil {
		return false
	}
	if f.Type != nil && e.Type != *f.Type {
		return false
	}
	switch f.Paid {
	case PaidOnly:
		if e.PaidAt == nil {
			return false
		}
	case UnpaidOnly:
		if e.PaidAt != nil {
			return false
		}
	}
	if f.MinDate != nil && e.Date.Before(*f.MinDate) {
		return false
	}
	return true
}
