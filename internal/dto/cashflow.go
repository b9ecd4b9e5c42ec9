package dto

import (
	"time"

	"github.com/oficinadev/oficina_backend/internal/core/domain"
	"github.com/oficinadev/oficina_backend/internal/utils/dateutil"
	"github.com/shopspring/decimal"
)

// ListCashFlowRequest narrows the ledger listing. Tab defaults to "all".
type ListCashFlowRequest struct {
	Tab      string `form:"tab" binding:"omitempty,oneof=all IN OUT receivable payable received paid pending"`
	DateFrom string `form:"dateFrom" binding:"omitempty,dateday"`
	DateTo   string `form:"dateTo" binding:"omitempty,dateday"`
	ClientID string `form:"clientId" binding:"omitempty,uuid"`
}

// CreateCashFlowRequest creates one entry or an installment batch.
// For InstallmentsCount > 1, FirstDueDate anchors the schedule; for a single
// entry Date wins, then FirstDueDate, then today.
type CreateCashFlowRequest struct {
	Type              string          `json:"type" binding:"required,oneof=IN OUT"`
	Description       string          `json:"description" binding:"required,min=1"`
	Value             decimal.Decimal `json:"value" binding:"required"`
	Date              string          `json:"date" binding:"omitempty,dateday"`
	ServiceOrderID    *string         `json:"serviceOrderId" binding:"omitempty,uuid"`
	InstallmentsCount int             `json:"installmentsCount" binding:"omitempty,min=1,max=24"`
	FirstDueDate      string          `json:"firstDueDate" binding:"omitempty,dateday"`
}

// SetPaidAtRequest sets or clears a payment date; an empty string clears it.
type SetPaidAtRequest struct {
	PaidAt string `json:"paidAt" binding:"omitempty,dateday"`
}

// SummaryByMonthRequest selects a monthly pivot range.
type SummaryByMonthRequest struct {
	DateFrom string `form:"dateFrom" binding:"required,datemonth"`
	DateTo   string `form:"dateTo" binding:"required,datemonth"`
	Mode     string `form:"mode" binding:"required,oneof=previsao realizado"`
}

// SummaryByDayRequest selects a daily pivot range.
type SummaryByDayRequest struct {
	DateFrom string `form:"dateFrom" binding:"required,dateday"`
	DateTo   string `form:"dateTo" binding:"required,dateday"`
	Mode     string `form:"mode" binding:"required,oneof=previsao realizado"`
}

// CashFlowEntryResponse is the wire form of a ledger entry. Dates use the
// YYYY-MM-DD encoding.
type CashFlowEntryResponse struct {
	EntryID          string          `json:"id"`
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Date             string          `json:"date"`
	PaidAt           *string         `json:"paidAt"`
	ServiceOrderID   *string         `json:"serviceOrderId,omitempty"`
	CashFlowGroupID  *string         `json:"cashFlowGroupId,omitempty"`
	InstallmentIndex *int            `json:"installmentIndex,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToCashFlowEntryResponse converts a domain entry to its wire form.
func ToCashFlowEntryResponse(e *domain.CashFlowEntry) CashFlowEntryResponse {
	resp := CashFlowEntryResponse{
		EntryID:          e.EntryID,
		Type:             string(e.Type),
		Description:      e.Description,
		Amount:           e.Amount,
		Date:             dateutil.FormatDay(e.Date),
		ServiceOrderID:   e.ServiceOrderID,
		CashFlowGroupID:  e.GroupID,
		InstallmentIndex: e.InstallmentIndex,
		CreatedAt:        e.CreatedAt,
	}
	if e.PaidAt != nil {
		paid := dateutil.FormatDay(*e.PaidAt)
		resp.PaidAt = &paid
	}
	return resp
}

// ToCashFlowEntryResponses converts a slice of domain entries.
func ToCashFlowEntryResponses(entries []domain.CashFlowEntry) []CashFlowEntryResponse {
	responses := make([]CashFlowEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToCashFlowEntryResponse(&entries[i])
	}
	return responses
}

// CashFlowSummaryResponse is the wire form of the pivot summary.
type CashFlowSummaryResponse struct {
	Periods        []string          `json:"periods"`
	Receipts       []decimal.Decimal `json:"recebimentos"`
	Payments       []decimal.Decimal `json:"pagamentos"`
	CashGeneration []decimal.Decimal `json:"geracaoDeCaixa"`
	OpeningBalance []decimal.Decimal `json:"saldoInicial"`
	ClosingBalance []decimal.Decimal `json:"saldoFinal"`
}

// ToCashFlowSummaryResponse converts a domain summary to its wire form.
func ToCashFlowSummaryResponse(s *domain.CashFlowSummary) CashFlowSummaryResponse {
	return CashFlowSummaryResponse{
		Periods:        s.Periods,
		Receipts:       s.Receipts,
		Payments:       s.Payments,
		CashGeneration: s.CashGeneration,
		OpeningBalance: s.OpeningBalance,
		ClosingBalance: s.ClosingBalance,
	}
}
