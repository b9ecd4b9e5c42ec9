package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SummaryMode selects which date drives the pivot aggregation.
type SummaryMode string

const (
	ModeForecast SummaryMode = "previsao"  // keyed on due date
	ModeRealized SummaryMode = "realizado" // keyed on payment date; unpaid entries excluded
)

// ParseSummaryMode parses the wire representation of a summary mode.
func ParseSummaryMode(s string) (SummaryMode, error) {
	switch SummaryMode(s) {
	case ModeForecast, ModeRealized:
		return SummaryMode(s), nil
	}
	return "", fmt.Errorf("invalid summary mode %q", s)
}

// DateField returns the ledger date column the mode aggregates over.
func (m SummaryMode) DateField() DateField {
	if m == ModeRealized {
		return ByPaidDate
	}
	return ByDueDate
}

// CashFlowSummary is the per-period pivot over the ledger. All slices are
// parallel to Periods, which holds ordered YYYY-MM or YYYY-MM-DD keys with no
// gaps across the requested span. Balances are a left-to-right scan starting
// at zero: OpeningBalance[i] = ClosingBalance[i-1] and
// ClosingBalance[i] = OpeningBalance[i] + CashGeneration[i].
type CashFlowSummary struct {
	Periods        []string          `json:"periods"`
	Receipts       []decimal.Decimal `json:"recebimentos"`
	Payments       []decimal.Decimal `json:"pagamentos"`
	CashGeneration []decimal.Decimal `json:"geracaoDeCaixa"`
	OpeningBalance []decimal.Decimal `json:"saldoInicial"`
	ClosingBalance []decimal.Decimal `json:"saldoFinal"`
}
