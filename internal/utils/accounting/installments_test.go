package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/oficinadev/oficina_backend/internal/utils/accounting"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitInstallmentsSingle(t *testing.T) {
	got := accounting.SplitInstallments(dec("150.005"), 1, false)
	assert.Len(t, got, 1)
	assert.True(t, dec("150.00").Equal(got[0]), "single installment is the rounded total, got %s", got[0])
}

func TestSplitInstallmentsEvenDivision(t *testing.T) {
	for _, exact := range []bool{false, true} {
		got := accounting.SplitInstallments(dec("300.00"), 3, exact)
		assert.Len(t, got, 3)
		for _, a := range got {
			assert.True(t, dec("100.00").Equal(a), "exact=%v: got %s", exact, a)
		}
	}
}

func TestSplitInstallmentsRoundedDrifts(t *testing.T) {
	got := accounting.SplitInstallments(dec("100.00"), 3, false)
	for _, a := range got {
		assert.True(t, dec("33.33").Equal(a), "got %s", a)
	}
	// 3 x 33.33 = 99.99, one cent short of the total.
	assert.True(t, dec("99.99").Equal(accounting.Sum(got)))
}

func TestSplitInstallmentsExactSumsToTotal(t *testing.T) {
	tests := []struct {
		total string
		count int
		parts []string
	}{
		{"100.00", 3, []string{"33.33", "33.33", "33.34"}},
		{"1000.00", 7, []string{"142.85", "142.85", "142.85", "142.85", "142.85", "142.85", "142.90"}},
		{"0.05", 3, []string{"0.01", "0.01", "0.03"}},
	}
	for _, tt := range tests {
		got := accounting.SplitInstallments(dec(tt.total), tt.count, true)
		assert.Len(t, got, tt.count)
		for i, want := range tt.parts {
			assert.True(t, dec(want).Equal(got[i]), "%s/%d part %d: got %s", tt.total, tt.count, i, got[i])
		}
		assert.True(t, dec(tt.total).Equal(accounting.Sum(got)),
			"%s/%d: parts must sum to the total, got %s", tt.total, tt.count, accounting.Sum(got))
	}
}

func TestSum(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(accounting.Sum(nil)))
	assert.True(t, dec("3.75").Equal(accounting.Sum([]decimal.Decimal{dec("1.25"), dec("2.50")})))
}
