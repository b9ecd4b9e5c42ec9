// Package accounting holds the monetary arithmetic of the ledger.
package accounting

import "github.com/shopspring/decimal"

// SplitInstallments divides total into count per-installment amounts,
// rounded to cents.
//
// With exact=false every installment gets round(total/count, 2), so the sum
// of parts may drift from total by up to count-1 cents. This mirrors the
// historical behavior of the system and remains the default.
//
// With exact=true all installments but the last get floor(total/count, 2)
// and the last absorbs the residual, so the parts always sum to total.
func SplitInstallments(total decimal.Decimal, count int, exact bool) []decimal.Decimal {
	amounts := make([]decimal.Decimal, count)
	if count == 1 {
		amounts[0] = total.Round(2)
		return amounts
	}

	n := decimal.NewFromInt(int64(count))
	if !exact {
		per := total.DivRound(n, 2)
		for i := range amounts {
			amounts[i] = per
		}
		return amounts
	}

	base := total.Div(n).RoundDown(2)
	for i := 0; i < count-1; i++ {
		amounts[i] = base
	}
	amounts[count-1] = total.Sub(base.Mul(decimal.NewFromInt(int64(count - 1))))
	return amounts
}

// Sum adds a slice of decimal amounts.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
