package salaryslip

import (
	"math"
	"strconv"
	"strings"
)

type Totals struct {
	TotalEarnings   float64
	TotalDeductions float64
	NetPay          float64
}

// ComputeTotals is the authoritative payroll arithmetic. Unlike the leave
// quota snapshot, totals submitted by the client are discarded and recomputed
// here. NetPay may go negative; it is stored and displayed as-is.
func ComputeTotals(basic, hra, allowances, pf, tax, otherDeductions float64) Totals {
	totalEarnings := basic + hra + allowances
	totalDeductions := pf + tax + otherDeductions
	return Totals{
		TotalEarnings:   totalEarnings,
		TotalDeductions: totalDeductions,
		NetPay:          totalEarnings - totalDeductions,
	}
}

// ParseAmount coerces loose form input to a number. Absent or non-numeric
// values become 0, never an error.
func ParseAmount(v string) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
