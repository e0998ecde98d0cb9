package salaryslip_test

import (
	"testing"

	"hr-backoffice/internal/salaryslip"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	t.Run("standard breakdown", func(t *testing.T) {
		totals := salaryslip.ComputeTotals(20000, 5000, 2000, 1800, 1500, 200)

		assert.Equal(t, 27000.0, totals.TotalEarnings)
		assert.Equal(t, 3500.0, totals.TotalDeductions)
		assert.Equal(t, 23500.0, totals.NetPay)
	})

	t.Run("zero components", func(t *testing.T) {
		totals := salaryslip.ComputeTotals(0, 0, 0, 0, 0, 0)

		assert.Zero(t, totals.TotalEarnings)
		assert.Zero(t, totals.TotalDeductions)
		assert.Zero(t, totals.NetPay)
	})

	t.Run("net pay may go negative", func(t *testing.T) {
		totals := salaryslip.ComputeTotals(1000, 0, 0, 2000, 0, 0)

		assert.Equal(t, -1000.0, totals.NetPay)
	})
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 20000.0, salaryslip.ParseAmount("20000"))
	assert.Equal(t, 1234.5, salaryslip.ParseAmount(" 1234.5 "))

	// Anything unparseable coerces to zero rather than erroring.
	assert.Zero(t, salaryslip.ParseAmount(""))
	assert.Zero(t, salaryslip.ParseAmount("abc"))
	assert.Zero(t, salaryslip.ParseAmount("NaN"))
	assert.Zero(t, salaryslip.ParseAmount("+Inf"))
}
