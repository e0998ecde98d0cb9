package leave_test

import (
	"testing"
	"time"

	"hr-backoffice/internal/leave"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysRequested(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		assert.Equal(t, 1, leave.DaysRequested(date(2026, 3, 10), date(2026, 3, 10)))
	})

	t.Run("inclusive range", func(t *testing.T) {
		assert.Equal(t, 3, leave.DaysRequested(date(2026, 3, 10), date(2026, 3, 12)))
	})

	t.Run("reversed range clamps to zero", func(t *testing.T) {
		assert.Equal(t, 0, leave.DaysRequested(date(2026, 3, 12), date(2026, 3, 10)))
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		assert.Equal(t, 4, leave.DaysRequested(date(2026, 2, 27), date(2026, 3, 2)))
	})
}

func TestTakenThisMonth(t *testing.T) {
	now := date(2026, 3, 15)

	t.Run("sums non-denied requests in current month", func(t *testing.T) {
		records := []leave.LeaveRequest{
			{FromDate: date(2026, 3, 2), ToDate: date(2026, 3, 3), Days: 2, Status: leave.StatusApproved},
			{FromDate: date(2026, 3, 9), ToDate: date(2026, 3, 9), Days: 1, Status: leave.StatusPending},
		}
		assert.Equal(t, 3, leave.TakenThisMonth(records, now))
	})

	t.Run("denied requests do not count", func(t *testing.T) {
		records := []leave.LeaveRequest{
			{FromDate: date(2026, 3, 2), ToDate: date(2026, 3, 3), Days: 2, Status: leave.StatusDenied},
			{FromDate: date(2026, 3, 9), ToDate: date(2026, 3, 9), Days: 1, Status: leave.StatusApproved},
		}
		assert.Equal(t, 1, leave.TakenThisMonth(records, now))
	})

	t.Run("other months do not count", func(t *testing.T) {
		records := []leave.LeaveRequest{
			{FromDate: date(2026, 2, 2), ToDate: date(2026, 2, 3), Days: 2, Status: leave.StatusApproved},
			{FromDate: date(2025, 3, 9), ToDate: date(2025, 3, 9), Days: 1, Status: leave.StatusApproved},
		}
		assert.Equal(t, 0, leave.TakenThisMonth(records, now))
	})

	t.Run("recomputes span when days not snapshotted", func(t *testing.T) {
		records := []leave.LeaveRequest{
			{FromDate: date(2026, 3, 2), ToDate: date(2026, 3, 4), Status: leave.StatusApproved},
		}
		assert.Equal(t, 3, leave.TakenThisMonth(records, now))
	})
}

func TestLeavesLeft(t *testing.T) {
	assert.Equal(t, 2, leave.LeavesLeft(2, 0))
	assert.Equal(t, 1, leave.LeavesLeft(2, 1))
	assert.Equal(t, 0, leave.LeavesLeft(2, 2))

	// Over-consumption never yields a negative balance.
	assert.Equal(t, 0, leave.LeavesLeft(2, 5))
}

func TestMonthlyQuotaFromEnv(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		t.Setenv("LEAVE_MONTHLY_QUOTA", "")
		assert.Equal(t, leave.DefaultMonthlyQuota, leave.MonthlyQuotaFromEnv())
	})

	t.Run("reads override", func(t *testing.T) {
		t.Setenv("LEAVE_MONTHLY_QUOTA", "4")
		assert.Equal(t, 4, leave.MonthlyQuotaFromEnv())
	})

	t.Run("default on junk", func(t *testing.T) {
		t.Setenv("LEAVE_MONTHLY_QUOTA", "many")
		assert.Equal(t, leave.DefaultMonthlyQuota, leave.MonthlyQuotaFromEnv())
	})
}
