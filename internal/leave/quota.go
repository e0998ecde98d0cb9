package leave

import (
	"os"
	"strconv"
	"time"
)

// DefaultMonthlyQuota is the leave-day allowance per calendar month when no
// override is configured.
const DefaultMonthlyQuota = 2

func MonthlyQuotaFromEnv() int {
	if v := os.Getenv("LEAVE_MONTHLY_QUOTA"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMonthlyQuota
}

// DaysRequested is the inclusive calendar-day count of a range. An inverted
// range yields 0, not an error.
func DaysRequested(from, to time.Time) int {
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// TakenThisMonth sums the day counts of non-denied records whose fromDate
// falls in now's calendar month. The stored days field wins when positive;
// otherwise the count is recomputed from the record's own range.
func TakenThisMonth(records []LeaveRequest, now time.Time) int {
	year, month := now.Year(), now.Month()

	taken := 0
	for _, r := range records {
		if r.Status == StatusDenied {
			continue
		}
		if r.FromDate.Year() != year || r.FromDate.Month() != month {
			continue
		}
		if r.Days > 0 {
			taken += r.Days
			continue
		}
		taken += DaysRequested(r.FromDate, r.ToDate)
	}
	return taken
}

func LeavesLeft(quota, taken int) int {
	left := quota - taken
	if left < 0 {
		return 0
	}
	return left
}
