package helpers

import (
	"time"

	"github.com/facturio/facturio-api/internal/db"
)

// NextDueDate calculates the next due date for a recurrence pattern, starting
// from base. Month-based patterns use calendar arithmetic, so day-of-month
// overflow normalizes forward (Jan 31 + 1 month = Mar 2 or Mar 3).
// An unrecognized pattern falls back to monthly; callers that treat unknown
// patterns as errors must validate before calling.
func NextDueDate(base time.Time, pattern db.RecurrencePattern) time.Time {
	switch pattern {
	case db.RecurrencePatternWeekly:
		return base.AddDate(0, 0, 7)
	case db.RecurrencePatternBiweekly:
		return base.AddDate(0, 0, 14)
	case db.RecurrencePatternMonthly:
		return base.AddDate(0, 1, 0)
	case db.RecurrencePatternQuarterly:
		return base.AddDate(0, 3, 0)
	case db.RecurrencePatternSemiannually:
		return base.AddDate(0, 6, 0)
	case db.RecurrencePatternAnnually:
		return base.AddDate(1, 0, 0)
	default:
		return base.AddDate(0, 1, 0) // Default to monthly
	}
}

// TruncateToDay normalizes a timestamp to midnight UTC. All due-date
// comparisons in the billing engine are date-only.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
