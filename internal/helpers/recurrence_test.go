package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/facturio/facturio-api/internal/db"
	"github.com/facturio/facturio-api/internal/helpers"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name    string
		base    time.Time
		pattern db.RecurrencePattern
		want    time.Time
	}{
		{
			name:    "weekly adds seven days",
			base:    date(2024, time.January, 1),
			pattern: db.RecurrencePatternWeekly,
			want:    date(2024, time.January, 8),
		},
		{
			name:    "biweekly adds fourteen days",
			base:    date(2024, time.January, 1),
			pattern: db.RecurrencePatternBiweekly,
			want:    date(2024, time.January, 15),
		},
		{
			name:    "monthly adds one calendar month",
			base:    date(2024, time.March, 15),
			pattern: db.RecurrencePatternMonthly,
			want:    date(2024, time.April, 15),
		},
		{
			name:    "monthly from Jan 31 normalizes forward in a leap year",
			base:    date(2024, time.January, 31),
			pattern: db.RecurrencePatternMonthly,
			want:    date(2024, time.March, 2),
		},
		{
			name:    "monthly from Jan 31 normalizes forward in a non-leap year",
			base:    date(2023, time.January, 31),
			pattern: db.RecurrencePatternMonthly,
			want:    date(2023, time.March, 3),
		},
		{
			name:    "quarterly adds three months",
			base:    date(2024, time.January, 10),
			pattern: db.RecurrencePatternQuarterly,
			want:    date(2024, time.April, 10),
		},
		{
			name:    "semiannually adds six months",
			base:    date(2024, time.January, 10),
			pattern: db.RecurrencePatternSemiannually,
			want:    date(2024, time.July, 10),
		},
		{
			name:    "annually adds one year",
			base:    date(2024, time.February, 29),
			pattern: db.RecurrencePatternAnnually,
			want:    date(2025, time.March, 1),
		},
		{
			name:    "weekly crosses a month boundary",
			base:    date(2024, time.January, 29),
			pattern: db.RecurrencePatternWeekly,
			want:    date(2024, time.February, 5),
		},
		{
			name:    "annually crosses a year boundary",
			base:    date(2024, time.December, 31),
			pattern: db.RecurrencePatternAnnually,
			want:    date(2025, time.December, 31),
		},
		{
			name:    "unknown pattern falls back to monthly",
			base:    date(2024, time.January, 10),
			pattern: db.RecurrencePattern("fortnightly"),
			want:    date(2024, time.February, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := helpers.NextDueDate(tt.base, tt.pattern)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextDueDate_AlwaysAdvances(t *testing.T) {
	base := date(2024, time.June, 1)
	for _, pattern := range []db.RecurrencePattern{
		db.RecurrencePatternWeekly,
		db.RecurrencePatternBiweekly,
		db.RecurrencePatternMonthly,
		db.RecurrencePatternQuarterly,
		db.RecurrencePatternSemiannually,
		db.RecurrencePatternAnnually,
	} {
		got := helpers.NextDueDate(base, pattern)
		assert.True(t, got.After(base), "pattern %s did not advance", pattern)
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2024, time.May, 7, 16, 45, 12, 999, time.UTC)
	assert.Equal(t, date(2024, time.May, 7), helpers.TruncateToDay(in))

	// Already-midnight values are unchanged.
	assert.Equal(t, date(2024, time.May, 7), helpers.TruncateToDay(date(2024, time.May, 7)))
}
