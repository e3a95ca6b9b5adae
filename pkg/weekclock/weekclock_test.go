package weekclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// israel approximates the deployment timezone without requiring tzdata.
var israel = time.FixedZone("IST", 2*60*60)

func TestCurrentWeekNumber(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"jan 1 on a sunday", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"saturday of week 1", time.Date(2023, 1, 7, 23, 0, 0, 0, time.UTC), 1},
		{"sunday opens week 2", time.Date(2023, 1, 8, 0, 0, 0, 0, time.UTC), 2},
		{"jan 1 on a wednesday", time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), 1},
		{"first saturday still week 1", time.Date(2025, 1, 4, 9, 0, 0, 0, time.UTC), 1},
		{"short first week rolls on sunday", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 2},
		{"mid june 2025", time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC), 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentWeekNumber(tt.date))
		})
	}
}

func TestCurrentWeekNumberMonotonicWithinYear(t *testing.T) {
	prev := 0
	for d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC); d.Year() == 2025; d = d.AddDate(0, 0, 1) {
		w := CurrentWeekNumber(d)
		require.Positive(t, w)
		require.GreaterOrEqual(t, w, prev, "week number decreased at %s", d)
		if d.Weekday() == time.Sunday && prev != 0 {
			require.Equal(t, prev+1, w, "saturday->sunday must advance by one at %s", d)
		}
		prev = w
	}
}

func TestIsPastRollover(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"friday 09:59:59", time.Date(2025, 6, 20, 9, 59, 59, 0, israel), false},
		{"friday 10:00:00", time.Date(2025, 6, 20, 10, 0, 0, 0, israel), true},
		{"friday evening", time.Date(2025, 6, 20, 21, 30, 0, 0, israel), true},
		{"saturday midnight", time.Date(2025, 6, 21, 0, 0, 0, 0, israel), true},
		{"saturday night", time.Date(2025, 6, 21, 23, 59, 0, 0, israel), true},
		{"sunday morning", time.Date(2025, 6, 22, 8, 0, 0, 0, israel), false},
		{"thursday noon", time.Date(2025, 6, 19, 12, 0, 0, 0, israel), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPastRollover(tt.date, israel))
		})
	}
}

func TestEffectiveOffset(t *testing.T) {
	friday11 := time.Date(2025, 6, 20, 11, 0, 0, 0, israel)
	friday9 := time.Date(2025, 6, 20, 9, 0, 0, 0, israel)

	assert.Equal(t, 1, EffectiveOffset(0, friday11, israel))
	assert.Equal(t, 0, EffectiveOffset(0, friday9, israel))
	assert.Equal(t, 3, EffectiveOffset(2, friday11, israel))
}

func TestWeekNumberForYearWeek(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025, 2026} {
		for w := 1; w <= 52; w++ {
			require.Equal(t, w, WeekNumberForYearWeek(year, w), "year %d week %d", year, w)
		}
	}

	now := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	current := CurrentWeekNumber(now)
	assert.Equal(t, current-1, WeekNumberForYearWeek(now.Year(), current-1))
}

func TestDateRangeForWeek(t *testing.T) {
	now := time.Date(2025, 1, 8, 15, 0, 0, 0, time.UTC) // wednesday, week 2

	start, end := DateRangeForWeek(2, now)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC), end)

	start, end = DateRangeForWeek(1, now)
	assert.Equal(t, time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), end)

	// Five-day operational span, always.
	assert.Equal(t, 4*24*time.Hour, end.Sub(start))
}

func TestAvailableWeeksForYear(t *testing.T) {
	now := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC)
	current := CurrentWeekNumber(now)

	weeks := AvailableWeeksForYear(2025, now)
	require.Len(t, weeks, current-1)
	for _, w := range weeks {
		require.Less(t, w, current)
	}

	past := AvailableWeeksForYear(2023, now)
	require.Len(t, past, 52)
	assert.Equal(t, 1, past[0])
	assert.Equal(t, 52, past[51])

	assert.Empty(t, AvailableWeeksForYear(2026, now))
}
