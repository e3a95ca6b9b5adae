// Package weekclock computes canonical week numbers and the weekly
// rollover boundary used to key stored schedules.
package weekclock

import "time"

// RolloverHour is the local hour on Friday from which navigation is
// considered to be in next week already.
const RolloverHour = 10

// CurrentWeekNumber returns the canonical week number containing now.
// Week 1 always contains Jan 1, regardless of which weekday Jan 1
// falls on; weeks start on Sunday.
func CurrentWeekNumber(now time.Time) int {
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return weekNumberAt(startOfYear, now)
}

// weekNumberAt applies the Jan-1 weekday-offset arithmetic anchored at
// startOfYear to the calendar date of d.
func weekNumberAt(startOfYear, d time.Time) int {
	startDay := int(startOfYear.Weekday()) // 0=Sunday .. 6=Saturday
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	daysSinceStart := int(day.Sub(startOfYear).Hours() / 24)
	return ceilDiv(daysSinceStart+startDay+1, 7)
}

// IsPastRollover reports whether now, in the given civil timezone, is
// past the weekly boundary: Friday at or after 10:00, or any time on
// Saturday.
func IsPastRollover(now time.Time, loc *time.Location) bool {
	local := now.In(loc)
	switch local.Weekday() {
	case time.Saturday:
		return true
	case time.Friday:
		return local.Hour() >= RolloverHour
	default:
		return false
	}
}

// EffectiveOffset resolves a manager week offset (0=this week, 1=next,
// 2=after next) to the stored week it actually addresses: past the
// rollover the manager's default view is pre-advanced by one week.
// Ordinary users always resolve offset 0 with no adjustment.
func EffectiveOffset(offset int, now time.Time, loc *time.Location) int {
	if IsPastRollover(now, loc) {
		return offset + 1
	}
	return offset
}

// WeekNumberForYearWeek maps a (calendar year, week-of-year) pair to
// the canonical week number, using the same Jan-1 arithmetic as
// CurrentWeekNumber anchored to the given year.
func WeekNumberForYearWeek(year, weekOfYear int) int {
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	startDay := int(startOfYear.Weekday())
	day := startOfYear.AddDate(0, 0, 7*(weekOfYear-1)-startDay)
	if day.Before(startOfYear) {
		day = startOfYear
	}
	return weekNumberAt(startOfYear, day)
}

// DateRangeForWeek returns the operational date range (Sunday through
// Thursday, inclusive) of the week that is weekNumber relative to the
// week containing now.
func DateRangeForWeek(weekNumber int, now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sunday := day.AddDate(0, 0, -int(day.Weekday()))
	start := sunday.AddDate(0, 0, 7*(weekNumber-CurrentWeekNumber(now)))
	return start, start.AddDate(0, 0, 4)
}

// AvailableWeeksForYear lists the week numbers browsable read-only for
// a year: strictly past weeks for the current year, 1..52 for earlier
// years, nothing for future years. The week containing now is never
// included.
func AvailableWeeksForYear(year int, now time.Time) []int {
	if year > now.Year() {
		return nil
	}
	last := 52
	if year == now.Year() {
		last = CurrentWeekNumber(now) - 1
	}
	weeks := make([]int, 0, last)
	for w := 1; w <= last; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
