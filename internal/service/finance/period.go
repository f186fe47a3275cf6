package finance

import (
	"time"
)

type Period string

const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
)

// ParsePeriod validates a caller-supplied period string.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodCustom:
		return Period(s), nil
	}
	return "", ErrInvalidPeriod
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateRange derives the inclusive [start, end] date bounds for a period,
// relative to now. Weeks run Monday through Sunday. For PeriodCustom both
// bounds must be supplied and ordered; they are truncated to whole days.
func DateRange(period Period, now time.Time, from, to *time.Time) (time.Time, time.Time, error) {
	today := dateOnly(now)

	switch period {
	case PeriodToday:
		return today, today, nil

	case PeriodWeek:
		// time.Weekday has Sunday = 0; shift so Monday opens the week.
		sinceMonday := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -sinceMonday)
		return start, start.AddDate(0, 0, 6), nil

	case PeriodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, -1), nil

	case PeriodYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return start, time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location()), nil

	case PeriodCustom:
		if from == nil || to == nil {
			return time.Time{}, time.Time{}, ErrMissingDateRange
		}
		start, end := dateOnly(*from), dateOnly(*to)
		if end.Before(start) {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		return start, end, nil
	}

	return time.Time{}, time.Time{}, ErrInvalidPeriod
}
