package finance

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange(t *testing.T) {
	// Wednesday, 10 January 2024, mid-afternoon.
	now := time.Date(2024, time.January, 10, 15, 42, 7, 0, time.UTC)

	tests := []struct {
		name      string
		period    Period
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"today truncates the clock", PeriodToday, date(2024, time.January, 10), date(2024, time.January, 10)},
		{"week runs monday to sunday", PeriodWeek, date(2024, time.January, 8), date(2024, time.January, 14)},
		{"month covers full calendar month", PeriodMonth, date(2024, time.January, 1), date(2024, time.January, 31)},
		{"year covers jan 1 to dec 31", PeriodYear, date(2024, time.January, 1), date(2024, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := DateRange(tt.period, now, nil, nil)
			if err != nil {
				t.Fatalf("DateRange(%s) error: %v", tt.period, err)
			}
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("DateRange(%s) = [%s, %s], want [%s, %s]",
					tt.period, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestDateRangeWeekOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2024, time.January, 14, 9, 0, 0, 0, time.UTC)

	start, end, err := DateRange(PeriodWeek, sunday, nil, nil)
	if err != nil {
		t.Fatalf("DateRange(week) error: %v", err)
	}
	if !start.Equal(date(2024, time.January, 8)) || !end.Equal(date(2024, time.January, 14)) {
		t.Errorf("DateRange(week) = [%s, %s], want [2024-01-08, 2024-01-14]", start, end)
	}
}

func TestDateRangeMonthEndFebruaryLeapYear(t *testing.T) {
	now := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)

	_, end, err := DateRange(PeriodMonth, now, nil, nil)
	if err != nil {
		t.Fatalf("DateRange(month) error: %v", err)
	}
	if !end.Equal(date(2024, time.February, 29)) {
		t.Errorf("DateRange(month) end = %s, want 2024-02-29", end)
	}
}

func TestDateRangeCustom(t *testing.T) {
	now := time.Now()
	from := time.Date(2024, time.March, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 15, 2, 0, 0, 0, time.UTC)

	start, end, err := DateRange(PeriodCustom, now, &from, &to)
	if err != nil {
		t.Fatalf("DateRange(custom) error: %v", err)
	}
	if !start.Equal(date(2024, time.March, 1)) || !end.Equal(date(2024, time.March, 15)) {
		t.Errorf("DateRange(custom) = [%s, %s], want whole-day bounds", start, end)
	}

	// Single-day custom range is legal.
	if _, _, err := DateRange(PeriodCustom, now, &from, &from); err != nil {
		t.Errorf("single-day custom range rejected: %v", err)
	}
}

func TestDateRangeErrors(t *testing.T) {
	now := time.Now()
	from := date(2024, time.March, 15)
	to := date(2024, time.March, 1)

	tests := []struct {
		name    string
		period  Period
		from    *time.Time
		to      *time.Time
		wantErr error
	}{
		{"unknown period", Period("quarter"), nil, nil, ErrInvalidPeriod},
		{"custom without bounds", PeriodCustom, nil, nil, ErrMissingDateRange},
		{"custom missing to", PeriodCustom, &from, nil, ErrMissingDateRange},
		{"custom reversed bounds", PeriodCustom, &from, &to, ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DateRange(tt.period, now, tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DateRange error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"today", "week", "month", "year", "custom"} {
		if _, err := ParsePeriod(valid); err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParsePeriod("fortnight"); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("ParsePeriod(fortnight) error = %v, want ErrInvalidPeriod", err)
	}
}
