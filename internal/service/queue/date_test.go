package queue

import (
	"testing"
	"time"
)

// A date parsed from the API ("2006-01-02", UTC) and a "today" default taken
// from a server clock in another zone must land on the same instant, or the
// appointment_date equality predicate silently matches nothing.
func TestDateOnlyNormalizesAcrossZones(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)

	parsed, err := time.Parse("2006-01-02", "2024-01-10")
	if err != nil {
		t.Fatal(err)
	}
	serverNow := time.Date(2024, time.January, 10, 14, 30, 0, 0, dhaka)

	stored := dateOnly(parsed)
	queried := dateOnly(serverNow)

	if !stored.Equal(queried) {
		t.Errorf("same calendar day produced different instants: stored=%v queried=%v", stored, queried)
	}
	if stored.Location() != time.UTC {
		t.Errorf("dateOnly location = %v, want UTC", stored.Location())
	}
	if h, m, s := stored.Clock(); h+m+s != 0 {
		t.Errorf("dateOnly did not truncate to midnight: %v", stored)
	}
}

func TestDateOnlyKeepsLocalCalendarDay(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)

	// 01:30 local on the 11th is still the 10th in UTC; the queue day is the
	// hospital's calendar day, not the UTC one.
	lateNight := time.Date(2024, time.January, 11, 1, 30, 0, 0, dhaka)

	got := dateOnly(lateNight)
	want := time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("dateOnly(%v) = %v, want %v", lateNight, got, want)
	}
}
