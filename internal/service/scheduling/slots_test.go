package scheduling

import (
	"reflect"
	"testing"
)

func TestSlotTimes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		step  int
		want  []string
	}{
		{
			name:  "hour window at fifteen minutes",
			start: "09:00", end: "10:00", step: 15,
			want: []string{"09:00", "09:15", "09:30", "09:45"},
		},
		{
			name:  "last slot must fit before close",
			start: "09:00", end: "09:50", step: 20,
			want: []string{"09:00", "09:20"},
		},
		{
			name:  "window shorter than one slot",
			start: "09:00", end: "09:10", step: 15,
			want: nil,
		},
		{
			name:  "exact single slot",
			start: "14:00", end: "14:30", step: 30,
			want: []string{"14:00"},
		},
		{
			name:  "evening window",
			start: "18:00", end: "21:00", step: 60,
			want: []string{"18:00", "19:00", "20:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slotTimes(tt.start, tt.end, tt.step)
			if err != nil {
				t.Fatalf("slotTimes(%q, %q, %d) error: %v", tt.start, tt.end, tt.step, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("slotTimes(%q, %q, %d) = %v, want %v", tt.start, tt.end, tt.step, got, tt.want)
			}
		})
	}
}

func TestSlotTimesErrors(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		step  int
	}{
		{"zero step", "09:00", "10:00", 0},
		{"negative step", "09:00", "10:00", -5},
		{"bad start format", "9am", "10:00", 15},
		{"bad end format", "09:00", "25:00", 15},
		{"end before start", "12:00", "09:00", 15},
		{"end equals start", "09:00", "09:00", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := slotTimes(tt.start, tt.end, tt.step); err == nil {
				t.Errorf("slotTimes(%q, %q, %d) expected error, got nil", tt.start, tt.end, tt.step)
			}
		})
	}
}
