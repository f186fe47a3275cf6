package docnum

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	date := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		prefix string
		seq    int
		want   string
	}{
		{"appointment first of day", PrefixAppointment, 1, "APT202401100001"},
		{"prescription mid sequence", PrefixPrescription, 42, "RX202401100042"},
		{"lab four digit boundary", PrefixLabOrder, 9999, "LAB202401109999"},
		{"pharmacy widens past boundary", PrefixPharmacySale, 10000, "PH2024011010000"},
		{"canteen", PrefixCanteenSale, 7, "CN202401100007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.prefix, date, tt.seq); got != tt.want {
				t.Errorf("Format(%q, _, %d) = %q, want %q", tt.prefix, tt.seq, got, tt.want)
			}
		})
	}
}

func TestFormatIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 6, 1, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)

	if a, b := Format(PrefixAppointment, morning, 3), Format(PrefixAppointment, night, 3); a != b {
		t.Errorf("same calendar day produced different numbers: %q vs %q", a, b)
	}
}
