// Package docnum formats the human-readable document numbers printed on
// slips and receipts across departments.
package docnum

import (
	"fmt"
	"time"
)

// Prefixes, one per document family.
const (
	PrefixAppointment  = "APT"
	PrefixPrescription = "RX"
	PrefixLabOrder     = "LAB"
	PrefixPharmacySale = "PH"
	PrefixCanteenSale  = "CN"
)

// Format renders "<prefix><yyyymmdd><seq>" with the sequence zero-padded to
// four digits. seq is 1-based within the calendar day; sequences past 9999
// widen naturally rather than wrap.
func Format(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s%s%04d", prefix, date.Format("20060102"), seq)
}
