package scheduling

import (
	"fmt"
	"time"
)

const wallClockLayout = "15:04"

// slotTimes expands one consultation window into its bookable start times.
// The last slot must fit entirely before the window closes: a 09:00-10:00
// window at 15 minutes yields 09:00, 09:15, 09:30, 09:45.
func slotTimes(start, end string, stepMinutes int) ([]string, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("slot step must be positive, got %d", stepMinutes)
	}

	from, err := time.Parse(wallClockLayout, start)
	if err != nil {
		return nil, fmt.Errorf("parse window start %q: %w", start, err)
	}
	to, err := time.Parse(wallClockLayout, end)
	if err != nil {
		return nil, fmt.Errorf("parse window end %q: %w", end, err)
	}
	if !to.After(from) {
		return nil, fmt.Errorf("window end %q is not after start %q", end, start)
	}

	step := time.Duration(stepMinutes) * time.Minute
	var out []string
	for t := from; !t.Add(step).After(to); t = t.Add(step) {
		out = append(out, t.Format(wallClockLayout))
	}
	return out, nil
}
