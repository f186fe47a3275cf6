package queue

import (
	"testing"

	entappt "github.com/niramoy/niramoy_backend/internal/repo/appointment"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entappt.Status
		to   entappt.Status
		want bool
	}{
		{"waiting to called", entappt.StatusWaiting, entappt.StatusCalled, true},
		{"waiting straight to in_progress", entappt.StatusWaiting, entappt.StatusInProgress, true},
		{"waiting to cancelled", entappt.StatusWaiting, entappt.StatusCancelled, true},
		{"waiting to no_show", entappt.StatusWaiting, entappt.StatusNoShow, true},
		{"called to in_progress", entappt.StatusCalled, entappt.StatusInProgress, true},
		{"called to no_show", entappt.StatusCalled, entappt.StatusNoShow, true},
		{"in_progress to completed", entappt.StatusInProgress, entappt.StatusCompleted, true},
		{"in_progress to cancelled", entappt.StatusInProgress, entappt.StatusCancelled, true},

		// nothing moves backwards
		{"called back to waiting", entappt.StatusCalled, entappt.StatusWaiting, false},
		{"in_progress back to called", entappt.StatusInProgress, entappt.StatusCalled, false},
		{"completed back to waiting", entappt.StatusCompleted, entappt.StatusWaiting, false},

		// terminal states accept nothing
		{"completed to cancelled", entappt.StatusCompleted, entappt.StatusCancelled, false},
		{"cancelled to called", entappt.StatusCancelled, entappt.StatusCalled, false},
		{"no_show to in_progress", entappt.StatusNoShow, entappt.StatusInProgress, false},

		// skipping forward past in_progress is not allowed
		{"waiting to completed", entappt.StatusWaiting, entappt.StatusCompleted, false},
		{"called to completed", entappt.StatusCalled, entappt.StatusCompleted, false},

		{"self transition is rejected", entappt.StatusCalled, entappt.StatusCalled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []entappt.Status{
		entappt.StatusCompleted,
		entappt.StatusCancelled,
		entappt.StatusNoShow,
	}
	live := []entappt.Status{
		entappt.StatusWaiting,
		entappt.StatusCalled,
		entappt.StatusInProgress,
	}

	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = false, want true", s)
		}
	}
	for _, s := range live {
		if IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = true, want false", s)
		}
	}
}

// Every status reachable from a terminal status would be a state machine
// bug; assert the transition table has no such entry.
func TestTerminalStatesHaveNoOutgoingTransitions(t *testing.T) {
	for from := range validTransitions {
		if IsTerminal(from) {
			t.Errorf("transition table has outgoing edges from terminal status %s", from)
		}
	}
}
