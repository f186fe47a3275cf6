package queue

import entappt "github.com/niramoy/niramoy_backend/internal/repo/appointment"

// The queue state machine. Transitions only ever move forward: nothing
// returns an appointment to waiting, and the three terminal states accept
// no further transitions.
//
//	waiting → called → in_progress → completed
//	waiting ───────────↗
//	any non-terminal  → cancelled | no_show

var validTransitions = map[entappt.Status][]entappt.Status{
	entappt.StatusWaiting: {
		entappt.StatusCalled,
		entappt.StatusInProgress,
		entappt.StatusCancelled,
		entappt.StatusNoShow,
	},
	entappt.StatusCalled: {
		entappt.StatusInProgress,
		entappt.StatusCancelled,
		entappt.StatusNoShow,
	},
	entappt.StatusInProgress: {
		entappt.StatusCompleted,
		entappt.StatusCancelled,
	},
}

// CanTransition reports whether from → to is a legal queue transition.
func CanTransition(from, to entappt.Status) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status accepts no further transitions.
func IsTerminal(s entappt.Status) bool {
	switch s {
	case entappt.StatusCompleted, entappt.StatusCancelled, entappt.StatusNoShow:
		return true
	}
	return false
}
