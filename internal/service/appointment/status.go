package appointment

import entappt "github.com/curaline/curaline_backend/internal/repo/appointment"

// transitions is the full appointment state machine. Statuses are monotonic:
// no edge ever leads back to an earlier state.
var transitions = map[entappt.Status][]entappt.Status{
	entappt.StatusPending:   {entappt.StatusConfirmed, entappt.StatusCancelled},
	entappt.StatusConfirmed: {entappt.StatusCompleted, entappt.StatusCancelled, entappt.StatusNoShow},
	entappt.StatusCompleted: {},
	entappt.StatusCancelled: {},
	entappt.StatusNoShow:    {},
}

// CanTransition reports whether the state machine permits moving from one
// status to another. Re-confirming a confirmed appointment is handled as an
// idempotent short-circuit before this check, not as an edge.
func CanTransition(from, to entappt.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func IsTerminal(status entappt.Status) bool {
	return len(transitions[status]) == 0
}
