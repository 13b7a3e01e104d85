package appointment

import (
	"testing"

	entappt "github.com/curaline/curaline_backend/internal/repo/appointment"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from entappt.Status
		to   entappt.Status
		want bool
	}{
		{"pending to confirmed", entappt.StatusPending, entappt.StatusConfirmed, true},
		{"pending to cancelled", entappt.StatusPending, entappt.StatusCancelled, true},
		{"pending to completed", entappt.StatusPending, entappt.StatusCompleted, false},
		{"pending to no_show", entappt.StatusPending, entappt.StatusNoShow, false},
		{"confirmed to completed", entappt.StatusConfirmed, entappt.StatusCompleted, true},
		{"confirmed to cancelled", entappt.StatusConfirmed, entappt.StatusCancelled, true},
		{"confirmed to no_show", entappt.StatusConfirmed, entappt.StatusNoShow, true},
		{"confirmed to pending", entappt.StatusConfirmed, entappt.StatusPending, false},
		{"completed is terminal", entappt.StatusCompleted, entappt.StatusCancelled, false},
		{"cancelled is terminal", entappt.StatusCancelled, entappt.StatusConfirmed, false},
		{"no_show is terminal", entappt.StatusNoShow, entappt.StatusCompleted, false},
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
	terminal := []entappt.Status{entappt.StatusCompleted, entappt.StatusCancelled, entappt.StatusNoShow}
	for _, st := range terminal {
		if !IsTerminal(st) {
			t.Errorf("IsTerminal(%s) = false, want true", st)
		}
	}
	for _, st := range []entappt.Status{entappt.StatusPending, entappt.StatusConfirmed} {
		if IsTerminal(st) {
			t.Errorf("IsTerminal(%s) = true, want false", st)
		}
	}
}
