package availability

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(0), at(30), at(0), at(30), true},
		{"contained", at(0), at(60), at(15), at(30), true},
		{"partial overlap left", at(0), at(30), at(15), at(45), true},
		{"partial overlap right", at(15), at(45), at(0), at(30), true},
		{"touching at boundary", at(0), at(30), at(30), at(60), false},
		{"disjoint", at(0), at(30), at(60), at(90), false},
		{"b before a", at(60), at(90), at(0), at(30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}
