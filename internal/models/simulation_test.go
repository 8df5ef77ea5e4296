package models

import "testing"

func TestStressTypeValid(t *testing.T) {
	for _, s := range []StressType{StressRockfall, StressSeismic, StressWarming} {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	for _, s := range []StressType{"", "sunshine", "Warming", "rockfall "} {
		if s.Valid() {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
