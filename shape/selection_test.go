package shape

import (
	"testing"
)

func TestCycleAdvances(t *testing.T) {
	s := NewSelection()
	if s.Current() != Ball {
		t.Fatalf("Expected default Ball, got %v", s.Current())
	}

	if got := s.Cycle(); got != Cube {
		t.Errorf("Expected Cube after Ball, got %v", got)
	}
}

func TestCycleWraparound(t *testing.T) {
	s := &Selection{current: Cone}
	if got := s.Cycle(); got != Ball {
		t.Errorf("Expected Ball after Cone, got %v", got)
	}
}

func TestCycleFullLoop(t *testing.T) {
	for _, start := range All() {
		s := &Selection{current: start}
		for i := 0; i < len(All()); i++ {
			s.Cycle()
		}
		if s.Current() != start {
			t.Errorf("5 cycles from %v: expected %v, got %v", start, start, s.Current())
		}
	}
}

func TestCycleFromInvalid(t *testing.T) {
	s := &Selection{current: Kind(42)}
	// Unknown value resolves to index 0, so advancing yields Cube
	if got := s.Cycle(); got != Cube {
		t.Errorf("Expected Cube from invalid state, got %v", got)
	}
}
