package shape

// Selection holds the currently chosen spawn kind. Owned by the game
// orchestrator and passed by reference; single-writer, no locking
type Selection struct {
	current Kind
}

// NewSelection starts at Ball
func NewSelection() *Selection {
	return &Selection{current: Ball}
}

// Current returns the selected kind
func (s *Selection) Current() Kind {
	return s.current
}

// Cycle advances to the next kind in All() order, wrapping at the end.
// An out-of-range current value resolves to index 0 before advancing
func (s *Selection) Cycle() Kind {
	kinds := All()
	idx := 0
	for i, k := range kinds {
		if k == s.current {
			idx = i
			break
		}
	}
	s.current = kinds[(idx+1)%len(kinds)]
	return s.current
}
