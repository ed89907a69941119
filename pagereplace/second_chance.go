package pagereplace

// SecondChance extends LRU ordering with a reference bit per page. A victim
// scan walks from the front: pages holding a second chance lose it and
// rotate to the tail; the first page without one is evicted.
type SecondChance struct {
	chances map[int]bool
}

func NewSecondChance() *SecondChance {
	return &SecondChance{}
}

func (*SecondChance) Name() string {
	return "SecondChance"
}

func (s *SecondChance) reset() {
	s.chances = make(map[int]bool)
}

func (s *SecondChance) recordHit(t *frameTable, page int) {
	moveToTail(t, page)
	s.chances[page] = true
}

func (s *SecondChance) recordLoad(_ *frameTable, page int) {
	s.chances[page] = false
}

func (s *SecondChance) victim(t *frameTable, _ int) int {
	// Bounded by one full rotation: if every page held a second chance,
	// all bits are now clear and the front is evicted.
	for range t.frames {
		front := t.frames[0]
		if !s.chances[front] {
			return 0
		}
		s.chances[front] = false
		t.frames = append(t.frames[1:], front)
	}
	return 0
}
