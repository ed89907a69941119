package pagereplace

import "github.com/tenghoit/csc380-s26/util"

// Optimal evicts the resident page whose next reference lies furthest in the
// future, or one that is never referenced again. Requires the full reference
// string up front, which makes it the offline lower bound the other
// algorithms are compared against.
type Optimal struct{}

func NewOptimal() *Optimal {
	return &Optimal{}
}

func (*Optimal) Name() string {
	return "Optimal"
}

func (*Optimal) reset() {}

func (*Optimal) recordHit(*frameTable, int) {}

func (*Optimal) recordLoad(*frameTable, int) {}

func (*Optimal) victim(t *frameTable, index int) int {
	remaining := t.refs[index:]
	victim, furthest := 0, -1
	for i, page := range t.frames {
		next := util.IntSliceIndexOf(remaining, page)
		if next == -1 {
			// Never referenced again; no later frame can beat it.
			return i
		}
		if next > furthest {
			victim, furthest = i, next
		}
	}
	return victim
}
