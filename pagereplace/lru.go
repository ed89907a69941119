package pagereplace

import "github.com/tenghoit/csc380-s26/util"

// LRU keeps frames ordered by recency: a hit moves the page to the tail, so
// the front is always the least recently used page.
type LRU struct{}

func NewLRU() *LRU {
	return &LRU{}
}

func (*LRU) Name() string {
	return "LRU"
}

func (*LRU) reset() {}

func (*LRU) recordHit(t *frameTable, page int) {
	moveToTail(t, page)
}

func (*LRU) recordLoad(*frameTable, int) {}

func (*LRU) victim(*frameTable, int) int {
	return 0
}

func moveToTail(t *frameTable, page int) {
	i := util.IntSliceIndexOf(t.frames, page)
	if i == -1 {
		panic("pagereplace: recency update for a page that is not resident")
	}
	t.frames = append(append(t.frames[:i], t.frames[i+1:]...), page)
}
