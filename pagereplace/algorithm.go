// Package pagereplace simulates page-frame eviction under the classic
// replacement algorithms (Optimal, FIFO, LRU, Second Chance) and counts page
// faults over a reference string. It shares no state with the CPU scheduling
// simulator; the two subsystems only meet in the CLI.
package pagereplace

import (
	"fmt"

	"github.com/tenghoit/csc380-s26/util"
)

// Algorithm is one replacement strategy. Implementations may carry per-run
// state (Second Chance reference bits); Simulate resets it before use.
type Algorithm interface {
	Name() string

	reset()
	// recordHit is called when page is already resident.
	recordHit(t *frameTable, page int)
	// recordLoad is called after page has been placed into a frame.
	recordLoad(t *frameTable, page int)
	// victim picks the frame position to evict; index is the position of
	// the faulting reference within the reference string.
	victim(t *frameTable, index int) int
}

// frameTable is the shared run state: resident pages in load order plus the
// full reference string for algorithms that look ahead (Optimal).
type frameTable struct {
	capacity int
	frames   []int
	refs     []int
}

func (t *frameTable) full() bool {
	return len(t.frames) >= t.capacity
}

// Simulate replays the reference string against frameCount frames and
// returns the number of page faults.
func Simulate(algo Algorithm, frameCount int, refs []int) (int, error) {
	if frameCount <= 0 {
		return 0, fmt.Errorf("frame count must be positive, got %d", frameCount)
	}
	algo.reset()
	t := &frameTable{
		capacity: frameCount,
		frames:   make([]int, 0, frameCount),
		refs:     refs,
	}

	faults := 0
	for i, page := range refs {
		if util.IntSliceIndexOf(t.frames, page) != -1 {
			algo.recordHit(t, page)
			continue
		}
		faults++
		if t.full() {
			v := algo.victim(t, i)
			if v < 0 || v >= len(t.frames) {
				panic(fmt.Sprintf("pagereplace: %s chose victim position %d of %d frames", algo.Name(), v, len(t.frames)))
			}
			t.frames = append(t.frames[:v], t.frames[v+1:]...)
		}
		t.frames = append(t.frames, page)
		algo.recordLoad(t, page)
	}
	return faults, nil
}

// Result is one comparison row.
type Result struct {
	Algorithm string
	Faults    int
}

// Compare runs every algorithm over the same reference string, in a fixed
// order, and reports faults per algorithm.
func Compare(frameCount int, refs []int) ([]Result, error) {
	algorithms := []Algorithm{
		NewOptimal(),
		NewFIFO(),
		NewLRU(),
		NewSecondChance(),
	}
	results := make([]Result, 0, len(algorithms))
	for _, algo := range algorithms {
		faults, err := Simulate(algo, frameCount, refs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algo.Name(), err)
		}
		results = append(results, Result{Algorithm: algo.Name(), Faults: faults})
	}
	return results, nil
}
