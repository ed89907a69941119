package policies

import (
	"testing"

	"github.com/tenghoit/csc380-s26/simulator"
)

// dispatchRecorder wraps a policy and records which job won each decision
// point (-1 for an idle processor).
type dispatchRecorder struct {
	inner    simulator.DispatchPolicy
	sequence []int
}

func (r *dispatchRecorder) Name() string { return r.inner.Name() }

func (r *dispatchRecorder) ContextSwitch(ready []*simulator.Job, running *simulator.Job, admitted bool) (*simulator.Job, []*simulator.Job, bool) {
	newRunning, newReady, switched := r.inner.ContextSwitch(ready, running, admitted)
	if newRunning != nil {
		r.sequence = append(r.sequence, newRunning.ID())
	} else {
		r.sequence = append(r.sequence, -1)
	}
	return newRunning, newReady, switched
}

func TestRoundRobinInterleavesEqualJobs(t *testing.T) {
	metric, finished := runPolicy(t, NewRoundRobin(), arrivalZero(2, 2, 2))
	times := finishTimes(finished)

	// One tick each per cycle: 1 2 3 1 2 3.
	want := map[int]int{1: 4, 2: 5, 3: 6}
	for id, tick := range want {
		if times[id] != tick {
			t.Errorf("job %d finished at %d, want %d", id, times[id], tick)
		}
	}
	if metric.MeanTurnaround != 5.0 {
		t.Errorf("MeanTurnaround = %v, want 5.0", metric.MeanTurnaround)
	}
}

// Every tick is a decision point, so the switch count equals the tick count.
func TestRoundRobinCountsOneSwitchPerTick(t *testing.T) {
	metric, _ := runPolicy(t, NewRoundRobin(), arrivalZero(3, 1, 4))
	if metric.ContextSwitches != metric.TotalTicks {
		t.Errorf("ContextSwitches = %d, TotalTicks = %d, want equal", metric.ContextSwitches, metric.TotalTicks)
	}
}

// With N ready jobs and quantum 1, no job waits more than N-1 ticks between
// consecutive service ticks.
func TestRoundRobinFairnessBound(t *testing.T) {
	const n = 4
	recorder := &dispatchRecorder{inner: NewRoundRobin()}
	runPolicy(t, recorder, arrivalZero(5, 5, 5, 5))

	lastSeen := make(map[int]int)
	for tick, id := range recorder.sequence {
		if id == -1 {
			continue
		}
		if last, ok := lastSeen[id]; ok {
			if gap := tick - last - 1; gap > n-1 {
				t.Errorf("job %d waited %d ticks between services, want <= %d", id, gap, n-1)
			}
		}
		lastSeen[id] = tick
	}
}

func TestRoundRobinIdlesWhenNothingReady(t *testing.T) {
	metas := []simulator.JobMeta{
		{ID: 1, SubmittedAt: 0, Duration: 1},
		{ID: 2, SubmittedAt: 5, Duration: 1},
	}
	_, finished := runPolicy(t, NewRoundRobin(), metas)
	times := finishTimes(finished)

	if times[1] != 1 || times[2] != 6 {
		t.Errorf("finish times = %v, want job 1 at 1 and job 2 at 6", times)
	}
}
