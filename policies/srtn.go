package policies

import "github.com/tenghoit/csc380-s26/simulator"

// SRTN (shortest remaining time next) is the preemptive variant of SJF: at
// every decision point the ready job with the least remaining service time is
// the candidate, and it preempts the running job when strictly shorter. The
// preempted job is requeued at the tail.
//
// Accounting quirk, preserved from the reference behavior: when new arrivals
// triggered this re-evaluation but the candidate does not beat the running
// job, a context switch is still counted even though the running job is
// unchanged.
type SRTN struct{}

func NewSRTN() SRTN {
	return SRTN{}
}

func (SRTN) Name() string {
	return "SRTN"
}

func (SRTN) ContextSwitch(ready []*simulator.Job, running *simulator.Job, admittedThisTick bool) (*simulator.Job, []*simulator.Job, bool) {
	if len(ready) == 0 {
		return running, ready, false
	}

	// Candidate: least remaining time, ties to the first encountered.
	candidate := 0
	for i, job := range ready {
		if job.RemainingDuration() < ready[candidate].RemainingDuration() {
			candidate = i
		}
	}
	job := ready[candidate]

	if running == nil {
		return job, removeAt(ready, candidate), true
	}
	if job.RemainingDuration() < running.RemainingDuration() {
		ready = removeAt(ready, candidate)
		ready = append(ready, running)
		return job, ready, true
	}
	if admittedThisTick {
		// Arrival-triggered re-check: the decision stands, the overhead
		// is still charged.
		return running, ready, true
	}
	return running, ready, false
}
