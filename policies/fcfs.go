package policies

import "github.com/tenghoit/csc380-s26/simulator"

// FCFS dispatches the earliest-admitted ready job and lets it run to
// completion. Non-preemptive: a dispatched job is never requeued.
type FCFS struct{}

func NewFCFS() FCFS {
	return FCFS{}
}

func (FCFS) Name() string {
	return "FCFS"
}

func (FCFS) ContextSwitch(ready []*simulator.Job, running *simulator.Job, _ bool) (*simulator.Job, []*simulator.Job, bool) {
	if running != nil || len(ready) == 0 {
		return running, ready, false
	}
	return ready[0], ready[1:], true
}
