package policies

import "github.com/tenghoit/csc380-s26/simulator"

// SJF dispatches the ready job with the smallest total service time when the
// processor is idle. Ties go to the job admitted first. Non-preemptive: a
// later, shorter arrival never displaces the running job.
type SJF struct{}

func NewSJF() SJF {
	return SJF{}
}

func (SJF) Name() string {
	return "SJF"
}

func (SJF) ContextSwitch(ready []*simulator.Job, running *simulator.Job, _ bool) (*simulator.Job, []*simulator.Job, bool) {
	if running != nil || len(ready) == 0 {
		return running, ready, false
	}
	shortest := 0
	for i, job := range ready {
		if job.Duration() < ready[shortest].Duration() {
			shortest = i
		}
	}
	job := ready[shortest]
	return job, removeAt(ready, shortest), true
}
