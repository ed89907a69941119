package simulator

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a job set the simulation cannot run: empty, or
// containing a job with a non-positive duration. Detected at construction so
// no partial run is ever attempted.
var ErrInvalidInput = errors.New("invalid job set")

// Scheduler drives the discrete-time simulation of one policy over one job
// set. The loop itself is shared by every policy; only the dispatch decision
// (DispatchPolicy.ContextSwitch) differs.
//
// At any tick every job is in exactly one of pending, ready, running or
// finished. Jobs move pending → ready → running → finished, with
// running → ready possible under preemption.
type Scheduler struct {
	policy DispatchPolicy

	pending  []*Job
	ready    []*Job
	running  *Job
	finished []*Job

	totalJobs int
	tick      int
	switches  int
}

// NewScheduler builds fresh run state from the metas. The metas themselves
// are never mutated, so the same slice can seed any number of schedulers.
func NewScheduler(policy DispatchPolicy, metas []JobMeta) (*Scheduler, error) {
	if len(metas) == 0 {
		return nil, fmt.Errorf("%w: no jobs", ErrInvalidInput)
	}
	pending := make([]*Job, 0, len(metas))
	for _, meta := range metas {
		if meta.Duration <= 0 {
			return nil, fmt.Errorf("%w: job %d has duration %d", ErrInvalidInput, meta.ID, meta.Duration)
		}
		if meta.SubmittedAt < 0 {
			return nil, fmt.Errorf("%w: job %d submitted at %d", ErrInvalidInput, meta.ID, meta.SubmittedAt)
		}
		pending = append(pending, NewJob(meta))
	}
	return &Scheduler{
		policy:    policy,
		pending:   pending,
		ready:     make([]*Job, 0, len(metas)),
		finished:  make([]*Job, 0, len(metas)),
		totalJobs: len(metas),
	}, nil
}

// Run executes ticks until every job has finished and returns the aggregate
// metric. Each tick: admit arrivals, service the running job, retire it if
// done, let the policy dispatch, advance the clock.
func (s *Scheduler) Run() PerformanceMetric {
	for len(s.finished) != s.totalJobs {
		admitted := s.admit()
		s.work()
		s.retire()
		s.dispatch(admitted)
		s.tick++
	}
	return computeMetric(s.policy.Name(), s.finished, s.tick, s.switches)
}

// FinishedJobs exposes the completed jobs in retirement order. Only
// meaningful after Run.
func (s *Scheduler) FinishedJobs() []*Job {
	return s.finished
}

// admit moves every pending job whose arrival tick has been reached into the
// ready queue, preserving relative input order. Reports whether any job was
// admitted during this tick.
func (s *Scheduler) admit() bool {
	stillPending := s.pending[:0]
	admitted := false
	for _, job := range s.pending {
		if job.SubmittedAt() <= s.tick {
			s.ready = append(s.ready, job)
			admitted = true
		} else {
			stillPending = append(stillPending, job)
		}
	}
	s.pending = stillPending
	return admitted
}

// work performs one tick of CPU service at the start of the tick, before the
// dispatch decision for this tick is re-evaluated.
func (s *Scheduler) work() {
	if s.running != nil {
		s.running.Work()
	}
}

// retire stamps and removes the running job once its service is complete, so
// a finished job is never visible to the policy.
func (s *Scheduler) retire() {
	if s.running == nil || !s.running.IsFinished() {
		return
	}
	s.running.Finish(s.tick)
	s.finished = append(s.finished, s.running)
	s.running = nil
}

// dispatch invokes the policy and verifies its contract: job conservation
// across the call, and the new running job taken from the ready queue (or
// left in place). A violation is an internal bug, not a runtime condition.
func (s *Scheduler) dispatch(admitted bool) {
	// Snapshot before the call: policies may reuse the ready queue's
	// backing array.
	prevRunning := s.running
	prevReady := append([]*Job(nil), s.ready...)
	before := len(prevReady)
	if prevRunning != nil {
		before++
	}

	running, ready, switched := s.policy.ContextSwitch(s.ready, s.running, admitted)

	after := len(ready)
	if running != nil {
		after++
	}
	if after != before {
		panic(fmt.Sprintf("simulator: policy %s broke job conservation (%d jobs in, %d out)", s.policy.Name(), before, after))
	}
	if running != nil && running != prevRunning && !contains(prevReady, running) {
		panic(fmt.Sprintf("simulator: policy %s dispatched job %d which was not ready", s.policy.Name(), running.ID()))
	}

	s.running = running
	s.ready = ready
	if switched {
		s.switches++
	}
}

func contains(jobs []*Job, target *Job) bool {
	for _, job := range jobs {
		if job == target {
			return true
		}
	}
	return false
}
