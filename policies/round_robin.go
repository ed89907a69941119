package policies

import "github.com/tenghoit/csc380-s26/simulator"

// RoundRobin cycles ready jobs through the processor with a fixed quantum of
// one tick: every tick the running job goes back to the tail and the head of
// the queue is dispatched. Every tick is a decision point, so every tick
// counts exactly one context switch.
//
// A running job that completed its service was already retired before
// dispatch, so a finished job is never requeued.
type RoundRobin struct{}

func NewRoundRobin() RoundRobin {
	return RoundRobin{}
}

func (RoundRobin) Name() string {
	return "RR"
}

func (RoundRobin) ContextSwitch(ready []*simulator.Job, running *simulator.Job, _ bool) (*simulator.Job, []*simulator.Job, bool) {
	if running != nil {
		ready = append(ready, running)
	}
	if len(ready) == 0 {
		return nil, ready, true
	}
	return ready[0], ready[1:], true
}
