// Package policies implements the dispatch policy family compared by the
// simulator: FCFS, SJF, SRTN and Round Robin. Each policy is a variant of
// the same decision point with different selection, preemption and
// context-switch accounting rules.
package policies

import (
	"fmt"
	"strings"

	"github.com/tenghoit/csc380-s26/simulator"
)

// Default is the fixed comparison order used when no explicit policy list is
// configured.
func Default() []simulator.DispatchPolicy {
	return []simulator.DispatchPolicy{
		NewFCFS(),
		NewSJF(),
		NewSRTN(),
		NewRoundRobin(),
	}
}

// ByName resolves a policy from its configuration name (case-insensitive).
func ByName(name string) (simulator.DispatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return NewFCFS(), nil
	case "sjf":
		return NewSJF(), nil
	case "srtn":
		return NewSRTN(), nil
	case "rr", "roundrobin", "round-robin":
		return NewRoundRobin(), nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want fcfs, sjf, srtn or rr)", name)
	}
}

// ByNames resolves a comparison list, preserving the given order.
func ByNames(names []string) ([]simulator.DispatchPolicy, error) {
	resolved := make([]simulator.DispatchPolicy, 0, len(names))
	for _, name := range names {
		policy, err := ByName(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, policy)
	}
	return resolved, nil
}

// removeAt returns ready without the job at index i. The backing array may
// be reused; callers must not touch the input slice afterwards.
func removeAt(ready []*simulator.Job, i int) []*simulator.Job {
	return append(ready[:i], ready[i+1:]...)
}
