package simulator

// DispatchPolicy decides, at every tick, which job occupies the processor.
//
// ContextSwitch receives the current ready queue (arrival order preserved by
// the scheduler), the running slot (nil when the processor is idle) and
// whether any job was admitted during this tick. It returns the new running
// slot, the new ready queue and whether the decision counts as a context
// switch under the policy's own accounting rule — which is not the same as
// "the running job changed" (Round Robin counts every tick, SRTN counts
// arrival-triggered re-checks).
//
// A policy must be a pure function of its arguments: no job may be invented,
// dropped or duplicated, and the returned running job must come from the
// ready queue or be the job that was already running. The scheduler verifies
// this after every call and panics on a violation.
type DispatchPolicy interface {
	Name() string
	ContextSwitch(ready []*Job, running *Job, admittedThisTick bool) (*Job, []*Job, bool)
}
