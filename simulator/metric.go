package simulator

// PerformanceMetric is the aggregate summary of one completed run. It is
// computed once, when the last job retires, and never modified afterwards.
type PerformanceMetric struct {
	Policy          string
	Throughput      float64
	MeanTurnaround  float64
	ContextSwitches int
	TotalTicks      int
}

// computeMetric aggregates a finished job set. The caller guarantees
// len(finished) > 0 and finalTick > 0 (enforced at scheduler construction).
func computeMetric(policy string, finished []*Job, finalTick, switches int) PerformanceMetric {
	sumTurnaround := 0
	for _, job := range finished {
		sumTurnaround += job.Turnaround()
	}
	return PerformanceMetric{
		Policy:          policy,
		Throughput:      float64(len(finished)) / float64(finalTick),
		MeanTurnaround:  float64(sumTurnaround) / float64(len(finished)),
		ContextSwitches: switches,
		TotalTicks:      finalTick,
	}
}
