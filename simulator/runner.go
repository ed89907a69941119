package simulator

// Runner compares dispatch policies over one job set. Every policy gets its
// own Scheduler seeded from the same metas, so runs cannot contaminate each
// other through shared job state. The comparison order is the order policies
// were given in; no ranking is applied.
type Runner struct {
	metas    []JobMeta
	policies []DispatchPolicy
}

func NewRunner(metas []JobMeta, policies []DispatchPolicy) *Runner {
	return &Runner{metas: metas, policies: policies}
}

// Run produces one metric row per policy. It fails before running anything
// if the job set is invalid; no partial results are returned.
func (r *Runner) Run() ([]PerformanceMetric, error) {
	// Validate once up front so a bad job set cannot yield results for a
	// prefix of the policy list.
	schedulers := make([]*Scheduler, 0, len(r.policies))
	for _, policy := range r.policies {
		scheduler, err := NewScheduler(policy, r.metas)
		if err != nil {
			return nil, err
		}
		schedulers = append(schedulers, scheduler)
	}

	results := make([]PerformanceMetric, 0, len(schedulers))
	for _, scheduler := range schedulers {
		results = append(results, scheduler.Run())
	}
	return results, nil
}
