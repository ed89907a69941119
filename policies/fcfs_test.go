package policies

import (
	"testing"

	"github.com/tenghoit/csc380-s26/simulator"
)

// arrivalZero builds a job set where all jobs are submitted at tick 0.
func arrivalZero(durations ...int) []simulator.JobMeta {
	metas := make([]simulator.JobMeta, 0, len(durations))
	for i, d := range durations {
		metas = append(metas, simulator.JobMeta{ID: i + 1, SubmittedAt: 0, Duration: d})
	}
	return metas
}

func runPolicy(t *testing.T, policy simulator.DispatchPolicy, metas []simulator.JobMeta) (simulator.PerformanceMetric, []*simulator.Job) {
	t.Helper()
	s, err := simulator.NewScheduler(policy, metas)
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	metric := s.Run()
	return metric, s.FinishedJobs()
}

func finishTimes(jobs []*simulator.Job) map[int]int {
	times := make(map[int]int, len(jobs))
	for _, job := range jobs {
		times[job.ID()] = job.FinishedAt()
	}
	return times
}

func TestFCFSFinishesInInputOrder(t *testing.T) {
	metric, finished := runPolicy(t, NewFCFS(), arrivalZero(5, 2, 8, 1))

	for i, job := range finished {
		if job.ID() != i+1 {
			t.Errorf("finish position %d: job %d, want %d", i, job.ID(), i+1)
		}
	}

	want := map[int]int{1: 5, 2: 7, 3: 15, 4: 16}
	if got := finishTimes(finished); len(got) != len(want) {
		t.Fatalf("finish times = %v, want %v", got, want)
	} else {
		for id, tick := range want {
			if got[id] != tick {
				t.Errorf("job %d finished at %d, want %d", id, got[id], tick)
			}
		}
	}

	if metric.MeanTurnaround != 10.75 {
		t.Errorf("MeanTurnaround = %v, want 10.75", metric.MeanTurnaround)
	}
	if metric.ContextSwitches != 4 {
		t.Errorf("ContextSwitches = %d, want 4 (one per dispatch)", metric.ContextSwitches)
	}
}

func TestFCFSNeverPreempts(t *testing.T) {
	metas := []simulator.JobMeta{
		{ID: 1, SubmittedAt: 0, Duration: 5},
		{ID: 2, SubmittedAt: 1, Duration: 1},
	}
	_, finished := runPolicy(t, NewFCFS(), metas)
	times := finishTimes(finished)

	// The short later arrival waits for the full first job.
	if times[1] != 5 || times[2] != 6 {
		t.Errorf("finish times = %v, want job 1 at 5 and job 2 at 6", times)
	}
}
