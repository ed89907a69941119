package simulator

// unfinished is the sentinel finish time of a job that has not completed yet.
const unfinished = -1

// JobMeta is the immutable description of a job as delivered by the reader:
// identity, arrival tick and required service time. Mutable run state lives
// in Job, which is rebuilt from the meta for every policy run.
type JobMeta struct {
	ID          int
	SubmittedAt int
	Duration    int
}

// Job tracks one unit of work through a single run. Each run builds its own
// Jobs from the shared metas, so no run can observe another run's mutations.
type Job struct {
	meta       JobMeta
	remaining  int
	finishedAt int
}

func NewJob(meta JobMeta) *Job {
	return &Job{
		meta:       meta,
		remaining:  meta.Duration,
		finishedAt: unfinished,
	}
}

func (j *Job) ID() int {
	return j.meta.ID
}

func (j *Job) SubmittedAt() int {
	return j.meta.SubmittedAt
}

func (j *Job) Duration() int {
	return j.meta.Duration
}

// RemainingDuration is the service time the job still needs. It decreases by
// one per serviced tick and reaches zero exactly once.
func (j *Job) RemainingDuration() int {
	return j.remaining
}

func (j *Job) IsFinished() bool {
	return j.remaining <= 0
}

func (j *Job) FinishedAt() int {
	return j.finishedAt
}

// Work performs one tick of service.
func (j *Job) Work() {
	if j.remaining <= 0 {
		panic("simulator: Work called on a finished job")
	}
	j.remaining--
}

// Finish stamps the completion tick. A job finishes at most once.
func (j *Job) Finish(tick int) {
	if j.finishedAt != unfinished {
		panic("simulator: Finish called twice on the same job")
	}
	j.finishedAt = tick
}

// Turnaround is completion minus arrival, well-defined only after Finish.
func (j *Job) Turnaround() int {
	if j.finishedAt == unfinished {
		return unfinished
	}
	return j.finishedAt - j.meta.SubmittedAt
}
