package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Jobs start in registration order and stop in reverse order.
type JobManager struct {
	jobs    []namedJob
	started int
}

type namedJob struct {
	name string
	job  Job
}

// NewJobManager creates a job manager with the fleet report job wired to
// getFleetHandler on the given cron schedule.
func NewJobManager(
	getFleetHandler queries.GetFleetQueryHandler,
	fleetReportSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	jm.Register("fleet report", NewFleetReportJob(getFleetHandler, fleetReportSchedule, logger))
	return jm
}

// Register adds a job under name. It must be called before StartAll.
func (jm *JobManager) Register(name string, job Job) {
	jm.jobs = append(jm.jobs, namedJob{name: name, job: job})
}

// StartAll starts all registered jobs.
// If one fails to start, the jobs already started are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		jm.started++
	}

	return nil
}

// StopAll stops every started job.
func (jm *JobManager) StopAll() {
	for ; jm.started > 0; jm.started-- {
		jm.jobs[jm.started-1].job.Stop()
	}
}
