package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusDigestJob *StatusDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(counter StatusCounter, digestSchedule string, logger *zap.Logger) (*JobManager, error) {
	digest, err := NewStatusDigestJob(counter, digestSchedule, logger)
	if err != nil {
		return nil, err
	}
	return &JobManager{statusDigestJob: digest}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start status digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusDigestJob.Stop()
}
