// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds precision and
// log through zap with a per-job "component" field.
//
// # Available Jobs
//
// 1. StatusDigestJob - logs how many orders sit in every status, by default once a minute
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(countsHandler, "0 * * * * *", logger)
//	if err != nil {
//		logger.Fatal("invalid job schedule", zap.Error(err))
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the next tick runs as usual. StopAll waits for
// running jobs to return.
package jobs
