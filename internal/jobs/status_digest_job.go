package jobs

import (
	"context"
	"fmt"
	"time"

	"okada/internal/core/application/usecases/queries"
	"okada/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultDigestSchedule runs the digest at second zero of every minute.
const DefaultDigestSchedule = "0 * * * * *"

// StatusCounter is satisfied by queries.GetOrderStatusCountsQueryHandler.
type StatusCounter interface {
	Handle(ctx context.Context, query queries.GetOrderStatusCountsQuery) (map[order.Status]int64, error)
}

// StatusDigestJob periodically logs the number of orders per status so that
// stuck workflows show up in the logs.
type StatusDigestJob struct {
	counter  StatusCounter
	schedule cron.Schedule
	spec     string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewStatusDigestJob parses spec (six fields, seconds first) eagerly so that a
// bad DIGEST_CRON fails at startup.
func NewStatusDigestJob(counter StatusCounter, spec string, logger *zap.Logger) (*StatusDigestJob, error) {
	if spec == "" {
		spec = DefaultDigestSchedule
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing digest schedule %q: %w", spec, err)
	}

	return &StatusDigestJob{
		counter:  counter,
		schedule: schedule,
		spec:     spec,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "status_digest_job")),
	}, nil
}

// Start schedules the digest.
func (j *StatusDigestJob) Start() error {
	j.cron.Schedule(j.schedule, cron.FuncJob(j.Run))
	j.cron.Start()
	j.logger.Info("status digest job started", zap.String("schedule", j.spec))
	return nil
}

// Run produces one digest. It is what the scheduler calls on every tick.
func (j *StatusDigestJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	counts, err := j.counter.Handle(ctx, queries.NewGetOrderStatusCountsQuery())
	if err != nil {
		j.logger.Error("status digest failed", zap.Error(err))
		return
	}

	var active, total int64
	fields := make([]zap.Field, 0, len(counts)+2)
	for _, s := range order.AllStatuses() {
		n := counts[s]
		total += n
		if !s.IsTerminal() {
			active += n
		}
		fields = append(fields, zap.Int64(s.String(), n))
	}
	fields = append(fields, zap.Int64("active", active), zap.Int64("total", total))

	j.logger.Info("order status digest", fields...)
}

// Stop stops the scheduler and waits for a running digest to finish.
func (j *StatusDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("status digest job stopped")
}
