package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"portops/internal/core/application/usecases/queries"
)

// digestHorizon is how far ahead the digest looks for confirmed bookings.
const digestHorizon = 24 * time.Hour

// ScheduleDigestJob periodically logs how many confirmed bookings start
// within the next 24 hours. It is strictly read-only.
type ScheduleDigestJob struct {
	handler queries.ScheduleDigestQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewScheduleDigestJob creates a job that runs the digest query once an hour.
func NewScheduleDigestJob(handler queries.ScheduleDigestQueryHandler, logger *slog.Logger) *ScheduleDigestJob {
	return &ScheduleDigestJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "schedule_digest_job"),
	}
}

// Start begins the digest job at the top of every hour.
func (j *ScheduleDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewScheduleDigestQuery(time.Now().UTC(), digestHorizon)
		if err != nil {
			j.logger.ErrorContext(ctx, "Schedule digest query construction failed", "error", err)
			return
		}

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Schedule digest job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Schedule digest",
			"confirmed_bookings_next_24h", count,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Schedule digest job started (running hourly)")
	return nil
}

// Stop stops the digest job.
func (j *ScheduleDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Schedule digest job stopped")
}
