package jobs

import (
	"context"
	"log/slog"

	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// digestPageSize caps how many queued orders each digest entry lists.
const digestPageSize = 5

// PendingOrdersDigestJob periodically logs the state of the pending order
// queue. Runs every minute so operators can spot a growing backlog without
// polling the admin endpoint.
type PendingOrdersDigestJob struct {
	handler queries.GetPendingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersDigestJob creates a new job for reporting the pending queue.
// Uses GetPendingOrdersQueryHandler to read the queue every minute.
func NewPendingOrdersDigestJob(handler queries.GetPendingOrdersQueryHandler, logger *slog.Logger) *PendingOrdersDigestJob {
	return &PendingOrdersDigestJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_orders_digest_job"),
	}
}

// Start begins the pending orders digest job to run every minute.
func (j *PendingOrdersDigestJob) Start() error {
	system, err := actor.NewActor(kernel.NewUUID(), actor.Admin, "digest job", "jobs@distribution.local")
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetPendingOrdersQuery(system, 1, digestPageSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders digest job failed", "error", err)
			return
		}

		page, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders digest job failed", "error", err)
			return
		}

		// An empty queue is the normal state, nothing to report
		if page.Total == 0 {
			return
		}

		newest := make([]string, 0, len(page.Items))
		for _, item := range page.Items {
			newest = append(newest, item.ID.String())
		}

		j.logger.InfoContext(ctx, "Pending orders waiting for assignment",
			"total", page.Total,
			"newest", newest,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders digest job started (running every minute)")
	return nil
}

// Stop stops the pending orders digest job.
func (j *PendingOrdersDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders digest job stopped")
}
