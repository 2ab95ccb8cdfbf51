package jobs

import (
	"context"
	"log/slog"

	"shipcore/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutoAssignJob runs the scheduled assignment sweep. Every fifteen seconds it
// matches pending shipments with available couriers; shipments with no
// eligible courier simply stay in the backlog for the next run.
type AutoAssignJob struct {
	handler commands.AutoAssignCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoAssignJob creates a new job for the assignment sweep.
// Uses AutoAssignCouriersCommandHandler to process the backlog.
func NewAutoAssignJob(handler commands.AutoAssignCouriersCommandHandler, logger *slog.Logger) *AutoAssignJob {
	return &AutoAssignJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "auto_assign_job"),
	}
}

// Start begins the assignment sweep job to run every fifteen seconds.
func (j *AutoAssignJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAutoAssignCouriersCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Auto assign job could not build command", "error", cmdErr)
			return
		}

		assigned, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Auto assign job failed", "error", handleErr)
			return
		}
		if assigned > 0 {
			j.logger.InfoContext(ctx, "Auto assign job matched shipments", "assigned", assigned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto assign job started (running every 15 seconds)")
	return nil
}

// Stop stops the assignment sweep job.
func (j *AutoAssignJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto assign job stopped")
}
