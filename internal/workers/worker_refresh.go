package workers

import (
	"context"
	"time"

	"github.com/avoronova/craft-stash/internal/logger"
	"github.com/avoronova/craft-stash/internal/service"
)

// refreshWorker adapts the client's cache refresh job to the Worker
// interface.
type refreshWorker struct {
	job      service.ClientRefreshJob
	interval time.Duration

	logger *logger.Logger
}

func newRefreshWorker(job service.ClientRefreshJob, interval time.Duration, logger *logger.Logger) *refreshWorker {
	return &refreshWorker{
		job:      job,
		interval: interval,
		logger:   logger,
	}
}

func (w *refreshWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("starting supply cache refresh worker")
	w.job.Start(ctx, w.interval)
}

func (w *refreshWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Msg("supply cache refresh worker stopped")
}
