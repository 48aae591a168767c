// Package worker holds background jobs that run alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/borsibaar/barpos/internal/telemetry"
)

// PriceDecayer lowers dynamic prices once per call and reports how many changed.
type PriceDecayer interface {
	DecayPrices(ctx context.Context) (int, error)
}

// PriceDecayJob periodically lets dynamic prices fall back towards their floor.
type PriceDecayJob struct {
	decayer  PriceDecayer
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewPriceDecayJob creates a job running every interval. A zero interval disables it.
func NewPriceDecayJob(decayer PriceDecayer, interval time.Duration) *PriceDecayJob {
	return &PriceDecayJob{
		decayer:  decayer,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start runs the decay loop until ctx is cancelled or Stop is called.
// The first run happens after one interval, not at startup.
func (j *PriceDecayJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		slog.Info("price decay job disabled")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	slog.Info("price decay job started", "interval", j.interval)

	for {
		select {
		case <-ticker.C:
			j.RunOnce(ctx)
		case <-j.stopChan:
			slog.Info("price decay job stopped")
			return
		case <-ctx.Done():
			slog.Info("price decay job context cancelled")
			return
		}
	}
}

// Stop signals the loop to exit. It is safe to call more than once.
func (j *PriceDecayJob) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
	})
}

// RunOnce performs a single decay pass.
func (j *PriceDecayJob) RunOnce(ctx context.Context) {
	start := time.Now()
	changed, err := j.decayer.DecayPrices(ctx)
	if err != nil {
		telemetry.PriceDecayRunsTotal.WithLabelValues("error").Inc()
		slog.ErrorContext(ctx, "price decay run failed", "changed", changed, "error", err)
		return
	}

	telemetry.PriceDecayRunsTotal.WithLabelValues("success").Inc()
	slog.InfoContext(ctx, "price decay run completed", "changed", changed, "duration", time.Since(start))
}
