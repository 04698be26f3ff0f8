package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const dayRolloverSpec = "0 0 * * *"

type RunConfig struct {
	Interval    time.Duration
	DayRollover bool
	OnStartup   bool
}

// Run fires interval triggers and, when enabled, a day rollover trigger at
// local midnight until ctx is cancelled.
func (c *Coordinator) Run(ctx context.Context, cfg RunConfig) error {
	if cfg.Interval <= 0 && !cfg.DayRollover {
		return errors.New("no sync trigger configured")
	}

	logger := cronLogger{}
	scheduler := cron.New(
		cron.WithLocation(c.loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger)),
	)

	if cfg.Interval > 0 {
		spec := fmt.Sprintf("@every %s", cfg.Interval)
		if _, err := scheduler.AddFunc(spec, c.job(ctx, ReasonInterval)); err != nil {
			return fmt.Errorf("failed to schedule interval sync: %w", err)
		}
	}

	if cfg.DayRollover {
		if _, err := scheduler.AddFunc(dayRolloverSpec, c.job(ctx, ReasonDayRollover)); err != nil {
			return fmt.Errorf("failed to schedule day rollover sync: %w", err)
		}
	}

	if cfg.OnStartup {
		c.job(ctx, ReasonStartup)()
	}

	scheduler.Start()
	slog.InfoContext(ctx, "sync triggers started",
		slog.Duration("interval", cfg.Interval),
		slog.Bool("day_rollover", cfg.DayRollover),
		slog.String("location", c.loc.String()),
	)

	<-ctx.Done()

	stopped := scheduler.Stop()
	<-stopped.Done()

	slog.InfoContext(context.WithoutCancel(ctx), "sync triggers stopped")
	return nil
}

func (c *Coordinator) job(ctx context.Context, reason Reason) func() {
	return func() {
		if ctx.Err() != nil {
			return
		}
		if _, err := c.Trigger(ctx, reason); err != nil && !errors.Is(err, ErrSyncInProgress) {
			slog.WarnContext(ctx, "scheduled sync failed",
				slog.String("reason", string(reason)),
				slog.String("error", err.Error()),
			)
		}
	}
}

// cronLogger routes cron's internal logging to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	slog.Error("cron: "+msg, append(keysAndValues, slog.String("error", err.Error()))...)
}
