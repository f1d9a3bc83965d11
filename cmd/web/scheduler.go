package main

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/logging"
	"github.com/robfig/cron"
)

// runMissionScheduler refreshes the daily missions of every athlete on schedule until ctx is cancelled.
func (app *application) runMissionScheduler(ctx context.Context, schedule cron.Schedule) {
	c := cron.New()
	c.Schedule(schedule, cron.FuncJob(func() { app.refreshMissions(ctx) }))
	c.Start()
	app.logger.LogAttrs(ctx, slog.LevelInfo, "started mission scheduler")

	<-ctx.Done()
	c.Stop()
	app.logger.LogAttrs(ctx, slog.LevelInfo, "stopped mission scheduler")
}

func (app *application) refreshMissions(ctx context.Context) {
	ctx = logging.WithAttrs(ctx, slog.String("trace_id", uuid.NewString()), slog.String("job", "mission_refresh"))
	n, err := app.coach.RefreshDailyMissions(ctx)
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "mission refresh failed",
			slog.Int("refreshed", n), errors.SlogError(err))
	}
}
