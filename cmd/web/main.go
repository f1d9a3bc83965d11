package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/myrjola/hexcoach/internal/coach"
	"github.com/myrjola/hexcoach/internal/config"
	"github.com/myrjola/hexcoach/internal/envstruct"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/flightrecorder"
	"github.com/myrjola/hexcoach/internal/logging"
	"github.com/myrjola/hexcoach/internal/routine"
	"github.com/myrjola/hexcoach/internal/sqlite"
	"github.com/robfig/cron"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger         *slog.Logger
	coach          *coach.Service
	db             *sqlite.Database
	apiKey         string
	requestTimeout time.Duration
	flightRecorder *flightrecorder.Service
}

type settings struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"HEXCOACH_ADDR" envDefault:"localhost:8081"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"HEXCOACH_SQLITE_URL" envDefault:"./hexcoach.sqlite3"`
	// RulesPath is the optional YAML coaching rules file.
	RulesPath string `env:"HEXCOACH_RULES_PATH" envDefault:""`
	// APIKey, when set, must be sent in the X-API-Key header of every /api/v1 request.
	APIKey string `env:"HEXCOACH_API_KEY" envDefault:""`
	// MissionRefreshCron is a six field cron spec, seconds first, for picking the daily missions of every athlete.
	// Empty disables the scheduler.
	MissionRefreshCron string `env:"HEXCOACH_MISSION_REFRESH_CRON" envDefault:"0 5 0 * * *"`
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration `env:"HEXCOACH_REQUEST_TIMEOUT" envDefault:"2s"`
	// TracesDir enables the flight recorder, which writes a runtime trace there when a request times out.
	TracesDir string `env:"HEXCOACH_TRACES_DIR" envDefault:""`
}

func loadCatalog(path string) (*routine.Catalog, error) {
	if path == "" {
		return routine.BuiltinCatalog()
	}
	return routine.LoadCatalog(path)
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg settings
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate settings")
	}
	if cfg.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive", slog.Duration("timeout", cfg.RequestTimeout))
	}

	var schedule cron.Schedule
	if cfg.MissionRefreshCron != "" {
		if schedule, err = cron.Parse(cfg.MissionRefreshCron); err != nil {
			return errors.Wrap(err, "parse mission refresh schedule", slog.String("spec", cfg.MissionRefreshCron))
		}
	}

	rules, err := config.Load(cfg.RulesPath, lookupEnv)
	if err != nil {
		return errors.Wrap(err, "load rules", slog.String("path", cfg.RulesPath))
	}
	catalog, err := loadCatalog(rules.CatalogPath)
	if err != nil {
		return errors.Wrap(err, "load catalog", slog.String("path", rules.CatalogPath))
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close db", errors.SlogError(closeErr))
		}
	}()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db",
		slog.Int("catalogSize", catalog.Len()),
		slog.String("tieBreak", string(rules.OverallLevelTieBreak)))

	var recorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if recorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			MinAge:          0,
			MaxBytes:        0,
			Cooldown:        0,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(context.WithoutCancel(ctx))
	}

	app := application{
		logger:         logger,
		coach:          coach.NewService(db, logger, rules, catalog),
		db:             db,
		apiKey:         cfg.APIKey,
		requestTimeout: cfg.RequestTimeout,
		flightRecorder: recorder,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.configureAndStartServer(ctx, cfg.Addr, app.routes())
	})
	if schedule != nil {
		g.Go(func() error {
			app.runMissionScheduler(ctx, schedule)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return errors.Wrap(err, "run")
	}
	return nil
}

func main() {
	ctx := context.Background()
	logger := logging.New(os.Stdout, slog.LevelDebug)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
