// Package flightrecorder keeps a rolling runtime trace in memory and writes it to disk when something goes wrong,
// such as a request timing out.
package flightrecorder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime/trace"
	"strings"
	"sync/atomic"
	"time"

	"github.com/myrjola/hexcoach/internal/errors"
)

const (
	defaultMinAge   = 5 * time.Minute
	defaultMaxBytes = 64 * 1024 * 1024
	defaultCooldown = 30 * time.Minute
)

var unsafeReason = regexp.MustCompile(`[^a-z0-9-]+`)

// Service captures flight recorder snapshots, at most one per cooldown period.
type Service struct {
	logger          *slog.Logger
	flightRecorder  *trace.FlightRecorder
	tracesDirectory string
	cooldown        time.Duration
	now             func() time.Time
	// lastCapture is the Unix time of the last capture, zero before the first.
	lastCapture atomic.Int64
}

// Config configures the flight recorder service. Zero durations and sizes select the defaults.
type Config struct {
	Logger          *slog.Logger
	MinAge          time.Duration
	MaxBytes        uint64
	Cooldown        time.Duration
	TracesDirectory string
}

// New creates the service and its traces directory.
func New(cfg Config) (*Service, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.TracesDirectory == "" {
		return nil, errors.New("traces directory is required")
	}
	if err := os.MkdirAll(cfg.TracesDirectory, 0o700); err != nil {
		return nil, errors.Wrap(err, "create traces directory", slog.String("dir", cfg.TracesDirectory))
	}

	minAge := cfg.MinAge
	if minAge == 0 {
		minAge = defaultMinAge
	}
	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}
	cooldown := cfg.Cooldown
	if cooldown == 0 {
		cooldown = defaultCooldown
	}

	return &Service{
		logger:          cfg.Logger,
		flightRecorder:  trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: minAge, MaxBytes: maxBytes}),
		tracesDirectory: cfg.TracesDirectory,
		cooldown:        cooldown,
		now:             time.Now,
		lastCapture:     atomic.Int64{},
	}, nil
}

// Start begins recording.
func (s *Service) Start(ctx context.Context) error {
	if err := s.flightRecorder.Start(); err != nil {
		return fmt.Errorf("start flight recorder: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder started",
		slog.String("dir", s.tracesDirectory), slog.Duration("cooldown", s.cooldown))
	return nil
}

// Stop ends recording.
func (s *Service) Stop(ctx context.Context) {
	s.flightRecorder.Stop()
	s.logger.LogAttrs(ctx, slog.LevelInfo, "flight recorder stopped")
}

// Capture writes the recorded trace to "<reason>-<timestamp>.trace" and returns its path. It returns "" without
// writing when a capture happened within the cooldown period.
func (s *Service) Capture(ctx context.Context, reason string) (string, error) {
	now := s.now().Unix()
	last := s.lastCapture.Load()
	if last > 0 && time.Duration(now-last)*time.Second < s.cooldown {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "skipping trace capture due to cooldown",
			slog.Time("last_capture", time.Unix(last, 0)))
		return "", nil
	}
	if !s.lastCapture.CompareAndSwap(last, now) {
		return "", nil
	}

	name := strings.Trim(unsafeReason.ReplaceAllString(strings.ToLower(reason), "-"), "-")
	if name == "" {
		name = "capture"
	}
	fPath := filepath.Join(s.tracesDirectory,
		fmt.Sprintf("%s-%s.trace", name, time.Unix(now, 0).UTC().Format("20060102-150405")))

	file, err := os.Create(fPath)
	if err != nil {
		return "", errors.Wrap(err, "create trace file", slog.String("file", fPath))
	}
	n, err := s.flightRecorder.WriteTo(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", errors.Wrap(err, "write trace", slog.String("file", fPath))
	}

	s.logger.LogAttrs(ctx, slog.LevelWarn, "captured trace",
		slog.String("file", fPath), slog.String("reason", reason), slog.Int64("bytes", n))
	return fPath, nil
}
