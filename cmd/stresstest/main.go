package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/coach"
	"github.com/myrjola/hexcoach/internal/e2etest"
	"github.com/myrjola/hexcoach/internal/logging"
	"github.com/myrjola/hexcoach/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	setupTimeout            = 30 * time.Second
	scenarioTimeout         = 30 * time.Second
	maxConcurrentSetups     = 10
	maxConcurrentOperations = 20
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
	historyWeeks            = 26
	// duplicateCompletions is how many times each scenario completes the same session concurrently.
	duplicateCompletions = 5
)

var historyExercises = []string{"Pull-ups", "Dips", "Plank", "Pistol Squats", "Handstand Hold", "Burpees"}

// Athlete is a client acting on behalf of one load test athlete.
type Athlete struct {
	Client *e2etest.Client
	ID     string
}

// SetupAthletes assesses numAthletes fresh athletes with a spread of strength XP.
func SetupAthletes(ctx context.Context, client *e2etest.Client, numAthletes int, logger *slog.Logger) ([]*Athlete, error) {
	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	athletes := make([]*Athlete, numAthletes)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSetups)
	for i := range athletes {
		g.Go(func() error {
			id := fmt.Sprintf("stress-%d-%s", i, uuid.NewString())
			a := &Athlete{Client: client.AsAthlete(id), ID: id}
			body := map[string]map[axis.Axis]int64{
				"initialXP": {axis.Strength: int64(i) * axis.IntermediateMinXP / 2}, //nolint:mnd // spread the stages
			}
			status, err := a.Client.PostJSON(ctx, "/api/v1/assessment", body, nil)
			if err != nil {
				return fmt.Errorf("assess athlete %d: %w", i, err)
			}
			if status != http.StatusCreated {
				return fmt.Errorf("assess athlete %d: unexpected status code: %d", i, status)
			}
			athletes[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("setup athletes: %w", err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Athletes assessed", slog.Int("count", numAthletes))
	return athletes, nil
}

func getOK(ctx context.Context, client *e2etest.Client, urlPath string, out any) error {
	status, err := client.GetJSON(ctx, urlPath, out)
	if err != nil {
		return fmt.Errorf("get %s: %w", urlPath, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status code: %d", urlPath, status)
	}
	return nil
}

// LogHistory logs a few exercises per week of history for the athlete.
func LogHistory(ctx context.Context, a *Athlete) error {
	for week := range historyWeeks {
		name := historyExercises[week%len(historyExercises)]
		req := coach.LogRequest{
			Name:       name,
			Category:   "",
			Difficulty: "",
			Multiplier: nil,
			Actual:     float64(8 + week%5), //nolint:mnd // reps vary week to week
			Expected:   10,                  //nolint:mnd // target reps
		}
		status, err := a.Client.PostJSON(ctx, "/api/v1/exercises/log", req, nil)
		if err != nil {
			return fmt.Errorf("log %s: %w", name, err)
		}
		if status != http.StatusCreated {
			return fmt.Errorf("log %s: unexpected status code: %d", name, status)
		}
	}
	return nil
}

// CompletionScenario fetches the weekly plan, then completes today's session several times concurrently and checks
// that exactly one completion awarded coins.
func CompletionScenario(ctx context.Context, a *Athlete, logger *slog.Logger) error {
	if err := getOK(ctx, a.Client, "/api/v1/routine/week", nil); err != nil {
		return err
	}

	var before coach.Profile
	if err := getOK(ctx, a.Client, "/api/v1/profile", &before); err != nil {
		return err
	}

	var (
		awarded  atomic.Int64
		replayed atomic.Int64
		rewarded atomic.Int64
	)
	sessionID := uuid.NewString()
	today := time.Now().Weekday()
	g, gctx := errgroup.WithContext(ctx)
	for range duplicateCompletions {
		g.Go(func() error {
			var c coach.Completion
			status, err := a.Client.CompleteSession(gctx, sessionID, today, &c)
			if err != nil {
				return fmt.Errorf("complete session: %w", err)
			}
			if status != http.StatusOK {
				return fmt.Errorf("complete session: unexpected status code: %d", status)
			}
			if c.AlreadyCompleted {
				replayed.Add(1)
			} else {
				awarded.Add(1)
				rewarded.Store(c.Rewards.Coins)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if awarded.Load() != 1 {
		return fmt.Errorf("session %s awarded %d times", sessionID, awarded.Load())
	}

	var after coach.Profile
	if err := getOK(ctx, a.Client, "/api/v1/profile", &after); err != nil {
		return err
	}
	if got, want := after.Coins-before.Coins, rewarded.Load(); got != want {
		return fmt.Errorf("coins grew by %d, want %d", got, want)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Completion scenario passed",
		slog.String("athlete_id", a.ID),
		slog.Int64("replayed", replayed.Load()))
	return nil
}

// RunLoadTest runs the history and completion scenarios for every athlete concurrently.
func RunLoadTest(ctx context.Context, athletes []*Athlete, logger *slog.Logger) error {
	athleteCount := len(athletes)
	logger.LogAttrs(ctx, slog.LevelInfo, "Starting load test", slog.Int("num_athletes", athleteCount))

	var successCount, failureCount atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)
	for _, a := range athletes {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(ctx, scenarioTimeout)
			defer cancel()

			err := LogHistory(scenarioCtx, a)
			if err == nil {
				err = CompletionScenario(scenarioCtx, a, logger)
			}
			if err != nil {
				failureCount.Add(1)
				// Individual failures lower the success rate without stopping the other scenarios.
				logger.LogAttrs(scenarioCtx, slog.LevelWarn, "Scenario failed",
					slog.String("athlete_id", a.ID),
					slog.Any("error", err))
				return nil
			}
			successCount.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load test failed: %w", err)
	}

	successRate := float64(successCount.Load()) / float64(athleteCount) * percentageMultiplier
	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed",
		slog.Int64("successful", successCount.Load()),
		slog.Int64("failed", failureCount.Load()),
		slog.Float64("success_rate", successRate))

	if successRate < successRateThreshold {
		return fmt.Errorf("load test failed: success rate %.1f%% below threshold", successRate)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname>")
		os.Exit(1)
	}

	var (
		hostname    = os.Args[1]
		numAthletes = 10
		start       = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	client := e2etest.NewClient(url)
	if key, ok := os.LookupEnv("HEXCOACH_API_KEY"); ok {
		client = client.WithAPIKey(key)
	}
	if err := client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	athletes, err := SetupAthletes(ctx, client, numAthletes, logger)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failed to setup athletes", slog.Any("error", err))
		os.Exit(1)
	}

	loadTestStart := time.Now()
	if err = RunLoadTest(ctx, athletes, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "load test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Load test completed successfully 🙌",
		slog.Duration("total_duration", time.Since(start)),
		slog.Duration("load_test_duration", time.Since(loadTestStart)),
		slog.Int("athletes_tested", len(athletes)))
}
