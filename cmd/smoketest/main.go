package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/hexcoach/internal/coach"
	"github.com/myrjola/hexcoach/internal/e2etest"
	"github.com/myrjola/hexcoach/internal/logging"
	"github.com/myrjola/hexcoach/internal/testhelpers"
)

// TestCoachingFlow assesses a fresh athlete, completes a session twice and checks that it was rewarded once.
func TestCoachingFlow(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	athlete := client.AsAthlete("smoketest-" + uuid.NewString())
	var (
		profile coach.Profile
		status  int
		err     error
	)
	if status, err = athlete.PostJSON(ctx, "/api/v1/assessment", map[string]any{}, &profile); err != nil {
		return fmt.Errorf("assess: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("assess: unexpected status code: %d", status)
	}

	today := time.Now().Weekday()
	var first, replay coach.Completion
	if status, err = athlete.CompleteSession(ctx, "smoke", today, &first); err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if status != http.StatusOK || first.AlreadyCompleted {
		return fmt.Errorf("complete session: status %d, already completed %v", status, first.AlreadyCompleted)
	}
	if status, err = athlete.CompleteSession(ctx, "smoke", today, &replay); err != nil {
		return fmt.Errorf("replay session: %w", err)
	}
	if status != http.StatusOK || !replay.AlreadyCompleted {
		return fmt.Errorf("replay session: status %d, already completed %v", status, replay.AlreadyCompleted)
	}
	if replay.Profile.Coins != first.Profile.Coins {
		return fmt.Errorf("replay awarded coins again: %d != %d", replay.Profile.Coins, first.Profile.Coins)
	}

	if status, err = athlete.GetJSON(ctx, "/api/v1/missions", nil); err != nil {
		return fmt.Errorf("missions: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("missions: unexpected status code: %d", status)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		err      error
		start    = time.Now()
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
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestCoachingFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing coaching flow", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
