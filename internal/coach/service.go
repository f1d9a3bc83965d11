// Package coach runs the coaching core against the athlete store: assessments, profiles, routines, session
// completion, exercise logs, skill readiness and daily missions.
package coach

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/hexcoach/internal/assessment"
	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/config"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/exercisemap"
	"github.com/myrjola/hexcoach/internal/mission"
	"github.com/myrjola/hexcoach/internal/reward"
	"github.com/myrjola/hexcoach/internal/routine"
	"github.com/myrjola/hexcoach/internal/routinetemplate"
	"github.com/myrjola/hexcoach/internal/skillgate"
	"github.com/myrjola/hexcoach/internal/sqlite"
	"github.com/myrjola/hexcoach/internal/stage"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrProfileNotFound is returned when the athlete has not been assessed yet.
	ErrProfileNotFound = errors.NewSentinel("profile not found")
	// ErrSessionAlreadyCompleted is returned with the earlier Completion when a session is completed again.
	ErrSessionAlreadyCompleted = errors.NewSentinel("session already completed")
	// ErrInvalidInput is returned for malformed request values.
	ErrInvalidInput = errors.NewSentinel("invalid input")
)

const maxIDLength = 128

// Service handles the coaching logic for athletes.
type Service struct {
	repo      *sqliteRepository
	db        *sqlite.Database
	rules     config.Rules
	axisRules axis.Rules
	generator *routine.Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a coaching service. catalog may be nil, in which case every template exercise is synthesized.
func NewService(db *sqlite.Database, logger *slog.Logger, rules config.Rules, catalog *routine.Catalog) *Service {
	return &Service{
		repo:      newSQLiteRepository(db, logger),
		db:        db,
		rules:     rules,
		axisRules: rules.Axis(),
		generator: routine.NewGenerator(catalog, rules.GenericRewards),
		logger:    logger,
		now:       time.Now,
	}
}

func validateID(kind, id string) error {
	if strings.TrimSpace(id) == "" || len(id) > maxIDLength {
		return fmt.Errorf("%w: %s must be 1-%d characters", ErrInvalidInput, kind, maxIDLength)
	}
	return nil
}

// Assess creates the athlete's profile from initial XP per axis, superseding any earlier profile. Axes missing from
// initial start at zero.
func (s *Service) Assess(ctx context.Context, athleteID string, initial map[axis.Axis]int64) (Profile, error) {
	if err := validateID("athlete id", athleteID); err != nil {
		return Profile{}, err
	}
	p, err := s.axisRules.NewProfile(initial)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err = s.repo.saveAssessment(ctx, athleteID, p.XP()); err != nil {
		return Profile{}, fmt.Errorf("save assessment: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "assessed athlete",
		slog.String("overallLevel", string(s.axisRules.OverallLevel(p))),
		slog.String("stage", string(stage.FromProfile(p))))
	return s.Profile(ctx, athleteID)
}

// AssessPerformance scores the athlete's test results and creates the profile from the resulting starting XP.
func (s *Service) AssessPerformance(ctx context.Context, athleteID string, in assessment.Input) (Assessment, error) {
	res, err := assessment.Evaluate(s.axisRules, in)
	if err != nil {
		return Assessment{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	p, err := s.Assess(ctx, athleteID, res.XP)
	if err != nil {
		return Assessment{}, err
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "scored assessment",
		slog.String("rank", string(res.Rank)), slog.String("visualRank", res.VisualRank))
	return Assessment{Profile: p, Evaluation: res}, nil
}

// Profile returns the athlete's current hexagon.
func (s *Service) Profile(ctx context.Context, athleteID string) (Profile, error) {
	stored, err := s.repo.getProfile(ctx, s.db.ReadOnly, athleteID)
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return s.view(athleteID, stored)
}

func (s *Service) view(athleteID string, stored storedProfile) (Profile, error) {
	p, err := s.axisRules.NewProfile(stored.xp)
	if err != nil {
		return Profile{}, fmt.Errorf("rebuild profile: %w", err)
	}
	progress := make([]AxisProgress, 0, len(axis.All()))
	for _, a := range axis.All() {
		st := p.Get(a)
		progress = append(progress, AxisProgress{
			Axis:          a,
			Name:          a.DisplayName(),
			XP:            st.XP,
			Level:         st.Level,
			VisualValue:   st.VisualValue,
			XPToNextLevel: axis.XPToNextLevel(st.XP),
			LevelProgress: s.axisRules.LevelProgress(st.XP),
		})
	}
	return Profile{
		AthleteID:    athleteID,
		Axes:         p,
		Progress:     progress,
		OverallLevel: s.axisRules.OverallLevel(p),
		Stage:        stage.FromProfile(p),
		Coins:        stored.coins,
		AssessedAt:   stored.assessedAt,
	}, nil
}

// weekStart returns midnight of the Sunday starting the week of t.
func weekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// Routine generates the athlete's routine for day of the current week.
func (s *Service) Routine(ctx context.Context, athleteID string, day time.Weekday) (routine.Routine, error) {
	if !routinetemplate.ValidDay(day) {
		return routine.Routine{}, fmt.Errorf("%w: day %d", ErrInvalidInput, day)
	}
	p, err := s.Profile(ctx, athleteID)
	if err != nil {
		return routine.Routine{}, err
	}
	return s.generate(athleteID, p.Axes, day)
}

func (s *Service) generate(athleteID string, p axis.Profile, day time.Weekday) (routine.Routine, error) {
	r, err := s.generator.Generate(routine.Request{
		AthleteID: athleteID,
		Profile:   p,
		Day:       day,
		Date:      weekStart(s.now()).AddDate(0, 0, int(day)),
	})
	if err != nil {
		return routine.Routine{}, fmt.Errorf("generate routine: %w", err)
	}
	return r, nil
}

// WeeklyPlan generates the routines of the whole week, Sunday first.
func (s *Service) WeeklyPlan(ctx context.Context, athleteID string) ([]routine.Routine, error) {
	p, err := s.Profile(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	week := make([]routine.Routine, routinetemplate.DaysPerWeek)
	g, ctx := errgroup.WithContext(ctx)
	for i := range week {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.generate(athleteID, p.Axes, time.Weekday(i))
			if err != nil {
				return fmt.Errorf("day %d: %w", i, err)
			}
			week[i] = r
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("weekly plan: %w", err)
	}
	return week, nil
}

// CompleteSession awards the reward of the routine for day to the athlete. A session id is rewarded at most once:
// completing it again returns the earlier Completion together with ErrSessionAlreadyCompleted.
func (s *Service) CompleteSession(
	ctx context.Context, athleteID, sessionID string, day time.Weekday,
) (Completion, error) {
	if err := validateID("session id", sessionID); err != nil {
		return Completion{}, err
	}
	r, err := s.Routine(ctx, athleteID, day)
	if err != nil {
		return Completion{}, err
	}

	err = s.db.InTx(ctx, func(tx *sql.Tx) error {
		if err := s.repo.insertCompletedSession(ctx, tx, athleteID, sessionID, r.Rewards); err != nil {
			if sqlite.IsUniqueViolation(err) {
				return ErrSessionAlreadyCompleted
			}
			return err
		}
		return s.awardInTx(ctx, tx, athleteID, r.Rewards)
	})
	if errors.Is(err, ErrSessionAlreadyCompleted) {
		return s.earlierCompletion(ctx, athleteID, sessionID)
	}
	if err != nil {
		return Completion{}, fmt.Errorf("complete session: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "completed session",
		slog.String("sessionID", sessionID),
		slog.String("template", string(r.Template)),
		slog.Int64("xp", r.Rewards.XP),
		slog.Int64("coins", r.Rewards.Coins))
	p, err := s.Profile(ctx, athleteID)
	if err != nil {
		return Completion{}, err
	}
	return Completion{
		SessionID:        sessionID,
		Rewards:          r.Rewards,
		AlreadyCompleted: false,
		CompletedAt:      s.now().UTC(),
		Profile:          p,
	}, nil
}

func (s *Service) earlierCompletion(ctx context.Context, athleteID, sessionID string) (Completion, error) {
	b, completedAt, err := s.repo.getCompletedSession(ctx, athleteID, sessionID)
	if err != nil {
		return Completion{}, fmt.Errorf("get earlier completion: %w", err)
	}
	p, err := s.Profile(ctx, athleteID)
	if err != nil {
		return Completion{}, err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "session completion replayed", slog.String("sessionID", sessionID))
	return Completion{
		SessionID:        sessionID,
		Rewards:          b,
		AlreadyCompleted: true,
		CompletedAt:      completedAt,
		Profile:          p,
	}, ErrSessionAlreadyCompleted
}

// awardInTx applies b to the athlete's stored profile inside tx.
func (s *Service) awardInTx(ctx context.Context, tx *sql.Tx, athleteID string, b reward.Bundle) error {
	stored, err := s.repo.getProfile(ctx, tx, athleteID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}
	p, err := s.axisRules.NewProfile(stored.xp)
	if err != nil {
		return fmt.Errorf("rebuild profile: %w", err)
	}
	if p, err = b.Apply(s.axisRules, p); err != nil {
		return fmt.Errorf("apply reward: %w", err)
	}
	return s.repo.award(ctx, tx, athleteID, p, b.Coins)
}

func (req LogRequest) reward() (reward.ExerciseReward, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return reward.ExerciseReward{}, fmt.Errorf("%w: exercise name is required", ErrInvalidInput)
	}

	category := exercisemap.InferCategory(name)
	if req.Category != "" {
		c, err := exercisemap.ParseCategory(req.Category)
		if err != nil {
			return reward.ExerciseReward{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		category = c
	}
	difficulty := exercisemap.InferDifficulty(name)
	if req.Difficulty != "" {
		d, err := axis.ParseLevel(req.Difficulty)
		if err != nil {
			return reward.ExerciseReward{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		difficulty = d
	}

	multiplier := 1.0
	switch {
	case req.Multiplier != nil:
		multiplier = *req.Multiplier
	case req.Expected > 0:
		if req.Actual < 0 {
			return reward.ExerciseReward{}, fmt.Errorf("%w: actual must not be negative", ErrInvalidInput)
		}
		multiplier = reward.PerformanceMultiplier(req.Actual, req.Expected)
	}
	return reward.ForExercise(category, difficulty, multiplier), nil
}

// LogExercise prices a manually logged exercise, awards it and appends it to the athlete's log.
func (s *Service) LogExercise(ctx context.Context, athleteID string, req LogRequest) (LoggedExercise, error) {
	er, err := req.reward()
	if err != nil {
		return LoggedExercise{}, err
	}
	id := uuid.NewString()
	name := strings.TrimSpace(req.Name)

	var loggedAt time.Time
	err = s.db.InTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.repo.getProfile(ctx, tx, athleteID); err != nil {
			return err
		}
		var err error
		if loggedAt, err = s.repo.insertExerciseLog(ctx, tx, id, athleteID, name, er); err != nil {
			return err
		}
		return s.awardInTx(ctx, tx, athleteID, er.Bundle)
	})
	if err != nil {
		return LoggedExercise{}, fmt.Errorf("log exercise: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "logged exercise",
		slog.String("exercise", name),
		slog.String("category", string(er.Category)),
		slog.Float64("multiplier", er.Multiplier),
		slog.Int64("xp", er.XP))
	p, err := s.Profile(ctx, athleteID)
	if err != nil {
		return LoggedExercise{}, err
	}
	return LoggedExercise{ID: id, Name: name, Reward: er, LoggedAt: loggedAt, Profile: p}, nil
}

// SkillReadiness checks whether the athlete may attempt skill at their current stage.
func (s *Service) SkillReadiness(
	ctx context.Context, athleteID, skill string, stats skillgate.Stats,
) (Readiness, error) {
	if strings.TrimSpace(skill) == "" {
		return Readiness{}, fmt.Errorf("%w: skill is required", ErrInvalidInput)
	}
	if stats.PullUps < 0 || stats.Dips < 0 {
		return Readiness{}, fmt.Errorf("%w: stats must not be negative", ErrInvalidInput)
	}
	for _, pct := range []float64{stats.WeightedPullUpsPercent, stats.WeightedDipsPercent} {
		if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
			return Readiness{}, fmt.Errorf("%w: weighted percentages must be finite and not negative", ErrInvalidInput)
		}
	}
	p, err := s.Profile(ctx, athleteID)
	if err != nil {
		return Readiness{}, err
	}
	return Readiness{Skill: skill, Stage: p.Stage, Decision: skillgate.Check(skill, p.Stage, stats)}, nil
}

// DailyMissions returns today's missions, picking and storing them on first request of the day.
func (s *Service) DailyMissions(ctx context.Context, athleteID string) ([]mission.Mission, error) {
	today := s.now()
	missions, err := s.repo.listMissions(ctx, athleteID, today)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	if len(missions) > 0 {
		return missions, nil
	}
	return s.pickMissions(ctx, athleteID, today)
}

func (s *Service) pickMissions(ctx context.Context, athleteID string, date time.Time) ([]mission.Mission, error) {
	p, err := s.Profile(ctx, athleteID)
	if err != nil {
		return nil, err
	}
	missions := mission.Daily(p.Axes, s.rules.DailyMissionCount, mission.Seed(athleteID, date))
	if err = s.repo.replaceMissions(ctx, athleteID, date, missions); err != nil {
		return nil, fmt.Errorf("store missions: %w", err)
	}
	return missions, nil
}

// RefreshDailyMissions picks today's missions for every assessed athlete and returns how many were refreshed.
func (s *Service) RefreshDailyMissions(ctx context.Context) (int, error) {
	ids, err := s.repo.listAthleteIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list athletes: %w", err)
	}
	today := s.now()
	refreshed := 0
	var errs []error
	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			return refreshed, fmt.Errorf("refresh missions: %w", err)
		}
		if _, err = s.pickMissions(ctx, id, today); err != nil {
			errs = append(errs, fmt.Errorf("athlete %s: %w", id, err))
			continue
		}
		refreshed++
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "refreshed daily missions",
		slog.Int("athletes", len(ids)), slog.Int("refreshed", refreshed))
	if err = errors.Join(errs...); err != nil {
		return refreshed, fmt.Errorf("refresh missions: %w", err)
	}
	return refreshed, nil
}

// ExerciseLogCount returns how many exercises the athlete has logged.
func (s *Service) ExerciseLogCount(ctx context.Context, athleteID string) (int, error) {
	return s.repo.countExerciseLogs(ctx, athleteID)
}

// Export writes everything stored about the athlete into a SQLite file in dir and returns its path.
func (s *Service) Export(ctx context.Context, athleteID, dir string) (string, error) {
	if _, err := s.Profile(ctx, athleteID); err != nil {
		return "", err
	}
	path, err := s.db.ExportAthlete(ctx, athleteID, dir)
	if err != nil {
		return "", fmt.Errorf("export athlete: %w", err)
	}
	return path, nil
}
