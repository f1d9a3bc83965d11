package coach

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/mission"
	"github.com/myrjola/hexcoach/internal/reward"
	"github.com/myrjola/hexcoach/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"
const dateFormat = time.DateOnly

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// storedProfile is an axis_profiles row joined with the coin balance.
type storedProfile struct {
	xp         map[axis.Axis]int64
	coins      int64
	assessedAt time.Time
}

// sqliteRepository handles database operations for athletes.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// saveAssessment creates the athlete if needed and replaces the stored XP of every axis.
func (r *sqliteRepository) saveAssessment(ctx context.Context, athleteID string, xp map[axis.Axis]int64) error {
	return r.db.InTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO athletes (id) VALUES (?) ON CONFLICT (id) DO NOTHING`,
			athleteID); err != nil {
			return fmt.Errorf("insert athlete: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO axis_profiles (
				athlete_id, balance_xp, strength_xp, static_holds_xp, core_xp, endurance_xp, mobility_xp
			) VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (athlete_id) DO UPDATE SET
				balance_xp = excluded.balance_xp,
				strength_xp = excluded.strength_xp,
				static_holds_xp = excluded.static_holds_xp,
				core_xp = excluded.core_xp,
				endurance_xp = excluded.endurance_xp,
				mobility_xp = excluded.mobility_xp,
				assessed_at = STRFTIME('%Y-%m-%dT%H:%M:%fZ')`,
			athleteID,
			xp[axis.Balance],
			xp[axis.Strength],
			xp[axis.StaticHolds],
			xp[axis.Core],
			xp[axis.Endurance],
			xp[axis.Mobility],
		); err != nil {
			return fmt.Errorf("upsert axis profile: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO athlete_coins (athlete_id) VALUES (?) ON CONFLICT (athlete_id) DO NOTHING`,
			athleteID); err != nil {
			return fmt.Errorf("insert coins: %w", err)
		}
		return nil
	})
}

// getProfile returns the stored XP and coins of athleteID, or ErrProfileNotFound.
func (r *sqliteRepository) getProfile(ctx context.Context, q queryer, athleteID string) (storedProfile, error) {
	var (
		p          = storedProfile{xp: make(map[axis.Axis]int64, len(axis.All())), coins: 0, assessedAt: time.Time{}}
		balance    int64
		strength   int64
		static     int64
		core       int64
		endurance  int64
		mobility   int64
		assessedAt string
	)
	err := q.QueryRowContext(ctx, `
		SELECT p.balance_xp, p.strength_xp, p.static_holds_xp, p.core_xp, p.endurance_xp, p.mobility_xp,
		       p.assessed_at, COALESCE(c.coins, 0)
		FROM axis_profiles p
		LEFT JOIN athlete_coins c ON c.athlete_id = p.athlete_id
		WHERE p.athlete_id = ?`, athleteID).Scan(
		&balance, &strength, &static, &core, &endurance, &mobility, &assessedAt, &p.coins)
	if errors.Is(err, sql.ErrNoRows) {
		return storedProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return storedProfile{}, fmt.Errorf("query axis profile: %w", err)
	}
	p.xp[axis.Balance] = balance
	p.xp[axis.Strength] = strength
	p.xp[axis.StaticHolds] = static
	p.xp[axis.Core] = core
	p.xp[axis.Endurance] = endurance
	p.xp[axis.Mobility] = mobility
	if p.assessedAt, err = time.Parse(timestampFormat, assessedAt); err != nil {
		return storedProfile{}, fmt.Errorf("parse assessed_at: %w", err)
	}
	return p, nil
}

// award writes the new absolute XP of every axis and adds coins.
func (r *sqliteRepository) award(ctx context.Context, tx *sql.Tx, athleteID string, p axis.Profile, coins int64) error {
	if _, err := tx.ExecContext(ctx, `
		UPDATE axis_profiles SET
			balance_xp = ?,
			strength_xp = ?,
			static_holds_xp = ?,
			core_xp = ?,
			endurance_xp = ?,
			mobility_xp = ?
		WHERE athlete_id = ?`,
		p.Balance.XP, p.Strength.XP, p.StaticHolds.XP, p.Core.XP, p.Endurance.XP, p.Mobility.XP,
		athleteID); err != nil {
		return fmt.Errorf("update axis profile: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO athlete_coins (athlete_id, coins) VALUES (?, ?)
		ON CONFLICT (athlete_id) DO UPDATE SET coins = coins + excluded.coins`,
		athleteID, coins); err != nil {
		return fmt.Errorf("add coins: %w", err)
	}
	return nil
}

// insertCompletedSession records a completed session. A replay fails with a unique violation.
func (r *sqliteRepository) insertCompletedSession(
	ctx context.Context, tx *sql.Tx, athleteID, sessionID string, b reward.Bundle,
) error {
	perAxis, err := json.Marshal(b.XPPerAxis)
	if err != nil {
		return fmt.Errorf("marshal xp per axis: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO completed_sessions (athlete_id, session_id, total_xp, coins, xp_per_axis)
		VALUES (?, ?, ?, ?, ?)`,
		athleteID, sessionID, b.XP, b.Coins, string(perAxis)); err != nil {
		return fmt.Errorf("insert completed session: %w", err)
	}
	return nil
}

// getCompletedSession returns the reward and completion time of an earlier completion.
func (r *sqliteRepository) getCompletedSession(
	ctx context.Context, athleteID, sessionID string,
) (reward.Bundle, time.Time, error) {
	var (
		b           reward.Bundle
		perAxis     string
		completedAt string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT total_xp, coins, xp_per_axis, completed_at
		FROM completed_sessions
		WHERE athlete_id = ? AND session_id = ?`, athleteID, sessionID).Scan(&b.XP, &b.Coins, &perAxis, &completedAt)
	if err != nil {
		return reward.Bundle{}, time.Time{}, fmt.Errorf("query completed session: %w", err)
	}
	if err = json.Unmarshal([]byte(perAxis), &b.XPPerAxis); err != nil {
		return reward.Bundle{}, time.Time{}, fmt.Errorf("unmarshal xp per axis: %w", err)
	}
	t, err := time.Parse(timestampFormat, completedAt)
	if err != nil {
		return reward.Bundle{}, time.Time{}, fmt.Errorf("parse completed_at: %w", err)
	}
	return b, t, nil
}

// insertExerciseLog appends an exercise log entry and returns its timestamp.
func (r *sqliteRepository) insertExerciseLog(
	ctx context.Context, tx *sql.Tx, id, athleteID, name string, er reward.ExerciseReward,
) (time.Time, error) {
	var loggedAt string
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO exercise_logs (id, athlete_id, exercise_name, category, difficulty, multiplier, total_xp, coins)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING logged_at`,
		id, athleteID, name, string(er.Category), string(er.Difficulty), er.Multiplier, er.XP, er.Coins,
	).Scan(&loggedAt); err != nil {
		return time.Time{}, fmt.Errorf("insert exercise log: %w", err)
	}
	t, err := time.Parse(timestampFormat, loggedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse logged_at: %w", err)
	}
	return t, nil
}

// countExerciseLogs returns how many exercises athleteID has logged.
func (r *sqliteRepository) countExerciseLogs(ctx context.Context, athleteID string) (int, error) {
	var n int
	if err := r.db.ReadOnly.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM exercise_logs WHERE athlete_id = ?`, athleteID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count exercise logs: %w", err)
	}
	return n, nil
}

// listMissions returns the missions stored for athleteID on date, in position order.
func (r *sqliteRepository) listMissions(ctx context.Context, athleteID string, date time.Time) ([]mission.Mission, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT mission_id, axis, title, target, xp, coins
		FROM daily_missions
		WHERE athlete_id = ? AND mission_date = ?
		ORDER BY position`, athleteID, date.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("query daily missions: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			r.logger.LogAttrs(ctx, slog.LevelError, "could not close rows", slog.Any("error", closeErr))
		}
	}()

	var missions []mission.Mission
	for rows.Next() {
		var (
			id, a, title      string
			target, xp, coins int
		)
		if err = rows.Scan(&id, &a, &title, &target, &xp, &coins); err != nil {
			return nil, fmt.Errorf("scan daily mission: %w", err)
		}
		m, ok := mission.Find(id)
		if !ok {
			m = mission.Mission{
				ID:          id,
				Axis:        axis.Axis(a),
				Level:       axis.Beginner,
				Description: title,
				Category:    "",
				Target:      target,
				Unit:        mission.UnitCount,
				RewardXP:    xp,
				RewardCoins: coins,
			}
		}
		m.Description, m.Target, m.RewardXP, m.RewardCoins = title, target, xp, coins
		missions = append(missions, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily missions: %w", err)
	}
	return missions, nil
}

// replaceMissions stores missions as athleteID's missions for date, replacing earlier ones.
func (r *sqliteRepository) replaceMissions(
	ctx context.Context, athleteID string, date time.Time, missions []mission.Mission,
) error {
	day := date.Format(dateFormat)
	return r.db.InTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM daily_missions WHERE athlete_id = ? AND mission_date = ?`, athleteID, day); err != nil {
			return fmt.Errorf("delete daily missions: %w", err)
		}
		for i, m := range missions {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO daily_missions (athlete_id, mission_date, position, mission_id, axis, title, target, xp, coins)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				athleteID, day, i, m.ID, string(m.Axis), m.Description, m.Target, m.RewardXP, m.RewardCoins,
			); err != nil {
				return fmt.Errorf("insert daily mission %s: %w", m.ID, err)
			}
		}
		return nil
	})
}

// listAthleteIDs returns every athlete with a profile.
func (r *sqliteRepository) listAthleteIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `SELECT athlete_id FROM axis_profiles ORDER BY athlete_id`)
	if err != nil {
		return nil, fmt.Errorf("query athletes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan athlete id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate athletes: %w", err)
	}
	return ids, nil
}
