// Package config loads the coaching rules: the tunable knobs of level computation, rewards and missions.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/myrjola/hexcoach/internal/axis"
	"github.com/myrjola/hexcoach/internal/errors"
	"github.com/myrjola/hexcoach/internal/mission"
	"github.com/myrjola/hexcoach/internal/routine"
	"gopkg.in/yaml.v3"
)

const maxDailyMissions = 6

// Rules is the YAML rules file.
type Rules struct {
	OverallLevelTieBreak axis.TieBreak          `yaml:"overall_level_tie_break"`
	EliteCeilingXP       int64                  `yaml:"elite_ceiling_xp"`
	GenericRewards       routine.GenericRewards `yaml:"generic_rewards"`
	DailyMissionCount    int                    `yaml:"daily_mission_count"`
	CatalogPath          string                 `yaml:"catalog_path"`
}

// Default returns the rules used when no file is configured.
func Default() Rules {
	ar := axis.DefaultRules()
	return Rules{
		OverallLevelTieBreak: ar.TieBreak,
		EliteCeilingXP:       ar.EliteCeilingXP,
		GenericRewards:       routine.DefaultGenericRewards(),
		DailyMissionCount:    mission.DefaultCount,
		CatalogPath:          "",
	}
}

// Axis returns the axis model rules.
func (r Rules) Axis() axis.Rules {
	return axis.Rules{TieBreak: r.OverallLevelTieBreak, EliteCeilingXP: r.EliteCeilingXP}
}

// Load reads the rules from a YAML file on top of Default, then applies environment variable overrides.
// An empty path skips the file. Env vars use the prefix HEXCOACH_RULES_:
//
//	HEXCOACH_RULES_TIE_BREAK, HEXCOACH_RULES_ELITE_CEILING_XP,
//	HEXCOACH_RULES_FAILURE_XP, HEXCOACH_RULES_FAILURE_COINS,
//	HEXCOACH_RULES_BUFFER_XP, HEXCOACH_RULES_BUFFER_COINS,
//	HEXCOACH_RULES_DAILY_MISSIONS, HEXCOACH_RULES_CATALOG_PATH
func Load(path string, lookupEnv func(string) (string, bool)) (Rules, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Rules{}, errors.Wrap(err, "read rules file", slog.String("path", path))
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Rules{}, errors.Wrap(err, "parse rules file", slog.String("path", path))
		}
	}

	if err := applyEnvOverrides(&cfg, lookupEnv); err != nil {
		return Rules{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Rules{}, errors.Wrap(err, "rules validation")
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Rules, lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv("HEXCOACH_RULES_TIE_BREAK"); ok {
		cfg.OverallLevelTieBreak = axis.TieBreak(v)
	}
	if v, ok := lookupEnv("HEXCOACH_RULES_CATALOG_PATH"); ok {
		cfg.CatalogPath = v
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"HEXCOACH_RULES_FAILURE_XP", &cfg.GenericRewards.Failure.XP},
		{"HEXCOACH_RULES_FAILURE_COINS", &cfg.GenericRewards.Failure.Coins},
		{"HEXCOACH_RULES_BUFFER_XP", &cfg.GenericRewards.Buffer.XP},
		{"HEXCOACH_RULES_BUFFER_COINS", &cfg.GenericRewards.Buffer.Coins},
		{"HEXCOACH_RULES_DAILY_MISSIONS", &cfg.DailyMissionCount},
	}
	for _, o := range ints {
		v, ok := lookupEnv(o.env)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "parse env override", slog.String("env", o.env))
		}
		*o.dst = n
	}

	if v, ok := lookupEnv("HEXCOACH_RULES_ELITE_CEILING_XP"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "parse env override", slog.String("env", "HEXCOACH_RULES_ELITE_CEILING_XP"))
		}
		cfg.EliteCeilingXP = n
	}
	return nil
}

// Validate checks every rule.
func (r Rules) Validate() error {
	if err := r.Axis().Validate(); err != nil {
		return err
	}
	if err := r.GenericRewards.Validate(); err != nil {
		return err
	}
	if r.DailyMissionCount < 1 || r.DailyMissionCount > maxDailyMissions {
		return fmt.Errorf("daily_mission_count %d must be between 1 and %d", r.DailyMissionCount, maxDailyMissions)
	}
	return nil
}
