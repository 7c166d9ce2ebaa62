// Package config provides YAML-based tuning for the simulation engine.
package config

import "github.com/vovakirdan/sneakout/internal/engine"

// EngineConfig mirrors engine.Params in YAML form, grouped by concern.
type EngineConfig struct {
	Run         RunConfig         `yaml:"run"`
	Population  PopulationConfig  `yaml:"population"`
	Pursuit     PursuitConfig     `yaml:"pursuit"`
	Battle      BattleConfig      `yaml:"battle"`
	Aftermath   AftermathConfig   `yaml:"aftermath"`
	Consumables ConsumablesConfig `yaml:"consumables"`
}

// RunConfig defines per-run resources.
type RunConfig struct {
	MaxSanity int `yaml:"max_sanity"`
}

// PopulationConfig defines world population counts and sampling limits.
type PopulationConfig struct {
	LootCount          int     `yaml:"loot_count"`
	CurrencyCount      int     `yaml:"currency_count"`
	AntagonistCount    int     `yaml:"antagonist_count"`
	PlacementAttempts  int     `yaml:"placement_attempts"`
	AntagonistAttempts int     `yaml:"antagonist_attempts"`
	MinPlayerGap       float64 `yaml:"min_player_gap"`
	MinAntagonistGap   float64 `yaml:"min_antagonist_gap"`
	LargeGridWidth     int     `yaml:"large_grid_width"`
	LargeGridScale     float64 `yaml:"large_grid_scale"`
	MinExitDistanceDiv int     `yaml:"min_exit_distance_div"`
}

// PursuitConfig defines antagonist chase behavior.
type PursuitConfig struct {
	AggressionPerStep  float64 `yaml:"aggression_per_step"`
	MaxAggressionBonus float64 `yaml:"max_aggression_bonus"`
	ChaseDistance      float64 `yaml:"chase_distance"`
}

// BattleConfig defines the three battle rulesets.
type BattleConfig struct {
	WinThreshold    int    `yaml:"win_threshold"`
	ExamRoundCap    int    `yaml:"exam_round_cap"`
	ExamCheckpoints [3]int `yaml:"exam_checkpoints"`
	MeterStart      int    `yaml:"meter_start"`
	MeterStep       int    `yaml:"meter_step"`
	MeterMax        int    `yaml:"meter_max"`
}

// AftermathConfig defines what happens after a lost battle.
type AftermathConfig struct {
	KnockbackRadius   int `yaml:"knockback_radius"`
	KnockbackAttempts int `yaml:"knockback_attempts"`
}

// ConsumablesConfig defines gadget effects.
type ConsumablesConfig struct {
	TeleportRadius   int `yaml:"teleport_radius"`
	TeleportAttempts int `yaml:"teleport_attempts"`
	UntrackableSteps int `yaml:"untrackable_steps"`
}

// ToParams flattens the config into engine parameters.
func (c EngineConfig) ToParams() engine.Params {
	return engine.Params{
		MaxSanity:          c.Run.MaxSanity,
		LootCount:          c.Population.LootCount,
		CurrencyCount:      c.Population.CurrencyCount,
		AntagonistCount:    c.Population.AntagonistCount,
		PlacementAttempts:  c.Population.PlacementAttempts,
		AntagonistAttempts: c.Population.AntagonistAttempts,
		MinPlayerGap:       c.Population.MinPlayerGap,
		MinAntagonistGap:   c.Population.MinAntagonistGap,
		LargeGridWidth:     c.Population.LargeGridWidth,
		LargeGridScale:     c.Population.LargeGridScale,
		MinExitDistanceDiv: c.Population.MinExitDistanceDiv,
		AggressionPerStep:  c.Pursuit.AggressionPerStep,
		MaxAggressionBonus: c.Pursuit.MaxAggressionBonus,
		ChaseDistance:      c.Pursuit.ChaseDistance,
		WinThreshold:       c.Battle.WinThreshold,
		ExamRoundCap:       c.Battle.ExamRoundCap,
		ExamCheckpoints:    c.Battle.ExamCheckpoints,
		MeterStart:         c.Battle.MeterStart,
		MeterStep:          c.Battle.MeterStep,
		MeterMax:           c.Battle.MeterMax,
		KnockbackRadius:    c.Aftermath.KnockbackRadius,
		KnockbackAttempts:  c.Aftermath.KnockbackAttempts,
		TeleportRadius:     c.Consumables.TeleportRadius,
		TeleportAttempts:   c.Consumables.TeleportAttempts,
		UntrackableSteps:   c.Consumables.UntrackableSteps,
	}
}
