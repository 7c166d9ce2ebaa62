package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the tuning the game ships with, matching the
// embedded YAML.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Run: RunConfig{MaxSanity: 5},
		Population: PopulationConfig{
			LootCount:          8,
			CurrencyCount:      7,
			AntagonistCount:    10,
			PlacementAttempts:  50,
			AntagonistAttempts: 100,
			MinPlayerGap:       4,
			MinAntagonistGap:   4,
			LargeGridWidth:     20,
			LargeGridScale:     1.5,
			MinExitDistanceDiv: 2,
		},
		Pursuit: PursuitConfig{
			AggressionPerStep:  0.005,
			MaxAggressionBonus: 0.8,
			ChaseDistance:      4,
		},
		Battle: BattleConfig{
			WinThreshold:    3,
			ExamRoundCap:    5,
			ExamCheckpoints: [3]int{28, 59, 100},
			MeterStart:      50,
			MeterStep:       10,
			MeterMax:        100,
		},
		Aftermath: AftermathConfig{
			KnockbackRadius:   2,
			KnockbackAttempts: 20,
		},
		Consumables: ConsumablesConfig{
			TeleportRadius:   3,
			TeleportAttempts: 20,
			UntrackableSteps: 5,
		},
	}
}
