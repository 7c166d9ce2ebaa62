package engine

// Params holds every tunable the simulation reads. Values are loaded from
// YAML by the caller (internal/config) and passed in at construction; the
// defaults here mirror the shipped config.
type Params struct {
	MaxSanity int

	// Population targets. Grids wider than LargeGridWidth scale every
	// target by LargeGridScale.
	LootCount       int
	CurrencyCount   int
	AntagonistCount int
	LargeGridWidth  int
	LargeGridScale  float64

	// Rejection-sampling attempt caps. Exhausting a cap skips the
	// placement, it never errors.
	PlacementAttempts  int
	AntagonistAttempts int

	// Spacing constraints for antagonist placement (Euclidean).
	MinPlayerGap     float64
	MinAntagonistGap float64

	// Pursuit behavior.
	AggressionPerStep  float64 // global bonus per player step
	MaxAggressionBonus float64 // cap on the accumulated bonus
	ChaseDistance      float64 // at or beyond this distance pursuit is off

	// Battle rulesets.
	WinThreshold    int    // best-of-N tally needed by either side
	ExamRoundCap    int    // scored-ladder round limit
	ExamCheckpoints [3]int // score after 1st/2nd/3rd correct answer
	MeterStart      int
	MeterStep       int
	MeterMax        int

	// Loss knockback and the reshuffle-die teleport.
	KnockbackRadius    int
	KnockbackAttempts  int
	TeleportRadius     int
	TeleportAttempts   int
	UntrackableSteps   int // steps of suppressed pursuit granted by the spray
	MinExitDistanceDiv int // fallback exit must be at least min(w,h)/this from spawn
}

// DefaultParams returns the tuning the game ships with.
func DefaultParams() Params {
	return Params{
		MaxSanity:          5,
		LootCount:          8,
		CurrencyCount:      7,
		AntagonistCount:    10,
		LargeGridWidth:     20,
		LargeGridScale:     1.5,
		PlacementAttempts:  50,
		AntagonistAttempts: 100,
		MinPlayerGap:       4,
		MinAntagonistGap:   4,
		AggressionPerStep:  0.005,
		MaxAggressionBonus: 0.8,
		ChaseDistance:      4,
		WinThreshold:       3,
		ExamRoundCap:       5,
		ExamCheckpoints:    [3]int{28, 59, 100},
		MeterStart:         50,
		MeterStep:          10,
		MeterMax:           100,
		KnockbackRadius:    2,
		KnockbackAttempts:  20,
		TeleportRadius:     3,
		TeleportAttempts:   20,
		UntrackableSteps:   5,
		MinExitDistanceDiv: 2,
	}
}
