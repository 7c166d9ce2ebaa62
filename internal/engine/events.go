package engine

// EventKind tags an outcome reported to the presentation layer.
type EventKind uint8

const (
	EvMoved EventKind = iota
	EvBlocked
	EvPickedUpItem
	EvRejectedAtExit
	EvVictory
	EvSpottedBy
	EvBattleStarted
	EvRoundAdvanced
	EvBattleWon
	EvBattleLost
	EvKnockback
	EvGameOver
	EvObstacleNoted
	EvConsumableUsed
	EvConsumableFailed
)

func (k EventKind) String() string {
	switch k {
	case EvMoved:
		return "moved"
	case EvBlocked:
		return "blocked"
	case EvPickedUpItem:
		return "picked_up_item"
	case EvRejectedAtExit:
		return "rejected_at_exit"
	case EvVictory:
		return "victory"
	case EvSpottedBy:
		return "spotted_by"
	case EvBattleStarted:
		return "battle_started"
	case EvRoundAdvanced:
		return "round_advanced"
	case EvBattleWon:
		return "battle_won"
	case EvBattleLost:
		return "battle_lost"
	case EvKnockback:
		return "knockback"
	case EvGameOver:
		return "game_over"
	case EvObstacleNoted:
		return "obstacle_noted"
	case EvConsumableUsed:
		return "consumable_used"
	case EvConsumableFailed:
		return "consumable_failed"
	default:
		return "unknown"
	}
}

// Event is one tagged outcome of an engine operation. Only the fields
// relevant to the Kind are set. The ordered event list is the engine's whole
// interface to narration, animation, and persistence: the core never renders
// or stores anything itself.
type Event struct {
	Kind EventKind

	EntityID string   // antagonist or item involved, when applicable
	Item     ItemKind // EvPickedUpItem
	LootID   string   // EvPickedUpItem for collectibles
	Payout   int      // EvVictory
	Text     string   // flavor quote or rejection message
}
