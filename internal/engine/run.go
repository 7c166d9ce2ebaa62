package engine

// RunPhase tracks the lifecycle of a single expedition.
type RunPhase int

const (
	PhaseActive RunPhase = iota
	PhaseVictory
	PhaseGameOver
)

func (p RunPhase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// InventoryItem is a single carried pickup. LootID is set only for ItemLoot.
type InventoryItem struct {
	Kind   ItemKind
	LootID string
}

// RunState is the mutable per-run progress that survives across turns:
// sanity, carried items, consumable timers and the terminal phase.
type RunState struct {
	Sanity        int
	MaxSanity     int
	Inventory     []InventoryItem
	TotalSteps    int
	Untrackable   int
	UsedScenarios map[string]bool
	Phase         RunPhase
	Payout        int
}

// NewRunState returns a fresh run at full sanity.
func (e *Engine) NewRunState() *RunState {
	return &RunState{
		Sanity:        e.params.MaxSanity,
		MaxSanity:     e.params.MaxSanity,
		UsedScenarios: map[string]bool{},
		Phase:         PhaseActive,
	}
}

// LootCarried returns the loot ids currently in the inventory, in pickup order.
func (rs *RunState) LootCarried() []string {
	var ids []string
	for _, it := range rs.Inventory {
		if it.Kind == ItemLoot {
			ids = append(ids, it.LootID)
		}
	}
	return ids
}

// CurrencyCarried counts currency pickups in the inventory.
func (rs *RunState) CurrencyCarried() int {
	n := 0
	for _, it := range rs.Inventory {
		if it.Kind == ItemCurrency {
			n++
		}
	}
	return n
}
