package engine

import "math"

// Position is an integer grid coordinate. There are no sub-tile positions.
type Position struct {
	X, Y int
}

// Dist returns the Euclidean distance to another position.
func (p Position) Dist(o Position) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// EntityKind discriminates the entity variants.
type EntityKind uint8

const (
	EntityPlayer EntityKind = iota
	EntityAntagonist
	EntityItem
)

// AntagonistKind names an antagonist type from an archetype roster
// (e.g. "aunt", "principal", "boss"). The roster itself lives in the
// content tables.
type AntagonistKind string

// ItemKind discriminates pickup items.
type ItemKind uint8

const (
	ItemCurrency ItemKind = iota // banked for payout at the exit
	ItemSnack                    // generic consumable pickup
	ItemLoot                     // unique collectible with a catalog id
)

func (k ItemKind) String() string {
	switch k {
	case ItemCurrency:
		return "currency"
	case ItemSnack:
		return "snack"
	case ItemLoot:
		return "loot"
	default:
		return "unknown"
	}
}

// Entity is a uniquely identified actor or object occupying exactly one
// tile. It is a tagged variant: only the fields relevant to its Kind are
// populated. Entities are owned by the World; the simulation loop is the
// sole mutator of Pos and Dead.
type Entity struct {
	ID   string
	Kind EntityKind
	Pos  Position

	// Antagonist fields.
	Antagonist AntagonistKind
	Dead       bool // dead antagonists are kept for bookkeeping but ignored by collision/movement

	// Item fields.
	Item   ItemKind
	LootID string // catalog reference, set only for ItemLoot
}

// Alive reports whether the entity still participates in collision and
// movement. Items and the player are always alive while present.
func (e *Entity) Alive() bool {
	return !e.Dead
}
