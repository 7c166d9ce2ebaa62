package engine

// This file defines the read-only configuration schema the engine consumes.
// The authored data itself lives in internal/content; the engine never
// reaches for it directly and never mutates it.

// Archetype selects one of the game's scenario settings. Each archetype has
// its own layout recipe, antagonist roster, and battle ruleset.
type Archetype string

const (
	ArchetypeHome    Archetype = "home"
	ArchetypeSchool  Archetype = "school"
	ArchetypeCompany Archetype = "company"
)

// Archetypes lists all playable archetypes in display order.
var Archetypes = []Archetype{ArchetypeHome, ArchetypeSchool, ArchetypeCompany}

// FillOp is one rectangle-fill step of a layout recipe. Ops are applied in
// order, later writes overriding earlier ones (walls carved first, door gaps
// reopened as floor, obstacles last).
type FillOp struct {
	X, Y, W, H int
	Tile       TileKind
}

// LayoutRecipe is the declarative floor plan for one archetype: fixed grid
// dimensions, an ordered op list, and the preferred anchor tiles.
type LayoutRecipe struct {
	Width, Height int
	Ops           []FillOp
	PlayerSpawns  []Position
	Exits         []Position
}

// Rarity is the weighted tier a unique collectible is drawn from.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// LootItem is one entry of the unique-collectible catalog.
type LootItem struct {
	ID        string
	Name      string
	Story     string
	Glyph     rune
	Value     int
	Rarity    Rarity
	Archetype Archetype
}

// AntagonistType describes one roster entry: display data plus the base
// probability of pursuing the player on a given turn.
type AntagonistType struct {
	Kind       AntagonistKind
	Name       string
	Glyph      rune
	Aggression float64
}

// Card is one authored battle choice. Correctness is set at
// content-authoring time, never computed.
type Card struct {
	ID      string
	Label   string
	Detail  string
	Correct bool
}

// Scenario is one battle round's prompt plus its choice set, keyed by the
// antagonist kind it applies to.
type Scenario struct {
	ID     string
	Kind   AntagonistKind
	Topic  string
	Prompt string
	Cards  []Card
}

// Content bundles every immutable table the engine consumes.
type Content struct {
	Recipes   map[Archetype]LayoutRecipe
	Rosters   map[Archetype][]AntagonistType
	Loot      []LootItem
	Scenarios []Scenario
	Quotes    map[Archetype]map[TileKind][]string
	Payouts   []int // discrete payout values sampled per currency item
}

// AggressionOf returns the base aggression for an antagonist kind, searching
// every roster. Unknown kinds fall back to 0.5, matching an unconfigured
// middle-of-the-road pursuer.
func (c *Content) AggressionOf(kind AntagonistKind) float64 {
	for _, roster := range c.Rosters {
		for _, t := range roster {
			if t.Kind == kind {
				return t.Aggression
			}
		}
	}
	return 0.5
}

// TypeOf returns the roster entry for a kind, if present.
func (c *Content) TypeOf(kind AntagonistKind) (AntagonistType, bool) {
	for _, roster := range c.Rosters {
		for _, t := range roster {
			if t.Kind == kind {
				return t, true
			}
		}
	}
	return AntagonistType{}, false
}

// LootByID looks a collectible up in the catalog.
func (c *Content) LootByID(id string) (LootItem, bool) {
	for _, it := range c.Loot {
		if it.ID == id {
			return it, true
		}
	}
	return LootItem{}, false
}
