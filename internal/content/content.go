// Package content holds the authored game data: layout recipes, antagonist
// rosters, the collectible catalog, battle scenarios and flavor text. The
// engine consumes it through the read-only schema it defines; nothing here
// is mutated at runtime.
package content

import "github.com/vovakirdan/sneakout/internal/engine"

// payouts are the discrete values a currency pickup can cash out for.
var payouts = []int{6, 12, 18, 66, 88, 128}

// Default assembles the full authored content bundle.
func Default() *engine.Content {
	return &engine.Content{
		Recipes:   recipes(),
		Rosters:   rosters(),
		Loot:      lootCatalog(),
		Scenarios: scenarios(),
		Quotes:    quotes(),
		Payouts:   payouts,
	}
}
