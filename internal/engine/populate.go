package engine

import "fmt"

// populate runs the population sampler against a freshly built grid.
// Steps are order-sensitive only in that later steps avoid tiles claimed by
// earlier ones. Every per-item placement uses bounded rejection sampling;
// exhausting an attempt cap silently skips that placement.
func (e *Engine) populate(w *World, recipe LayoutRecipe) {
	player := e.placePlayer(w, recipe)
	e.placeExits(w, recipe, player.Pos)
	scale := 1.0
	if w.Grid.W > e.params.LargeGridWidth {
		scale = e.params.LargeGridScale
	}
	e.placeLoot(w, int(float64(e.params.LootCount)*scale))
	e.placeCurrency(w, int(float64(e.params.CurrencyCount)*scale))
	e.placeAntagonists(w, int(float64(e.params.AntagonistCount)*scale), player.Pos)
}

// freeFloor reports whether (x, y) is a floor tile unclaimed by any entity.
func (e *Engine) freeFloor(w *World, x, y int) bool {
	return w.Grid.At(x, y) == TileFloor && w.EntityAt(x, y) == nil
}

// placePlayer puts the player on the recipe's preferred spawn when it is
// floor, otherwise falls back to uniform rejection sampling. The fallback
// loop is unbounded on purpose: every recipe yields floor tiles, and a world
// without a player is not a world.
func (e *Engine) placePlayer(w *World, recipe LayoutRecipe) *Entity {
	p := &Entity{ID: "player", Kind: EntityPlayer}
	for _, spawn := range recipe.PlayerSpawns {
		if w.Grid.At(spawn.X, spawn.Y) == TileFloor {
			p.Pos = spawn
			w.Entities = append(w.Entities, p)
			return p
		}
	}
	for {
		x, y := e.rng.Intn(w.Grid.W), e.rng.Intn(w.Grid.H)
		if w.Grid.At(x, y) == TileFloor {
			p.Pos = Position{x, y}
			w.Entities = append(w.Entities, p)
			return p
		}
	}
}

// placeExits marks the recipe's preferred exits, overriding floor. When none
// of them land on floor, one exit is sampled on a distant floor tile so a
// run can always finish.
func (e *Engine) placeExits(w *World, recipe LayoutRecipe, spawn Position) {
	placed := 0
	for _, exit := range recipe.Exits {
		if w.Grid.At(exit.X, exit.Y) == TileFloor {
			w.Grid.Set(exit.X, exit.Y, TileExit)
			placed++
		}
	}
	if placed > 0 {
		return
	}
	minDist := float64(min(w.Grid.W, w.Grid.H) / e.params.MinExitDistanceDiv)
	for {
		x, y := e.rng.Intn(w.Grid.W), e.rng.Intn(w.Grid.H)
		if w.Grid.At(x, y) == TileFloor && spawn.Dist(Position{x, y}) > minDist {
			w.Grid.Set(x, y, TileExit)
			return
		}
	}
}

// rollRarity draws a rarity tier from the fixed weighted distribution:
// roughly 46% common, 27% rare, 18% epic, 9% legendary.
func (e *Engine) rollRarity() Rarity {
	roll := e.rng.Float64() * 11
	switch {
	case roll > 10:
		return RarityLegendary
	case roll > 8:
		return RarityEpic
	case roll > 5:
		return RarityRare
	default:
		return RarityCommon
	}
}

// placeLoot draws count unique collectibles from the archetype's catalog
// subset and scatters them on free floor.
func (e *Engine) placeLoot(w *World, count int) {
	var pool []LootItem
	for _, it := range e.content.Loot {
		if it.Archetype == w.Archetype {
			pool = append(pool, it)
		}
	}
	drawn := map[string]bool{}
	for i := 0; i < count; i++ {
		want := e.rollRarity()
		var tier, rest []LootItem
		for _, it := range pool {
			if drawn[it.ID] {
				continue
			}
			rest = append(rest, it)
			if it.Rarity == want {
				tier = append(tier, it)
			}
		}
		candidates := tier
		if len(candidates) == 0 {
			candidates = rest
		}
		if len(candidates) == 0 {
			return // catalog exhausted
		}
		pick := candidates[e.rng.Intn(len(candidates))]
		drawn[pick.ID] = true

		for attempt := 0; attempt < e.params.PlacementAttempts; attempt++ {
			x, y := e.rng.Intn(w.Grid.W), e.rng.Intn(w.Grid.H)
			if e.freeFloor(w, x, y) {
				w.Entities = append(w.Entities, &Entity{
					ID:     fmt.Sprintf("loot-%d", i),
					Kind:   EntityItem,
					Pos:    Position{x, y},
					Item:   ItemLoot,
					LootID: pick.ID,
				})
				break
			}
		}
	}
}

// placeCurrency scatters currency pickups on free floor.
func (e *Engine) placeCurrency(w *World, count int) {
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < e.params.PlacementAttempts; attempt++ {
			x, y := e.rng.Intn(w.Grid.W), e.rng.Intn(w.Grid.H)
			if e.freeFloor(w, x, y) {
				w.Entities = append(w.Entities, &Entity{
					ID:   fmt.Sprintf("cash-%d", i),
					Kind: EntityItem,
					Pos:  Position{x, y},
					Item: ItemCurrency,
				})
				break
			}
		}
	}
}

// placeAntagonists places count antagonists with kinds drawn uniformly from
// the archetype roster, keeping minimum distance from the player spawn and
// from each other.
func (e *Engine) placeAntagonists(w *World, count int, spawn Position) {
	roster := e.content.Rosters[w.Archetype]
	if len(roster) == 0 {
		return
	}
	for i := 0; i < count; i++ {
		kind := roster[e.rng.Intn(len(roster))].Kind
		for attempt := 0; attempt < e.params.AntagonistAttempts; attempt++ {
			x, y := e.rng.Intn(w.Grid.W), e.rng.Intn(w.Grid.H)
			if !e.freeFloor(w, x, y) {
				continue
			}
			pos := Position{x, y}
			if spawn.Dist(pos) <= e.params.MinPlayerGap {
				continue
			}
			tooClose := false
			for _, other := range w.Entities {
				if other.Kind == EntityAntagonist && other.Pos.Dist(pos) < e.params.MinAntagonistGap {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}
			w.Entities = append(w.Entities, &Entity{
				ID:         fmt.Sprintf("foe-%d", i),
				Kind:       EntityAntagonist,
				Pos:        pos,
				Antagonist: kind,
			})
			break
		}
	}
}
