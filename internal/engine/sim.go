package engine

// ConsumableKind names a usable inventory gadget.
type ConsumableKind string

const (
	// ConsumableSpray makes the player untrackable for a few turns.
	ConsumableSpray ConsumableKind = "spray"
	// ConsumableDie teleports the player to a nearby free tile.
	ConsumableDie ConsumableKind = "die"
)

// ApplyPlayerMove advances the world by one player turn. dx, dy must be a
// single cardinal step. The returned battle is non-nil when the player walked
// into an antagonist, which starts the fight immediately. Moves are rejected
// while a run is over or an encounter confirmation is pending.
func (e *Engine) ApplyPlayerMove(w *World, rs *RunState, dx, dy int) (*BattleState, []Event) {
	if rs.Phase != PhaseActive || w.Pending != "" {
		return nil, nil
	}
	if dx*dy != 0 || dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return nil, []Event{{Kind: EvBlocked}}
	}

	player := w.Player()
	tx, ty := player.Pos.X+dx, player.Pos.Y+dy
	tile := w.Grid.At(tx, ty)

	if !tile.Walkable() {
		return nil, []Event{{Kind: EvBlocked}}
	}

	if tile == TileExit {
		return nil, e.resolveExit(w, rs)
	}

	var events []Event
	if occupant := w.EntityAt(tx, ty); occupant != nil {
		switch occupant.Kind {
		case EntityAntagonist:
			// Walking into an antagonist skips the warning stage.
			battle, evs := e.startBattle(w, rs, occupant)
			return battle, evs
		case EntityItem:
			rs.Inventory = append(rs.Inventory, InventoryItem{Kind: occupant.Item, LootID: occupant.LootID})
			events = append(events, Event{Kind: EvPickedUpItem, EntityID: occupant.ID, Item: occupant.Item, LootID: occupant.LootID})
			w.removeEntity(occupant.ID)
		}
	}

	player.Pos = Position{tx, ty}
	events = append([]Event{{Kind: EvMoved, EntityID: player.ID}}, events...)
	rs.TotalSteps++
	if rs.Untrackable > 0 {
		rs.Untrackable--
	}

	events = append(events, e.advanceAntagonists(w, rs)...)
	w.Turn++
	return nil, events
}

// resolveExit ends the run at an exit tile. Leaving empty-handed is refused.
func (e *Engine) resolveExit(w *World, rs *RunState) []Event {
	if len(rs.Inventory) == 0 {
		return []Event{{Kind: EvRejectedAtExit}}
	}
	payout := 0
	for _, it := range rs.Inventory {
		if it.Kind == ItemCurrency {
			payout += e.content.Payouts[e.rng.Intn(len(e.content.Payouts))]
		}
	}
	rs.Payout = payout
	rs.Phase = PhaseVictory
	return []Event{{Kind: EvVictory, Payout: payout}}
}

// advanceAntagonists gives every live antagonist one action. Aggression grows
// with the player's total steps, is suppressed beyond chase range and while
// the player is untrackable; a disinterested foe drifts at random and can
// still stumble onto the player. At most one antagonist can spot the player
// per turn; spotting halts the pass.
func (e *Engine) advanceAntagonists(w *World, rs *RunState) []Event {
	player := w.Player()
	bonus := min(e.params.MaxAggressionBonus, float64(rs.TotalSteps)*e.params.AggressionPerStep)

	snapshot := make([]*Entity, 0, len(w.Entities))
	for _, ent := range w.Entities {
		if ent.Kind == EntityAntagonist && ent.Alive() {
			snapshot = append(snapshot, ent)
		}
	}

	for _, foe := range snapshot {
		dist := foe.Pos.Dist(player.Pos)
		aggressive := false
		if dist < e.params.ChaseDistance && rs.Untrackable == 0 {
			prob := e.content.AggressionOf(foe.Antagonist) + bonus
			aggressive = e.rng.Float64() < prob
		}

		if aggressive {
			step, ok := e.chaseStep(w, foe, player.Pos)
			if !ok {
				continue
			}
			if step == player.Pos {
				w.Pending = foe.ID
				return []Event{{Kind: EvSpottedBy, EntityID: foe.ID}}
			}
			foe.Pos = step
			continue
		}

		// Disinterested wandering; a foe may just stand still.
		if dir := e.rng.Intn(5); dir < 4 {
			dx, dy := cardinal(dir)
			step := Position{foe.Pos.X + dx, foe.Pos.Y + dy}
			if step == player.Pos {
				w.Pending = foe.ID
				return []Event{{Kind: EvSpottedBy, EntityID: foe.ID}}
			}
			if w.Grid.At(step.X, step.Y) == TileFloor && !antagonistAt(w, step.X, step.Y) {
				foe.Pos = step
			}
		}
	}
	return nil
}

// chaseStep picks the greedy one-tile step toward target, preferring the
// longer axis and falling back to the other when the first is blocked.
// Chasing foes only walk plain floor, never exits.
func (e *Engine) chaseStep(w *World, foe *Entity, target Position) (Position, bool) {
	rawDX := target.X - foe.Pos.X
	rawDY := target.Y - foe.Pos.Y
	sx, sy := sign(rawDX), sign(rawDY)

	tryXFirst := abs(rawDX) > abs(rawDY)
	if rawDX == 0 {
		tryXFirst = false
	}
	if rawDY == 0 {
		tryXFirst = true
	}

	order := [2]Position{
		{foe.Pos.X, foe.Pos.Y + sy},
		{foe.Pos.X + sx, foe.Pos.Y},
	}
	if tryXFirst {
		order[0], order[1] = order[1], order[0]
	}
	for _, cand := range order {
		if cand == foe.Pos {
			continue
		}
		if cand == target {
			return cand, true
		}
		if w.Grid.At(cand.X, cand.Y) == TileFloor && !antagonistAt(w, cand.X, cand.Y) {
			return cand, true
		}
	}
	return Position{}, false
}

// Inspect looks at the adjacent tile in direction dx, dy and returns a flavor
// line when it is a piece of furniture. Inspecting costs no turn.
func (e *Engine) Inspect(w *World, rs *RunState, dx, dy int) []Event {
	if rs.Phase != PhaseActive {
		return nil
	}
	player := w.Player()
	tile := w.Grid.At(player.Pos.X+dx, player.Pos.Y+dy)
	if !tile.Obstacle() {
		return nil
	}
	var text string
	if quotes := e.content.Quotes[w.Archetype][tile]; len(quotes) > 0 {
		text = quotes[e.rng.Intn(len(quotes))]
	}
	return []Event{{Kind: EvObstacleNoted, Text: text}}
}

// UseConsumable applies a gadget's effect. Using one does not consume a turn,
// so antagonists do not react. Stock accounting is the caller's business.
func (e *Engine) UseConsumable(w *World, rs *RunState, kind ConsumableKind) []Event {
	if rs.Phase != PhaseActive || w.Pending != "" {
		return []Event{{Kind: EvConsumableFailed}}
	}
	switch kind {
	case ConsumableSpray:
		rs.Untrackable = e.params.UntrackableSteps
		return []Event{{Kind: EvConsumableUsed}}
	case ConsumableDie:
		player := w.Player()
		r := e.params.TeleportRadius
		for attempt := 0; attempt < e.params.TeleportAttempts; attempt++ {
			nx := player.Pos.X + e.rng.Intn(2*r+1) - r
			ny := player.Pos.Y + e.rng.Intn(2*r+1) - r
			if (Position{nx, ny}) == player.Pos {
				continue
			}
			if e.freeFloor(w, nx, ny) {
				player.Pos = Position{nx, ny}
				return []Event{{Kind: EvConsumableUsed}, {Kind: EvMoved, EntityID: player.ID}}
			}
		}
		return []Event{{Kind: EvConsumableFailed}}
	default:
		return []Event{{Kind: EvConsumableFailed}}
	}
}

func antagonistAt(w *World, x, y int) bool {
	ent := w.EntityAt(x, y)
	return ent != nil && ent.Kind == EntityAntagonist
}

func cardinal(dir int) (int, int) {
	switch dir {
	case 0:
		return 0, -1
	case 1:
		return 0, 1
	case 2:
		return -1, 0
	default:
		return 1, 0
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
