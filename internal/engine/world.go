package engine

import (
	"math/rand"
	"time"
)

// World is the full state of one run's map: the tile grid, the entity list,
// and a monotonic turn counter. Exactly one live player entity exists at all
// times during active play.
type World struct {
	Archetype Archetype
	Grid      Grid
	Entities  []*Entity
	Turn      int

	// Pending is the id of an antagonist that reached the player during the
	// last advance pass and is awaiting the battle confirmation (the
	// "spotted" transient). While set, player input is rejected.
	Pending string
}

// Player returns the player entity. Generation guarantees it exists.
func (w *World) Player() *Entity {
	for _, e := range w.Entities {
		if e.Kind == EntityPlayer {
			return e
		}
	}
	return nil
}

// ByID returns the entity with the given id, or nil.
func (w *World) ByID(id string) *Entity {
	for _, e := range w.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// EntityAt returns the live entity occupying (x, y), or nil. Dead
// antagonists do not occupy their tile.
func (w *World) EntityAt(x, y int) *Entity {
	for _, e := range w.Entities {
		if e.Alive() && e.Pos.X == x && e.Pos.Y == y {
			return e
		}
	}
	return nil
}

// removeEntity deletes an entity from the world (items on pickup).
func (w *World) removeEntity(id string) {
	for i, e := range w.Entities {
		if e.ID == id {
			w.Entities = append(w.Entities[:i], w.Entities[i+1:]...)
			return
		}
	}
}

// Engine runs the simulation. It owns the RNG and the injected read-only
// content tables; all world and run state is passed in by the caller.
// Everything is single-threaded by construction: the caller transfers
// control synchronously between the movement loop and the battle machine.
type Engine struct {
	params  Params
	content *Content
	rng     *rand.Rand
}

// New creates an engine. A zero seed picks one from the clock.
func New(content *Content, params Params, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		params:  params,
		content: content,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Params returns the engine's tuning, for display layers.
func (e *Engine) Params() Params {
	return e.params
}

// Content returns the injected content tables.
func (e *Engine) Content() *Content {
	return e.content
}

// GenerateWorld builds a playable world for the archetype: the structural
// layout from the archetype's recipe, then the sampled population. Layout is
// deterministic by construction (same dimensions and anchors every call);
// entity placement varies with the RNG. Generation is total: it always
// yields a world with a player and at least one exit.
func (e *Engine) GenerateWorld(arch Archetype) *World {
	recipe := e.content.Recipes[arch]
	grid := NewGrid(recipe.Width, recipe.Height)
	for _, op := range recipe.Ops {
		grid.FillRect(op.X, op.Y, op.W, op.H, op.Tile)
	}

	w := &World{Archetype: arch, Grid: grid}
	e.populate(w, recipe)
	return w
}

// ThreatLevel maps the minimum distance from the player to any live
// antagonist onto a four-level ordinal (3 = closest). Purely advisory.
func (w *World) ThreatLevel() int {
	p := w.Player()
	if p == nil {
		return 0
	}
	minDist := -1.0
	for _, e := range w.Entities {
		if e.Kind != EntityAntagonist || e.Dead {
			continue
		}
		d := e.Pos.Dist(p.Pos)
		if minDist < 0 || d < minDist {
			minDist = d
		}
	}
	switch {
	case minDist < 0:
		return 0
	case minDist <= 2:
		return 3
	case minDist <= 3:
		return 2
	case minDist <= 5:
		return 1
	default:
		return 0
	}
}
