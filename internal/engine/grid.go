// Package engine implements the sneakout simulation core: procedural layout
// generation, entity population, the turn-based movement/pursuit loop, and
// the encounter battle machine. It contains no rendering, audio, or storage
// concerns; callers drive it through events and own all persistence.
package engine

// TileKind identifies the type of a grid cell.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileExit

	// Obstacle variants. All block movement; they differ only in the
	// flavor text attached to them by the content tables.
	TileSofa
	TileTV
	TilePlant
	TileTable
	TileBed
	TileDesk
)

// Walkable reports whether the player or an antagonist may stand on the tile.
func (t TileKind) Walkable() bool {
	return t == TileFloor || t == TileExit
}

// Obstacle reports whether the tile is a furniture obstacle (blocks movement,
// can be inspected for flavor text).
func (t TileKind) Obstacle() bool {
	return t >= TileSofa
}

func (t TileKind) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileExit:
		return "exit"
	case TileSofa:
		return "sofa"
	case TileTV:
		return "tv"
	case TilePlant:
		return "plant"
	case TileTable:
		return "table"
	case TileBed:
		return "bed"
	case TileDesk:
		return "desk"
	default:
		return "unknown"
	}
}

// Grid is a fixed-size 2D tile array addressed by (column, row).
// Tiles are immutable once generation finishes; only the layout builder and
// the exit placement step write to it.
type Grid struct {
	W, H  int
	cells []TileKind
}

// NewGrid creates a grid of the given dimensions, filled with floor.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h, cells: make([]TileKind, w*h)}
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the tile at (x, y). Out-of-bounds reads return TileWall so that
// callers never walk off the edge.
func (g *Grid) At(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.cells[y*g.W+x]
}

// Set writes the tile at (x, y). Out-of-bounds writes are silently ignored.
func (g *Grid) Set(x, y int, k TileKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.W+x] = k
}

// FillRect writes k into every in-bounds cell of the rectangle.
// This is the single primitive all layout recipes are built from; later
// fills override earlier ones.
func (g *Grid) FillRect(x, y, w, h int, k TileKind) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			g.Set(cx, cy, k)
		}
	}
}

// FloodFrom returns the set of positions reachable from start via walkable
// tiles using 4-way movement. Used by tests to verify that generation keeps
// spawn and exits connected.
func (g *Grid) FloodFrom(start Position) map[Position]bool {
	seen := map[Position]bool{}
	if !g.At(start.X, start.Y).Walkable() {
		return seen
	}
	queue := []Position{start}
	seen[start] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]Position{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			n := Position{p.X + d.X, p.Y + d.Y}
			if seen[n] || !g.At(n.X, n.Y).Walkable() {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}
