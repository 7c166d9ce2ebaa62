package content

import "github.com/vovakirdan/sneakout/internal/engine"

// Layout recipes are authored as ordered rectangle fills. Walls go down
// first, door gaps reopen them as floor, furniture lands last. Coordinates
// follow the grid convention of x across, y down.

func homeRecipe() engine.LayoutRecipe {
	ops := []engine.FillOp{
		// central cross walls splitting the flat into four rooms
		{X: 7, Y: 0, W: 1, H: 15, Tile: engine.TileWall},
		{X: 0, Y: 7, W: 15, H: 1, Tile: engine.TileWall},
		// doors
		{X: 2, Y: 7, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 12, Y: 7, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 7, Y: 3, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 7, Y: 11, W: 1, H: 1, Tile: engine.TileFloor},
		// open hallway around the center
		{X: 7, Y: 5, W: 1, H: 5, Tile: engine.TileFloor},
		{X: 5, Y: 7, W: 5, H: 1, Tile: engine.TileFloor},
		// master bedroom, top left
		{X: 1, Y: 1, W: 2, H: 1, Tile: engine.TileBed},
		{X: 1, Y: 4, W: 1, H: 1, Tile: engine.TilePlant},
		{X: 4, Y: 1, W: 1, H: 1, Tile: engine.TileTV},
		// guest bedroom, top right
		{X: 12, Y: 1, W: 1, H: 1, Tile: engine.TileBed},
		{X: 13, Y: 2, W: 1, H: 1, Tile: engine.TileDesk},
		// kitchen and dining, bottom left
		{X: 1, Y: 10, W: 2, H: 2, Tile: engine.TileTable},
		{X: 4, Y: 13, W: 1, H: 1, Tile: engine.TilePlant},
		// living room, bottom right
		{X: 10, Y: 9, W: 3, H: 1, Tile: engine.TileSofa},
		{X: 11, Y: 12, W: 1, H: 1, Tile: engine.TileTV},
	}
	return engine.LayoutRecipe{
		Width:        15,
		Height:       15,
		Ops:          ops,
		PlayerSpawns: []engine.Position{{X: 7, Y: 7}},
		Exits:        []engine.Position{{X: 0, Y: 0}, {X: 14, Y: 0}},
	}
}

// classroomOps furnishes one 10x10 classroom whose top-left corner is rx, ry:
// a lectern up front and a grid of student desks.
func classroomOps(rx, ry int) []engine.FillOp {
	ops := []engine.FillOp{
		{X: rx + 4, Y: ry + 1, W: 1, H: 1, Tile: engine.TileTable},
	}
	for y := ry + 3; y < ry+8; y += 2 {
		for x := rx + 2; x < rx+8; x += 2 {
			ops = append(ops, engine.FillOp{X: x, Y: y, W: 1, H: 1, Tile: engine.TileDesk})
		}
	}
	return ops
}

func schoolRecipe() engine.LayoutRecipe {
	ops := []engine.FillOp{
		// corridor wall and the two column walls make six classrooms
		{X: 0, Y: 20, W: 30, H: 1, Tile: engine.TileWall},
		{X: 10, Y: 0, W: 1, H: 20, Tile: engine.TileWall},
		{X: 20, Y: 0, W: 1, H: 20, Tile: engine.TileWall},
		{X: 0, Y: 10, W: 30, H: 1, Tile: engine.TileWall},
		// corridor doors
		{X: 5, Y: 20, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 15, Y: 20, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 25, Y: 20, W: 1, H: 1, Tile: engine.TileFloor},
		// inner doors between classroom rows
		{X: 5, Y: 10, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 15, Y: 10, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 25, Y: 10, W: 1, H: 1, Tile: engine.TileFloor},
	}
	for _, corner := range [][2]int{{0, 0}, {10, 0}, {20, 0}, {0, 11}, {10, 11}, {20, 11}} {
		ops = append(ops, classroomOps(corner[0], corner[1])...)
	}
	// potted plants along the corridor
	for x := 2; x < 30; x += 5 {
		ops = append(ops,
			engine.FillOp{X: x, Y: 22, W: 1, H: 1, Tile: engine.TilePlant},
			engine.FillOp{X: x, Y: 28, W: 1, H: 1, Tile: engine.TilePlant},
		)
	}
	return engine.LayoutRecipe{
		Width:        30,
		Height:       30,
		Ops:          ops,
		PlayerSpawns: []engine.Position{{X: 15, Y: 25}},
		Exits:        []engine.Position{{X: 0, Y: 29}, {X: 29, Y: 29}},
	}
}

// cubicleOps is one 2x2 desk island with a plant on its right shoulder.
func cubicleOps(x, y, gridW int) []engine.FillOp {
	ops := []engine.FillOp{
		{X: x, Y: y, W: 2, H: 2, Tile: engine.TileDesk},
	}
	if x+2 < gridW {
		ops = append(ops, engine.FillOp{X: x + 2, Y: y, W: 1, H: 1, Tile: engine.TilePlant})
	}
	return ops
}

func companyRecipe() engine.LayoutRecipe {
	ops := []engine.FillOp{
		// boss office, top left
		{X: 0, Y: 8, W: 10, H: 1, Tile: engine.TileWall},
		{X: 10, Y: 0, W: 1, H: 9, Tile: engine.TileWall},
		{X: 5, Y: 8, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 4, Y: 2, W: 1, H: 1, Tile: engine.TileTable},
		{X: 3, Y: 2, W: 1, H: 1, Tile: engine.TilePlant},
		{X: 5, Y: 2, W: 1, H: 1, Tile: engine.TilePlant},
		{X: 2, Y: 5, W: 2, H: 1, Tile: engine.TileSofa},
		// meeting room, top right
		{X: 19, Y: 0, W: 1, H: 9, Tile: engine.TileWall},
		{X: 19, Y: 8, W: 11, H: 1, Tile: engine.TileWall},
		{X: 25, Y: 8, W: 1, H: 1, Tile: engine.TileFloor},
		{X: 22, Y: 3, W: 6, H: 2, Tile: engine.TileTable},
		// pantry counter, bottom right
		{X: 25, Y: 25, W: 5, H: 1, Tile: engine.TileTable},
	}
	// open-plan cubicle islands
	for y := 12; y < 25; y += 5 {
		for x := 2; x < 28; x += 5 {
			ops = append(ops, cubicleOps(x, y, 30)...)
		}
	}
	return engine.LayoutRecipe{
		Width:        30,
		Height:       30,
		Ops:          ops,
		PlayerSpawns: []engine.Position{{X: 15, Y: 15}},
		Exits:        []engine.Position{{X: 15, Y: 29}, {X: 0, Y: 15}},
	}
}

func recipes() map[engine.Archetype]engine.LayoutRecipe {
	return map[engine.Archetype]engine.LayoutRecipe{
		engine.ArchetypeHome:    homeRecipe(),
		engine.ArchetypeSchool:  schoolRecipe(),
		engine.ArchetypeCompany: companyRecipe(),
	}
}
