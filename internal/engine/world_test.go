package engine_test

import (
	"testing"

	"github.com/vovakirdan/sneakout/internal/content"
	"github.com/vovakirdan/sneakout/internal/engine"
)

func TestGenerateWorldDimensions(t *testing.T) {
	eng := engine.New(content.Default(), engine.DefaultParams(), 31)

	cases := []struct {
		arch engine.Archetype
		w, h int
	}{
		{engine.ArchetypeHome, 15, 15},
		{engine.ArchetypeSchool, 30, 30},
		{engine.ArchetypeCompany, 30, 30},
	}
	for _, tc := range cases {
		world := eng.GenerateWorld(tc.arch)
		if world.Grid.W != tc.w || world.Grid.H != tc.h {
			t.Errorf("%s: grid %dx%d, want %dx%d", tc.arch, world.Grid.W, world.Grid.H, tc.w, tc.h)
		}
	}
}

func TestGenerateWorldIsWinnable(t *testing.T) {
	// Every map must have a player and an exit the player can reach.
	for _, arch := range engine.Archetypes {
		for seed := int64(1); seed <= 5; seed++ {
			eng := engine.New(content.Default(), engine.DefaultParams(), seed)
			world := eng.GenerateWorld(arch)

			player := world.Player()
			if player == nil {
				t.Fatalf("%s seed %d: no player", arch, seed)
			}
			if !world.Grid.At(player.Pos.X, player.Pos.Y).Walkable() {
				t.Fatalf("%s seed %d: player on unwalkable tile %v", arch, seed, player.Pos)
			}

			reached := world.Grid.FloodFrom(player.Pos)
			exitReachable := false
			for pos := range reached {
				if world.Grid.At(pos.X, pos.Y) == engine.TileExit {
					exitReachable = true
					break
				}
			}
			if !exitReachable {
				t.Errorf("%s seed %d: no reachable exit from %v", arch, seed, player.Pos)
			}
		}
	}
}

func TestLayoutIdenticalAcrossSeeds(t *testing.T) {
	// Walls, furniture and exits come from the recipe; the seed only
	// shuffles what lives on top of them.
	for _, arch := range engine.Archetypes {
		a := engine.New(content.Default(), engine.DefaultParams(), 100).GenerateWorld(arch)
		b := engine.New(content.Default(), engine.DefaultParams(), 200).GenerateWorld(arch)
		for y := 0; y < a.Grid.H; y++ {
			for x := 0; x < a.Grid.W; x++ {
				if a.Grid.At(x, y) != b.Grid.At(x, y) {
					t.Fatalf("%s: tile (%d,%d) differs across seeds", arch, x, y)
				}
			}
		}
		if a.Player().Pos != b.Player().Pos {
			t.Errorf("%s: spawn moved across seeds: %v vs %v", arch, a.Player().Pos, b.Player().Pos)
		}
	}
}

func TestGenerateWorldPopulation(t *testing.T) {
	params := engine.DefaultParams()
	eng := engine.New(content.Default(), params, 33)
	world := eng.GenerateWorld(engine.ArchetypeHome)

	var loot, cash, foes int
	seenLoot := map[string]bool{}
	for _, ent := range world.Entities {
		switch ent.Kind {
		case engine.EntityItem:
			if ent.Item == engine.ItemLoot {
				loot++
				if seenLoot[ent.LootID] {
					t.Errorf("loot %q placed twice", ent.LootID)
				}
				seenLoot[ent.LootID] = true
				if _, ok := eng.Content().LootByID(ent.LootID); !ok {
					t.Errorf("loot %q not in catalog", ent.LootID)
				}
			} else {
				cash++
			}
		case engine.EntityAntagonist:
			foes++
		}
	}

	if loot != params.LootCount {
		t.Errorf("loot = %d, want %d", loot, params.LootCount)
	}
	if cash != params.CurrencyCount {
		t.Errorf("currency = %d, want %d", cash, params.CurrencyCount)
	}
	if foes == 0 || foes > params.AntagonistCount {
		t.Errorf("antagonists = %d, want 1..%d", foes, params.AntagonistCount)
	}

	// Nothing may share a tile, and no entity may sit on a wall or furniture.
	occupied := map[engine.Position]bool{}
	for _, ent := range world.Entities {
		if occupied[ent.Pos] {
			t.Errorf("tile %v occupied twice", ent.Pos)
		}
		occupied[ent.Pos] = true
		if !world.Grid.At(ent.Pos.X, ent.Pos.Y).Walkable() {
			t.Errorf("entity %s on unwalkable tile %v", ent.ID, ent.Pos)
		}
	}
}

func TestGenerateWorldAntagonistSpacing(t *testing.T) {
	params := engine.DefaultParams()
	eng := engine.New(content.Default(), params, 34)
	world := eng.GenerateWorld(engine.ArchetypeSchool)
	spawn := world.Player().Pos

	var foes []*engine.Entity
	for _, ent := range world.Entities {
		if ent.Kind == engine.EntityAntagonist {
			foes = append(foes, ent)
		}
	}
	for _, foe := range foes {
		if d := spawn.Dist(foe.Pos); d <= params.MinPlayerGap {
			t.Errorf("foe %s spawned %0.1f from the player, want > %0.1f", foe.ID, d, params.MinPlayerGap)
		}
	}
	for i := 0; i < len(foes); i++ {
		for j := i + 1; j < len(foes); j++ {
			if d := foes[i].Pos.Dist(foes[j].Pos); d < params.MinAntagonistGap {
				t.Errorf("foes %s and %s are %0.1f apart, want >= %0.1f", foes[i].ID, foes[j].ID, d, params.MinAntagonistGap)
			}
		}
	}
}

func TestLargeGridsGetScaledPopulation(t *testing.T) {
	params := engine.DefaultParams()
	eng := engine.New(content.Default(), params, 35)
	world := eng.GenerateWorld(engine.ArchetypeCompany)

	var cash int
	for _, ent := range world.Entities {
		if ent.Kind == engine.EntityItem && ent.Item == engine.ItemCurrency {
			cash++
		}
	}
	want := int(float64(params.CurrencyCount) * params.LargeGridScale)
	if cash != want {
		t.Errorf("currency on a large map = %d, want %d", cash, want)
	}
}

func TestRosterKindsOnly(t *testing.T) {
	eng := engine.New(content.Default(), engine.DefaultParams(), 36)
	for _, arch := range engine.Archetypes {
		world := eng.GenerateWorld(arch)
		for _, ent := range world.Entities {
			if ent.Kind != engine.EntityAntagonist {
				continue
			}
			typ, ok := eng.Content().TypeOf(ent.Antagonist)
			if !ok {
				t.Errorf("%s: foe kind %q not in any roster", arch, ent.Antagonist)
				continue
			}
			inRoster := false
			for _, rt := range eng.Content().Rosters[arch] {
				if rt.Kind == typ.Kind {
					inRoster = true
					break
				}
			}
			if !inRoster {
				t.Errorf("%s: foe kind %q not in the archetype roster", arch, ent.Antagonist)
			}
		}
	}
}
