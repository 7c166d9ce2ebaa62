package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sneakout/internal/core"
	"github.com/vovakirdan/sneakout/internal/engine"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	alertStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// tileCell maps a tile kind to its map glyph.
func tileCell(t engine.TileKind) core.Cell {
	switch t {
	case engine.TileWall:
		return core.Cell{Rune: '#', Color: core.ColorGray}
	case engine.TileExit:
		return core.Cell{Rune: 'X', Color: core.ColorBrightGreen}
	case engine.TileSofa:
		return core.Cell{Rune: '&', Color: core.ColorYellow}
	case engine.TileTV:
		return core.Cell{Rune: 'T', Color: core.ColorYellow}
	case engine.TilePlant:
		return core.Cell{Rune: '*', Color: core.ColorGreen}
	case engine.TileTable:
		return core.Cell{Rune: '=', Color: core.ColorYellow}
	case engine.TileBed:
		return core.Cell{Rune: 'B', Color: core.ColorYellow}
	case engine.TileDesk:
		return core.Cell{Rune: 'd', Color: core.ColorYellow}
	default:
		return core.Cell{Rune: '.', Color: core.ColorGray}
	}
}

// entityCell maps an entity to its map glyph.
func entityCell(e *engine.Entity) core.Cell {
	switch e.Kind {
	case engine.EntityPlayer:
		return core.Cell{Rune: '@', Color: core.ColorBrightYellow}
	case engine.EntityAntagonist:
		if e.Dead {
			return core.Cell{Rune: '%', Color: core.ColorGray}
		}
		return core.Cell{Rune: '!', Color: core.ColorBrightRed}
	case engine.EntityItem:
		if e.Item == engine.ItemCurrency {
			return core.Cell{Rune: '$', Color: core.ColorBrightGreen}
		}
		return core.Cell{Rune: '?', Color: core.ColorBrightCyan}
	default:
		return core.Cell{Rune: ' ', Color: core.ColorDefault}
	}
}

// renderMap draws the world into a fresh screen buffer.
func renderMap(w *engine.World) *core.Screen {
	s := core.NewScreen(w.Grid.W, w.Grid.H)
	for y := 0; y < w.Grid.H; y++ {
		for x := 0; x < w.Grid.W; x++ {
			s.SetCell(x, y, tileCell(w.Grid.At(x, y)))
		}
	}
	// items under, antagonists over, player on top
	for _, e := range w.Entities {
		if e.Kind == engine.EntityItem {
			s.SetCell(e.Pos.X, e.Pos.Y, entityCell(e))
		}
	}
	for _, e := range w.Entities {
		if e.Kind == engine.EntityAntagonist {
			s.SetCell(e.Pos.X, e.Pos.Y, entityCell(e))
		}
	}
	if p := w.Player(); p != nil {
		s.SetCell(p.Pos.X, p.Pos.Y, entityCell(p))
	}
	return s
}

// threatLabel renders the advisory threat level.
func threatLabel(level int) string {
	switch level {
	case 3:
		return alertStyle.Render("DANGER")
	case 2:
		return noticeStyle.Render("close")
	case 1:
		return dimStyle.Render("nearby")
	default:
		return dimStyle.Render("calm")
	}
}

func (m SessionModel) viewGame() string {
	if m.world == nil || m.run == nil {
		return ""
	}

	mapStr := RenderScreen(renderMap(m.world))

	var side strings.Builder
	side.WriteString(titleStyle.Render(m.info.Name) + "\n\n")
	side.WriteString(fmt.Sprintf("Sanity  %s\n", sanityBar(m.run.Sanity, m.run.MaxSanity)))
	side.WriteString(fmt.Sprintf("Threat  %s\n", threatLabel(m.world.ThreatLevel())))
	side.WriteString(fmt.Sprintf("Turn    %d\n", m.world.Turn))
	if m.run.Untrackable > 0 {
		side.WriteString(noticeStyle.Render(fmt.Sprintf("Untrackable %d more steps\n", m.run.Untrackable)))
	}
	side.WriteString(fmt.Sprintf("\n%s x%d   Loot x%d\n",
		m.info.CurrencyName, m.run.CurrencyCarried(), len(m.run.LootCarried())))
	side.WriteString(fmt.Sprintf("Spray x%d   Die x%d\n",
		m.stock[engine.ConsumableSpray], m.stock[engine.ConsumableDie]))
	if m.inspecting {
		side.WriteString("\n" + noticeStyle.Render("Inspect: pick a direction") + "\n")
	}

	side.WriteString("\n")
	for _, line := range m.feed {
		side.WriteString(dimStyle.Render(line) + "\n")
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, mapStr, sidebarStyle.Render(side.String()))
	view += "\n" + m.help.View(m.keys)

	if m.scr == screenSpotted {
		foe := m.world.ByID(m.world.Pending)
		name := "someone"
		if foe != nil {
			if t, ok := m.eng.Content().TypeOf(foe.Antagonist); ok {
				name = t.Name
			}
		}
		overlay := panelStyle.Render(alertStyle.Render("!") + " You've been spotted by " + name + "!\n" + dimStyle.Render("press enter"))
		view += "\n" + overlay
	}
	return view
}

// sanityBar renders hearts for remaining sanity.
func sanityBar(sanity, max int) string {
	full := strings.Repeat("♥", core.Max(sanity, 0))
	empty := strings.Repeat("♡", core.Max(max-sanity, 0))
	return alertStyle.Render(full) + dimStyle.Render(empty)
}

// describeEvent turns an event into a feed line. Empty means skip.
func (m SessionModel) describeEvent(ev engine.Event) string {
	switch ev.Kind {
	case engine.EvBlocked:
		return "Something's in the way."
	case engine.EvPickedUpItem:
		if ev.Item == engine.ItemCurrency {
			return "Picked up a " + m.info.CurrencyName + "."
		}
		if it, ok := m.eng.Content().LootByID(ev.LootID); ok {
			return fmt.Sprintf("Found %s (%s)!", it.Name, it.Rarity)
		}
		return "Found something odd."
	case engine.EvRejectedAtExit:
		return "You can't leave empty-handed."
	case engine.EvVictory:
		return fmt.Sprintf("You made it out! Payout %d.", ev.Payout)
	case engine.EvSpottedBy:
		return "You've been spotted!"
	case engine.EvBattleStarted:
		if foe := m.world.ByID(ev.EntityID); foe != nil {
			if t, ok := m.eng.Content().TypeOf(foe.Antagonist); ok {
				return "Cornered by " + t.Name + "!"
			}
		}
		return "Cornered!"
	case engine.EvBattleWon:
		return "You talked your way out."
	case engine.EvBattleLost:
		return "That conversation went badly."
	case engine.EvKnockback:
		return "You stagger away, rattled."
	case engine.EvGameOver:
		return "Your sanity is gone."
	case engine.EvObstacleNoted:
		return ev.Text
	case engine.EvConsumableUsed:
		return "The gadget takes effect."
	case engine.EvConsumableFailed:
		return "Nothing happens."
	default:
		return ""
	}
}
