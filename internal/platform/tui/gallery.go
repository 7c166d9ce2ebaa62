package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sneakout/internal/core"
)

// galleryModel wraps the collection table.
type galleryModel struct {
	table table.Model
	total int
	owned int
}

// openGallery loads the unlock collection and switches to the gallery screen.
func (m SessionModel) openGallery() (tea.Model, tea.Cmd) {
	catalog := m.eng.Content().Loot

	counts := map[string]int{}
	if m.store != nil {
		if unlocks, err := m.store.Unlocks(); err == nil {
			for _, u := range unlocks {
				counts[u.LootID] = u.Count
			}
		}
	}

	columns := []table.Column{
		{Title: "Item", Width: 26},
		{Title: "Rarity", Width: 10},
		{Title: "Value", Width: 7},
		{Title: "Found", Width: 6},
	}

	owned := 0
	rows := make([]table.Row, 0, len(catalog))
	for _, it := range catalog {
		count := counts[it.ID]
		name := "???"
		rarity := "?"
		value := "?"
		if count > 0 {
			owned++
			name = it.Name
			rarity = it.Rarity.String()
			value = fmt.Sprintf("%d", it.Value)
		}
		rows = append(rows, table.Row{name, rarity, value, fmt.Sprintf("x%d", count)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Min(len(rows)+1, 18)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("212")).Bold(true)
	t.SetStyles(styles)

	m.gallery = galleryModel{table: t, total: len(catalog), owned: owned}
	m.scr = screenGallery
	return m, nil
}

func (m SessionModel) updateGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.scr = screenMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.gallery.table, cmd = m.gallery.table.Update(msg)
	return m, cmd
}

func (m SessionModel) viewGallery() string {
	header := titleStyle.Render("Collection") + "  " +
		dimStyle.Render(fmt.Sprintf("%d / %d discovered", m.gallery.owned, m.gallery.total))
	money := ""
	if m.store != nil {
		if balance, err := m.store.Money(); err == nil {
			money = noticeStyle.Render(fmt.Sprintf("Balance: %d", balance))
		}
	}
	footer := dimStyle.Render("esc: back")
	return header + "  " + money + "\n" + m.gallery.table.View() + "\n" + footer
}
