package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sneakout/internal/content"
	"github.com/vovakirdan/sneakout/internal/engine"
)

func (m SessionModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(engine.Archetypes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		m.startRun(engine.Archetypes[m.cursor])
	default:
		if msg.String() == "g" {
			return m.openGallery()
		}
	}
	return m, nil
}

func (m SessionModel) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.scr = screenGame
	case key.Matches(msg, m.keys.Back):
		m.scr = screenMenu
	}
	return m, nil
}

func (m SessionModel) viewMenu() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("SNEAK OUT") + "\n")
	sb.WriteString(dimStyle.Render("grab the loot, dodge the small talk, reach the exit") + "\n\n")

	for i, arch := range engine.Archetypes {
		info := content.Infos[arch]
		cursor := "  "
		line := fmt.Sprintf("%s — %s", info.Name, info.Tagline)
		if i == m.cursor {
			cursor = "> "
			line = titleStyle.Render(line)
		}
		sb.WriteString(cursor + line + "\n")
	}

	sb.WriteString("\n" + dimStyle.Render("enter: play   g: gallery   q: quit"))
	return panelStyle.Render(sb.String())
}

func (m SessionModel) viewIntro() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.info.Name) + "\n\n")
	sb.WriteString(wrapText(m.introText, 56) + "\n\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("Collect %ss and loot, then reach an X tile.", m.info.CurrencyName)))
	sb.WriteString("\n" + dimStyle.Render("press enter to begin"))
	return panelStyle.Render(sb.String())
}

func (m SessionModel) viewEnd() string {
	var sb strings.Builder
	if m.run != nil && m.run.Phase == engine.PhaseVictory {
		sb.WriteString(titleStyle.Render("ESCAPED") + "\n\n")
		sb.WriteString(wrapText(m.endText, 56) + "\n\n")
		sb.WriteString(fmt.Sprintf("Payout: %d\n", m.run.Payout))
		sb.WriteString(fmt.Sprintf("Loot extracted: %d\n", len(m.run.LootCarried())))
	} else {
		sb.WriteString(alertStyle.Render("GAME OVER") + "\n\n")
		sb.WriteString(wrapText(m.endText, 56) + "\n")
	}
	sb.WriteString("\n" + dimStyle.Render("press enter"))
	return panelStyle.Render(sb.String())
}

// wrapText does greedy word wrapping at the given width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				sb.WriteRune('\n')
				lineLen = 0
			} else {
				sb.WriteRune(' ')
				lineLen++
			}
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
