package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sneakout/internal/engine"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Width(52)
	cardSelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 1).
			Width(52)
)

func (m SessionModel) viewBattle() string {
	if m.battle == nil {
		return ""
	}
	bs := m.battle

	name := string(bs.Kind)
	if t, ok := m.eng.Content().TypeOf(bs.Kind); ok {
		name = t.Name
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Confrontation: "+name) + "\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("round %d", bs.Round)) + "  " + m.battleScore() + "\n\n")

	sb.WriteString(wrapText(bs.Scenario.Prompt, 56) + "\n\n")

	if bs.Result == engine.ResultPending {
		for i, card := range bs.Scenario.Cards {
			style := cardStyle
			if i == m.battleCursor {
				style = cardSelStyle
			}
			sb.WriteString(style.Render(card.Label+"\n"+dimStyle.Render(card.Detail)) + "\n")
		}
		sb.WriteString(dimStyle.Render("↑/↓ choose, enter to answer"))
	} else {
		switch bs.Result {
		case engine.ResultWin:
			sb.WriteString(titleStyle.Render("You handled it perfectly.") + "\n")
		case engine.ResultLose:
			sb.WriteString(alertStyle.Render("You lost the exchange.") + "\n")
		}
		sb.WriteString(dimStyle.Render("press enter"))
	}
	return panelStyle.Render(sb.String())
}

// battleScore renders the tally line for the active ruleset.
func (m SessionModel) battleScore() string {
	bs := m.battle
	switch bs.Archetype {
	case engine.ArchetypeSchool:
		return noticeStyle.Render(fmt.Sprintf("exam score %d/100", bs.ExamScore))
	case engine.ArchetypeCompany:
		return noticeStyle.Render(fmt.Sprintf("mood %d/100", bs.Meter))
	default:
		return noticeStyle.Render(fmt.Sprintf("you %d : %d them", bs.PlayerWins, bs.AntagonistWins))
	}
}
