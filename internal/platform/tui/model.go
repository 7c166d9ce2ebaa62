// Package tui provides the Bubble Tea integration: the session flow from
// the archetype menu through a run to the collection gallery, plus SSH
// serving via Wish.
package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sneakout/internal/content"
	"github.com/vovakirdan/sneakout/internal/engine"
	"github.com/vovakirdan/sneakout/internal/storage"
)

// screen enumerates the session's UI states.
type screen int

const (
	screenMenu screen = iota
	screenIntro
	screenGame
	screenSpotted
	screenBattle
	screenEnd
	screenGallery
)

// spottedMsg fires when the spotted overlay has lingered long enough.
type spottedMsg struct{}

// spottedDelay is how long the warning overlay stays before the battle
// confirmation fires on its own.
const spottedDelay = 1500 * time.Millisecond

// maxLogLines bounds the event feed in the sidebar.
const maxLogLines = 6

// SessionModel is the Bubble Tea model driving one player session.
type SessionModel struct {
	eng   *engine.Engine
	store *storage.Store // may be nil; persistence is then skipped
	keys  GameKeyMap
	help  help.Model

	width  int
	height int
	scr    screen
	cursor int

	arch   engine.Archetype
	info   content.ArchetypeInfo
	world  *engine.World
	run    *engine.RunState
	battle *engine.BattleState

	battleCursor int
	stock        map[engine.ConsumableKind]int
	feed         []string
	introText    string
	endText      string
	inspecting   bool
	quitting     bool

	gallery galleryModel
}

// NewSessionModel creates the session model. The store may be nil, in which
// case the shop stock is empty and nothing is persisted.
func NewSessionModel(eng *engine.Engine, store *storage.Store, width, height int) SessionModel {
	stock := map[engine.ConsumableKind]int{}
	if store != nil {
		if s, err := store.Consumables(); err == nil {
			stock = s
		}
	}
	return SessionModel{
		eng:    eng,
		store:  store,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
		scr:    screenMenu,
		stock:  stock,
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spottedMsg:
		if m.scr == screenSpotted {
			return m.confirmEncounter()
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.scr {
		case screenMenu:
			return m.updateMenu(msg)
		case screenIntro:
			return m.updateIntro(msg)
		case screenGame:
			return m.updateGame(msg)
		case screenSpotted:
			return m.updateSpotted(msg)
		case screenBattle:
			return m.updateBattle(msg)
		case screenEnd:
			return m.updateEnd(msg)
		case screenGallery:
			return m.updateGallery(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.scr {
	case screenMenu:
		return m.viewMenu()
	case screenIntro:
		return m.viewIntro()
	case screenGame, screenSpotted:
		return m.viewGame()
	case screenBattle:
		return m.viewBattle()
	case screenEnd:
		return m.viewEnd()
	case screenGallery:
		return m.viewGallery()
	}
	return ""
}

// startRun builds a fresh world for the selected archetype.
func (m *SessionModel) startRun(arch engine.Archetype) {
	m.arch = arch
	m.info = content.Infos[arch]
	m.world = m.eng.GenerateWorld(arch)
	m.run = m.eng.NewRunState()
	m.battle = nil
	m.feed = nil
	m.inspecting = false
	if len(m.info.Intros) > 0 {
		m.introText = m.info.Intros[rand.Intn(len(m.info.Intros))]
	}
	m.scr = screenIntro
}

// updateGame handles one key on the map screen.
func (m SessionModel) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Inspect):
		m.inspecting = !m.inspecting
		return m, nil

	case key.Matches(msg, m.keys.Spray):
		return m.useConsumable(engine.ConsumableSpray), nil

	case key.Matches(msg, m.keys.Die):
		return m.useConsumable(engine.ConsumableDie), nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.scr = screenMenu
		return m, nil
	}

	dx, dy, ok := directionFor(msg, m.keys)
	if !ok {
		return m, nil
	}

	if m.inspecting {
		m.inspecting = false
		m.appendFeed(m.eng.Inspect(m.world, m.run, dx, dy))
		return m, nil
	}

	battle, events := m.eng.ApplyPlayerMove(m.world, m.run, dx, dy)
	m.appendFeed(events)

	if battle != nil {
		m.battle = battle
		m.battleCursor = 0
		m.scr = screenBattle
		return m, nil
	}
	if m.run.Phase == engine.PhaseVictory {
		return m.finishRun(), nil
	}
	if m.world.Pending != "" {
		m.scr = screenSpotted
		return m, tea.Tick(spottedDelay, func(time.Time) tea.Msg { return spottedMsg{} })
	}
	return m, nil
}

// updateSpotted lets the player confirm the encounter before the timer does.
func (m SessionModel) updateSpotted(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) {
		return m.confirmEncounter()
	}
	return m, nil
}

func (m SessionModel) confirmEncounter() (tea.Model, tea.Cmd) {
	battle, events := m.eng.ConfirmEncounter(m.world, m.run)
	m.appendFeed(events)
	if battle == nil {
		m.scr = screenGame
		return m, nil
	}
	m.battle = battle
	m.battleCursor = 0
	m.scr = screenBattle
	return m, nil
}

// updateBattle handles card selection, submission and the result
// acknowledgement.
func (m SessionModel) updateBattle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.battle == nil {
		m.scr = screenGame
		return m, nil
	}

	if m.battle.Result != engine.ResultPending {
		if key.Matches(msg, m.keys.Confirm) {
			m.appendFeed(m.eng.AcknowledgeBattleResult(m.world, m.run, m.battle))
			m.battle = nil
			if m.run.Phase == engine.PhaseGameOver {
				return m.finishRun(), nil
			}
			m.scr = screenGame
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.battleCursor > 0 {
			m.battleCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.battleCursor < len(m.battle.Scenario.Cards)-1 {
			m.battleCursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		cards := m.battle.Scenario.Cards
		if m.battleCursor < len(cards) {
			m.appendFeed(m.eng.SubmitBattleChoice(m.run, m.battle, cards[m.battleCursor].ID))
			m.battleCursor = 0
		}
	}
	return m, nil
}

func (m SessionModel) updateEnd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Back) {
		m.world = nil
		m.run = nil
		m.scr = screenMenu
	}
	return m, nil
}

// useConsumable applies a gadget if there is stock for it.
func (m SessionModel) useConsumable(kind engine.ConsumableKind) SessionModel {
	if m.stock[kind] <= 0 {
		m.feed = pushLine(m.feed, "No "+consumableName(kind)+" left. Visit the shop.")
		return m
	}
	events := m.eng.UseConsumable(m.world, m.run, kind)
	m.appendFeed(events)
	for _, ev := range events {
		if ev.Kind == engine.EvConsumableUsed {
			m.stock[kind]--
			if m.store != nil {
				//nolint:errcheck // Best-effort; in-memory stock is authoritative for the session
				m.store.SpendConsumable(kind)
			}
			break
		}
	}
	return m
}

// finishRun persists the outcome and shows the ending screen.
func (m SessionModel) finishRun() SessionModel {
	victory := m.run.Phase == engine.PhaseVictory
	if victory && len(m.info.Endings) > 0 {
		m.endText = m.info.Endings[rand.Intn(len(m.info.Endings))]
	} else {
		m.endText = "Your sanity is gone. The small talk won this time."
	}

	if m.store != nil {
		if m.run.Payout > 0 {
			//nolint:errcheck // Best-effort persistence
			m.store.AddMoney(m.run.Payout)
		}
		if victory {
			for _, id := range m.run.LootCarried() {
				//nolint:errcheck // Best-effort persistence
				m.store.RecordUnlock(id)
			}
		}
		//nolint:errcheck // Best-effort persistence
		m.store.RecordRun(storage.RunRecord{
			Archetype: string(m.arch),
			Outcome:   m.run.Phase.String(),
			Payout:    m.run.Payout,
			Turns:     m.world.Turn,
			LootCount: len(m.run.LootCarried()),
		})
	}
	m.scr = screenEnd
	return m
}

// appendFeed translates events into sidebar lines.
func (m *SessionModel) appendFeed(events []engine.Event) {
	for _, ev := range events {
		if line := m.describeEvent(ev); line != "" {
			m.feed = pushLine(m.feed, line)
		}
	}
}

func pushLine(feed []string, line string) []string {
	feed = append(feed, line)
	if len(feed) > maxLogLines {
		feed = feed[len(feed)-maxLogLines:]
	}
	return feed
}

// directionFor maps a movement key to a unit step.
func directionFor(msg tea.KeyMsg, keys GameKeyMap) (int, int, bool) {
	switch {
	case key.Matches(msg, keys.Up):
		return 0, -1, true
	case key.Matches(msg, keys.Down):
		return 0, 1, true
	case key.Matches(msg, keys.Left):
		return -1, 0, true
	case key.Matches(msg, keys.Right):
		return 1, 0, true
	}
	return 0, 0, false
}

func consumableName(kind engine.ConsumableKind) string {
	for _, c := range content.Consumables {
		if c.Kind == kind {
			return c.Name
		}
	}
	return string(kind)
}

// Run starts the Bubble Tea program for a local terminal session. A non-empty
// arch skips the menu and drops straight into a run on that map.
func Run(eng *engine.Engine, store *storage.Store, width, height int, arch engine.Archetype) error {
	model := NewSessionModel(eng, store, width, height)
	if arch != "" {
		model.startRun(arch)
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
