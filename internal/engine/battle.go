package engine

// BattleResult is the outcome of a battle, pending until one side resolves.
type BattleResult int

const (
	ResultPending BattleResult = iota
	ResultWin
	ResultLose
)

func (r BattleResult) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	default:
		return "pending"
	}
}

// BattleState is one fight in progress. The ruleset that resolves it depends
// on the world archetype: home and company battles are a race to a fixed
// tally (company additionally tracks a mood meter for display), school
// battles climb an exam score ladder under a round cap.
type BattleState struct {
	AntagonistID   string
	Kind           AntagonistKind
	Archetype      Archetype
	Round          int
	PlayerWins     int
	AntagonistWins int
	Scenario       Scenario
	Result         BattleResult
	ExamScore      int
	Meter          int
}

// ConfirmEncounter promotes a pending spotting into a battle. It returns
// (nil, nil) when nothing is pending.
func (e *Engine) ConfirmEncounter(w *World, rs *RunState) (*BattleState, []Event) {
	if w.Pending == "" {
		return nil, nil
	}
	foe := w.ByID(w.Pending)
	w.Pending = ""
	if foe == nil || !foe.Alive() {
		return nil, nil
	}
	return e.startBattle(w, rs, foe)
}

func (e *Engine) startBattle(w *World, rs *RunState, foe *Entity) (*BattleState, []Event) {
	bs := &BattleState{
		AntagonistID: foe.ID,
		Kind:         foe.Antagonist,
		Archetype:    w.Archetype,
		Round:        1,
	}
	if w.Archetype == ArchetypeCompany {
		bs.Meter = e.params.MeterStart
	}
	bs.Scenario = e.drawScenario(rs, foe.Antagonist)
	return bs, []Event{{Kind: EvBattleStarted, EntityID: foe.ID}}
}

// drawScenario picks an unseen scenario for the antagonist kind. When the
// run has seen them all, the kind's full pool is recycled.
func (e *Engine) drawScenario(rs *RunState, kind AntagonistKind) Scenario {
	var fresh, all []Scenario
	for _, s := range e.content.Scenarios {
		if s.Kind != kind {
			continue
		}
		all = append(all, s)
		if !rs.UsedScenarios[s.ID] {
			fresh = append(fresh, s)
		}
	}
	pool := fresh
	if len(pool) == 0 {
		pool = all
	}
	if len(pool) == 0 {
		return Scenario{}
	}
	pick := pool[e.rng.Intn(len(pool))]
	rs.UsedScenarios[pick.ID] = true
	return pick
}

// SubmitBattleChoice plays one card. Choices after resolution, and card ids
// not in the current scenario, are ignored. An unresolved battle advances to
// the next round with a fresh scenario.
func (e *Engine) SubmitBattleChoice(rs *RunState, bs *BattleState, cardID string) []Event {
	if bs.Result != ResultPending {
		return nil
	}
	var card *Card
	for i := range bs.Scenario.Cards {
		if bs.Scenario.Cards[i].ID == cardID {
			card = &bs.Scenario.Cards[i]
			break
		}
	}
	if card == nil {
		return nil
	}

	if card.Correct {
		bs.PlayerWins++
	} else {
		bs.AntagonistWins++
	}
	e.applyRuleset(bs, card.Correct)

	switch bs.Result {
	case ResultWin:
		return []Event{{Kind: EvBattleWon, EntityID: bs.AntagonistID}}
	case ResultLose:
		return []Event{{Kind: EvBattleLost, EntityID: bs.AntagonistID}}
	default:
		bs.Round++
		bs.Scenario = e.drawScenario(rs, bs.Kind)
		return []Event{{Kind: EvRoundAdvanced}}
	}
}

func (e *Engine) applyRuleset(bs *BattleState, correct bool) {
	switch bs.Archetype {
	case ArchetypeSchool:
		if correct {
			idx := min(bs.PlayerWins, len(e.params.ExamCheckpoints)) - 1
			bs.ExamScore = e.params.ExamCheckpoints[idx]
		}
		switch {
		case bs.ExamScore >= e.params.ExamCheckpoints[len(e.params.ExamCheckpoints)-1]:
			bs.Result = ResultWin
		case bs.Round >= e.params.ExamRoundCap:
			bs.Result = ResultLose
		}
	case ArchetypeCompany:
		// The mood meter tracks how the exchange is going for display; the
		// tally decides the outcome.
		if correct {
			bs.Meter += e.params.MeterStep
		} else {
			bs.Meter -= e.params.MeterStep
		}
		if bs.Meter > e.params.MeterMax {
			bs.Meter = e.params.MeterMax
		}
		if bs.Meter < 0 {
			bs.Meter = 0
		}
		fallthrough
	default:
		switch {
		case bs.PlayerWins >= e.params.WinThreshold:
			bs.Result = ResultWin
		case bs.AntagonistWins >= e.params.WinThreshold:
			bs.Result = ResultLose
		}
	}
}

// AcknowledgeBattleResult applies a resolved battle's aftermath to the world.
// A win retires the antagonist. A loss costs one sanity and knocks the
// player back to a random nearby tile; running out of sanity ends the run.
func (e *Engine) AcknowledgeBattleResult(w *World, rs *RunState, bs *BattleState) []Event {
	foe := w.ByID(bs.AntagonistID)
	switch bs.Result {
	case ResultWin:
		if foe != nil {
			foe.Dead = true
		}
		return nil
	case ResultLose:
		rs.Sanity--
		var events []Event
		if pos, ok := e.knockbackTile(w); ok {
			w.Player().Pos = pos
			events = append(events, Event{Kind: EvKnockback, EntityID: "player"})
		}
		if rs.Sanity <= 0 {
			rs.Phase = PhaseGameOver
			events = append(events, Event{Kind: EvGameOver})
		}
		return events
	default:
		return nil
	}
}

// knockbackTile samples a free floor tile within the knockback radius.
func (e *Engine) knockbackTile(w *World) (Position, bool) {
	player := w.Player()
	r := e.params.KnockbackRadius
	for attempt := 0; attempt < e.params.KnockbackAttempts; attempt++ {
		dx := e.rng.Intn(2*r+1) - r
		dy := e.rng.Intn(2*r+1) - r
		if dx == 0 && dy == 0 {
			continue
		}
		nx, ny := player.Pos.X+dx, player.Pos.Y+dy
		if e.freeFloor(w, nx, ny) {
			return Position{nx, ny}, true
		}
	}
	return Position{}, false
}
