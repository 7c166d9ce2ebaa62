package engine_test

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/sneakout/internal/engine"
)

// battleContent builds a content table with enough scenarios per kind to
// play a battle to the bitter end without recycling.
func battleContent() *engine.Content {
	rosters := map[engine.Archetype][]engine.AntagonistType{
		engine.ArchetypeHome:    {{Kind: "dad", Name: "Dad", Aggression: 1.0}},
		engine.ArchetypeSchool:  {{Kind: "math_teacher", Name: "Teacher", Aggression: 1.0}},
		engine.ArchetypeCompany: {{Kind: "boss", Name: "Boss", Aggression: 1.0}},
	}
	var scenarios []engine.Scenario
	for _, kind := range []engine.AntagonistKind{"dad", "math_teacher", "boss"} {
		for i := 0; i < 8; i++ {
			id := fmt.Sprintf("%s-%d", kind, i)
			scenarios = append(scenarios, engine.Scenario{
				ID:     id,
				Kind:   kind,
				Prompt: "pop quiz",
				Cards: []engine.Card{
					{ID: id + "-good", Label: "right answer", Correct: true},
					{ID: id + "-bad", Label: "wrong answer"},
				},
			})
		}
	}
	return &engine.Content{Rosters: rosters, Scenarios: scenarios, Payouts: []int{10}}
}

// startTestBattle walks the player into an adjacent foe on an all-floor map.
func startTestBattle(t *testing.T, eng *engine.Engine, arch engine.Archetype, kind engine.AntagonistKind) (*engine.World, *engine.RunState, *engine.BattleState) {
	t.Helper()
	w := openWorld(9, 9, 4, 4)
	w.Archetype = arch
	foe := addFoe(w, "foe-0", 5, 4)
	foe.Antagonist = kind
	rs := eng.NewRunState()
	bs, _ := eng.ApplyPlayerMove(w, rs, 1, 0)
	if bs == nil {
		t.Fatal("expected a battle to start")
	}
	return w, rs, bs
}

// answer plays the correct or wrong card of the current scenario.
func answer(t *testing.T, eng *engine.Engine, rs *engine.RunState, bs *engine.BattleState, correct bool) []engine.Event {
	t.Helper()
	for _, c := range bs.Scenario.Cards {
		if c.Correct == correct {
			return eng.SubmitBattleChoice(rs, bs, c.ID)
		}
	}
	t.Fatalf("scenario %q has no card with correct=%v", bs.Scenario.ID, correct)
	return nil
}

func TestHomeBattleWinByTally(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 11)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeHome, "dad")

	for i := 0; i < 2; i++ {
		events := answer(t, eng, rs, bs, true)
		if !hasEvent(events, engine.EvRoundAdvanced) {
			t.Fatalf("round %d: expected EvRoundAdvanced, got %v", i+1, events)
		}
	}
	events := answer(t, eng, rs, bs, true)
	if !hasEvent(events, engine.EvBattleWon) {
		t.Fatalf("expected EvBattleWon on third correct card, got %v", events)
	}
	if bs.Result != engine.ResultWin {
		t.Errorf("result = %v, want win", bs.Result)
	}
}

func TestHomeBattleLossByTally(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 12)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeHome, "dad")

	// Mixed rounds: wrong answers race to the threshold independently.
	answer(t, eng, rs, bs, true)
	answer(t, eng, rs, bs, false)
	answer(t, eng, rs, bs, false)
	events := answer(t, eng, rs, bs, false)
	if !hasEvent(events, engine.EvBattleLost) {
		t.Fatalf("expected EvBattleLost, got %v", events)
	}
	if bs.PlayerWins != 1 || bs.AntagonistWins != 3 {
		t.Errorf("tallies %d/%d, want 1/3", bs.PlayerWins, bs.AntagonistWins)
	}
}

func TestSchoolExamLadder(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 13)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeSchool, "math_teacher")

	wantScores := []int{28, 59, 100}
	for i, want := range wantScores {
		events := answer(t, eng, rs, bs, true)
		if bs.ExamScore != want {
			t.Fatalf("after %d correct answers score = %d, want %d", i+1, bs.ExamScore, want)
		}
		if want == 100 {
			if !hasEvent(events, engine.EvBattleWon) {
				t.Fatalf("expected EvBattleWon at full score, got %v", events)
			}
		} else if !hasEvent(events, engine.EvRoundAdvanced) {
			t.Fatalf("expected EvRoundAdvanced at score %d, got %v", want, events)
		}
	}
}

func TestSchoolExamRoundCap(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 14)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeSchool, "math_teacher")

	// Wrong answers never move the score; the fifth round is the last.
	for i := 0; i < 4; i++ {
		events := answer(t, eng, rs, bs, false)
		if !hasEvent(events, engine.EvRoundAdvanced) {
			t.Fatalf("round %d: expected EvRoundAdvanced, got %v", i+1, events)
		}
	}
	events := answer(t, eng, rs, bs, false)
	if !hasEvent(events, engine.EvBattleLost) {
		t.Fatalf("expected EvBattleLost at the round cap, got %v", events)
	}
	if bs.ExamScore != 0 {
		t.Errorf("score = %d, want 0", bs.ExamScore)
	}
}

func TestSchoolExamLateWinBeatsRoundCap(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 15)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeSchool, "math_teacher")

	// Two misses, then three in a row: full score lands exactly on the
	// fifth round and still wins.
	answer(t, eng, rs, bs, false)
	answer(t, eng, rs, bs, false)
	answer(t, eng, rs, bs, true)
	answer(t, eng, rs, bs, true)
	events := answer(t, eng, rs, bs, true)
	if !hasEvent(events, engine.EvBattleWon) {
		t.Fatalf("expected EvBattleWon, got %v", events)
	}
}

func TestCompanyBattleResolvesByTally(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 16)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeCompany, "boss")
	if bs.Meter != 50 {
		t.Fatalf("meter starts at %d, want 50", bs.Meter)
	}

	// The meter swings with each answer but only the tally resolves.
	answer(t, eng, rs, bs, true)
	if bs.Meter != 60 {
		t.Fatalf("meter = %d after one correct, want 60", bs.Meter)
	}
	answer(t, eng, rs, bs, false)
	if bs.Meter != 50 {
		t.Fatalf("meter = %d after a miss, want 50", bs.Meter)
	}

	answer(t, eng, rs, bs, true)
	events := answer(t, eng, rs, bs, true)
	if !hasEvent(events, engine.EvBattleWon) {
		t.Fatalf("expected EvBattleWon at three correct answers, got %v", events)
	}
	if bs.PlayerWins != 3 || bs.Meter != 70 {
		t.Errorf("wins %d meter %d, want 3 and 70", bs.PlayerWins, bs.Meter)
	}
}

func TestCompanyBattleLossByTally(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 17)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeCompany, "boss")

	var events []engine.Event
	for i := 0; i < 3; i++ {
		events = answer(t, eng, rs, bs, false)
	}
	if !hasEvent(events, engine.EvBattleLost) {
		t.Fatalf("expected EvBattleLost at three misses, got %v", events)
	}
	if bs.Meter != 20 {
		t.Errorf("meter = %d, want 20", bs.Meter)
	}
}

func TestSubmitIgnoresBadInput(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 18)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeHome, "dad")

	if events := eng.SubmitBattleChoice(rs, bs, "no-such-card"); events != nil {
		t.Errorf("unknown card gave %v, want nil", events)
	}
	if bs.PlayerWins != 0 || bs.AntagonistWins != 0 {
		t.Error("unknown card should not change tallies")
	}

	for i := 0; i < 3; i++ {
		answer(t, eng, rs, bs, true)
	}
	if bs.Result != engine.ResultWin {
		t.Fatalf("result = %v, want win", bs.Result)
	}
	if events := eng.SubmitBattleChoice(rs, bs, bs.Scenario.Cards[0].ID); events != nil {
		t.Errorf("post-resolution choice gave %v, want nil", events)
	}
}

func TestScenariosNotRepeatedWithinRun(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 19)
	_, rs, bs := startTestBattle(t, eng, engine.ArchetypeSchool, "math_teacher")

	seen := map[string]bool{bs.Scenario.ID: true}
	for i := 0; i < 4; i++ {
		answer(t, eng, rs, bs, false)
		if bs.Result != engine.ResultPending {
			break
		}
		if seen[bs.Scenario.ID] {
			t.Fatalf("scenario %q repeated within the run", bs.Scenario.ID)
		}
		seen[bs.Scenario.ID] = true
	}
}

func TestBattleWinRetiresFoe(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 20)
	w, rs, bs := startTestBattle(t, eng, engine.ArchetypeHome, "dad")

	for i := 0; i < 3; i++ {
		answer(t, eng, rs, bs, true)
	}
	events := eng.AcknowledgeBattleResult(w, rs, bs)
	if len(events) != 0 {
		t.Errorf("win aftermath gave %v, want nothing", events)
	}
	foe := w.ByID("foe-0")
	if foe == nil || !foe.Dead {
		t.Fatal("beaten foe should be retired")
	}
	if w.EntityAt(foe.Pos.X, foe.Pos.Y) == foe {
		t.Error("dead foe should not occupy its tile")
	}
	if rs.Sanity != eng.Params().MaxSanity {
		t.Errorf("sanity = %d, want full %d", rs.Sanity, eng.Params().MaxSanity)
	}
}

func TestBattleLossCostsSanityAndKnocksBack(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 21)
	w, rs, bs := startTestBattle(t, eng, engine.ArchetypeHome, "dad")

	for i := 0; i < 3; i++ {
		answer(t, eng, rs, bs, false)
	}
	before := w.Player().Pos
	events := eng.AcknowledgeBattleResult(w, rs, bs)
	if rs.Sanity != eng.Params().MaxSanity-1 {
		t.Errorf("sanity = %d, want %d", rs.Sanity, eng.Params().MaxSanity-1)
	}
	if !hasEvent(events, engine.EvKnockback) {
		t.Fatalf("expected EvKnockback on an open map, got %v", events)
	}
	after := w.Player().Pos
	if after == before {
		t.Error("knockback did not move the player")
	}
	r := eng.Params().KnockbackRadius
	if dx, dy := after.X-before.X, after.Y-before.Y; dx < -r || dx > r || dy < -r || dy > r {
		t.Errorf("knockback landed at %v, outside radius %d of %v", after, r, before)
	}
	if rs.Phase != engine.PhaseActive {
		t.Errorf("phase = %v, want active", rs.Phase)
	}
}

func TestSanityDepletionEndsRun(t *testing.T) {
	eng := engine.New(battleContent(), engine.DefaultParams(), 22)
	w, rs, bs := startTestBattle(t, eng, engine.ArchetypeHome, "dad")
	rs.Sanity = 1

	for i := 0; i < 3; i++ {
		answer(t, eng, rs, bs, false)
	}
	events := eng.AcknowledgeBattleResult(w, rs, bs)
	if !hasEvent(events, engine.EvGameOver) {
		t.Fatalf("expected EvGameOver, got %v", events)
	}
	if rs.Phase != engine.PhaseGameOver {
		t.Errorf("phase = %v, want game over", rs.Phase)
	}
	if battle, moveEvents := eng.ApplyPlayerMove(w, rs, 1, 0); battle != nil || moveEvents != nil {
		t.Error("moves should be rejected after game over")
	}
}
