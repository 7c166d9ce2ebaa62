package content

import (
	"fmt"

	"github.com/vovakirdan/sneakout/internal/engine"
)

// The scenario catalog pairs per-kind prompts with shared topic hands.
// Each hand holds exactly one correct card; correctness is authored here,
// never computed at runtime.

type cardSpec struct {
	label   string
	detail  string
	correct bool
}

var topicHands = map[string][]cardSpec{
	"marriage": {
		{"Deflect with a smile", "\"I'm focusing on myself right now, but I'll let you know first!\"", true},
		{"Storm off", "Knock over a chair on the way out.", false},
		{"Overshare", "Recount every failed date in chronological order.", false},
	},
	"salary": {
		{"Stay vague", "\"Enough to get by, the industry is tough everywhere.\"", true},
		{"Name the number", "State your exact compensation, bonus included.", false},
		{"Plead poverty", "Ask to borrow money on the spot.", false},
	},
	"job": {
		{"Keep it light", "\"Busy but learning a lot. How's everyone here?\"", true},
		{"Complain hard", "A forty-minute monologue about your manager.", false},
		{"Quit on impulse", "Announce your resignation at the dinner table.", false},
	},
	"health": {
		{"Show gratitude", "\"I've been exercising! You take care of yourself too.\"", true},
		{"Dismiss it", "\"Stop nagging, I'm fine.\"", false},
		{"Catastrophize", "List every minor symptom you've ever had.", false},
	},
	"grades": {
		{"Stay modest", "\"Holding steady, still room to improve.\"", true},
		{"Brag wildly", "Compare yourself to every cousin by name.", false},
		{"Blame the teacher", "\"The grading this year was simply unfair.\"", false},
	},
	"life": {
		{"Share something warm", "Tell a small funny story from your week.", true},
		{"Check your phone", "Scroll mid-sentence. They notice.", false},
		{"One-word answers", "\"Fine.\" \"Yes.\" \"Dunno.\"", false},
	},
	"exam": {
		{"Walk through the solution", "Show your steps calmly, one by one.", true},
		{"Guess loudly", "Shout an answer before the question ends.", false},
		{"Eat the evidence", "Attempt to swallow the cheat sheet.", false},
	},
	"discipline": {
		{"Own it", "\"You're right, it won't happen again.\"", true},
		{"Rat out a friend", "Point at your deskmate immediately.", false},
		{"Forge a note", "Produce a suspiciously fresh parental signature.", false},
	},
	"future": {
		{"Show a plan", "Name a goal and one concrete step toward it.", true},
		{"Shrug", "\"Whatever happens, happens.\"", false},
		{"Promise the moon", "Commit to a Nobel prize by thirty.", false},
	},
	"kpi": {
		{"Bring the data", "Walk through the numbers and what you'll change.", true},
		{"Pad the report", "Triple every metric and hope.", false},
		{"Go silent", "Stare at the table until the meeting ends.", false},
	},
	"deadline": {
		{"Negotiate scope", "\"We can ship the core on time and follow up with the rest.\"", true},
		{"Promise everything", "\"Tomorrow. All of it. No problem.\"", false},
		{"Disappear", "Go dark on every channel until it blows over.", false},
	},
	"overtime": {
		{"Set a boundary", "\"I'll finish the critical piece, then I'm heading out.\"", true},
		{"Fake enthusiasm", "\"Overtime is a gift!\" Your eye twitches.", false},
		{"Sleep at your desk", "Commit to the office cot full-time.", false},
	},
	"blame": {
		{"Stick to facts", "Lay out the timeline without pointing fingers.", true},
		{"Deflect instantly", "\"That was the intern's branch.\"", false},
		{"Absorb everything", "Apologize for things that predate your hire.", false},
	},
}

type promptSpec struct {
	topic  string
	prompt string
}

var kindPrompts = map[engine.AntagonistKind][]promptSpec{
	KindDad: {
		{"job", "\"So. Work. Sit down, tell me everything.\""},
		{"life", "\"You never call. Your mother worries. I don't, but she does.\""},
		{"future", "\"When I was your age I already had a plan. Do you?\""},
	},
	KindMom: {
		{"health", "\"You've lost weight! Are you eating? You're not eating.\""},
		{"marriage", "\"Your classmate just got married. Just saying.\""},
		{"life", "\"Tell me about your week. The real version.\""},
	},
	KindGrandma: {
		{"marriage", "\"I knitted a scarf for your future spouse. Where are they?\""},
		{"health", "\"You look pale. Have some more. And some more.\""},
		{"life", "\"Sit with me. Tell your grandma a story.\""},
	},
	KindAunt: {
		{"salary", "\"A little bird told me your company pays well. How well?\""},
		{"marriage", "\"I know a wonderful girl. Doctor. Shall I call her mother?\""},
		{"grades", "\"My son just won another competition. How about you?\""},
	},
	KindUncle: {
		{"job", "\"Your industry, is it stable? I read an article.\""},
		{"salary", "\"Between us men, what's the annual package?\""},
		{"future", "\"Have you considered the civil service exam?\""},
	},
	KindCousin: {
		{"life", "\"Duel me in the new game. Loser does dishes.\""},
		{"grades", "\"Help me with homework or I'll tell everyone your nickname.\""},
	},
	KindKid: {
		{"life", "\"Play with me or I scream. Counting down. Three. Two.\""},
		{"grades", "\"My teacher says I'm gifted. Are YOU gifted?\""},
	},
	KindMathTeach: {
		{"exam", "\"To the board. Prove it. The class is waiting.\""},
		{"grades", "\"Your last test. Explain question seven to me.\""},
		{"discipline", "\"Whose phone just buzzed? This is a classroom.\""},
	},
	KindEngTeach: {
		{"exam", "\"Recite the text from yesterday. From the top.\""},
		{"grades", "\"Your essay was... creative. Let's discuss the grammar.\""},
		{"discipline", "\"Passing notes? Read it aloud for everyone.\""},
	},
	KindPrincipal: {
		{"discipline", "\"Running in the hallway. My office. Now.\""},
		{"future", "\"This school produces leaders. What will you produce?\""},
		{"exam", "\"The mock exam results cross my desk, you know.\""},
	},
	KindClassRep: {
		{"grades", "\"I'm collecting homework. Yours is... where, exactly?\""},
		{"discipline", "\"Talking during self-study goes in the log. Rules are rules.\""},
	},
	KindBully: {
		{"discipline", "\"Nice lunch. Be a shame if something happened to it.\""},
		{"life", "\"You looked at me funny. Explain yourself.\""},
	},
	KindBoss: {
		{"kpi", "\"Q3 numbers. Walk me through them. Slowly.\""},
		{"overtime", "\"The team is sprinting this weekend. You're a team player, yes?\""},
		{"future", "\"Where do you see yourself in five years? Here, I hope.\""},
	},
	KindClient: {
		{"deadline", "\"I need it Friday. This Friday. The one in two days.\""},
		{"blame", "\"The demo crashed in front of my board. Explain.\""},
		{"kpi", "\"Your competitor quoted half the price. Convince me.\""},
	},
	KindPM: {
		{"deadline", "\"Tiny change. Five minutes of work, right? Right?\""},
		{"blame", "\"The feature flopped. The spec was perfect, so...\""},
		{"kpi", "\"Can we make the metric go up by Thursday?\""},
	},
	KindSlacker: {
		{"overtime", "\"Cover for me at standup? I'll owe you a bubble tea.\""},
		{"blame", "\"If anyone asks, that commit was always broken.\""},
	},
	KindTryhard: {
		{"overtime", "\"I stayed till 3 a.m. How late did YOU stay?\""},
		{"kpi", "\"I've already exceeded my targets. Want to see the dashboard?\""},
	},
}

func scenarios() []engine.Scenario {
	var out []engine.Scenario
	for _, kind := range scenarioKinds {
		for i, ps := range kindPrompts[kind] {
			id := fmt.Sprintf("%s-%d", kind, i)
			hand := topicHands[ps.topic]
			cards := make([]engine.Card, len(hand))
			for j, c := range hand {
				cards[j] = engine.Card{
					ID:      fmt.Sprintf("%s-c%d", id, j),
					Label:   c.label,
					Detail:  c.detail,
					Correct: c.correct,
				}
			}
			out = append(out, engine.Scenario{
				ID:     id,
				Kind:   kind,
				Topic:  ps.topic,
				Prompt: ps.prompt,
				Cards:  cards,
			})
		}
	}
	return out
}

// scenarioKinds fixes the catalog order so generation is reproducible.
var scenarioKinds = []engine.AntagonistKind{
	KindDad, KindMom, KindGrandma, KindAunt, KindUncle, KindCousin, KindKid,
	KindMathTeach, KindEngTeach, KindPrincipal, KindClassRep, KindBully,
	KindBoss, KindClient, KindPM, KindSlacker, KindTryhard,
}
