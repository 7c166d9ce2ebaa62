package content

import "github.com/vovakirdan/sneakout/internal/engine"

// ArchetypeInfo is the display metadata for one setting: menu copy plus the
// themed name of its currency pickup.
type ArchetypeInfo struct {
	Name          string
	Tagline       string
	CurrencyName  string
	CurrencyGlyph rune
	Intros        []string
	Endings       []string
}

// Infos maps each archetype to its display metadata.
var Infos = map[engine.Archetype]ArchetypeInfo{
	engine.ArchetypeHome: {
		Name:          "Old Family Home",
		Tagline:       "Survive the siege of well-meaning relatives.",
		CurrencyName:  "Red Envelope",
		CurrencyGlyph: '🧧',
		Intros: []string{
			"You push open the door and the smell of dumplings hits you. The relatives' concern can be overwhelming, but this will always be your harbor.",
			"The annual family gathering: part gauntlet, part warmth. Deflect the awkward questions with grace and leave with your blessings intact.",
			"The TV plays the gala, the kitchen knife drums on the board. Take a breath and smile through the interrogation. It's how they say they love you.",
		},
		Endings: []string{
			"Tired, but the envelopes are thick and the smiles were real. Worth it. Come back more often next year.",
			"However big the world gets, home has your back. Carry that warmth into the new year.",
			"Retreat is not escape. Well fed and steady, you're ready for whatever comes next.",
		},
	},
	engine.ArchetypeSchool: {
		Name:          "Dream of High School",
		Tagline:       "Worksheets, homeroom teachers, and second chances.",
		CurrencyName:  "Perfect Test Paper",
		CurrencyGlyph: '💯',
		Intros: []string{
			"Sunlight on the desks, chalk dust in the air. You're back, and this time you have answers.",
			"The homeroom teacher still watches through the back window. Face the questions with the confidence you never had.",
			"The bell rings. You are no longer that nervous kid. Speak up, and mean it.",
		},
		Endings: []string{
			"Sunset reddens the sky as you walk out the gate, papers in hand and no regrets left behind.",
			"Knowledge is power, and now you hold the key. Thank the teachers, and the kid who kept trying.",
			"The dream was short, but the fire it lit is yours to keep.",
		},
	},
	engine.ArchetypeCompany: {
		Name:          "Grind Corp HQ",
		Tagline:       "An extraction run through the open-plan office.",
		CurrencyName:  "Year-End Bonus",
		CurrencyGlyph: '💰',
		Intros: []string{
			"The tower is lit at midnight, as always. You're here to collect what your effort earned.",
			"Tasks, politics, and meetings that could have been emails. Stay calm, stay professional, and shine.",
			"Every report and every late night was a rung on the ladder. Time to climb.",
		},
		Endings: []string{
			"Laptop closed, city lights outside. Every bit of the bonus was earned.",
			"You won respect the hard way. Each step was yours.",
			"Step away from the desk and go live a little. Rest is part of the work.",
		},
	},
}

// ConsumableInfo is shop display data for one gadget.
type ConsumableInfo struct {
	Kind  engine.ConsumableKind
	Name  string
	Price int
	Desc  string
	Glyph rune
}

// Consumables lists the shop stock in display order.
var Consumables = []ConsumableInfo{
	{
		Kind:  engine.ConsumableSpray,
		Name:  "Stealth Spray",
		Price: 500,
		Desc:  "Untrackable for 5 steps after use.",
		Glyph: '🌫',
	},
	{
		Kind:  engine.ConsumableDie,
		Name:  "Gravity Die",
		Price: 500,
		Desc:  "Teleport to a free tile within 3 squares.",
		Glyph: '🎲',
	},
}
