package content

import "github.com/vovakirdan/sneakout/internal/engine"

// Antagonist kinds, shared with the scenario catalog.
const (
	KindDad       engine.AntagonistKind = "dad"
	KindMom       engine.AntagonistKind = "mom"
	KindGrandma   engine.AntagonistKind = "grandma"
	KindAunt      engine.AntagonistKind = "aunt"
	KindUncle     engine.AntagonistKind = "uncle"
	KindCousin    engine.AntagonistKind = "cousin"
	KindKid       engine.AntagonistKind = "kid"
	KindMathTeach engine.AntagonistKind = "math_teacher"
	KindEngTeach  engine.AntagonistKind = "english_teacher"
	KindPrincipal engine.AntagonistKind = "principal"
	KindClassRep  engine.AntagonistKind = "class_rep"
	KindBully     engine.AntagonistKind = "bully"
	KindBoss      engine.AntagonistKind = "boss"
	KindClient    engine.AntagonistKind = "client"
	KindPM        engine.AntagonistKind = "product_manager"
	KindSlacker   engine.AntagonistKind = "slacker"
	KindTryhard   engine.AntagonistKind = "tryhard"
)

func rosters() map[engine.Archetype][]engine.AntagonistType {
	return map[engine.Archetype][]engine.AntagonistType{
		engine.ArchetypeHome: {
			{Kind: KindDad, Name: "Dad", Glyph: '👨', Aggression: 0.6},
			{Kind: KindMom, Name: "Mom", Glyph: '👩', Aggression: 0.7},
			{Kind: KindGrandma, Name: "Grandma", Glyph: '👵', Aggression: 0.8},
			{Kind: KindAunt, Name: "Auntie", Glyph: '🙎', Aggression: 0.75},
			{Kind: KindUncle, Name: "Uncle", Glyph: '🕴', Aggression: 0.6},
			{Kind: KindCousin, Name: "Cousin", Glyph: '🧢', Aggression: 0.3},
			{Kind: KindKid, Name: "Wild Kid", Glyph: '😈', Aggression: 0.2},
		},
		engine.ArchetypeSchool: {
			{Kind: KindMathTeach, Name: "Math Teacher", Glyph: '📐', Aggression: 0.8},
			{Kind: KindEngTeach, Name: "English Teacher", Glyph: '📖', Aggression: 0.7},
			{Kind: KindPrincipal, Name: "Principal", Glyph: '👴', Aggression: 0.9},
			{Kind: KindClassRep, Name: "Class Rep", Glyph: '🤓', Aggression: 0.4},
			{Kind: KindBully, Name: "Bully", Glyph: '👱', Aggression: 0.8},
		},
		engine.ArchetypeCompany: {
			{Kind: KindBoss, Name: "The Boss", Glyph: '🦁', Aggression: 0.9},
			{Kind: KindClient, Name: "Picky Client", Glyph: '🤴', Aggression: 0.95},
			{Kind: KindPM, Name: "Product Manager", Glyph: '🐶', Aggression: 0.8},
			{Kind: KindSlacker, Name: "Slacker", Glyph: '🐢', Aggression: 0.3},
			{Kind: KindTryhard, Name: "Try-hard", Glyph: '🐍', Aggression: 0.6},
		},
	}
}
