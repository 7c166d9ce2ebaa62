package content

import "github.com/vovakirdan/sneakout/internal/engine"

// Flavor lines shown when the player inspects a piece of furniture.
func quotes() map[engine.Archetype]map[engine.TileKind][]string {
	return map[engine.Archetype]map[engine.TileKind][]string{
		engine.ArchetypeHome: {
			engine.TileTV: {
				"The holiday gala is on. This year every act is a robot.",
				"That period drama again. The emperor has died 108 times now.",
				"Ad break: 'This season, gift only graphics cards.'",
				"The late-night rerun reminds you the holiday is almost spent.",
			},
			engine.TileSofa: {
				"A sofa that swallows people. Sit down and you never get up.",
				"There's fifty cents wedged in the cushions. A fortune!",
				"If you slump fast enough, your worries can't catch you.",
				"This is the cat's throne. You wouldn't dare.",
			},
			engine.TileTable: {
				"The table is buried in mandarin oranges.",
				"Store-bought wrappers, hand-chopped filling. That's tradition.",
				"This table has hosted three generations of family gossip.",
				"Leftovers reheated twice still count as a feast.",
			},
			engine.TileBed: {
				"It isn't the blanket pinning you down, it's gravity.",
				"Everything exists in dreams. Sleep, and you're rich.",
				"The blanket smells of sunshine. Mostly.",
				"The nightstand hides your childhood diary. All of it embarrassing.",
			},
			engine.TilePlant: {
				"The money tree is going bald, much like your wallet.",
				"The only listener in this house, even if it understands nothing.",
				"Plastic flowers are still flowers. Love that never wilts.",
				"Stop watering it. It's a cactus, not a lily.",
			},
			engine.TileDesk: {
				"A desk for the guest who never studies. Suspiciously clean.",
				"The drawer is locked. The key is in the other drawer. Also locked.",
				"Someone wrote 'study hard' on a sticky note in 2019.",
			},
		},
		engine.ArchetypeSchool: {
			engine.TileDesk: {
				"Someone carved 'EARLY' into the desktop. A classic.",
				"A wuxia novel and half a bag of snacks hide in the drawer.",
				"Worksheets stacked into a mountain. You live on that mountain.",
				"The deskmate's border line. Crossing it costs one eraser.",
			},
			engine.TileTable: {
				"The lectern is the teacher's stage. Chalk dust is the fog machine.",
				"From up here you can see exactly who is eating in class.",
				"The AV cabinet under the lectern never locks properly.",
			},
			engine.TilePlant: {
				"The pothos is the only living thing in class. Besides the students.",
				"It has absorbed so much chalk dust it may have evolved.",
				"The kid on watering duty graduated. It learned to drink alone.",
			},
		},
		engine.ArchetypeCompany: {
			engine.TileDesk: {
				"A sticky note on the monitor reads 'stay calm'.",
				"The crumbs in this keyboard log every overtime shift.",
				"The screensaver says 'get rich'. Very devout.",
				"Type loudly enough and the boss assumes you're working.",
			},
			engine.TileSofa: {
				"The nap spot. First come, first served.",
				"Everyone who sleeps here dreams of layoffs.",
				"Sitting here you feel like the chairman. You are not.",
				"The coffee stains are its service medals.",
			},
			engine.TilePlant: {
				"The cactus claims it has absorbed too much radiation.",
				"Admin bought it. It's plastic. Stop watering it.",
				"It has overheard too many company secrets.",
			},
			engine.TileTable: {
				"The meeting table produces slide decks and hot air.",
				"The projector cable never fits on the first try.",
				"Meetings here run mostly on telepathy.",
			},
		},
	}
}
