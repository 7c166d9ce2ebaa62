package content

import (
	"fmt"

	"github.com/vovakirdan/sneakout/internal/engine"
)

// lootSpec is one authored catalog row before ids and values are assigned.
type lootSpec struct {
	name  string
	glyph rune
	story string
}

// buildLoot expands a tiered spec into catalog entries. Values follow the
// tier: legendaries are an order of magnitude above epics, commons are junk.
func buildLoot(arch engine.Archetype, prefix string, legendary, epic, rare []lootSpec) []engine.LootItem {
	var items []engine.LootItem
	add := func(tier string, rarity engine.Rarity, base, step int, specs []lootSpec) {
		for i, s := range specs {
			items = append(items, engine.LootItem{
				ID:        fmt.Sprintf("%s-%s-%d", prefix, tier, i),
				Name:      s.name,
				Story:     s.story,
				Glyph:     s.glyph,
				Value:     base + i*step,
				Rarity:    rarity,
				Archetype: arch,
			})
		}
	}
	add("leg", engine.RarityLegendary, 8000, 100, legendary)
	add("epic", engine.RarityEpic, 1000, 50, epic)
	add("rare", engine.RarityRare, 300, 20, rare)

	// commons are generated junk, cycled from a fixed pool
	commons := []lootSpec{
		{"Old Newspaper", '📰', "Yesterday's news, literally."},
		{"Empty Bottle", '🍾', "Worth a deposit somewhere."},
		{"Crumpled Paper", '🧻', "Someone's abandoned draft."},
		{"Broken Pen", '🖊', "Dried out years ago."},
		{"Rusty Nail", '🔩', "Watch your step."},
		{"Dry Leaf", '🍂', "It crunches satisfyingly."},
		{"Dusty Box", '📦', "Empty, of course."},
		{"Expired Receipt", '🧾', "The thermal print has faded."},
		{"Takeout Menu", '📜', "A shrine to past cravings."},
		{"Flyer", '📄', "Half price on something, once."},
		{"Business Card", '📇', "Name smudged beyond reading."},
		{"Paper Clip", '🖇', "Bent into modern art."},
		{"Rubber Band", '⭕', "Lost most of its snap."},
		{"Plastic Bag", '🛍', "A bag of other bags."},
		{"Paper Cup", '🥤', "One ring of dried coffee."},
		{"Bottle Cap", '🔘', "Not a winning one."},
		{"Loose Screw", '🔧', "From nothing in particular."},
		{"Old Calendar", '📅', "Stuck on a month long gone."},
		{"Frayed String", '🧵', "Too short to be useful."},
		{"Chipped Magnet", '🧲', "Barely holds itself up."},
	}
	for i := 0; i < 20; i++ {
		s := commons[i%len(commons)]
		items = append(items, engine.LootItem{
			ID:        fmt.Sprintf("%s-com-%d", prefix, i),
			Name:      s.name,
			Story:     s.story,
			Glyph:     s.glyph,
			Value:     10 + i,
			Rarity:    engine.RarityCommon,
			Archetype: arch,
		})
	}
	return items
}

func homeLoot() []engine.LootItem {
	legendary := []lootSpec{
		{"Heirloom Jade Bangle", '💍', "Sixty years on grandma's wrist. Flawless water."},
		{"Family Register", '📜', "Brittle pages holding three centuries of the clan."},
		{"War Medal", '🎖', "Grandpa's iron glory, paid for in blood."},
		{"Vintage Liquor", '🍶', "Hidden under the bed, saved for a great occasion."},
		{"Old House Deed", '🏠', "The family's roots, on paper."},
		{"Nanmu Jewelry Box", '📦', "Faint incense still rises from the grain."},
		{"Jade Cabbage", '🥬', "Palm-sized, translucent, auspicious."},
		{"Silver Dollar", '🪙', "Great-grandfather's. It hums when you blow on it."},
	}
	epic := []lootSpec{
		{"Twin-Lens Camera", '📷', "Your reflection floats in the viewfinder."},
		{"Tube Radio", '📻', "The vacuum tubes glow warm."},
		{"Treadle Sewing Machine", '🧵', "Part of mom's dowry."},
		{"Game Console", '🎮', "Endless fun, one cartridge."},
		{"Brick Phone", '📱', "The coolest kid on the block carried one."},
		{"Vinyl Player", '💽', "Old time melodies pour out."},
		{"Forever Bicycle", '🚲', "Dad's wedding carriage, technically."},
		{"Mantel Clock", '🕰', "Strikes a steady note on the hour."},
		{"Tin Flashlight", '🔦', "Two fat batteries, polished steel shell."},
		{"Enamel Basin", '🛁', "Peonies and double happiness, built to last."},
	}
	rare := []lootSpec{
		{"Feather Duster", '🧹', "The dreaded instrument of discipline."},
		{"Back Scratcher", '🥢', "The reverse end is a shoehorn."},
		{"Medicated Oil", '🧴', "Cure-all, apply anywhere."},
		{"White Rabbit Candy", '🍬', "A chewy piece of childhood."},
		{"Malt Drink Tin", '☕', "The fanciest beverage of its day."},
		{"Canned Peaches", '🥫', "Only the sick got to eat these."},
		{"Palm Fan", '🍃', "Summer nights ran on this."},
		{"Reading Glasses", '👓', "Grandpa's newspaper companion."},
		{"Cassette Tape", '📼', "Rewind it with a pencil."},
		{"Wooden Abacus", '🧮', "Clatters through the household accounts."},
	}
	return buildLoot(engine.ArchetypeHome, "h", legendary, epic, rare)
}

func schoolLoot() []engine.LootItem {
	legendary := []lootSpec{
		{"Principal's Toupee", '💇', "The school's biggest secret. Leverage."},
		{"Confiscated Handheld", '🕹', "Legend of the dean's office safe."},
		{"School Ranking Board", '🏆', "First place is always the same kid."},
		{"Retro Sneakers", '👟', "Scuffed, but a legend wore this model."},
		{"Perfect Essay Anthology", '📝', "Read aloud to the whole class, twice."},
		{"Lab Key", '🔑', "The only way into the chemistry lab."},
		{"Secret Diary", '📔', "A whole adolescence between two covers."},
		{"Amnesty Medal", '🏅', "Redeemable for one un-called parent."},
	}
	epic := []lootSpec{
		{"Love Letter Bundle", '💌', "The heartthrob's collected correspondence."},
		{"Answer Sheet", '📑', "Hard currency the night before finals."},
		{"Projector Remote", '📶', "Hold this, hold the class's attention."},
		{"Basketball Net", '🏀', "A slam dunk left this behind."},
		{"Cassette Walkman", '🎧', "One pop song, forever looping."},
		{"Electronic Dictionary", '📟', "Mostly used for the built-in games."},
		{"Comic Volume", '📖', "Read inside the desk, below sight lines."},
		{"Yearbook", '📒', "Filled margin to margin with signatures."},
		{"Broadcast Mic", '🎙', "Your voice, school-wide."},
		{"Merit Banner", '🚩', "Class honor, freshly laundered."},
	}
	rare := []lootSpec{
		{"Lucky Exam Pen", '✏', "Said to guess multiple choice correctly."},
		{"Correction Fluid", '🧴', "Also a desktop art medium."},
		{"Mock Exam Book", '📚', "The purple nightmare, all 500 pages."},
		{"Practice Papers", '📄', "Finish them all and ace anything."},
		{"English Tape", '📼', "Two voices you will never forget."},
		{"Cheat Sheet", '📃', "Microprint as an art form."},
		{"Sticky Notes", '🗒', "For passing sideways, folded twice."},
		{"Compass", '📍', "Pointy. Erasers beware."},
		{"Set Square", '📐', "Geometry, and light fencing."},
		{"Red Scarf", '🧣', "Bright as ever."},
	}
	return buildLoot(engine.ArchetypeSchool, "s", legendary, epic, rare)
}

func companyLoot() []engine.LootItem {
	legendary := []lootSpec{
		{"Company Seal", '💮', "Authority itself. Do not stamp casually."},
		{"Boss's Golf Driver", '⛳', "Only comes out for nine-figure deals."},
		{"S-Grade Review", '📈', "The office worker's highest honor."},
		{"Stock Options", '📃', "Paper today. But what if it lists?"},
		{"Core Codebase", '💻', "The company's crown jewels."},
		{"Client Rolodex", '📇', "A salesperson's lifeline."},
		{"Expense Receipts", '🧾', "Enough of them make a fortune."},
		{"The Boss's Secret", '🤫', "Know this, walk sideways through the office."},
	}
	epic := []lootSpec{
		{"Ergonomic Chair", '💺', "Guardian of the lumbar spine."},
		{"Mechanical Keyboard", '⌨', "Clackety productivity."},
		{"Coffee Gift Card", '☕', "Unlimited refills, unlimited joy."},
		{"Noise-Canceling Headphones", '🎧', "Put them on and vanish."},
		{"Dual Monitors", '🖥', "Twice the pixels, twice the output."},
		{"Standing Desk", '🪜', "Health, one button press away."},
		{"Nap Cot", '🛏', "Second home of the overtime crowd."},
		{"Neck Massager", '💆', "Undoes one sprint of damage."},
		{"Office Fern", '🪴', "Absorbs radiation, emotionally."},
		{"Espresso Machine", '☕', "Fresh ground, line out the pantry."},
	}
	rare := []lootSpec{
		{"Boss-Key Mouse", '🖱', "One click hides everything."},
		{"Nap Pillow", '💤', "Face-down sleep without the numb arm."},
		{"Hair Serum", '🧴', "Standard issue for engineers."},
		{"Goji Thermos", '🍵', "Midlife crisis, insulated."},
		{"Badge on Lanyard", '💳', "Opens every door but the boss's."},
		{"Stapler", '📎', "Jams on page two, every time."},
		{"Whiteboard Marker", '🖍', "Fuel for brainstorms."},
		{"Desk Calculator", '🧮', "For computing your overtime rate."},
		{"USB Fan", '🌀', "A personal summer breeze."},
		{"Instant Coffee", '☕', "Life support in sachet form."},
	}
	return buildLoot(engine.ArchetypeCompany, "c", legendary, epic, rare)
}

func lootCatalog() []engine.LootItem {
	var all []engine.LootItem
	all = append(all, homeLoot()...)
	all = append(all, schoolLoot()...)
	all = append(all, companyLoot()...)
	return all
}
