package testutils

import (
	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/entities"
)

// NewTestContext builds a generation context over the test corpus with the
// given source books enabled
func NewTestContext(books ...string) *engine.Context {
	return engine.NewContext(NewTestCorpus(), corpus.NewBooks(books...), entities.NewOptions())
}

// NewTestCorpus builds a small corpus that exercises every resolver path:
// book gates, subrace sorting, derived characteristics, bespoke name rules,
// NPC pools, and life-event pools.
func NewTestCorpus() *corpus.Set {
	return &corpus.Set{
		Races:       testRaces(),
		Classes:     testClasses(),
		Backgrounds: testBackgrounds(),
		Names:       testNames(),
		Life:        testLife(),
		NPC:         testNPC(),
		Misc:        testMisc(),
		Quick:       testQuick(),
	}
}

func characteristics(minAge, maxAge, baseHeight, baseWeight string, heightMod, weightMod string) *corpus.Node {
	return corpus.Map(
		corpus.Pair{Key: "minage", Value: corpus.Scalar(minAge)},
		corpus.Pair{Key: "maxage", Value: corpus.Scalar(maxAge)},
		corpus.Pair{Key: "baseheight", Value: corpus.Scalar(baseHeight)},
		corpus.Pair{Key: "heightmod", Value: corpus.Scalar(heightMod)},
		corpus.Pair{Key: "baseweight", Value: corpus.Scalar(baseWeight)},
		corpus.Pair{Key: "weightmod", Value: corpus.Scalar(weightMod)},
	).WithSpecial("characteristics")
}

func simpleRace(book, description string) *corpus.Node {
	return corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar(description)},
		corpus.Pair{Key: "Physical Characteristics", Value: characteristics("18", "80", "58", "110", "2d10", "2d4")},
	).WithSpecial("book-" + book)
}

func testRaces() *corpus.Node {
	human := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("The most adaptable of the common folk.")},
		corpus.Pair{Key: "Physical Characteristics", Value: characteristics("18", "80", "56", "110", "2d10", "2d4")},
		corpus.Pair{Key: "Hair", Value: corpus.Map(
			corpus.Pair{Key: "Male", Value: corpus.ScalarList("Short black hair", "A shaved head")},
			corpus.Pair{Key: "Female", Value: corpus.ScalarList("Long braided hair", "A loose dark mane")},
		).WithSpecial("gendersort")},
	).WithSpecial("book-phb", "humanethnicity")

	dwarf := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("Stout folk of mountain and forge.")},
		corpus.Pair{Key: "Subraces and Variants", Value: corpus.Map(
			corpus.Pair{Key: "Subrace", Value: corpus.Map(
				corpus.Pair{Key: "book-phb", Value: corpus.ScalarList("Hill Dwarf", "Mountain Dwarf")},
				corpus.Pair{Key: "book-mtof", Value: corpus.ScalarList("Duergar")},
			)},
			corpus.Pair{Key: "Physical Characteristics", Value: corpus.Map(
				corpus.Pair{Key: "Hill Dwarf", Value: characteristics("50", "350", "44", "115", "2d4", "2d6")},
				corpus.Pair{Key: "Mountain Dwarf", Value: characteristics("50", "350", "48", "130", "2d4", "2d6")},
				corpus.Pair{Key: "Duergar", Value: characteristics("50", "350", "44", "115", "2d4", "2d6")},
			)},
		).WithSpecial("subracesort")},
	).WithSpecial("book-phb")

	tiefling := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("Mortals who carry an infernal bloodline.")},
		corpus.Pair{Key: "Physical Characteristics", Value: characteristics("18", "90", "57", "110", "2d8", "2d4")},
		corpus.Pair{Key: "Appearance", Value: corpus.Map().WithSpecial("tieflingappearance")},
		corpus.Pair{Key: "Variant", Value: corpus.Map(
			corpus.Pair{Key: "Variant", Value: corpus.ScalarList("Devil's Tongue", "Hellfire", "Winged")},
		).WithSpecial("tieflingvarianttype")},
	).WithSpecial("book-phb")

	dragonborn := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("Proud draconic humanoids.")},
		corpus.Pair{Key: "Physical Characteristics", Value: characteristics("15", "70", "66", "175", "2d8", "2d6")},
		corpus.Pair{Key: "Variant Type", Value: corpus.Map().WithSpecial("dragonbornvarianttype")},
	).WithSpecial("book-phb")

	bugbear := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("Hulking goblinoids born for ambush.")},
		corpus.Pair{Key: "Physical Characteristics", Value: characteristics("14", "70", "72", "200", "2d12", "2d6")},
		corpus.Pair{Key: "Origin", Value: corpus.Map().WithSpecial("monstrousorigin")},
	).WithSpecial("book-vgm")

	markOfMaking := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("Humans who bear the Mark of Making.")},
		corpus.Pair{Key: "Physical Characteristics", Value: characteristics("18", "80", "56", "110", "2d10", "2d4")},
	).WithSpecial("book-ebr", "dragonmarkvariant")

	warforged := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("Constructed soldiers awakened to personhood.")},
		corpus.Pair{Key: "Physical Characteristics", Value: characteristics("2", "30", "70", "270", "1d6", "1d4")},
	).WithSpecial("book-ebr")

	return corpus.Map(
		corpus.Pair{Key: "Human", Value: human},
		corpus.Pair{Key: "Dwarf", Value: dwarf},
		corpus.Pair{Key: "Elf", Value: simpleRace("phb", "Graceful and long-lived.")},
		corpus.Pair{Key: "Halfling", Value: simpleRace("phb", "Small, cheerful, and lucky.")},
		corpus.Pair{Key: "Gnome", Value: simpleRace("phb", "Small inventors and burrow dwellers.")},
		corpus.Pair{Key: "Half-Elf", Value: corpus.Map(
			corpus.Pair{Key: "Description", Value: corpus.Scalar("Children of two worlds.")},
			corpus.Pair{Key: "Physical Characteristics", Value: characteristics("18", "180", "57", "110", "2d8", "2d4")},
		).WithSpecial("book-phb", "halfethnicity")},
		corpus.Pair{Key: "Half-Orc", Value: corpus.Map(
			corpus.Pair{Key: "Description", Value: corpus.Scalar("Caught between two peoples.")},
			corpus.Pair{Key: "Physical Characteristics", Value: characteristics("14", "75", "58", "140", "2d10", "2d6")},
		).WithSpecial("book-phb", "halfethnicity")},
		corpus.Pair{Key: "Tiefling", Value: tiefling},
		corpus.Pair{Key: "Dragonborn", Value: dragonborn},
		corpus.Pair{Key: "Goliath", Value: simpleRace("vgm", "Mountain nomads of enormous stature.")},
		corpus.Pair{Key: "Tabaxi", Value: simpleRace("vgm", "Curious catfolk wanderers.")},
		corpus.Pair{Key: "Triton", Value: simpleRace("vgm", "Guardians of the deep seas.")},
		corpus.Pair{Key: "Orc", Value: simpleRace("vgm", "Fierce raiders of the wild lands.")},
		corpus.Pair{Key: "Kenku", Value: simpleRace("vgm", "Flightless mimics without voices of their own.")},
		corpus.Pair{Key: "Aasimar", Value: simpleRace("vgm", "Mortals touched by the celestial planes.")},
		corpus.Pair{Key: "Bugbear", Value: bugbear},
		corpus.Pair{Key: "Genasi", Value: simpleRace("eepc", "Heirs of the elemental planes.")},
		corpus.Pair{Key: "Gith", Value: simpleRace("mtof", "Astral warriors split by an old schism.")},
		corpus.Pair{Key: "Satyr", Value: simpleRace("mot", "Revelers with goat legs and no fear.")},
		corpus.Pair{Key: "Simic Hybrid", Value: simpleRace("grn", "Guild-grown amphibious experiments.")},
		corpus.Pair{Key: "Mark of Making Human", Value: markOfMaking},
		corpus.Pair{Key: "Warforged", Value: warforged},
	)
}

func testClasses() *corpus.Node {
	class := func(book, description string) *corpus.Node {
		return corpus.Map(
			corpus.Pair{Key: "Description", Value: corpus.Scalar(description)},
		).WithSpecial("book-" + book)
	}
	return corpus.Map(
		corpus.Pair{Key: "Fighter", Value: class("phb", "A master of martial combat.")},
		corpus.Pair{Key: "Wizard", Value: class("phb", "A scholarly magic user.")},
		corpus.Pair{Key: "Rogue", Value: class("phb", "A scoundrel who trades in stealth.")},
		corpus.Pair{Key: "Artificer", Value: class("ebr", "An inventor who infuses objects with magic.")},
	)
}

func testBackgrounds() *corpus.Node {
	personality := func(trait, ideal, bond, flaw string) []corpus.Pair {
		return []corpus.Pair{
			{Key: "Trait", Value: corpus.ScalarList(trait)},
			{Key: "Ideal", Value: corpus.ScalarList(ideal)},
			{Key: "Bond", Value: corpus.ScalarList(bond)},
			{Key: "Flaw", Value: corpus.ScalarList(flaw)},
		}
	}

	acolyte := corpus.Map(append([]corpus.Pair{
		{Key: "Description", Value: corpus.Scalar("You have spent your life in service to a temple.")},
	}, personality(
		"I quote sacred texts in almost every situation.",
		"Tradition must be preserved and upheld.",
		"I would die to recover an ancient relic of my faith.",
		"I judge others harshly, and myself more harshly still.",
	)...)...).WithSpecial("book-phb")

	soldier := corpus.Map(append([]corpus.Pair{
		{Key: "Description", Value: corpus.Scalar("War has been your life for as long as you care to remember.")},
	}, personality(
		"I can stare down a hell hound without flinching.",
		"Our lot improves when all of us pull together.",
		"I fight for those who cannot fight for themselves.",
		"My hatred of my enemies is blind and unreasoning.",
	)...)...).WithSpecial("book-phb")

	faceless := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("You hide your true identity behind a persona.")},
		corpus.Pair{Key: "Personality", Value: corpus.Map().WithSpecial("backgroundtraits-Acolyte")},
	).WithSpecial("book-egw")

	azoriusFunctionary := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("A cog in the lawful machine of the Azorius Senate.")},
		corpus.Pair{Key: "Contacts", Value: corpus.Map(
			corpus.Pair{Key: "Guild Contacts", Value: corpus.ScalarList(
				"An arrester who owes you a favor",
				"A hussar who shares your beat",
				"A lawmage who drafted you",
			)},
			corpus.Pair{Key: "Non-Guild Contacts", Value: corpus.ScalarList(
				"A Boros sergeant",
				"A Dimir informant",
				"Reroll",
			)},
		).WithSpecial("ravnicacontacts")},
	).WithSpecial("book-grn")

	dimirOperative := corpus.Map(
		corpus.Pair{Key: "Description", Value: corpus.Scalar("A spy embedded in another guild.")},
		corpus.Pair{Key: "Contacts", Value: corpus.Map(
			corpus.Pair{Key: "Ally", Value: corpus.ScalarList(
				"Your handler, known only by a codename",
				"A courier who never asks questions",
			)},
			corpus.Pair{Key: "Guilds", Value: corpus.Map(
				corpus.Pair{Key: "Azorius", Value: corpus.ScalarList(
					"A lawmage who trusts you",
					"A records clerk you bribed",
				)},
				corpus.Pair{Key: "Boros", Value: corpus.ScalarList(
					"A sergeant who drinks with you",
					"A recruit who looks up to you",
				)},
			)},
		).WithSpecial("dimircontacts")},
	).WithSpecial("book-grn")

	return corpus.Map(
		corpus.Pair{Key: "Acolyte", Value: acolyte},
		corpus.Pair{Key: "Soldier", Value: soldier},
		corpus.Pair{Key: "Faceless", Value: faceless},
		corpus.Pair{Key: "Azorius Functionary", Value: azoriusFunctionary},
		corpus.Pair{Key: "Dimir Operative", Value: dimirOperative},
	)
}

func gendered(male, female []string, extra ...corpus.Pair) *corpus.Node {
	pairs := []corpus.Pair{
		{Key: "Male", Value: corpus.ScalarList(male...)},
		{Key: "Female", Value: corpus.ScalarList(female...)},
	}
	return corpus.Map(append(pairs, extra...)...)
}

func testNames() *corpus.Node {
	human := corpus.Map(
		corpus.Pair{Key: "Calishite", Value: gendered(
			[]string{"Aseir", "Haseid", "Zasheir"},
			[]string{"Atala", "Ceidil", "Meilil"},
			corpus.Pair{Key: "Surname", Value: corpus.ScalarList("Basha", "Dumein", "Pashar")},
		)},
		corpus.Pair{Key: "Bedine", Value: gendered(
			[]string{"Aali", "Rashid", "Tahnon"},
			[]string{"Aisha", "Farah", "Nura"},
			corpus.Pair{Key: "Tribe", Value: corpus.ScalarList("Alaii", "Bordjia", "Qahtan")},
		)},
		corpus.Pair{Key: "Mulan", Value: gendered(
			[]string{"Aoth", "Bareris", "Ehput-Ki"},
			[]string{"Arizima", "Chathi", "Nephis"},
		)},
	)

	elf := gendered(
		[]string{"Adran", "Carric", "Laucian"},
		[]string{"Adrie", "Keyleth", "Shanairra"},
		corpus.Pair{Key: "Child Male", Value: corpus.ScalarList("Ara", "Del", "Syllin")},
		corpus.Pair{Key: "Child Female", Value: corpus.ScalarList("Naeris", "Phann", "Vall")},
		corpus.Pair{Key: "Family", Value: corpus.ScalarList("Amakiir", "Galanodel", "Siannodel")},
		corpus.Pair{Key: "Drow", Value: gendered(
			[]string{"Drizzt", "Jarlaxle", "Zaknafein"},
			[]string{"Briza", "Quenthel", "Vierna"},
			corpus.Pair{Key: "Surname", Value: corpus.ScalarList("Baenre", "Do'Urden", "Xorlarrin")},
		)},
		corpus.Pair{Key: "Shadar-kai", Value: gendered(
			[]string{"Carven", "Ettin", "Mourn"},
			[]string{"Dusk", "Sorrow", "Vex"},
			corpus.Pair{Key: "Surname", Value: corpus.ScalarList("of the Raven", "of the Veil")},
		)},
	)

	gnome := gendered(
		[]string{"Alston", "Boddynock", "Dimble", "Fonkin", "Glim", "Namfoodle", "Seebo", "Zook"},
		[]string{"Bimpnottin", "Caramip", "Duvamil", "Ellywick", "Loopmottin", "Mardnab", "Roywyn", "Shamil"},
		corpus.Pair{Key: "Nickname", Value: corpus.ScalarList("Badger", "Cloak", "Sparks")},
		corpus.Pair{Key: "Clan", Value: corpus.ScalarList("Beren", "Nackle", "Timbers")},
	)

	tabaxi := gendered(
		[]string{"Cloud on the Mountaintop", "Five Timber", "Smoking Mirror"},
		[]string{"Seven Thundercloud", "Skin of the Snake", "Quiet Rain"},
		corpus.Pair{Key: "Clan", Value: corpus.ScalarList("Bright Cliffs", "Distant Rain", "Snoring Mountain")},
	)

	return corpus.Map(
		corpus.Pair{Key: "Human", Value: human},
		corpus.Pair{Key: "Elf", Value: elf},
		corpus.Pair{Key: "Dwarf", Value: gendered(
			[]string{"Adrik", "Baern", "Thorin"},
			[]string{"Amber", "Artin", "Vistra"},
			corpus.Pair{Key: "Clan", Value: corpus.ScalarList("Balderk", "Fireforge", "Ungart")},
			corpus.Pair{Key: "Duergar Clan", Value: corpus.ScalarList("Ashlord", "Deepdelver", "Graycloak")},
		)},
		corpus.Pair{Key: "Halfling", Value: gendered(
			[]string{"Alton", "Cade", "Milo"},
			[]string{"Andry", "Cora", "Seraphina"},
			corpus.Pair{Key: "Family", Value: corpus.ScalarList("Brushgather", "Goodbarrel", "Tealeaf")},
		)},
		corpus.Pair{Key: "Gnome", Value: gnome},
		corpus.Pair{Key: "Half-Elf", Value: corpus.Map()},
		corpus.Pair{Key: "Half-Orc", Value: corpus.Map()},
		corpus.Pair{Key: "Tiefling", Value: gendered(
			[]string{"Akmenos", "Damakos", "Mordai"},
			[]string{"Akta", "Kallista", "Rieta"},
			corpus.Pair{Key: "Virtue", Value: corpus.ScalarList("Despair", "Hope", "Torment")},
		)},
		corpus.Pair{Key: "Dragonborn", Value: gendered(
			[]string{"Arjhan", "Balasar", "Torinn"},
			[]string{"Akra", "Farideh", "Sora"},
			corpus.Pair{Key: "Clan", Value: corpus.ScalarList("Clethtinthiallor", "Kerrhylon", "Yarjerit")},
		)},
		corpus.Pair{Key: "Goliath", Value: gendered(
			[]string{"Aukan", "Keothi", "Vaunea"},
			[]string{"Gae-Al", "Kuori", "Manneo"},
			corpus.Pair{Key: "Nickname", Value: corpus.ScalarList("Bearkiller", "Longleaper", "Rootsmasher")},
			corpus.Pair{Key: "Clan", Value: corpus.ScalarList("Anakalathai", "Gathakanathi", "Thuliaga")},
		)},
		corpus.Pair{Key: "Tabaxi", Value: tabaxi},
		corpus.Pair{Key: "Triton", Value: gendered(
			[]string{"Corus", "Delnis", "Molos"},
			[]string{"Aryn", "Belthyn", "Vlen"},
			corpus.Pair{Key: "Surname", Value: corpus.ScalarList("Ahlorsath", "Pumanath", "Vuuvaxath")},
		)},
		corpus.Pair{Key: "Orc", Value: gendered(
			[]string{"Dench", "Grutok", "Shump"},
			[]string{"Baggi", "Ownka", "Sutha"},
		)},
		corpus.Pair{Key: "Kenku", Value: corpus.ScalarList("Basket Weaver", "Mouse Catcher", "Whistler")},
		corpus.Pair{Key: "Aasimar", Value: gendered(
			[]string{"Aritian", "Kaelar", "Odric"},
			[]string{"Arken", "Ilmater", "Valna"},
		)},
		corpus.Pair{Key: "Bugbear", Value: corpus.ScalarList("Hroth", "Klarg", "Mosk")},
		corpus.Pair{Key: "Genasi", Value: corpus.ScalarList("Cinder", "Ember", "Ripple")},
		corpus.Pair{Key: "Gith", Value: corpus.Map(
			corpus.Pair{Key: "Githyanki", Value: gendered(
				[]string{"Duurth", "Quith", "Xamodas"},
				[]string{"Jen'lig", "Quorstyl", "Vaira"},
			)},
			corpus.Pair{Key: "Githzerai", Value: gendered(
				[]string{"Dak", "Ferzth", "Shrakk"},
				[]string{"Adaka", "Izera", "Uweya"},
			)},
		)},
		corpus.Pair{Key: "Satyr", Value: gendered(
			[]string{"Dorros", "Erastos", "Phylleus"},
			[]string{"Aliki", "Nomi", "Thyrra"},
			corpus.Pair{Key: "Nickname", Value: corpus.ScalarList("Firehair", "Moonsong", "Skyreacher")},
		)},
		corpus.Pair{Key: "Simic Hybrid", Value: corpus.Map()},
		corpus.Pair{Key: "Vedalken", Value: gendered(
			[]string{"Aglar", "Koplony", "Uldin"},
			[]string{"Bryss", "Nileya", "Soliya"},
		)},
		corpus.Pair{Key: "Mark of Making Human", Value: corpus.ScalarList("Cannith-born")},
		corpus.Pair{Key: "Warforged", Value: corpus.ScalarList("Anchor", "Bastion", "Lantern", "Scout")},
	)
}

func testLife() *corpus.Node {
	return corpus.Map(
		corpus.Pair{Key: "Birthplace", Value: corpus.ScalarList(
			"At home",
			"In the home of a family friend",
			"In a temple",
			"On a battlefield",
			"In a carriage on the road",
		)},
		corpus.Pair{Key: "Parents", Value: corpus.Map(
			corpus.Pair{Key: "Human", Value: corpus.ScalarList(
				"You know who your parents are or were.",
				"You do not know who your parents were.",
			)},
			corpus.Pair{Key: "Half-Elf", Value: corpus.ScalarList(
				"One parent was an elf and the other was a human.",
				"Both parents were half-elves.",
			)},
			corpus.Pair{Key: "Half-Orc", Value: corpus.ScalarList(
				"One parent was an orc and the other was a human.",
				"Both parents were half-orcs.",
			)},
			corpus.Pair{Key: "Tiefling", Value: corpus.ScalarList(
				"Both parents were humans, their infernal heritage dormant.",
				"One parent was a tiefling.",
			)},
			corpus.Pair{Key: "Aasimar", Value: corpus.ScalarList(
				"Both parents were humans touched by the divine.",
				"One parent was an aasimar.",
			)},
			corpus.Pair{Key: "Genasi", Value: corpus.ScalarList(
				"Both parents were humans with an elemental bloodline.",
				"One parent was a genasi.",
			)},
		)},
		corpus.Pair{Key: "Absent Parent", Value: corpus.ScalarList(
			"Your parent died.",
			"Your parent was imprisoned or enslaved.",
			"Your parent abandoned you.",
			"Your parent disappeared to an unknown fate.",
		)},
		corpus.Pair{Key: "Crime", Value: corpus.ScalarList(
			"You were accused of murder.",
			"You were caught smuggling.",
			"You stole from a noble house.",
		)},
		corpus.Pair{Key: "Punishment", Value: corpus.ScalarList(
			"You served a long prison sentence.",
			"You escaped before trial and remain wanted.",
			"You were fined and released.",
		)},
		corpus.Pair{Key: "Events", Value: corpus.Map(
			corpus.Pair{Key: "Illness", Value: corpus.ScalarList("You survived a deadly plague.")},
			corpus.Pair{Key: "Tragedy", Value: corpus.ScalarList("A close friend died in an accident you survived.")},
			corpus.Pair{Key: "War", Value: corpus.ScalarList("You fought in a war and escaped unscathed.")},
			corpus.Pair{Key: "Good Fortune", Value: corpus.ScalarList("A distant relative left you an inheritance.")},
			corpus.Pair{Key: "Arcane Matter", Value: corpus.ScalarList("You were charmed or frightened by a spell.")},
			corpus.Pair{Key: "Boon", Value: corpus.ScalarList("A dragon gave you a favor to call in some day.")},
			corpus.Pair{Key: "Wanderlust", Value: corpus.ScalarList("You spent a year wandering a distant land.")},
			corpus.Pair{Key: "Faith", Value: corpus.ScalarList("You experienced a religious awakening.")},
			corpus.Pair{Key: "Rivalry", Value: corpus.ScalarList("A rival has sworn to best you at everything.")},
			corpus.Pair{Key: "Discovery", Value: corpus.ScalarList("You found a ruin no map records.")},
			corpus.Pair{Key: "Debt", Value: corpus.ScalarList("You owe a moneylender a sum you cannot pay.")},
			corpus.Pair{Key: "Scandal", Value: corpus.ScalarList("A scandal drove you from your home town.")},
			corpus.Pair{Key: "Reputation", Value: corpus.ScalarList("Strangers know your name before you give it.")},
			corpus.Pair{Key: "Something Strange", Value: corpus.ScalarList(
				"You were cursed, and nobody can say by whom.",
				"You woke one morning speaking a language you never learned.",
			)},
		)},
		corpus.Pair{Key: "Trinkets", Value: corpus.ScalarList(
			"A mummified goblin hand",
			"A crystal that glows faintly in moonlight",
			"A brass key that fits no lock you have found",
		)},
	)
}

func testNPC() *corpus.Node {
	return corpus.Map(
		corpus.Pair{Key: "Appearance", Value: corpus.ScalarList(
			"Distinctive jewelry",
			"Piercings",
			"Flamboyant clothes",
			"Missing teeth",
			"Unusual eye color",
		)},
		corpus.Pair{Key: "High Ability", Value: corpus.ScalarList(
			"Strength: powerful physique",
			"Dexterity: lithe and graceful",
			"Constitution: hardy and hale",
			"Intelligence: curious and studious",
			"Wisdom: perceptive and insightful",
			"Charisma: magnetic personality",
		)},
		corpus.Pair{Key: "Low Ability", Value: corpus.ScalarList(
			"Strength: feeble",
			"Dexterity: clumsy",
			"Constitution: sickly",
			"Intelligence: dim-witted",
			"Wisdom: oblivious",
			"Charisma: off-putting",
		)},
		corpus.Pair{Key: "Talent", Value: corpus.ScalarList(
			"Plays a musical instrument",
			"Unerring memory",
			"Great with animals",
		)},
		corpus.Pair{Key: "Mannerism", Value: corpus.ScalarList(
			"Taps fingers",
			"Squints",
			"Speaks in a whisper",
		)},
		corpus.Pair{Key: "Interaction", Value: corpus.ScalarList(
			"Argumentative",
			"Friendly",
			"Suspicious",
		)},
		corpus.Pair{Key: "Ideal", Value: corpus.ScalarList(
			"Justice above all",
			"Freedom for everyone",
			"Knowledge is its own reward",
		)},
		corpus.Pair{Key: "Bond", Value: corpus.ScalarList(
			"Dedicated to a personal life goal",
			"Protective of close family members",
			"Protective of colleagues or compatriots",
			"Loyal to a benefactor or patron",
			"Captivated by a romantic interest",
			"Drawn to a special place",
			"Protective of a sentimental keepsake",
			"Protective of a vulnerable person",
			"Out for revenge",
		)},
		corpus.Pair{Key: "Flaw", Value: corpus.ScalarList(
			"A forbidden love",
			"Arrogance",
			"An uncontrollable greed",
		)},
	)
}

func testMisc() *corpus.Node {
	return corpus.Map(
		corpus.Pair{Key: "Race Weights", Value: corpus.Map(
			corpus.Pair{Key: "Human", Value: corpus.Scalar("30")},
			corpus.Pair{Key: "Elf", Value: corpus.Scalar("20")},
			corpus.Pair{Key: "Dwarf", Value: corpus.Scalar("15")},
			corpus.Pair{Key: "Halfling", Value: corpus.Scalar("10")},
		)},
		corpus.Pair{Key: "Genders", Value: corpus.ScalarList(
			"Male",
			"Female",
			"Nonbinary or unspecified",
		)},
		corpus.Pair{Key: "Monstrous Origin", Value: corpus.ScalarList(
			"An escaped slave of your kin",
			"Raised among another culture",
			"An outcast seeking redemption",
		)},
	)
}

func testQuick() *corpus.Node {
	return corpus.Map(
		corpus.Pair{Key: "Races", Value: corpus.ScalarList("Dwarf", "Elezen", "Lalafell")},
		corpus.Pair{Key: "Factions", Value: corpus.ScalarList("The Immortal Flames", "The Maelstrom", "The Twin Adders")},
		corpus.Pair{Key: "Classes", Value: corpus.ScalarList("Gladiator", "Pugilist", "Thaumaturge")},
		corpus.Pair{Key: "Deities", Value: corpus.ScalarList("Azeyma", "Halone", "Thaliak")},
		corpus.Pair{Key: "Abilities", Value: corpus.ScalarList("Second Wind", "Sprint", "Surecast")},
	)
}
