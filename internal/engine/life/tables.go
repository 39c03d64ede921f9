package life

// tableEntry is one row of a cumulative roll table: the row matches totals
// strictly below its limit
type tableEntry struct {
	limit int
	text  string
}

func lookup(table []tableEntry, total int) string {
	for _, entry := range table {
		if total < entry.limit {
			return entry.text
		}
	}
	return table[len(table)-1].text
}

// alignmentPair marks a boundary outcome decided by a coin flip
type alignmentPair struct {
	first  string
	second string
}

// raisedByTable is a d100 walk; anything other than the first row adds an
// absent-parent reason
var raisedByTable = []tableEntry{
	{50, "Mother and father"},
	{55, "Mother only"},
	{60, "Father only"},
	{63, "Mother and stepfather"},
	{66, "Father and stepmother"},
	{76, "Grandparents"},
	{81, "Aunt and uncle"},
	{86, "An older sibling"},
	{91, "An adoptive family"},
	{96, "An orphanage"},
	{100, "Nobody; you raised yourself"},
}

// lifestyleEntry carries the childhood-home roll modifier alongside the tier
type lifestyleEntry struct {
	limit    int
	text     string
	modifier int
}

// lifestyleTable is keyed by a 3d6 total
var lifestyleTable = []lifestyleEntry{
	{4, "Wretched", -40},
	{6, "Squalid", -20},
	{9, "Poor", -10},
	{13, "Modest", 0},
	{16, "Comfortable", 10},
	{18, "Wealthy", 20},
	{19, "Aristocratic", 40},
}

func lifestyleFor(total int) lifestyleEntry {
	for _, entry := range lifestyleTable {
		if total < entry.limit {
			return entry
		}
	}
	return lifestyleTable[len(lifestyleTable)-1]
}

// childhoodHomeTable is keyed by a d100 roll plus the lifestyle modifier,
// clamped below at zero
var childhoodHomeTable = []tableEntry{
	{1, "On the streets"},
	{21, "A rundown shack"},
	{31, "No permanent residence; you moved around a lot"},
	{41, "An encampment or village in the wilderness"},
	{51, "An apartment in a rundown neighborhood"},
	{71, "A small house"},
	{91, "A large house"},
	{111, "A mansion"},
	{112, "A palace or castle"},
}

// memoriesTable is keyed by a 3d6 total shifted by a -2..+2 disposition
var memoriesTable = []tableEntry{
	{4, "You are still haunted by your childhood"},
	{6, "You spent most of your childhood alone"},
	{9, "Others saw you as being different or strange, so you had few companions"},
	{13, "You had a few close friends and lived an ordinary childhood"},
	{16, "You had several friends, and your childhood was generally a happy one"},
	{18, "You always found it easy to make friends, and you loved being around people"},
	{19, "Everyone knew who you were, and you had friends everywhere you went"},
}

// statusTable is keyed by a 3d6 total
var statusTable = []tableEntry{
	{4, "Dead"},
	{6, "Alive, but doing poorly"},
	{13, "Alive and well"},
	{16, "Alive and quite successful"},
	{19, "Alive and infamous"},
}

// attitudeTable is keyed by a 3d4 total
var attitudeTable = []tableEntry{
	{5, "Hostile"},
	{9, "Indifferent"},
	{13, "Friendly"},
}

// adventureOutcomes is keyed by a d100 roll in ten-wide buckets, with the
// top roll promoted to the final outcome
var adventureOutcomes = []string{
	"You nearly died. You have nasty scars on your body, and you are missing an ear, several fingers, or a toe.",
	"You suffered a grievous injury. Although the wound healed, it still pains you from time to time.",
	"You were wounded, but in time you recovered fully.",
	"You contracted a disease while exploring a filthy warren. You recovered, but you have a persistent cough.",
	"You were poisoned by a trap. You recovered, but the experience left you paranoid about food and drink.",
	"You lost something of sentimental value to you during your adventure.",
	"You were terribly frightened by something you encountered and ran from it, abandoning your companions.",
	"You learned a great deal during your adventure. The next time you face a challenge like it, you will be ready.",
	"You found a large sum of treasure on your adventure.",
	"You found a minor magic item on your adventure.",
	"You earned the lasting gratitude of a powerful person.",
}

// eventCategories is keyed by a d100 roll in five-wide buckets. The top roll
// is stolen from the last bucket for the bonus category.
var eventCategories = []string{
	"Enemy",
	"Friend",
	"Marriage",
	"Someone Important",
	"Job",
	"Adventure",
	"Crime",
	"Illness",
	"Tragedy",
	"War",
	"Good Fortune",
	"Arcane Matter",
	"Boon",
	"Wanderlust",
	"Faith",
	"Rivalry",
	"Discovery",
	"Debt",
	"Scandal",
	"Reputation",
}

const bonusCategory = "Something Strange"
