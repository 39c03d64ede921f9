// Package npc generates DMG-style NPC personality bundles and occupations.
package npc

import (
	"strings"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// ClassPicker supplies a class name for the adventurer occupation outcome
type ClassPicker func() (string, error)

// Generator produces NPC personality traits and occupations
type Generator interface {
	// Traits draws the nine-field personality bundle from the NPC document.
	Traits(doc *corpus.Node) (*entities.NPCTraits, error)

	// Occupation draws an occupation from the fixed trade table. The top
	// slice of the roll is the adventurer outcome, which is only reachable
	// when allowed; it labels itself with a drawn class, or the bare word
	// when no picker is supplied.
	Occupation(allowAdventurer bool, pickClass ClassPicker) (string, error)
}

// Config holds the dependencies for the NPC generator
type Config struct {
	Dice dice.Provider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	return vb.Build()
}

type generator struct {
	dice dice.Provider
}

// New creates an NPC generator with the provided dependencies
func New(cfg *Config) (Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &generator{dice: cfg.Dice}, nil
}

func (g *generator) Traits(doc *corpus.Node) (*entities.NPCTraits, error) {
	if doc == nil {
		return nil, errors.MissingCorpusField("npc document is missing")
	}

	pool := func(field string) ([]string, error) {
		node, ok := doc.Child(field)
		if !ok || node.Kind() != corpus.KindList {
			return nil, errors.MissingCorpusFieldf("npc document is missing a %q list", field)
		}
		return node.Strings(), nil
	}
	pick := func(field string) (string, error) {
		values, err := pool(field)
		if err != nil {
			return "", err
		}
		return g.dice.PickOne(values)
	}

	appearance, err := pick("Appearance")
	if err != nil {
		return nil, err
	}
	high, low, err := g.abilities(doc)
	if err != nil {
		return nil, err
	}
	talent, err := pick("Talent")
	if err != nil {
		return nil, err
	}
	mannerism, err := pick("Mannerism")
	if err != nil {
		return nil, err
	}
	interaction, err := pick("Interaction")
	if err != nil {
		return nil, err
	}
	ideal, err := pick("Ideal")
	if err != nil {
		return nil, err
	}

	bonds, err := pool("Bond")
	if err != nil {
		return nil, err
	}
	bond, err := g.bond(bonds)
	if err != nil {
		return nil, err
	}

	flaw, err := pick("Flaw")
	if err != nil {
		return nil, err
	}

	return &entities.NPCTraits{
		Appearance:  appearance,
		HighAbility: high,
		LowAbility:  low,
		Talent:      talent,
		Mannerism:   mannerism,
		Interaction: interaction,
		Ideal:       ideal,
		Bond:        bond,
		FlawSecret:  flaw,
	}, nil
}

// abilities draws the high and low ability so the two never name the same
// ability: the low draw spans one fewer slot and skips past the high index
func (g *generator) abilities(doc *corpus.Node) (string, string, error) {
	highNode, ok := doc.Child("High Ability")
	if !ok || highNode.Kind() != corpus.KindList {
		return "", "", errors.MissingCorpusField("npc document is missing a High Ability list")
	}
	lowNode, ok := doc.Child("Low Ability")
	if !ok || lowNode.Kind() != corpus.KindList {
		return "", "", errors.MissingCorpusField("npc document is missing a Low Ability list")
	}

	high := highNode.Strings()
	low := lowNode.Strings()
	if len(high) != len(low) {
		return "", "", errors.MissingCorpusField("High Ability and Low Ability lists must be the same length")
	}
	if len(high) < 2 {
		return "", "", errors.InfeasibleCount("ability lists need at least two entries")
	}

	hi, err := g.dice.UniformInt(len(high))
	if err != nil {
		return "", "", err
	}
	lo, err := g.dice.UniformInt(len(low) - 1)
	if err != nil {
		return "", "", err
	}
	if lo >= hi {
		lo++
	}

	return high[hi], low[lo], nil
}

// bond has one extra outcome past the pool: two distinct bonds joined as a
// comma list
func (g *generator) bond(bonds []string) (string, error) {
	if len(bonds) < 2 {
		return "", errors.InfeasibleCount("bond pool needs at least two entries")
	}

	roll, err := g.dice.UniformInt(len(bonds) + 1)
	if err != nil {
		return "", err
	}
	if roll < len(bonds) {
		return bonds[roll], nil
	}

	pair, err := g.dice.PickMany(bonds, 2)
	if err != nil {
		return "", err
	}
	return strings.Join(pair, ", "), nil
}

// occupationEntry is one row of the cumulative trade table: the row matches
// rolls strictly below its limit
type occupationEntry struct {
	limit int
	name  string
}

// occupationTable covers rolls 0-98; 99 is the adventurer slice
var occupationTable = []occupationEntry{
	{5, "Academic"},
	{12, "Artisan or guild member"},
	{17, "Criminal"},
	{22, "Entertainer"},
	{32, "Farmer or herder"},
	{40, "Hunter or trapper"},
	{50, "Laborer"},
	{58, "Merchant"},
	{62, "Politician or aristocrat"},
	{68, "Priest or acolyte"},
	{74, "Sailor"},
	{84, "Soldier"},
	{89, "Scribe or clerk"},
	{94, "Healer or apothecary"},
	{99, "Beggar or drifter"},
}

func (g *generator) Occupation(allowAdventurer bool, pickClass ClassPicker) (string, error) {
	// Without the adventurer outcome the roll spans the table alone.
	span := 99
	if allowAdventurer {
		span = 100
	}

	roll, err := g.dice.UniformInt(span)
	if err != nil {
		return "", err
	}

	if roll >= 99 {
		if pickClass == nil {
			return "Adventurer", nil
		}
		class, err := pickClass()
		if err != nil {
			return "", errors.Wrap(err, "failed to pick an adventurer class")
		}
		return "Adventurer (" + class + ")", nil
	}

	for _, entry := range occupationTable {
		if roll < entry.limit {
			return entry.name, nil
		}
	}
	return "", errors.Internalf("occupation roll %d fell past the table", roll)
}
