package life

import (
	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// raceConstructed is the one race whose biography uses construction
// vocabulary instead of birth vocabulary
const raceConstructed = "Warforged"

// origin builds the alignment, birthplace, parentage, upbringing, and
// childhood traits
func (g *generator) origin(gctx *engine.Context) (*entities.Value, error) {
	traits := make([]entities.Trait, 0, 8)
	appendLeaf := func(name, text string) {
		traits = append(traits, entities.Trait{Name: name, Content: entities.Leaf(text)})
	}

	alignment, err := g.alignment()
	if err != nil {
		return nil, err
	}
	appendLeaf("Alignment", alignment)

	birthplace, err := g.lifePick(gctx, "Birthplace")
	if err != nil {
		return nil, err
	}
	birthplaceKey := "Birthplace"
	if gctx.Record.RaceName() == raceConstructed {
		birthplaceKey = "Built"
	}
	appendLeaf(birthplaceKey, birthplace)

	parents, hasParents, err := g.parents(gctx)
	if err != nil {
		return nil, err
	}
	if hasParents {
		appendLeaf("Parents", parents)
	}

	raisedRoll, err := g.dice.UniformInt(100)
	if err != nil {
		return nil, err
	}
	raisedBy := lookup(raisedByTable, raisedRoll)
	appendLeaf("Raised By", raisedBy)

	if raisedBy != raisedByTable[0].text {
		reason, err := g.lifePick(gctx, "Absent Parent")
		if err != nil {
			return nil, err
		}
		appendLeaf("Absent Parent", reason)
	}

	lifestyleTotal, err := g.dice.Roll("3d6")
	if err != nil {
		return nil, err
	}
	lifestyle := lifestyleFor(lifestyleTotal)
	appendLeaf("Lifestyle", lifestyle.text)

	homeRoll, err := g.dice.UniformInt(100)
	if err != nil {
		return nil, err
	}
	homeTotal := homeRoll + lifestyle.modifier
	if homeTotal < 0 {
		homeTotal = 0
	}
	appendLeaf("Childhood Home", lookup(childhoodHomeTable, homeTotal))

	memoriesTotal, err := g.dice.Roll("3d6")
	if err != nil {
		return nil, err
	}
	disposition, err := g.dice.UniformInt(5)
	if err != nil {
		return nil, err
	}
	appendLeaf("Childhood Memories", lookup(memoriesTable, memoriesTotal+disposition-2))

	return entities.Parent(traits), nil
}

// parents picks parentage text from the race-keyed pools of the life
// document. Races without their own pool get no parentage line at all.
func (g *generator) parents(gctx *engine.Context) (string, bool, error) {
	pools, ok := gctx.Corpus.Life.Child("Parents")
	if !ok || pools.Kind() != corpus.KindMap {
		return "", false, errors.MissingCorpusField("life document is missing a Parents mapping")
	}

	pool, ok := pools.Child(gctx.Record.RaceName())
	if !ok {
		return "", false, nil
	}
	if pool.Kind() != corpus.KindList {
		return "", false, errors.MissingCorpusField("Parents pools must be lists")
	}
	text, err := g.dice.PickOne(pool.Strings())
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}
