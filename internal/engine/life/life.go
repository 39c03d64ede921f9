// Package life generates the biography of a character: origin, siblings,
// formative events, and a trinket.
package life

//go:generate mockgen -destination=mock/mock_generator.go -package=lifemock github.com/hearthfire/npcforge/internal/engine/life Generator

import (
	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/engine/names"
	"github.com/hearthfire/npcforge/internal/engine/npc"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// Generator builds the life section of a character record
type Generator interface {
	// Generate runs the origin, sibling, event, and trinket stages against
	// the in-progress record on the context.
	Generate(gctx *engine.Context) (*entities.Life, error)
}

// Config holds the dependencies for the life generator
type Config struct {
	Dice   dice.Provider
	Engine engine.Engine
	Names  names.Composer
	NPC    npc.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Names == nil {
		vb.RequiredField("Names")
	}
	if c.NPC == nil {
		vb.RequiredField("NPC")
	}
	return vb.Build()
}

type generator struct {
	dice   dice.Provider
	engine engine.Engine
	names  names.Composer
	npc    npc.Generator
}

// New creates a life generator with the provided dependencies
func New(cfg *Config) (Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &generator{
		dice:   cfg.Dice,
		engine: cfg.Engine,
		names:  cfg.Names,
		npc:    cfg.NPC,
	}, nil
}

func (g *generator) Generate(gctx *engine.Context) (*entities.Life, error) {
	if gctx.Corpus == nil || gctx.Corpus.Life == nil {
		return nil, errors.MissingCorpusField("life document is missing")
	}
	if gctx.Record.RaceName() == "" {
		return nil, errors.InvalidArgument("cannot generate a life before race generation")
	}

	origin, err := g.origin(gctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate origin")
	}

	siblings, err := g.siblings(gctx, origin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate siblings")
	}

	events, err := g.events(gctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate life events")
	}

	trinket, err := g.lifePick(gctx, "Trinkets")
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick a trinket")
	}

	return &entities.Life{
		Origin:   origin,
		Siblings: siblings,
		Events:   events,
		Trinket:  trinket,
	}, nil
}

// lifePick draws one value from a named list of the life document
func (g *generator) lifePick(gctx *engine.Context, field string) (string, error) {
	node, ok := gctx.Corpus.Life.Child(field)
	if !ok || node.Kind() != corpus.KindList {
		return "", errors.MissingCorpusFieldf("life document is missing a %q list", field)
	}
	return g.dice.PickOne(node.Strings())
}

// alignment rolls 3d6 and resolves the two boundary totals with a coin flip
func (g *generator) alignment() (string, error) {
	total, err := g.dice.Roll("3d6")
	if err != nil {
		return "", err
	}

	coin := func(pair alignmentPair) (string, error) {
		flip, err := g.dice.UniformInt(2)
		if err != nil {
			return "", err
		}
		if flip == 0 {
			return pair.first, nil
		}
		return pair.second, nil
	}

	switch {
	case total == 3:
		return coin(alignmentPair{"Chaotic Evil", "Chaotic Neutral"})
	case total <= 5:
		return "Lawful Evil", nil
	case total <= 8:
		return "Neutral Evil", nil
	case total <= 12:
		return "Neutral", nil
	case total <= 15:
		return "Neutral Good", nil
	case total <= 17:
		return coin(alignmentPair{"Lawful Good", "Lawful Neutral"})
	default:
		return "Chaotic Good", nil
	}
}
