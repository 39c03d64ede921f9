// Package names implements race-, gender-, and ethnicity-conditioned name
// composition. Every race pulls from the names document; a handful of races
// carry bespoke assembly rules on top of the shared building blocks.
package names

import (
	"strings"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// Result is a composed name pair
type Result struct {
	Name      string
	ShortName string
}

// Composer assembles names for characters and their siblings
type Composer interface {
	// Compose builds the name for the in-progress character on the context
	// (reads Race, Subrace, Gender, and the cached ethnicity).
	Compose(gctx *engine.Context) (*Result, error)

	// ComposeFor builds a name for an arbitrary race/subrace/gender, used
	// for siblings and other secondary characters.
	ComposeFor(gctx *engine.Context, race, subrace string, gender entities.Gender) (*Result, error)
}

// Config holds the dependencies for the name composer
type Config struct {
	Dice   dice.Provider
	Engine engine.Engine
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
	return vb.Build()
}

type composer struct {
	dice   dice.Provider
	engine engine.Engine
}

// New creates a name composer with the provided dependencies
func New(cfg *Config) (Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &composer{dice: cfg.Dice, engine: cfg.Engine}, nil
}

func (c *composer) Compose(gctx *engine.Context) (*Result, error) {
	race := gctx.Record.RaceName()
	if race == "" {
		return nil, errors.InvalidArgument("cannot compose a name before race generation")
	}
	return c.ComposeFor(gctx, race, gctx.Record.Subrace(), gctx.Record.Gender)
}

func (c *composer) ComposeFor(gctx *engine.Context, race, subrace string, gender entities.Gender) (*Result, error) {
	pools, err := c.racePools(gctx, race)
	if err != nil {
		return nil, err
	}

	var name string
	switch race {
	case "Human":
		name, err = c.humanStyle(gctx, gender)
	case "Elf":
		name, err = c.elf(gctx, pools, subrace, gender)
	case "Dwarf":
		name, err = c.dwarf(pools, subrace, gender)
	case "Gnome":
		name, err = c.gnome(pools, gender)
	case "Goliath":
		name, err = c.goliath(pools, gender)
	case "Half-Elf":
		name, err = c.halfElf(gctx, gender)
	case "Half-Orc":
		name, err = c.halfOrc(gctx, pools, gender)
	case "Tiefling":
		name, err = c.tiefling(gctx, pools, gender)
	case "Gith":
		name, err = c.gith(pools, subrace, gender)
	case "Simic Hybrid":
		name, err = c.simicHybrid(gctx, gender)
	case "Satyr":
		name, err = c.satyr(pools, gender)
	case "Tabaxi":
		name, err = c.tabaxi(pools, gender)
	case "Triton":
		name, err = c.firstLast(pools, gender, "Surname")
	default:
		name, err = c.generic(pools, gender)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compose a %s name", race)
	}

	short, err := c.shortened(race, subrace, name)
	if err != nil {
		return nil, err
	}

	return &Result{Name: name, ShortName: short}, nil
}

// shortened collapses the long-form names of the two races that carry one;
// every other race keeps the full name
func (c *composer) shortened(race, subrace, full string) (string, error) {
	switch race {
	case "Gnome":
		if subrace == "Deep Gnome" {
			return full, nil
		}
		tokens := strings.Fields(full)
		quoted := -1
		for i, tok := range tokens {
			if strings.HasPrefix(tok, `"`) {
				quoted = i
				break
			}
		}
		if quoted <= 1 {
			return full, nil
		}
		first, err := c.dice.PickOne(tokens[:quoted])
		if err != nil {
			return "", err
		}
		return first + " " + strings.Join(tokens[quoted:], " "), nil

	case "Tabaxi":
		start := strings.IndexByte(full, '"')
		end := strings.LastIndexByte(full, '"')
		if start < 0 || end <= start {
			return full, nil
		}
		return full[start+1 : end], nil

	default:
		return full, nil
	}
}

// racePools returns the names-document entry for the race
func (c *composer) racePools(gctx *engine.Context, race string) (*corpus.Node, error) {
	if gctx.Corpus == nil || gctx.Corpus.Names == nil {
		return nil, errors.MissingCorpusField("names document is missing")
	}
	pools, ok := gctx.Corpus.Names.Child(race)
	if !ok {
		return nil, errors.NotFoundf("names document has no entry for race %q", race)
	}
	return pools, nil
}

// resolveBinary returns the gender itself, or a coin flip when it is outside
// the binary values
func (c *composer) resolveBinary(gender entities.Gender) (entities.Gender, error) {
	if gender.Binary() {
		return gender, nil
	}
	coin, err := c.dice.UniformInt(2)
	if err != nil {
		return "", err
	}
	if coin == 0 {
		return entities.GenderMale, nil
	}
	return entities.GenderFemale, nil
}

// genderedList returns the Male or Female pool of the node
func (c *composer) genderedList(node *corpus.Node, gender entities.Gender) ([]string, error) {
	resolved, err := c.resolveBinary(gender)
	if err != nil {
		return nil, err
	}
	pool, ok := node.Child(string(resolved))
	if !ok || pool.Kind() != corpus.KindList {
		return nil, errors.MissingCorpusFieldf("name pools are missing a %s list", resolved)
	}
	return pool.Strings(), nil
}

// genderedPick draws one name from the Male or Female pool
func (c *composer) genderedPick(node *corpus.Node, gender entities.Gender) (string, error) {
	pool, err := c.genderedList(node, gender)
	if err != nil {
		return "", err
	}
	return c.dice.PickOne(pool)
}

// listPick draws one value from a named list child
func (c *composer) listPick(node *corpus.Node, child string) (string, error) {
	pool, ok := node.Child(child)
	if !ok || pool.Kind() != corpus.KindList {
		return "", errors.MissingCorpusFieldf("name pools are missing a %q list", child)
	}
	return c.dice.PickOne(pool.Strings())
}

// firstLast joins a gendered first name with a pick from the named
// surname-like list
func (c *composer) firstLast(node *corpus.Node, gender entities.Gender, surnameKey string) (string, error) {
	first, err := c.genderedPick(node, gender)
	if err != nil {
		return "", err
	}
	last, err := c.listPick(node, surnameKey)
	if err != nil {
		return "", err
	}
	return first + " " + last, nil
}

// generic covers races without bespoke rules: a flat list is a direct pool;
// a mapping is a gendered pool, with a surname-like list appended when the
// corpus carries one
func (c *composer) generic(node *corpus.Node, gender entities.Gender) (string, error) {
	if node.Kind() == corpus.KindList {
		return c.dice.PickOne(node.Strings())
	}

	for _, key := range []string{"Clan", "Family", "Surname"} {
		if _, ok := node.Child(key); ok {
			return c.firstLast(node, gender, key)
		}
	}
	return c.genderedPick(node, gender)
}
