package life

import (
	"fmt"
	"strings"

	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// maxSiblingNameDraws bounds the redraw loop that keeps a sibling from
// sharing the character's name
const maxSiblingNameDraws = 25

// siblings generates zero to two siblings, each with a race, name,
// alignment, occupation, status, attitude, and birth order
func (g *generator) siblings(gctx *engine.Context, origin *entities.Value) (*entities.Value, error) {
	count, err := g.dice.UniformInt(3)
	if err != nil {
		return nil, err
	}

	parents := entities.FindText(origin, "Parents")
	constructed := gctx.Record.RaceName() == raceConstructed

	traits := make([]entities.Trait, 0, count)
	for i := 0; i < count; i++ {
		sibling, err := g.sibling(gctx, parents, constructed)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate sibling %d", i+1)
		}
		traits = append(traits, entities.Trait{
			Name:    fmt.Sprintf("Sibling %d", i+1),
			Content: sibling,
		})
	}

	return entities.Parent(traits), nil
}

func (g *generator) sibling(gctx *engine.Context, parents string, constructed bool) (*entities.Value, error) {
	race, err := g.siblingRace(gctx, parents)
	if err != nil {
		return nil, err
	}

	traits := make([]entities.Trait, 0, 8)
	appendLeaf := func(name, text string) {
		traits = append(traits, entities.Trait{Name: name, Content: entities.Leaf(text)})
	}
	appendLeaf("Race", race)

	gender := entities.GenderUnknown
	if !constructed {
		coin, err := g.dice.UniformInt(2)
		if err != nil {
			return nil, err
		}
		if coin == 0 {
			gender = entities.GenderMale
		} else {
			gender = entities.GenderFemale
		}
		appendLeaf("Gender", string(gender))
	}

	name, err := g.siblingName(gctx, race, gender)
	if err != nil {
		return nil, err
	}
	appendLeaf("Name", name)

	alignment, err := g.alignment()
	if err != nil {
		return nil, err
	}
	appendLeaf("Alignment", alignment)

	occupation, err := g.npc.Occupation(true, g.classPicker(gctx))
	if err != nil {
		return nil, err
	}
	appendLeaf("Occupation", occupation)

	statusTotal, err := g.dice.Roll("3d6")
	if err != nil {
		return nil, err
	}
	appendLeaf("Status", lookup(statusTable, statusTotal))

	attitudeTotal, err := g.dice.Roll("3d4")
	if err != nil {
		return nil, err
	}
	appendLeaf("Attitude", lookup(attitudeTable, attitudeTotal))

	order, err := g.birthOrder(constructed)
	if err != nil {
		return nil, err
	}
	if constructed {
		appendLeaf("Construction Order", order)
	} else {
		appendLeaf("Birth Order", order)
	}

	return entities.Parent(traits), nil
}

// siblingRace resolves the sibling's race. Mixed-heritage races read the
// parentage text: a mixed couple can produce either pure parent race or the
// blended one, and a dormant bloodline weighs toward the mundane race.
func (g *generator) siblingRace(gctx *engine.Context, parents string) (string, error) {
	race := gctx.Record.RaceName()
	lowered := strings.ToLower(parents)

	coin := func(a, b string) (string, error) {
		flip, err := g.dice.UniformInt(2)
		if err != nil {
			return "", err
		}
		if flip == 0 {
			return a, nil
		}
		return b, nil
	}

	switch race {
	case "Half-Elf":
		if strings.Contains(lowered, "a human") {
			half, err := g.dice.UniformInt(2)
			if err != nil {
				return "", err
			}
			if half == 0 {
				return race, nil
			}
			return coin("Human", "Elf")
		}
		return race, nil

	case "Half-Orc":
		if strings.Contains(lowered, "a human") {
			half, err := g.dice.UniformInt(2)
			if err != nil {
				return "", err
			}
			if half == 0 {
				return race, nil
			}
			return coin("Human", "Orc")
		}
		return race, nil

	case "Tiefling":
		// A dormant infernal bloodline mostly breeds true to the mundane
		// parents; the manifestation is the rare case.
		if strings.Contains(lowered, "human") {
			roll, err := g.dice.UniformInt(4)
			if err != nil {
				return "", err
			}
			if roll == 0 {
				return race, nil
			}
			return "Human", nil
		}
		return race, nil

	case "Aasimar", "Genasi":
		if strings.Contains(lowered, "human") {
			return coin("Human", race)
		}
		return race, nil

	default:
		return race, nil
	}
}

// siblingName composes a name for the sibling and keeps only the first
// name, redrawing when it matches the character's own name truncated to the
// same length
func (g *generator) siblingName(gctx *engine.Context, race string, gender entities.Gender) (string, error) {
	characterName := gctx.Record.Name

	subrace := ""
	if race == gctx.Record.RaceName() {
		subrace = gctx.Record.Subrace()
	}

	for i := 0; i < maxSiblingNameDraws; i++ {
		result, err := g.names.ComposeFor(gctx, race, subrace, gender)
		if err != nil {
			return "", err
		}
		first := strings.Fields(result.Name)[0]
		if characterName == "" || !strings.EqualFold(first, truncate(characterName, len(first))) {
			return first, nil
		}
	}
	return "", errors.InfeasibleCountf("could not draw a sibling name distinct from %q", characterName)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// birthOrder rolls 2d6: the lowest total is a twin, low totals are older
// siblings, high totals younger
func (g *generator) birthOrder(constructed bool) (string, error) {
	total, err := g.dice.Roll("2d6")
	if err != nil {
		return "", err
	}

	if constructed {
		switch {
		case total == 2:
			return "Built at the same time as you", nil
		case total <= 7:
			return "Built before you", nil
		default:
			return "Built after you", nil
		}
	}

	switch {
	case total == 2:
		return "Twin, triplet, or quadruplet", nil
	case total <= 7:
		return "Older", nil
	default:
		return "Younger", nil
	}
}

// classPicker adapts the engine's random class draw for the adventurer
// occupation outcome
func (g *generator) classPicker(gctx *engine.Context) func() (string, error) {
	return func() (string, error) {
		entry, err := g.engine.RandomEntry(gctx, gctx.Corpus.Classes, entities.RandomKey)
		if err != nil {
			return "", err
		}
		return entry.Name, nil
	}
}
