package life

import (
	"fmt"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// maxCategoryDraws bounds the rejection loop for distinct event categories
const maxCategoryDraws = 200

// events draws three to five distinct formative events. Each draw is a d100
// into five-wide category buckets; the top roll is the bonus category.
func (g *generator) events(gctx *engine.Context) (*entities.Value, error) {
	extra, err := g.dice.UniformInt(3)
	if err != nil {
		return nil, err
	}
	count := 3 + extra

	drawn := make(map[string]bool, count)
	traits := make([]entities.Trait, 0, count)
	for attempts := 0; len(traits) < count; attempts++ {
		if attempts >= maxCategoryDraws {
			return nil, errors.InfeasibleCountf("could not draw %d distinct event categories", count)
		}

		roll, err := g.dice.UniformInt(100)
		if err != nil {
			return nil, err
		}
		category := bonusCategory
		if roll < 99 {
			category = eventCategories[roll/5]
		}
		if drawn[category] {
			continue
		}
		drawn[category] = true

		text, err := g.eventText(gctx, category)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compose a %s event", category)
		}
		traits = append(traits, entities.Trait{Name: category, Content: entities.Leaf(text)})
	}

	return entities.Parent(traits), nil
}

func (g *generator) eventText(gctx *engine.Context, category string) (string, error) {
	switch category {
	case "Marriage":
		return g.marriageEvent(gctx)
	case "Friend":
		race, occupation, err := g.someone(gctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("You made a lifelong friend, a %s. Their occupation: %s.", race, occupation), nil
	case "Enemy":
		return g.enemyEvent(gctx)
	case "Someone Important":
		race, occupation, err := g.someone(gctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Someone important entered your life, a %s. Their occupation: %s.", race, occupation), nil
	case "Job":
		// The savings roll stays unresolved so the table reader can make
		// it at play time.
		return "You found profitable work and saved 2d6 × 10 gp before moving on.", nil
	case "Adventure":
		return g.adventureEvent()
	case "Crime":
		crime, err := g.lifePick(gctx, "Crime")
		if err != nil {
			return "", err
		}
		punishment, err := g.lifePick(gctx, "Punishment")
		if err != nil {
			return "", err
		}
		return crime + " " + punishment, nil
	default:
		return g.pooledEvent(gctx, category)
	}
}

// someone draws a random race and occupation for a secondary character
func (g *generator) someone(gctx *engine.Context) (string, string, error) {
	race, err := g.engine.RandomRace(gctx)
	if err != nil {
		return "", "", err
	}
	occupation, err := g.npc.Occupation(true, g.classPicker(gctx))
	if err != nil {
		return "", "", err
	}
	return race, occupation, nil
}

// marriageEvent marries the character to a partner of the same race two
// times in three, otherwise a weighted random race
func (g *generator) marriageEvent(gctx *engine.Context) (string, error) {
	race := gctx.Record.RaceName()
	same, err := g.dice.UniformInt(3)
	if err != nil {
		return "", err
	}
	if same == 2 {
		race, err = g.engine.RandomRace(gctx)
		if err != nil {
			return "", err
		}
	}
	occupation, err := g.npc.Occupation(true, g.classPicker(gctx))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("You married a %s. Their occupation: %s.", race, occupation), nil
}

// enemyEvent adds a fairness flip deciding who wronged whom
func (g *generator) enemyEvent(gctx *engine.Context) (string, error) {
	race, occupation, err := g.someone(gctx)
	if err != nil {
		return "", err
	}
	flip, err := g.dice.UniformInt(2)
	if err != nil {
		return "", err
	}
	blame := "They wronged you."
	if flip == 0 {
		blame = "You wronged them."
	}
	return fmt.Sprintf("You made a bitter enemy, a %s. Their occupation: %s. %s", race, occupation, blame), nil
}

// adventureEvent buckets a d100 into ten-wide outcomes, promoting the top
// roll to the final outcome
func (g *generator) adventureEvent() (string, error) {
	roll, err := g.dice.UniformInt(100)
	if err != nil {
		return "", err
	}
	idx := roll / 10
	if roll == 99 {
		idx = len(adventureOutcomes) - 1
	}
	return "You went on an adventure. " + adventureOutcomes[idx], nil
}

// pooledEvent draws from the category's list in the life document
func (g *generator) pooledEvent(gctx *engine.Context, category string) (string, error) {
	pools, ok := gctx.Corpus.Life.Child("Events")
	if !ok || pools.Kind() != corpus.KindMap {
		return "", errors.MissingCorpusField("life document is missing an Events mapping")
	}
	pool, ok := pools.Child(category)
	if !ok || pool.Kind() != corpus.KindList {
		return "", errors.MissingCorpusFieldf("Events mapping is missing a %q list", category)
	}
	return g.dice.PickOne(pool.Strings())
}
