// Package quick implements the flat-pool generator of the quick game
// system. Every field is one uniform draw from a named pool; there is no
// book filter, weighting, or recursion.
package quick

import (
	"context"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// Service defines the quick generation interface
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput defines the request for a quick character
type GenerateInput struct {
	// Pools is the quick-pools corpus document.
	Pools *corpus.Node
}

// GenerateOutput defines the response for a quick character
type GenerateOutput struct {
	Character *entities.QuickCharacter
}

// Config holds the dependencies for the quick orchestrator
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

// Orchestrator implements the Service interface
type Orchestrator struct {
	dice dice.Provider
}

// New creates a new quick orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Orchestrator{dice: cfg.Dice}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// pool field names of the quick-pools document
const (
	fieldRaces     = "Races"
	fieldFactions  = "Factions"
	fieldClasses   = "Classes"
	fieldDeities   = "Deities"
	fieldAbilities = "Abilities"
)

// Generate draws one entry from each of the five pools
func (o *Orchestrator) Generate(_ context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || input.Pools == nil {
		return nil, errors.InvalidArgument("quick pools are required")
	}

	character := &entities.QuickCharacter{}
	for _, field := range []struct {
		name string
		dest *string
	}{
		{fieldRaces, &character.Race},
		{fieldFactions, &character.Faction},
		{fieldClasses, &character.Class},
		{fieldDeities, &character.Deity},
		{fieldAbilities, &character.Ability},
	} {
		picked, err := o.pick(input.Pools, field.name)
		if err != nil {
			return nil, err
		}
		*field.dest = picked
	}

	return &GenerateOutput{Character: character}, nil
}

func (o *Orchestrator) pick(pools *corpus.Node, field string) (string, error) {
	pool, ok := pools.Child(field)
	if !ok {
		return "", errors.MissingCorpusFieldf("quick pools are missing %s", field)
	}
	values := pool.Strings()
	if len(values) == 0 {
		return "", errors.EmptyInputf("quick pool %s is empty", field)
	}
	return o.dice.PickOne(values)
}
