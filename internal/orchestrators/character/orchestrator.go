// Package character implements the character generation orchestrator: it
// runs the generation stages in dependency order, honors field locks and
// manual overrides, and stamps and optionally stores the finished record.
package character

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/engine/life"
	"github.com/hearthfire/npcforge/internal/engine/names"
	"github.com/hearthfire/npcforge/internal/engine/npc"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
	"github.com/hearthfire/npcforge/internal/pkg/clock"
	"github.com/hearthfire/npcforge/internal/pkg/idgen"
	characterrepo "github.com/hearthfire/npcforge/internal/repositories/character"
)

// TopicCharacterGenerated is published on the event bus for every finished
// record
const TopicCharacterGenerated = "character.generated"

// Config holds the dependencies for the character orchestrator
type Config struct {
	Dice   dice.Provider
	Engine engine.Engine
	Names  names.Composer
	NPC    npc.Generator
	Life   life.Generator

	IDGenerator idgen.Generator
	Clock       clock.Clock

	// EventBus is optional; when set, finished records are announced on it.
	EventBus events.EventBus

	// CharacterRepo is optional; without it, store and fetch operations
	// are unavailable.
	CharacterRepo characterrepo.Repository
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
	if c.Life == nil {
		vb.RequiredField("Life")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	dice          dice.Provider
	engine        engine.Engine
	names         names.Composer
	npc           npc.Generator
	life          life.Generator
	idGenerator   idgen.Generator
	clock         clock.Clock
	eventBus      events.EventBus
	characterRepo characterrepo.Repository
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		dice:          cfg.Dice,
		engine:        cfg.Engine,
		names:         cfg.Names,
		npc:           cfg.NPC,
		life:          cfg.Life,
		idGenerator:   cfg.IDGenerator,
		clock:         c,
		eventBus:      cfg.EventBus,
		characterRepo: cfg.CharacterRepo,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// newContext validates the shared request fields and builds a generation
// context
func (o *Orchestrator) newContext(req Request) (*engine.Context, error) {
	if req.Corpus == nil {
		return nil, errors.InvalidArgument("corpus is required")
	}
	if err := req.Corpus.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid corpus")
	}
	if req.Options != nil && req.Options.RaceExponent != 0 && !entities.ValidRaceExponent(req.Options.RaceExponent) {
		return nil, errors.InvalidArgumentf("race exponent must be 1, 1.5, or 2, got %g", req.Options.RaceExponent)
	}

	return engine.NewContext(req.Corpus, corpus.NewBooks(req.Books...), req.Options), nil
}

// Single-stage operations

// GenerateRace draws a race entry, honoring a manual race/subrace override
func (o *Orchestrator) GenerateRace(ctx context.Context, input *GenerateRaceInput) (*GenerateRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}

	race, err := o.generateRace(gctx)
	if err != nil {
		return nil, err
	}
	return &GenerateRaceOutput{Race: race}, nil
}

// GenerateGender flips a fair coin
func (o *Orchestrator) GenerateGender(ctx context.Context, input *GenerateGenderInput) (*GenerateGenderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}

	gender, err := o.generateGender(gctx)
	if err != nil {
		return nil, err
	}
	return &GenerateGenderOutput{Gender: gender}, nil
}

// GenerateName composes a name for the supplied in-progress record
func (o *Orchestrator) GenerateName(ctx context.Context, input *GenerateNameInput) (*GenerateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Record == nil || input.Record.RaceName() == "" {
		return nil, errors.InvalidArgument("record with a generated race is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}
	gctx.Record = input.Record

	result, err := o.names.Compose(gctx)
	if err != nil {
		return nil, err
	}
	return &GenerateNameOutput{Name: result.Name, ShortName: result.ShortName}, nil
}

// GenerateClass draws a class entry, honoring a manual override
func (o *Orchestrator) GenerateClass(ctx context.Context, input *GenerateClassInput) (*GenerateClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}

	class, err := o.generateClass(gctx)
	if err != nil {
		return nil, err
	}
	return &GenerateClassOutput{Class: class}, nil
}

// GenerateBackground draws a background entry, honoring a manual override
func (o *Orchestrator) GenerateBackground(ctx context.Context, input *GenerateBackgroundInput) (*GenerateBackgroundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}

	background, err := o.generateBackground(gctx)
	if err != nil {
		return nil, err
	}
	return &GenerateBackgroundOutput{Background: background}, nil
}

// GenerateOccupation draws an occupation from the trade table
func (o *Orchestrator) GenerateOccupation(ctx context.Context, input *GenerateOccupationInput) (*GenerateOccupationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}

	occupation, err := o.npc.Occupation(input.AllowAdventurer, o.classPicker(gctx))
	if err != nil {
		return nil, err
	}
	return &GenerateOccupationOutput{Occupation: occupation}, nil
}

// GenerateNPCTraits draws the personality bundle
func (o *Orchestrator) GenerateNPCTraits(ctx context.Context, input *GenerateNPCTraitsInput) (*GenerateNPCTraitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}

	traits, err := o.npc.Traits(gctx.Corpus.NPC)
	if err != nil {
		return nil, err
	}
	return &GenerateNPCTraitsOutput{Traits: traits}, nil
}

// GenerateLife builds a biography for the supplied in-progress record
func (o *Orchestrator) GenerateLife(ctx context.Context, input *GenerateLifeInput) (*GenerateLifeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Record == nil || input.Record.RaceName() == "" {
		return nil, errors.InvalidArgument("record with a generated race is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}
	gctx.Record = input.Record

	generated, err := o.life.Generate(gctx)
	if err != nil {
		return nil, err
	}
	return &GenerateLifeOutput{Life: generated}, nil
}
