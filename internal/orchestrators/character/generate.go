package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/engine/npc"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
	characterrepo "github.com/hearthfire/npcforge/internal/repositories/character"
)

// Stage helpers shared by the single-stage operations and GenerateAll.

func (o *Orchestrator) generateRace(gctx *engine.Context) (*entities.Entry, error) {
	key := entities.RandomKey
	if gctx.Options.Race != "" {
		key = gctx.Options.Race
	}

	race, err := o.engine.RandomEntry(gctx, gctx.Corpus.Races, key)
	if err != nil {
		return nil, err
	}

	if sub := gctx.Options.Subrace; sub != "" {
		detail, ok := replaceLeaf(race.Detail, "Subrace", sub)
		if !ok {
			return nil, errors.InvalidArgumentf("race %s has no subrace to override", race.Name)
		}
		race.Detail = detail
	}
	return race, nil
}

// generateGender draws from the corpus gender list when one is present.
// Without the list it falls back to an even coin between the two binary
// values.
func (o *Orchestrator) generateGender(gctx *engine.Context) (entities.Gender, error) {
	if gctx.Corpus.Misc != nil {
		if genders, ok := gctx.Corpus.Misc.Child("Genders"); ok {
			if texts := genders.Strings(); len(texts) > 0 {
				text, err := o.dice.PickOne(texts)
				if err != nil {
					return entities.GenderUnknown, err
				}
				return entities.ParseGender(text), nil
			}
		}
	}

	coin, err := o.dice.UniformInt(2)
	if err != nil {
		return entities.GenderUnknown, err
	}
	if coin == 0 {
		return entities.GenderMale, nil
	}
	return entities.GenderFemale, nil
}

func (o *Orchestrator) generateClass(gctx *engine.Context) (*entities.Entry, error) {
	key := entities.RandomKey
	if gctx.Options.Class != "" {
		key = gctx.Options.Class
	}
	return o.engine.RandomEntry(gctx, gctx.Corpus.Classes, key)
}

func (o *Orchestrator) generateBackground(gctx *engine.Context) (*entities.Entry, error) {
	key := entities.RandomKey
	if gctx.Options.Background != "" {
		key = gctx.Options.Background
	}
	return o.engine.RandomEntry(gctx, gctx.Corpus.Backgrounds, key)
}

// classPicker adapts the class draw for the occupation table's adventurer
// outcome
func (o *Orchestrator) classPicker(gctx *engine.Context) npc.ClassPicker {
	return func() (string, error) {
		entry, err := o.engine.RandomEntry(gctx, gctx.Corpus.Classes, entities.RandomKey)
		if err != nil {
			return "", err
		}
		return entry.Name, nil
	}
}

// replaceLeaf returns a copy of v with the first trait named name swapped
// for a leaf carrying text. Resolved values are shared between records, so
// the path down to the swapped trait is copied rather than mutated.
func replaceLeaf(v *entities.Value, name, text string) (*entities.Value, bool) {
	if v == nil || v.IsLeaf() {
		return v, false
	}
	for i, c := range v.Children {
		var replaced *entities.Value
		var ok bool
		if c.Name == name {
			replaced, ok = entities.Leaf(text), true
		} else {
			replaced, ok = replaceLeaf(c.Content, name, text)
		}
		if ok {
			children := make([]entities.Trait, len(v.Children))
			copy(children, v.Children)
			children[i].Content = replaced
			return &entities.Value{Children: children}, true
		}
	}
	return v, false
}

// GenerateAll runs every generation stage in dependency order and returns
// the assembled record. Locked fields are copied from Previous instead of
// regenerated; manual overrides steer the stages that support them.
func (o *Orchestrator) GenerateAll(ctx context.Context, input *GenerateAllInput) (*GenerateAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	gctx, err := o.newContext(input.Request)
	if err != nil {
		return nil, err
	}

	locks := gctx.Options.Locks
	if input.Previous == nil {
		for _, f := range entities.Fields() {
			if locks.Locked(f) {
				return nil, errors.InvalidArgumentf("field %s is locked but no previous record was supplied", f)
			}
		}
	}

	record := &entities.CharacterRecord{}
	gctx.Record = record

	if locks.Locked(entities.FieldRace) {
		record.Race = input.Previous.Race
	} else {
		record.Race, err = o.generateRace(gctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate race")
		}
	}

	if locks.Locked(entities.FieldGender) {
		record.Gender = input.Previous.Gender
	} else {
		record.Gender, err = o.generateGender(gctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate gender")
		}
	}

	switch {
	case locks.Locked(entities.FieldName):
		record.Name = input.Previous.Name
		record.ShortName = input.Previous.ShortName
	case gctx.Options.Name != "":
		record.Name = gctx.Options.Name
		record.ShortName = gctx.Options.Name
	default:
		result, err := o.names.Compose(gctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate name")
		}
		record.Name = result.Name
		record.ShortName = result.ShortName
	}

	if locks.Locked(entities.FieldClass) {
		record.Class = input.Previous.Class
	} else {
		record.Class, err = o.generateClass(gctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate class")
		}
	}

	if locks.Locked(entities.FieldBackground) {
		record.Background = input.Previous.Background
	} else {
		record.Background, err = o.generateBackground(gctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate background")
		}
	}

	if locks.Locked(entities.FieldOccupation) {
		record.Occupation = input.Previous.Occupation
	} else {
		// The adventurer outcome is reserved for siblings and life events;
		// the character's own trade always comes from the mundane rows.
		record.Occupation, err = o.npc.Occupation(false, o.classPicker(gctx))
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate occupation")
		}
	}

	if locks.Locked(entities.FieldNPCTraits) {
		record.NPCTraits = input.Previous.NPCTraits
	} else {
		record.NPCTraits, err = o.npc.Traits(gctx.Corpus.NPC)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate traits")
		}
	}

	if locks.Locked(entities.FieldLife) {
		record.Life = input.Previous.Life
	} else {
		record.Life, err = o.life.Generate(gctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate life")
		}
	}

	record.ID = o.idGenerator.Generate()
	record.GeneratedAt = o.clock.Now()

	if o.eventBus != nil {
		event := events.NewGameEvent(TopicCharacterGenerated, record, nil)
		if err := o.eventBus.Publish(ctx, event); err != nil {
			slog.Warn("failed to publish generated character",
				"character_id", record.ID,
				"error", err)
		}
	}

	if input.Store {
		if o.characterRepo == nil {
			return nil, errors.Unavailable("character storage is not configured")
		}
		if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Record: record}); err != nil {
			return nil, errors.Wrap(err, "failed to store character")
		}
		slog.Info("stored generated character",
			"character_id", record.ID,
			"race", record.RaceName())
	}

	return &GenerateAllOutput{Record: record}, nil
}

// Stored record operations. All of them require a configured repository.

func (o *Orchestrator) repo() (characterrepo.Repository, error) {
	if o.characterRepo == nil {
		return nil, errors.Unavailable("character storage is not configured")
	}
	return o.characterRepo, nil
}

// GetCharacter fetches a stored record by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	repo, err := o.repo()
	if err != nil {
		return nil, err
	}

	output, err := repo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Record: output.Record}, nil
}

// ListCharacters returns every stored record
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	repo, err := o.repo()
	if err != nil {
		return nil, err
	}

	output, err := repo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, err
	}
	return &ListCharactersOutput{Records: output.Records}, nil
}

// DeleteCharacter removes a stored record by ID
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	repo, err := o.repo()
	if err != nil {
		return nil, err
	}

	if _, err := repo.Delete(ctx, characterrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}
	return &DeleteCharacterOutput{}, nil
}
