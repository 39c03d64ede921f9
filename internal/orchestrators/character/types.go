package character

import (
	"context"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/entities"
)

// Service defines the character generation orchestrator interface
type Service interface {
	// Single-stage operations
	GenerateRace(ctx context.Context, input *GenerateRaceInput) (*GenerateRaceOutput, error)
	GenerateGender(ctx context.Context, input *GenerateGenderInput) (*GenerateGenderOutput, error)
	GenerateName(ctx context.Context, input *GenerateNameInput) (*GenerateNameOutput, error)
	GenerateClass(ctx context.Context, input *GenerateClassInput) (*GenerateClassOutput, error)
	GenerateBackground(ctx context.Context, input *GenerateBackgroundInput) (*GenerateBackgroundOutput, error)
	GenerateOccupation(ctx context.Context, input *GenerateOccupationInput) (*GenerateOccupationOutput, error)
	GenerateNPCTraits(ctx context.Context, input *GenerateNPCTraitsInput) (*GenerateNPCTraitsOutput, error)
	GenerateLife(ctx context.Context, input *GenerateLifeInput) (*GenerateLifeOutput, error)

	// Full assembly
	GenerateAll(ctx context.Context, input *GenerateAllInput) (*GenerateAllOutput, error)

	// Stored record operations
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
}

// Request carries the fields shared by every generation operation
type Request struct {
	Corpus  *corpus.Set
	Books   []string
	Options *entities.Options
}

// GenerateRaceInput defines the request for generating a race
type GenerateRaceInput struct {
	Request
}

// GenerateRaceOutput defines the response for generating a race
type GenerateRaceOutput struct {
	Race *entities.Entry
}

// GenerateGenderInput defines the request for generating a gender
type GenerateGenderInput struct {
	Request
}

// GenerateGenderOutput defines the response for generating a gender
type GenerateGenderOutput struct {
	Gender entities.Gender
}

// GenerateNameInput defines the request for generating a name. Record must
// carry at least a race.
type GenerateNameInput struct {
	Request
	Record *entities.CharacterRecord
}

// GenerateNameOutput defines the response for generating a name
type GenerateNameOutput struct {
	Name      string
	ShortName string
}

// GenerateClassInput defines the request for generating a class
type GenerateClassInput struct {
	Request
}

// GenerateClassOutput defines the response for generating a class
type GenerateClassOutput struct {
	Class *entities.Entry
}

// GenerateBackgroundInput defines the request for generating a background
type GenerateBackgroundInput struct {
	Request
}

// GenerateBackgroundOutput defines the response for generating a background
type GenerateBackgroundOutput struct {
	Background *entities.Entry
}

// GenerateOccupationInput defines the request for generating an occupation
type GenerateOccupationInput struct {
	Request

	// AllowAdventurer admits the top-of-table adventurer outcome.
	AllowAdventurer bool
}

// GenerateOccupationOutput defines the response for generating an occupation
type GenerateOccupationOutput struct {
	Occupation string
}

// GenerateNPCTraitsInput defines the request for generating NPC traits
type GenerateNPCTraitsInput struct {
	Request
}

// GenerateNPCTraitsOutput defines the response for generating NPC traits
type GenerateNPCTraitsOutput struct {
	Traits *entities.NPCTraits
}

// GenerateLifeInput defines the request for generating a biography. Record
// must carry at least a race.
type GenerateLifeInput struct {
	Request
	Record *entities.CharacterRecord
}

// GenerateLifeOutput defines the response for generating a biography
type GenerateLifeOutput struct {
	Life *entities.Life
}

// GenerateAllInput defines the request for generating a full character
type GenerateAllInput struct {
	Request

	// Previous supplies the field values copied for locked fields.
	Previous *entities.CharacterRecord

	// Store persists the finished record when a repository is configured.
	Store bool
}

// GenerateAllOutput defines the response for generating a full character
type GenerateAllOutput struct {
	Record *entities.CharacterRecord
}

// GetCharacterInput defines the request for fetching a stored record
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the response for fetching a stored record
type GetCharacterOutput struct {
	Record *entities.CharacterRecord
}

// ListCharactersInput defines the request for listing stored records
type ListCharactersInput struct {
	// Empty for now; paging can be added later
}

// ListCharactersOutput defines the response for listing stored records
type ListCharactersOutput struct {
	Records []*entities.CharacterRecord
}

// DeleteCharacterInput defines the request for deleting a stored record
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput defines the response for deleting a stored record
type DeleteCharacterOutput struct {
	// Empty for now, can be extended later
}
