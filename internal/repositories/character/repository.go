// Package character provides the interface for generated character
// persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/hearthfire/npcforge/internal/repositories/character Repository

import (
	"context"

	"github.com/hearthfire/npcforge/internal/entities"
)

// Repository defines the interface for generated character persistence.
// Records expire after the configured retention; the store is a session
// cache, not an archive.
type Repository interface {
	// Create stores a new character record
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a record with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist or has expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a character record by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves the records still alive in the store
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for storing a character
type CreateInput struct {
	Record *entities.CharacterRecord
}

// CreateOutput defines the output for storing a character
type CreateOutput struct {
	Record *entities.CharacterRecord
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Record *entities.CharacterRecord
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput defines the input for listing characters
type ListInput struct {
	// Empty for now; paging can be added later
}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Records []*entities.CharacterRecord
}
