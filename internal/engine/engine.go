// Package engine implements the content-resolution core: the recursive
// corpus tree walk, the special-case transforms, and the weighted race draw.
package engine

import (
	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// Engine resolves declarative corpus nodes into concrete character content
type Engine interface {
	// Resolve turns a corpus node into a fully-resolved value. A nil result
	// with a nil error is a suppressed trait.
	Resolve(gctx *Context, node *corpus.Node) (*entities.Value, error)

	// RandomEntry resolves one entry of a mapping collection. A concrete key
	// resolves that entry directly; the entities.RandomKey sentinel draws
	// uniformly among entries that carry a special tag and pass the book
	// filter. Returns errors.NoEligibleEntry when the filtered candidate set
	// is empty.
	RandomEntry(gctx *Context, collection *corpus.Node, key string) (*entities.Entry, error)

	// RandomRace draws a race name from the catalog using the weighted
	// selection of the race-weights table.
	RandomRace(gctx *Context) (string, error)

	// RandomEthnicity draws a human ethnicity from the names document.
	RandomEthnicity(gctx *Context) (string, error)
}

// Config holds the dependencies for the engine
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

type engine struct {
	dice dice.Provider
}

// New creates an engine with the provided dependencies
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &engine{dice: cfg.Dice}, nil
}
