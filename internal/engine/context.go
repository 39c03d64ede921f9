package engine

import (
	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/entities"
)

// EthnicityUnknown is cached when the half-ethnicity roll leaves the human
// heritage undetermined
const EthnicityUnknown = "Unknown"

// Context carries the state of one generation request. It is created per
// call, threaded explicitly through every stage, and never shared between
// concurrent requests. Later stages read earlier stage output from Record;
// the cached ethnicity is set once per character and reused by dependent
// name lookups.
type Context struct {
	Corpus  *corpus.Set
	Books   *corpus.Books
	Options *entities.Options

	// Record is the in-progress character. Stages append to it in the
	// fixed order Race through Life.
	Record *entities.CharacterRecord

	ethnicity string
}

// NewContext creates a fresh generation context
func NewContext(set *corpus.Set, books *corpus.Books, opts *entities.Options) *Context {
	if books == nil {
		books = corpus.NewBooks()
	}
	if opts == nil {
		opts = entities.NewOptions()
	}
	return &Context{
		Corpus:  set,
		Books:   books,
		Options: opts,
		Record:  &entities.CharacterRecord{},
	}
}

// Ethnicity returns the cached human ethnicity, or "" when none has been
// rolled yet this request
func (c *Context) Ethnicity() string {
	return c.ethnicity
}

// SetEthnicity caches the human ethnicity for the rest of the request
func (c *Context) SetEthnicity(ethnicity string) {
	c.ethnicity = ethnicity
}
