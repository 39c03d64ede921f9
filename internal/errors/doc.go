// Package errors provides the structured error handling used across npcforge.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for constructor configs
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.EmptyInput("cannot pick from an empty pool")
//	err := errors.InvalidDiceSpecf("cannot parse dice notation %q", spec)
//
// Adding metadata:
//
//	err := errors.NoEligibleEntry("no race passed the book filter").
//	    WithMeta("used_books", books)
//
// Wrapping errors:
//
//	if err := engine.Resolve(ctx, node); err != nil {
//	    return errors.Wrap(err, "failed to resolve race entry")
//	}
//
// # Error Checking
//
//	if errors.IsNoEligibleEntry(err) {
//	    // widen the used-books set and retry
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder inside Config.Validate:
//
//	vb := errors.NewValidationBuilder()
//	if c.Dice == nil {
//	    vb.RequiredField("Dice")
//	}
//	return vb.Build()
//
// # Error Codes
//
// Generation-specific codes:
//   - EmptyInput: a pick or roll was attempted on an empty pool
//   - InfeasibleCount: a multi-pick requested more distinct values than exist
//   - InvalidDiceSpec: malformed dice notation
//   - NoEligibleEntry: random category selection found zero book-eligible candidates
//   - MissingCorpusField: a required named sub-field is absent from a corpus node
//
// General codes carried by infrastructure:
//   - NotFound, InvalidArgument, AlreadyExists, Internal, Unavailable
package errors
