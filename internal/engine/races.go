package engine

import (
	"math"
	"strings"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// raceWeightsKey is the misc document table of explicit race weights
const raceWeightsKey = "Race Weights"

// RandomRace draws a race by weight. Table entries weigh weight^p; any
// catalog race outside the table that passes the book filter and is not
// gated to the base book weighs 1. The draw is a uniform real in [0, total)
// walked down the catalog in iteration order.
func (e *engine) RandomRace(gctx *Context) (string, error) {
	if gctx.Corpus == nil || gctx.Corpus.Races == nil {
		return "", errors.MissingCorpusField("races document is missing")
	}
	catalog := gctx.Corpus.Races

	var weights *corpus.Node
	if gctx.Corpus.Misc != nil {
		if table, ok := gctx.Corpus.Misc.Child(raceWeightsKey); ok && table.Kind() == corpus.KindMap {
			weights = table
		}
	}

	exponent := entities.RaceExponentFlat
	if gctx.Options != nil && gctx.Options.RaceExponent != 0 {
		if !entities.ValidRaceExponent(gctx.Options.RaceExponent) {
			return "", errors.InvalidArgumentf("race exponent must be 1, 1.5, or 2, got %g", gctx.Options.RaceExponent)
		}
		exponent = gctx.Options.RaceExponent
	}

	type candidate struct {
		name   string
		weight float64
	}

	var candidates []candidate
	total := 0.0
	for _, name := range catalog.Keys() {
		entry, _ := catalog.Child(name)
		token := entry.SpecialToken()

		var weight float64
		if weights != nil {
			if w, ok := weights.Child(name); ok {
				base, err := w.Int()
				if err != nil {
					return "", errors.Wrapf(err, "bad weight for race %q", name)
				}
				if base > 0 {
					weight = math.Pow(float64(base), exponent)
				}
			}
		}

		if weight == 0 {
			// Implicit weight for book-eligible races outside the table,
			// excluding those gated to the base book.
			if !corpus.IsAvailable(token, gctx.Books) {
				continue
			}
			if baseBookGated(token) {
				continue
			}
			weight = 1
		}

		candidates = append(candidates, candidate{name: name, weight: weight})
		total += weight
	}

	if len(candidates) == 0 || total <= 0 {
		return "", errors.NoEligibleEntry("race catalog has no eligible entries").
			WithMeta("used_books", gctx.Books.String())
	}

	remainder, err := e.dice.UniformFloat(total)
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		remainder -= c.weight
		if remainder < 0 {
			return c.name, nil
		}
	}
	// Floating point drift can leave a sliver above the last entry.
	return candidates[len(candidates)-1].name, nil
}

// baseBookGated reports whether the requirement token's deciding gate clause
// names the base book
func baseBookGated(token string) bool {
	for _, clause := range strings.Fields(token) {
		if !strings.HasPrefix(clause, "book-") {
			continue
		}
		return strings.Contains(clause, corpus.BookBase)
	}
	return false
}
