package engine

import (
	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

func (e *engine) Resolve(gctx *Context, node *corpus.Node) (*entities.Value, error) {
	if node == nil {
		return nil, nil
	}

	switch node.Kind() {
	case corpus.KindScalar:
		return entities.Leaf(node.Scalar()), nil

	case corpus.KindList:
		elements := node.List()
		i, err := e.dice.UniformInt(len(elements))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick from corpus list")
		}
		return e.Resolve(gctx, elements[i])

	case corpus.KindMap:
		if node.HasSpecial() {
			current := node
			for _, token := range node.Special() {
				next, err := e.applySpecial(gctx, current, token)
				if err != nil {
					return nil, err
				}
				// Gate opcodes null the node and short-circuit the rest
				// of the chain.
				if next == nil {
					return nil, nil
				}
				current = next
			}
			return e.Resolve(gctx, current.StripSpecial())
		}

		children := make([]entities.Trait, 0, len(node.Keys()))
		for _, key := range node.Keys() {
			child, _ := node.Child(key)
			resolved, err := e.Resolve(gctx, child)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to resolve %q", key)
			}
			if resolved == nil {
				continue
			}
			children = append(children, entities.Trait{Name: key, Content: resolved})
		}
		// Parent collapses an empty child list to nil so emptiness
		// propagates upward.
		return entities.Parent(children), nil

	default:
		return nil, errors.Internalf("unknown corpus node kind %d", node.Kind())
	}
}

func (e *engine) RandomEntry(gctx *Context, collection *corpus.Node, key string) (*entities.Entry, error) {
	if collection == nil || collection.Kind() != corpus.KindMap {
		return nil, errors.InvalidArgument("entry collection must be a corpus mapping")
	}

	if key != entities.RandomKey {
		node, ok := collection.Child(key)
		if !ok {
			return nil, errors.NotFoundf("entry %q not found in collection", key)
		}
		detail, err := e.Resolve(gctx, node)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve entry %q", key)
		}
		return &entities.Entry{Name: key, Detail: detail}, nil
	}

	// Random selection only considers entries that carry a special tag and
	// pass the book filter; untagged entries are reachable by explicit
	// selection alone.
	var candidates []string
	for _, name := range collection.Keys() {
		node, _ := collection.Child(name)
		if !node.HasSpecial() {
			continue
		}
		if !corpus.IsAvailable(node.SpecialToken(), gctx.Books) {
			continue
		}
		candidates = append(candidates, name)
	}

	if len(candidates) == 0 {
		return nil, errors.NoEligibleEntry("no entry passed the book filter").
			WithMeta("used_books", gctx.Books.String())
	}

	name, err := e.dice.PickOne(candidates)
	if err != nil {
		return nil, err
	}

	node, _ := collection.Child(name)
	detail, err := e.Resolve(gctx, node)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve entry %q", name)
	}
	return &entities.Entry{Name: name, Detail: detail}, nil
}

func (e *engine) RandomEthnicity(gctx *Context) (string, error) {
	if gctx.Corpus == nil || gctx.Corpus.Names == nil {
		return "", errors.MissingCorpusField("names document is missing")
	}

	human, ok := gctx.Corpus.Names.Child("Human")
	if !ok || human.Kind() != corpus.KindMap {
		return "", errors.MissingCorpusField("names document has no Human mapping")
	}

	return e.dice.PickOne(human.Keys())
}
