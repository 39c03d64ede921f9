// Package corpus models the declarative data the generation engine queries:
// races, classes, backgrounds, names, life tables, and npc tables. Documents
// are decoded once at load time into a closed Node sum type; nodes are
// read-only afterwards.
package corpus

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hearthfire/npcforge/internal/errors"
)

// specialKey is the mapping attribute carrying transform opcodes. It is
// stripped from the children at decode time.
const specialKey = "special"

// Kind discriminates the node shapes
type Kind int

// Node shapes
const (
	KindScalar Kind = iota
	KindList
	KindMap
)

// Node is one corpus value: a scalar, a pick-one-uniformly list, or an
// ordered mapping optionally tagged with special opcodes.
type Node struct {
	kind     Kind
	scalar   string
	list     []*Node
	keys     []string
	children map[string]*Node
	special  []string
}

// Kind returns the node shape
func (n *Node) Kind() Kind {
	return n.kind
}

// Scalar returns the scalar text of a KindScalar node
func (n *Node) Scalar() string {
	return n.scalar
}

// Int parses the scalar as an integer
func (n *Node) Int() (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(n.scalar))
	if err != nil {
		return 0, errors.InvalidArgumentf("corpus scalar %q is not an integer", n.scalar)
	}
	return v, nil
}

// List returns the elements of a KindList node
func (n *Node) List() []*Node {
	return n.list
}

// Strings returns the scalar elements of a KindList node, skipping any
// non-scalar entries
func (n *Node) Strings() []string {
	out := make([]string, 0, len(n.list))
	for _, el := range n.list {
		if el.kind == KindScalar {
			out = append(out, el.scalar)
		}
	}
	return out
}

// Keys returns the child names of a KindMap node in corpus order
func (n *Node) Keys() []string {
	return n.keys
}

// Child returns the named child of a KindMap node
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Special returns the opcode tokens attached to the node, in declared order
func (n *Node) Special() []string {
	return n.special
}

// HasSpecial reports whether the node carries any opcode tokens
func (n *Node) HasSpecial() bool {
	return len(n.special) > 0
}

// SpecialToken returns the entire special attribute as one token string
func (n *Node) SpecialToken() string {
	return strings.Join(n.special, " ")
}

// Constructors. Used by the loader and by test fixtures.

// Scalar creates a scalar node
func Scalar(text string) *Node {
	return &Node{kind: KindScalar, scalar: text}
}

// List creates a list node
func List(elements ...*Node) *Node {
	return &Node{kind: KindList, list: elements}
}

// ScalarList creates a list node of scalars
func ScalarList(values ...string) *Node {
	elements := make([]*Node, len(values))
	for i, v := range values {
		elements[i] = Scalar(v)
	}
	return List(elements...)
}

// Pair is one named child of a map node
type Pair struct {
	Key   string
	Value *Node
}

// Map creates a map node with children in the given order
func Map(pairs ...Pair) *Node {
	n := &Node{
		kind:     KindMap,
		keys:     make([]string, 0, len(pairs)),
		children: make(map[string]*Node, len(pairs)),
	}
	for _, p := range pairs {
		n.keys = append(n.keys, p.Key)
		n.children[p.Key] = p.Value
	}
	return n
}

// WithSpecial returns a copy of the node tagged with the given opcode tokens
func (n *Node) WithSpecial(tokens ...string) *Node {
	clone := *n
	clone.special = tokens
	return &clone
}

// StripSpecial returns a copy of the node with no opcode tokens, sharing the
// children of the original
func (n *Node) StripSpecial() *Node {
	clone := *n
	clone.special = nil
	return &clone
}

// ReplaceChild returns a copy of a map node with one child swapped. The
// original node and its other children are shared, never mutated.
func (n *Node) ReplaceChild(key string, child *Node) *Node {
	clone := *n
	clone.children = make(map[string]*Node, len(n.children))
	for k, v := range n.children {
		clone.children[k] = v
	}
	if _, exists := clone.children[key]; !exists {
		clone.keys = append(append([]string{}, n.keys...), key)
	}
	clone.children[key] = child
	return &clone
}

// Decode decodes one corpus document. YAML is a JSON superset and the yaml
// AST keeps mapping order, so a single decoder covers .json and .yaml
// documents while preserving corpus iteration order.
func Decode(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse corpus document")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.InvalidArgument("corpus document is empty")
		}
		root = root.Content[0]
	}

	return decodeNode(root)
}

func decodeNode(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.ScalarNode:
		return Scalar(y.Value), nil

	case yaml.SequenceNode:
		elements := make([]*Node, 0, len(y.Content))
		for _, el := range y.Content {
			n, err := decodeNode(el)
			if err != nil {
				return nil, err
			}
			elements = append(elements, n)
		}
		return List(elements...), nil

	case yaml.MappingNode:
		node := &Node{
			kind:     KindMap,
			children: make(map[string]*Node, len(y.Content)/2),
		}
		for i := 0; i+1 < len(y.Content); i += 2 {
			key := y.Content[i].Value
			child, err := decodeNode(y.Content[i+1])
			if err != nil {
				return nil, err
			}

			if key == specialKey && child.kind == KindScalar {
				node.special = strings.Fields(child.scalar)
				continue
			}

			node.keys = append(node.keys, key)
			node.children[key] = child
		}
		return node, nil

	case yaml.AliasNode:
		return decodeNode(y.Alias)

	default:
		return nil, errors.InvalidArgumentf("unsupported corpus node kind %d", y.Kind)
	}
}
