package entities

import (
	"bytes"
	"encoding/json"
)

// Trait is one named, fully-resolved piece of a character: the output unit
// of corpus resolution.
type Trait struct {
	Name    string
	Content *Value
}

// Value is a resolved corpus value: either a leaf string or an ordered list
// of child traits. A nil *Value is a suppressed trait and never appears in
// output. Values are immutable once built, so records may share them.
type Value struct {
	Text     string
	Children []Trait
}

// Leaf creates a leaf value
func Leaf(text string) *Value {
	return &Value{Text: text}
}

// Parent creates a value from child traits. An empty child list collapses to
// nil so emptiness propagates upward.
func Parent(children []Trait) *Value {
	if len(children) == 0 {
		return nil
	}
	return &Value{Children: children}
}

// IsLeaf reports whether the value is a leaf string
func (v *Value) IsLeaf() bool {
	return len(v.Children) == 0
}

// Get returns the named direct child
func (v *Value) Get(name string) (*Value, bool) {
	if v == nil {
		return nil, false
	}
	for _, c := range v.Children {
		if c.Name == name {
			return c.Content, true
		}
	}
	return nil, false
}

// Find returns the first trait with the given name anywhere in the tree,
// walking children in display order
func (v *Value) Find(name string) (*Value, bool) {
	if v == nil {
		return nil, false
	}
	for _, c := range v.Children {
		if c.Name == name {
			return c.Content, true
		}
		if found, ok := c.Content.Find(name); ok {
			return found, ok
		}
	}
	return nil, false
}

// FindText returns the leaf text of the named trait found anywhere in the
// tree, or "" when absent or not a leaf
func FindText(v *Value, name string) string {
	found, ok := v.Find(name)
	if !ok || found == nil || !found.IsLeaf() {
		return ""
	}
	return found.Text
}

// MarshalJSON renders a leaf as a JSON string and a parent as an object with
// children in display order. Corpus keys are unique within a mapping, so the
// object form is lossless.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	if v.IsLeaf() {
		return json.Marshal(v.Text)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range v.Children {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		content, err := json.Marshal(c.Content)
		if err != nil {
			return nil, err
		}
		buf.Write(content)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
