package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hearthfire/npcforge/internal/errors"
)

// Set holds the named documents of one corpus
type Set struct {
	Races       *Node
	Classes     *Node
	Backgrounds *Node
	Names       *Node
	Life        *Node
	NPC         *Node
	Misc        *Node
	Books       *Node

	// Quick holds the flat pools of the quick-generation game system.
	// Optional; only the quick orchestrator consumes it.
	Quick *Node
}

// document extensions the loader accepts
var documentExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// LoadDir reads every corpus document in a directory. Documents are matched
// by base file name (races.json, names.yaml, ...); files with unknown names
// are ignored so a corpus directory can carry side material.
func LoadDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read corpus directory")
	}

	set := &Set{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if !documentExtensions[ext] {
			continue
		}

		target := set.target(strings.TrimSuffix(entry.Name(), ext))
		if target == nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read corpus document %s", entry.Name())
		}

		node, err := Decode(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode corpus document %s", entry.Name())
		}
		*target = node
	}

	return set, nil
}

func (s *Set) target(name string) **Node {
	switch strings.ToLower(name) {
	case "races":
		return &s.Races
	case "classes":
		return &s.Classes
	case "backgrounds":
		return &s.Backgrounds
	case "names":
		return &s.Names
	case "life":
		return &s.Life
	case "npc":
		return &s.NPC
	case "misc":
		return &s.Misc
	case "books":
		return &s.Books
	case "quick":
		return &s.Quick
	default:
		return nil
	}
}

// Validate checks that the documents the generation pipeline needs are
// present. The quick document stays optional.
func (s *Set) Validate() error {
	vb := errors.NewValidationBuilder()

	if s.Races == nil {
		vb.RequiredField("Races")
	}
	if s.Classes == nil {
		vb.RequiredField("Classes")
	}
	if s.Backgrounds == nil {
		vb.RequiredField("Backgrounds")
	}
	if s.Names == nil {
		vb.RequiredField("Names")
	}
	if s.Life == nil {
		vb.RequiredField("Life")
	}
	if s.NPC == nil {
		vb.RequiredField("NPC")
	}
	if s.Misc == nil {
		vb.RequiredField("Misc")
	}

	return vb.Build()
}
