// Package entities implements the generated character record and its parts.
// These are data-only structs; all generation logic lives in the engine and
// orchestrator layers.
package entities

import "time"

// Gender of a generated character
type Gender string

// Gender values. Anything outside the two binary values is treated as
// unknown by gender-conditioned lookups, which then flip a coin.
const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

// ParseGender maps corpus gender text onto the enum
func ParseGender(s string) Gender {
	switch s {
	case string(GenderMale):
		return GenderMale
	case string(GenderFemale):
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// Binary reports whether the gender is one of the two binary values
func (g Gender) Binary() bool {
	return g == GenderMale || g == GenderFemale
}

// Entry is a named corpus entry with its resolved subtree: a race, class, or
// background as it appears on the finished character
type Entry struct {
	Name   string `json:"name"`
	Detail *Value `json:"detail,omitempty"`
}

// NPCTraits is the DMG-style personality bundle
type NPCTraits struct {
	Appearance  string `json:"appearance"`
	HighAbility string `json:"high_ability"`
	LowAbility  string `json:"low_ability"`
	Talent      string `json:"talent"`
	Mannerism   string `json:"mannerism"`
	Interaction string `json:"interaction"`
	Ideal       string `json:"ideal"`
	Bond        string `json:"bond"`
	FlawSecret  string `json:"flaw_secret"`
}

// Life is the generated biography
type Life struct {
	Origin   *Value `json:"origin"`
	Siblings *Value `json:"siblings,omitempty"`
	Events   *Value `json:"events"`
	Trinket  string `json:"trinket"`
}

// CharacterRecord is the accumulated output of one generation request.
// Fields are filled in dependency order (Race first, Life last) and the
// record is immutable once handed to the caller: the next request builds a
// new record, copying locked fields by value.
type CharacterRecord struct {
	ID          string     `json:"id,omitempty"`
	Race        *Entry     `json:"race,omitempty"`
	Gender      Gender     `json:"gender,omitempty"`
	Name        string     `json:"name,omitempty"`
	ShortName   string     `json:"short_name,omitempty"`
	Class       *Entry     `json:"class,omitempty"`
	Background  *Entry     `json:"background,omitempty"`
	Occupation  string     `json:"occupation,omitempty"`
	NPCTraits   *NPCTraits `json:"npc_traits,omitempty"`
	Life        *Life      `json:"life,omitempty"`
	GeneratedAt time.Time  `json:"generated_at,omitzero"`
}

// RaceName returns the race name, or "" before race generation
func (c *CharacterRecord) RaceName() string {
	if c == nil || c.Race == nil {
		return ""
	}
	return c.Race.Name
}

// Subrace returns the resolved subrace text, or "" when the race has none
func (c *CharacterRecord) Subrace() string {
	if c == nil || c.Race == nil {
		return ""
	}
	return FindText(c.Race.Detail, "Subrace")
}

// GetID returns the record's ID
func (c *CharacterRecord) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterRecord) GetType() string {
	return "character"
}
