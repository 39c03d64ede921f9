package entities

// RandomKey is the selection sentinel: callers pass it instead of a concrete
// entry name to request a random, book-filtered draw.
const RandomKey = "random"

// Field names a lockable slot of the character record
type Field string

// Lockable fields, in generation order
const (
	FieldRace       Field = "race"
	FieldGender     Field = "gender"
	FieldName       Field = "name"
	FieldClass      Field = "class"
	FieldBackground Field = "background"
	FieldOccupation Field = "occupation"
	FieldNPCTraits  Field = "npc_traits"
	FieldLife       Field = "life"
)

// Fields returns every lockable field in generation order
func Fields() []Field {
	return []Field{
		FieldRace, FieldGender, FieldName, FieldClass,
		FieldBackground, FieldOccupation, FieldNPCTraits, FieldLife,
	}
}

// LockSet controls which fields the assembler preserves from the prior
// record instead of regenerating
type LockSet map[Field]bool

// Locked reports whether the field is locked
func (l LockSet) Locked(f Field) bool {
	return l != nil && l[f]
}

// LockAll locks every field
func (l LockSet) LockAll() {
	for _, f := range Fields() {
		l[f] = true
	}
}

// UnlockAll unlocks every field
func (l LockSet) UnlockAll() {
	for _, f := range Fields() {
		delete(l, f)
	}
}

// EthnicityMode selects the human name flavor
type EthnicityMode string

// Ethnicity modes. Real-world mode draws from real-world name pools and
// never appends a surname.
const (
	EthnicityFantasy   EthnicityMode = "fantasy"
	EthnicityRealWorld EthnicityMode = "real"
)

// Race weighting exponents accepted by the weighted race selector
const (
	RaceExponentFlat    = 1.0
	RaceExponentSkewed  = 1.5
	RaceExponentExtreme = 2.0
)

// ValidRaceExponent reports whether p is one of the supported exponents
func ValidRaceExponent(p float64) bool {
	return p == RaceExponentFlat || p == RaceExponentSkewed || p == RaceExponentExtreme
}

// Options is the caller's option set for one generation request
type Options struct {
	// EthnicityMode selects fantasy or real-world human names.
	EthnicityMode EthnicityMode

	// RaceExponent skews the weighted race draw toward (or away from) the
	// explicit weight table. One of 1, 1.5, 2.
	RaceExponent float64

	// Locks marks fields to copy from the prior record.
	Locks LockSet

	// Manual overrides. An empty string means "generate".
	Race       string
	Subrace    string
	Class      string
	Background string
	Name       string
}

// NewOptions returns options with the defaults the UI starts from
func NewOptions() *Options {
	return &Options{
		EthnicityMode: EthnicityFantasy,
		RaceExponent:  RaceExponentFlat,
		Locks:         LockSet{},
	}
}
