package corpus

import (
	"strings"
)

// Universal book tokens. Every used-books set carries both: real-world name
// material and the base book are always available.
const (
	BookReal = "real"
	BookBase = "phb"
)

// bookGatePrefix marks a special clause as a book gate
const bookGatePrefix = "book-"

// Books is the ordered set of source-book tokens the caller has enabled
type Books struct {
	order []string
	set   map[string]struct{}
}

// NewBooks builds a used-books set from the given codes. Codes are
// lower-cased and de-duplicated; the two universal tokens are always
// included.
func NewBooks(codes ...string) *Books {
	b := &Books{set: make(map[string]struct{})}
	b.add(BookReal)
	b.add(BookBase)
	for _, c := range codes {
		b.add(strings.ToLower(strings.TrimSpace(c)))
	}
	return b
}

func (b *Books) add(code string) {
	if code == "" {
		return
	}
	if _, ok := b.set[code]; ok {
		return
	}
	b.order = append(b.order, code)
	b.set[code] = struct{}{}
}

// Contains reports whether the book code is enabled
func (b *Books) Contains(code string) bool {
	_, ok := b.set[strings.ToLower(code)]
	return ok
}

// Codes returns the enabled book codes in insertion order
func (b *Books) Codes() []string {
	return append([]string{}, b.order...)
}

// String renders the set for logging and error metadata
func (b *Books) String() string {
	return strings.Join(b.order, " ")
}

// IsAvailable decides whether an entry gated by the given requirement token
// is available under the used-books set.
//
// The token is a whitespace-separated clause list. Only clauses with the
// book- prefix are gates, and the FIRST gate clause decides the whole token:
// later gate clauses are never consulted. A gate clause carries one or more
// book codes concatenated with no separator, so availability is a substring
// intersection against the used set. A token with no gate clause is not
// available; callers special-case entries that are always available.
func IsAvailable(token string, used *Books) bool {
	if used == nil {
		return false
	}

	for _, clause := range strings.Fields(token) {
		if !strings.HasPrefix(clause, bookGatePrefix) {
			continue
		}
		return CodesIntersect(clause[len(bookGatePrefix):], used)
	}

	return false
}

// CodesIntersect reports whether any used-book code appears in the given
// gate payload (book codes concatenated with no separator)
func CodesIntersect(payload string, used *Books) bool {
	payload = strings.ToLower(payload)
	for _, code := range used.order {
		if strings.Contains(payload, code) {
			return true
		}
	}
	return false
}
