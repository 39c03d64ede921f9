package dice

import (
	"math/rand/v2"

	"github.com/hearthfire/npcforge/internal/errors"
)

// SeededRoller is a deterministic die source. It satisfies the rpg-toolkit
// dice.Roller interface so it can be swapped under the provider for
// reproducible generation (the CLI --seed flag) and for tests.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a roller seeded with the given value
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)),
	}
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.EmptyInputf("die size must be positive, got %d", size)
	}
	return r.rng.IntN(size) + 1, nil
}

// RollN returns count values in [1, size]
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.EmptyInputf("die count must be positive, got %d", count)
	}

	rolls := make([]int, count)
	for i := range rolls {
		n, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = n
	}
	return rolls, nil
}

// NewSeeded creates a provider over a deterministic seeded roller
func NewSeeded(seed int64) Provider {
	return New(&Config{Roller: NewSeededRoller(seed)})
}
