package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthfire/npcforge/internal/errors"
)

func TestUniformInt_Bounds(t *testing.T) {
	p := NewSeeded(1)

	for i := 0; i < 10000; i++ {
		n, err := p.UniformInt(7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)
	}
}

func TestUniformInt_EmptyBound(t *testing.T) {
	p := NewSeeded(1)

	_, err := p.UniformInt(0)
	assert.True(t, errors.IsEmptyInput(err))

	_, err = p.UniformInt(-3)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestUniformInt_Frequency(t *testing.T) {
	p := NewSeeded(42)

	const draws = 100000
	const k = 5
	counts := make([]int, k)
	for i := 0; i < draws; i++ {
		n, err := p.UniformInt(k)
		require.NoError(t, err)
		counts[n]++
	}

	// Each value should land within 5% of the expected 1/k frequency.
	expected := float64(draws) / k
	for v, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.05,
			"value %d drawn %d times", v, c)
	}
}

func TestPickOne(t *testing.T) {
	p := NewSeeded(3)
	pool := []string{"alpha", "beta", "gamma"}

	for i := 0; i < 1000; i++ {
		v, err := p.PickOne(pool)
		require.NoError(t, err)
		assert.Contains(t, pool, v)
	}

	_, err := p.PickOne(nil)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestPickMany(t *testing.T) {
	p := NewSeeded(7)
	pool := []string{"a", "b", "c", "d", "e"}

	picked, err := p.PickMany(pool, 3)
	require.NoError(t, err)
	assert.Len(t, picked, 3)

	seen := map[string]struct{}{}
	for _, v := range picked {
		assert.Contains(t, pool, v)
		_, dup := seen[v]
		assert.False(t, dup, "duplicate pick %q", v)
		seen[v] = struct{}{}
	}
}

func TestPickMany_InfeasibleCount(t *testing.T) {
	p := NewSeeded(7)

	_, err := p.PickMany([]string{"a", "b"}, 3)
	assert.True(t, errors.IsInfeasibleCount(err))

	// Distinctness is by value, not by slot.
	_, err = p.PickMany([]string{"a", "a", "a"}, 2)
	assert.True(t, errors.IsInfeasibleCount(err))

	_, err = p.PickMany(nil, 1)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestRoll_Notation(t *testing.T) {
	p := NewSeeded(11)

	for i := 0; i < 1000; i++ {
		n, err := p.Roll("3d6")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 18)
	}

	for i := 0; i < 1000; i++ {
		n, err := p.Roll("1d20")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 20)
	}
}

func TestRoll_Literal(t *testing.T) {
	p := NewSeeded(11)

	n, err := p.Roll("5")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRoll_Malformed(t *testing.T) {
	p := NewSeeded(11)

	for _, spec := range []string{"", "d6", "3d", "3x6", "-1d6", "two"} {
		_, err := p.Roll(spec)
		assert.True(t, errors.IsInvalidDiceSpec(err), "spec %q", spec)
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := NewSeeded(99)
	b := NewSeeded(99)

	for i := 0; i < 100; i++ {
		na, err := a.UniformInt(1000)
		require.NoError(t, err)
		nb, err := b.UniformInt(1000)
		require.NoError(t, err)
		assert.Equal(t, na, nb)
	}
}
