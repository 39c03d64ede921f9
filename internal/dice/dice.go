// Package dice implements the randomness provider behind every draw the
// generation engine makes: uniform integers, pool picks, multi-picks without
// replacement, and dice-notation rolls.
package dice

//go:generate mockgen -destination=mock/mock_provider.go -package=dicemock github.com/hearthfire/npcforge/internal/dice Provider

import (
	"regexp"
	"strconv"
	"strings"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/hearthfire/npcforge/internal/errors"
)

const (
	// Retry cap for duplicate-rejection draws. A well-formed corpus never
	// comes close; a malformed one fails with InfeasibleCount instead of
	// spinning forever.
	maxRejectionDraws = 1000

	// floatResolution is the grain of UniformFloat draws.
	floatResolution = 1 << 30
)

// Regex for parsing dice notation like "2d6", "1d20", "3d8"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Provider defines the interface for all random draws
type Provider interface {
	// UniformInt returns an integer in [0, max).
	// Returns errors.EmptyInput when max <= 0; it never degrades to 0.
	UniformInt(max int) (int, error)

	// UniformFloat returns a real number in [0, max)
	UniformFloat(max float64) (float64, error)

	// PickOne returns one element of values, uniformly.
	// Returns errors.EmptyInput on an empty slice.
	PickOne(values []string) (string, error)

	// PickMany returns count distinct elements of values (distinct by value
	// equality), in draw order. Returns errors.InfeasibleCount when count
	// exceeds the number of distinct values.
	PickMany(values []string, count int) ([]string, error)

	// Roll evaluates dice notation: "NdM" sums N draws of [1,M], a bare
	// integer literal "N" is the constant N.
	// Returns errors.InvalidDiceSpec on malformed input.
	Roll(spec string) (int, error)
}

// Config holds the dependencies for the dice provider
type Config struct {
	// Roller is the underlying die source. Defaults to the rpg-toolkit
	// crypto roller when nil.
	Roller toolkitdice.Roller
}

type provider struct {
	roller toolkitdice.Roller
}

// New creates a dice provider backed by the configured roller
func New(cfg *Config) Provider {
	if cfg == nil {
		cfg = &Config{}
	}

	roller := cfg.Roller
	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	return &provider{roller: roller}
}

func (p *provider) UniformInt(max int) (int, error) {
	if max <= 0 {
		return 0, errors.EmptyInputf("uniform draw requires a positive bound, got %d", max)
	}

	n, err := p.roller.Roll(max)
	if err != nil {
		return 0, errors.Wrap(err, "die roll failed")
	}

	// The roller returns [1, max]; the engine works in [0, max).
	return n - 1, nil
}

func (p *provider) UniformFloat(max float64) (float64, error) {
	if max <= 0 {
		return 0, errors.EmptyInputf("uniform draw requires a positive bound, got %g", max)
	}

	n, err := p.UniformInt(floatResolution)
	if err != nil {
		return 0, err
	}

	return float64(n) / float64(floatResolution) * max, nil
}

func (p *provider) PickOne(values []string) (string, error) {
	if len(values) == 0 {
		return "", errors.EmptyInput("cannot pick from an empty pool")
	}

	i, err := p.UniformInt(len(values))
	if err != nil {
		return "", err
	}

	return values[i], nil
}

func (p *provider) PickMany(values []string, count int) ([]string, error) {
	if len(values) == 0 {
		return nil, errors.EmptyInput("cannot pick from an empty pool")
	}
	if count <= 0 {
		return nil, errors.InfeasibleCountf("pick count must be positive, got %d", count)
	}

	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	if count > len(distinct) {
		return nil, errors.InfeasibleCountf(
			"requested %d distinct values from a pool of %d", count, len(distinct))
	}

	picked := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for draws := 0; len(picked) < count; draws++ {
		if draws >= maxRejectionDraws {
			return nil, errors.InfeasibleCountf(
				"gave up after %d draws picking %d distinct values", maxRejectionDraws, count)
		}

		v, err := p.PickOne(values)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		picked = append(picked, v)
	}

	return picked, nil
}

func (p *provider) Roll(spec string) (int, error) {
	trimmed := strings.TrimSpace(strings.ToLower(spec))

	// Bare integer literal rolls to itself
	if literal, err := strconv.Atoi(trimmed); err == nil {
		return literal, nil
	}

	matches := diceNotationRegex.FindStringSubmatch(trimmed)
	if len(matches) != 3 {
		return 0, errors.InvalidDiceSpecf("cannot parse dice notation %q (expected NdM)", spec)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, errors.InvalidDiceSpecf("invalid dice count in notation %q", spec)
	}
	size, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, errors.InvalidDiceSpecf("invalid die size in notation %q", spec)
	}
	if count <= 0 || size <= 0 {
		return 0, errors.InvalidDiceSpecf("dice count and size must be positive in %q", spec)
	}

	rolls, err := p.roller.RollN(count, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", trimmed)
	}

	total := 0
	for _, r := range rolls {
		total += r
	}
	return total, nil
}
