package names

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
)

// humanStyle composes an ethnicity-conditioned name. The ethnicity comes
// from the context cache when a previous step set one, otherwise a fresh
// random ethnicity is drawn and cached.
func (c *composer) humanStyle(gctx *engine.Context, gender entities.Gender) (string, error) {
	humans, err := c.racePools(gctx, "Human")
	if err != nil {
		return "", err
	}

	ethnicity := gctx.Ethnicity()
	if ethnicity == "" || ethnicity == engine.EthnicityUnknown {
		ethnicity, err = c.engine.RandomEthnicity(gctx)
		if err != nil {
			return "", err
		}
		if gctx.Ethnicity() == "" {
			gctx.SetEthnicity(ethnicity)
		}
	}

	ethPools, ok := humans.Child(ethnicity)
	if !ok {
		return "", errors.MissingCorpusFieldf("human name pools are missing ethnicity %q", ethnicity)
	}

	first, err := c.genderedPick(ethPools, gender)
	if err != nil {
		return "", err
	}

	// real-world mode drops the surname no matter what the pools carry
	if gctx.Options != nil && gctx.Options.EthnicityMode == entities.EthnicityRealWorld {
		return first, nil
	}

	if _, ok := ethPools.Child("Tribe"); ok {
		tribe, err := c.listPick(ethPools, "Tribe")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s of the %s tribe", first, tribe), nil
	}
	if _, ok := ethPools.Child("Surname"); ok {
		surname, err := c.listPick(ethPools, "Surname")
		if err != nil {
			return "", err
		}
		return first + " " + surname, nil
	}
	return first, nil
}

// elf names switch to a child form below an age threshold rolled between 80
// and 119, and to subrace-specific pools for drow and shadar-kai
func (c *composer) elf(gctx *engine.Context, pools *corpus.Node, subrace string, gender entities.Gender) (string, error) {
	for _, key := range []string{"Drow", "Shadar-kai"} {
		if strings.Contains(subrace, strings.SplitN(key, "-", 2)[0]) {
			sub, ok := pools.Child(key)
			if !ok {
				break
			}
			return c.firstLast(sub, gender, "Surname")
		}
	}

	threshold, err := c.dice.UniformInt(40)
	if err != nil {
		return "", err
	}
	if characterAge(gctx) < 80+threshold {
		resolved, err := c.resolveBinary(gender)
		if err != nil {
			return "", err
		}
		childKey := "Child " + string(resolved)
		if _, ok := pools.Child(childKey); ok {
			first, err := c.listPick(pools, childKey)
			if err != nil {
				return "", err
			}
			family, err := c.listPick(pools, "Family")
			if err != nil {
				return "", err
			}
			return first + " " + family, nil
		}
	}

	return c.firstLast(pools, gender, "Family")
}

// characterAge reads the leading integer of the Age trait generated with the
// race. An absent or unparseable age counts as adult.
func characterAge(gctx *engine.Context) int {
	if gctx.Record == nil || gctx.Record.Race == nil || gctx.Record.Race.Detail == nil {
		return 200
	}
	text := entities.FindText(gctx.Record.Race.Detail, "Age")
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 200
	}
	age, err := strconv.Atoi(fields[0])
	if err != nil {
		return 200
	}
	return age
}

func (c *composer) dwarf(pools *corpus.Node, subrace string, gender entities.Gender) (string, error) {
	clanKey := "Clan"
	if subrace == "Duergar" {
		clanKey = "Duergar Clan"
	}
	return c.firstLast(pools, gender, clanKey)
}

// gnome names stack four to seven first names, a quoted nickname, and a
// clan name
func (c *composer) gnome(pools *corpus.Node, gender entities.Gender) (string, error) {
	firsts, err := c.genderedList(pools, gender)
	if err != nil {
		return "", err
	}
	extra, err := c.dice.UniformInt(4)
	if err != nil {
		return "", err
	}
	picked, err := c.dice.PickMany(firsts, 4+extra)
	if err != nil {
		return "", err
	}
	nickname, err := c.listPick(pools, "Nickname")
	if err != nil {
		return "", err
	}
	clan, err := c.listPick(pools, "Clan")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %q %s", strings.Join(picked, " "), nickname, clan), nil
}

func (c *composer) goliath(pools *corpus.Node, gender entities.Gender) (string, error) {
	first, err := c.genderedPick(pools, gender)
	if err != nil {
		return "", err
	}
	nickname, err := c.listPick(pools, "Nickname")
	if err != nil {
		return "", err
	}
	clan, err := c.listPick(pools, "Clan")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %q %s", first, nickname, clan), nil
}

// halfElf blends across four strategies: a full human name, a full elven
// name, a human first with an elven family name, or an elven first with a
// human surname
func (c *composer) halfElf(gctx *engine.Context, gender entities.Gender) (string, error) {
	humans, err := c.racePools(gctx, "Human")
	if err != nil {
		return "", err
	}
	elves, err := c.racePools(gctx, "Elf")
	if err != nil {
		return "", err
	}

	strategy, err := c.dice.UniformInt(4)
	if err != nil {
		return "", err
	}
	switch strategy {
	case 0:
		return c.humanStyle(gctx, gender)
	case 1:
		return c.firstLast(elves, gender, "Family")
	case 2:
		ethnicity, err := c.cachedEthnicity(gctx)
		if err != nil {
			return "", err
		}
		ethPools, ok := humans.Child(ethnicity)
		if !ok {
			return "", errors.MissingCorpusFieldf("human name pools are missing ethnicity %q", ethnicity)
		}
		first, err := c.genderedPick(ethPools, gender)
		if err != nil {
			return "", err
		}
		family, err := c.listPick(elves, "Family")
		if err != nil {
			return "", err
		}
		return first + " " + family, nil
	default:
		first, err := c.genderedPick(elves, gender)
		if err != nil {
			return "", err
		}
		surname, err := c.humanSurname(gctx, humans)
		if err != nil {
			return "", err
		}
		if surname == "" {
			return first, nil
		}
		return first + " " + surname, nil
	}
}

// halfOrc draws an orcish name, a human name, or an orcish first name with a
// human surname
func (c *composer) halfOrc(gctx *engine.Context, pools *corpus.Node, gender entities.Gender) (string, error) {
	strategy, err := c.dice.UniformInt(3)
	if err != nil {
		return "", err
	}
	switch strategy {
	case 0:
		return c.genderedPick(pools, gender)
	case 1:
		return c.humanStyle(gctx, gender)
	default:
		first, err := c.genderedPick(pools, gender)
		if err != nil {
			return "", err
		}
		humans, err := c.racePools(gctx, "Human")
		if err != nil {
			return "", err
		}
		surname, err := c.humanSurname(gctx, humans)
		if err != nil {
			return "", err
		}
		if surname == "" {
			return first, nil
		}
		return first + " " + surname, nil
	}
}

// tiefling names are human-style with a one-in-three chance each of a virtue
// name or an infernal name replacing the human first name
func (c *composer) tiefling(gctx *engine.Context, pools *corpus.Node, gender entities.Gender) (string, error) {
	strategy, err := c.dice.UniformInt(3)
	if err != nil {
		return "", err
	}
	switch strategy {
	case 0:
		return c.listPick(pools, "Virtue")
	case 1:
		first, err := c.genderedPick(pools, gender)
		if err != nil {
			return "", err
		}
		humans, err := c.racePools(gctx, "Human")
		if err != nil {
			return "", err
		}
		surname, err := c.humanSurname(gctx, humans)
		if err != nil {
			return "", err
		}
		if surname == "" {
			return first, nil
		}
		return first + " " + surname, nil
	default:
		return c.humanStyle(gctx, gender)
	}
}

func (c *composer) gith(pools *corpus.Node, subrace string, gender entities.Gender) (string, error) {
	faction := "Githyanki"
	if strings.Contains(subrace, "Githzerai") {
		faction = "Githzerai"
	}
	sub, ok := pools.Child(faction)
	if !ok {
		return "", errors.MissingCorpusFieldf("gith name pools are missing %q", faction)
	}
	return c.genderedPick(sub, gender)
}

// simicHybrid names follow one of three templates: a human name with a fresh
// random ethnicity, an elven name, or a vedalken name
func (c *composer) simicHybrid(gctx *engine.Context, gender entities.Gender) (string, error) {
	template, err := c.dice.PickOne([]string{"Human", "Elf", "Vedalken"})
	if err != nil {
		return "", err
	}
	switch template {
	case "Human":
		humans, err := c.racePools(gctx, "Human")
		if err != nil {
			return "", err
		}
		ethnicity, err := c.engine.RandomEthnicity(gctx)
		if err != nil {
			return "", err
		}
		ethPools, ok := humans.Child(ethnicity)
		if !ok {
			return "", errors.MissingCorpusFieldf("human name pools are missing ethnicity %q", ethnicity)
		}
		return c.genderedPick(ethPools, gender)
	case "Elf":
		elves, err := c.racePools(gctx, "Elf")
		if err != nil {
			return "", err
		}
		return c.firstLast(elves, gender, "Family")
	default:
		vedalken, err := c.racePools(gctx, "Vedalken")
		if err != nil {
			return "", err
		}
		return c.genderedPick(vedalken, gender)
	}
}

func (c *composer) satyr(pools *corpus.Node, gender entities.Gender) (string, error) {
	first, err := c.genderedPick(pools, gender)
	if err != nil {
		return "", err
	}
	nickname, err := c.listPick(pools, "Nickname")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %q", first, nickname), nil
}

// tabaxi carry a single descriptive name shortened to a quoted nickname,
// followed by their clan
func (c *composer) tabaxi(pools *corpus.Node, gender entities.Gender) (string, error) {
	first, err := c.genderedPick(pools, gender)
	if err != nil {
		return "", err
	}
	nickname := strings.Fields(first)[0]
	clan, err := c.listPick(pools, "Clan")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %q of the %s", first, nickname, clan), nil
}

// cachedEthnicity returns the context ethnicity, rolling and caching a fresh
// one when none is set
func (c *composer) cachedEthnicity(gctx *engine.Context) (string, error) {
	ethnicity := gctx.Ethnicity()
	if ethnicity != "" && ethnicity != engine.EthnicityUnknown {
		return ethnicity, nil
	}
	ethnicity, err := c.engine.RandomEthnicity(gctx)
	if err != nil {
		return "", err
	}
	if gctx.Ethnicity() == "" {
		gctx.SetEthnicity(ethnicity)
	}
	return ethnicity, nil
}

// humanSurname draws a surname from the cached ethnicity's pools. Ethnicities
// without a surname list, and real-world mode, yield the empty string.
func (c *composer) humanSurname(gctx *engine.Context, humans *corpus.Node) (string, error) {
	if gctx.Options != nil && gctx.Options.EthnicityMode == entities.EthnicityRealWorld {
		return "", nil
	}
	ethnicity, err := c.cachedEthnicity(gctx)
	if err != nil {
		return "", err
	}
	ethPools, ok := humans.Child(ethnicity)
	if !ok {
		return "", errors.MissingCorpusFieldf("human name pools are missing ethnicity %q", ethnicity)
	}
	if _, ok := ethPools.Child("Surname"); !ok {
		return "", nil
	}
	return c.listPick(ethPools, "Surname")
}
