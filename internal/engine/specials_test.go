package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/testutils"
)

type SpecialsTestSuite struct {
	suite.Suite
	engine engine.Engine
}

func (s *SpecialsTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{Dice: dice.NewSeeded(42)})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *SpecialsTestSuite) resolveRace(gctx *engine.Context, race string) *entities.Value {
	node, ok := gctx.Corpus.Races.Child(race)
	s.Require().True(ok, "race %q missing from test corpus", race)
	v, err := s.engine.Resolve(gctx, node)
	s.Require().NoError(err)
	return v
}

func (s *SpecialsTestSuite) TestBookGateSuppresses() {
	gctx := testutils.NewTestContext()
	s.Nil(s.resolveRace(gctx, "Warforged"))
}

func (s *SpecialsTestSuite) TestBookGatePasses() {
	gctx := testutils.NewTestContext("ebr")
	v := s.resolveRace(gctx, "Warforged")
	s.Require().NotNil(v)
	s.NotEmpty(entities.FindText(v, "Description"))
}

func (s *SpecialsTestSuite) TestCharacteristics() {
	gctx := testutils.NewTestContext()
	v := s.resolveRace(gctx, "Human")
	s.Require().NotNil(v)

	age := entities.FindText(v, "Age")
	s.Require().NotEmpty(age)
	s.True(strings.HasSuffix(age, "years") || strings.HasSuffix(age, "year"))

	height := entities.FindText(v, "Height")
	s.Contains(height, "'")
	s.True(strings.HasSuffix(height, `"`))

	weight := entities.FindText(v, "Weight")
	s.True(strings.HasSuffix(weight, " lbs."))
}

func (s *SpecialsTestSuite) TestGendersort() {
	gctx := testutils.NewTestContext()
	gctx.Record.Gender = entities.GenderFemale

	v := s.resolveRace(gctx, "Human")
	s.Require().NotNil(v)

	hair := entities.FindText(v, "Hair")
	s.Contains([]string{"Long braided hair", "A loose dark mane"}, hair)
}

func (s *SpecialsTestSuite) TestHumanEthnicityCaches() {
	gctx := testutils.NewTestContext()
	s.Empty(gctx.Ethnicity())

	s.resolveRace(gctx, "Human")
	s.Contains([]string{"Calishite", "Bedine", "Mulan"}, gctx.Ethnicity())
}

func (s *SpecialsTestSuite) TestHalfEthnicity() {
	// Across seeds, both the rolled-ethnicity and the unknown outcomes
	// must show up.
	outcomes := map[string]bool{}
	for seed := int64(0); seed < 40; seed++ {
		eng, err := engine.New(&engine.Config{Dice: dice.NewSeeded(seed)})
		s.Require().NoError(err)
		gctx := testutils.NewTestContext()

		node, _ := gctx.Corpus.Races.Child("Half-Elf")
		_, err = eng.Resolve(gctx, node)
		s.Require().NoError(err)
		s.NotEmpty(gctx.Ethnicity())
		outcomes[gctx.Ethnicity()] = true
	}
	s.True(outcomes[engine.EthnicityUnknown], "unknown heritage never rolled")
	delete(outcomes, engine.EthnicityUnknown)
	s.NotEmpty(outcomes, "rolled heritage never happened")
}

func (s *SpecialsTestSuite) TestSubracesortBaseBooks() {
	gctx := testutils.NewTestContext()
	v := s.resolveRace(gctx, "Dwarf")
	s.Require().NotNil(v)

	subrace := entities.FindText(v, "Subrace")
	s.Contains([]string{"Hill Dwarf", "Mountain Dwarf"}, subrace)

	// The characteristics mapping is narrowed to the chosen subrace and
	// resolved, so Age appears directly under it.
	variants, ok := v.Find("Subraces and Variants")
	s.Require().True(ok)
	characteristics, ok := variants.Get("Physical Characteristics")
	s.Require().True(ok)
	_, ok = characteristics.Get("Age")
	s.True(ok)
}

func (s *SpecialsTestSuite) TestSubracesortExtraBook() {
	seen := map[string]bool{}
	for seed := int64(0); seed < 60; seed++ {
		eng, err := engine.New(&engine.Config{Dice: dice.NewSeeded(seed)})
		s.Require().NoError(err)
		gctx := testutils.NewTestContext("mtof")

		node, _ := gctx.Corpus.Races.Child("Dwarf")
		v, err := eng.Resolve(gctx, node)
		s.Require().NoError(err)
		seen[entities.FindText(v, "Subrace")] = true
	}
	s.True(seen["Duergar"], "enabling the extra book must admit its subrace")
	s.True(seen["Hill Dwarf"] || seen["Mountain Dwarf"])
}

func (s *SpecialsTestSuite) TestDragonbornVariantGated() {
	gctx := testutils.NewTestContext()
	v := s.resolveRace(gctx, "Dragonborn")
	s.Require().NotNil(v)
	_, ok := v.Find("Variant Type")
	s.False(ok)
}

func (s *SpecialsTestSuite) TestDragonbornVariantEnabled() {
	gctx := testutils.NewTestContext("ftd")
	v := s.resolveRace(gctx, "Dragonborn")
	s.Require().NotNil(v)
	s.Contains(entities.FindText(v, "Variant Type"), "Dragonborn")
}

func (s *SpecialsTestSuite) TestDragonmarkVariantCoin() {
	suppressed, kept := false, false
	for seed := int64(0); seed < 40; seed++ {
		eng, err := engine.New(&engine.Config{Dice: dice.NewSeeded(seed)})
		s.Require().NoError(err)
		gctx := testutils.NewTestContext("ebr")

		node, _ := gctx.Corpus.Races.Child("Mark of Making Human")
		v, err := eng.Resolve(gctx, node)
		s.Require().NoError(err)
		if v == nil {
			suppressed = true
		} else {
			kept = true
		}
	}
	s.True(suppressed)
	s.True(kept)
}

func (s *SpecialsTestSuite) TestDragonmarkVariantWithoutBook() {
	gctx := testutils.NewTestContext()
	s.Nil(s.resolveRace(gctx, "Mark of Making Human"))
}

func (s *SpecialsTestSuite) TestTieflingVariantGated() {
	gctx := testutils.NewTestContext()
	v := s.resolveRace(gctx, "Tiefling")
	s.Require().NotNil(v)
	_, ok := v.Find("Variant")
	s.False(ok)

	gctx = testutils.NewTestContext("scag")
	v = s.resolveRace(gctx, "Tiefling")
	s.Require().NotNil(v)
	_, ok = v.Find("Variant")
	s.True(ok)
}

func (s *SpecialsTestSuite) TestTieflingAppearance() {
	absent, present := false, false
	for seed := int64(0); seed < 60; seed++ {
		eng, err := engine.New(&engine.Config{Dice: dice.NewSeeded(seed)})
		s.Require().NoError(err)
		gctx := testutils.NewTestContext()

		node, _ := gctx.Corpus.Races.Child("Tiefling")
		v, err := eng.Resolve(gctx, node)
		s.Require().NoError(err)
		s.Require().NotNil(v)

		appearance, ok := v.Find("Appearance")
		if !ok {
			absent = true
			continue
		}
		present = true
		features := strings.Split(appearance.Text, ", ")
		s.GreaterOrEqual(len(features), 2)
		s.LessOrEqual(len(features), 5)
		distinct := map[string]bool{}
		for _, f := range features {
			distinct[f] = true
		}
		s.Len(distinct, len(features), "features must be distinct")
	}
	s.True(absent, "the one-in-three no-feature outcome never happened")
	s.True(present)
}

func (s *SpecialsTestSuite) TestMonstrousOrigin() {
	gctx := testutils.NewTestContext("vgm")
	v := s.resolveRace(gctx, "Bugbear")
	s.Require().NotNil(v)

	origin := entities.FindText(v, "Origin")
	s.Contains([]string{
		"An escaped slave of your kin",
		"Raised among another culture",
		"An outcast seeking redemption",
	}, origin)
}

func (s *SpecialsTestSuite) TestBackgroundTraitsCopy() {
	gctx := testutils.NewTestContext("egw")
	node, _ := gctx.Corpus.Backgrounds.Child("Faceless")
	v, err := s.engine.Resolve(gctx, node)
	s.Require().NoError(err)
	s.Require().NotNil(v)

	personality, ok := v.Find("Personality")
	s.Require().True(ok)
	s.Equal("I quote sacred texts in almost every situation.", entities.FindText(personality, "Trait"))
	s.Equal("Tradition must be preserved and upheld.", entities.FindText(personality, "Ideal"))
	s.Equal("I would die to recover an ancient relic of my faith.", entities.FindText(personality, "Bond"))
	s.Equal("I judge others harshly, and myself more harshly still.", entities.FindText(personality, "Flaw"))
}

func (s *SpecialsTestSuite) TestRavnicaContacts() {
	sawRedirect := false
	for seed := int64(0); seed < 60; seed++ {
		eng, err := engine.New(&engine.Config{Dice: dice.NewSeeded(seed)})
		s.Require().NoError(err)
		gctx := testutils.NewTestContext("grn")

		node, _ := gctx.Corpus.Backgrounds.Child("Azorius Functionary")
		v, err := eng.Resolve(gctx, node)
		s.Require().NoError(err)
		s.Require().NotNil(v)

		contacts, ok := v.Find("Contacts")
		s.Require().True(ok)
		s.Require().Len(contacts.Children, 3)
		s.Equal("Ally", contacts.Children[0].Name)
		s.Equal("Rival", contacts.Children[1].Name)

		third := contacts.Children[2]
		switch third.Name {
		case "Non-Guild Contact":
			s.NotEqual("Reroll", third.Content.Text)
		case "Additional Guild Contact":
			sawRedirect = true
		default:
			s.Failf("unexpected contact label", "%s", third.Name)
		}
	}
	s.True(sawRedirect, "the reroll sentinel never redirected into the guild pool")
}

func (s *SpecialsTestSuite) TestDimirContacts() {
	gctx := testutils.NewTestContext("grn")
	node, _ := gctx.Corpus.Backgrounds.Child("Dimir Operative")
	v, err := s.engine.Resolve(gctx, node)
	s.Require().NoError(err)
	s.Require().NotNil(v)

	contacts, ok := v.Find("Contacts")
	s.Require().True(ok)
	s.Require().Len(contacts.Children, 4)
	s.Equal("Ally", contacts.Children[0].Name)
	s.Equal("Secondary Guild", contacts.Children[1].Name)
	s.Equal("Secondary Guild Ally", contacts.Children[2].Name)
	s.Equal("Secondary Guild Rival", contacts.Children[3].Name)

	guild := contacts.Children[1].Content.Text
	s.Contains([]string{"Azorius", "Boros"}, guild)
}

func (s *SpecialsTestSuite) TestUnknownOpcodeFails() {
	gctx := testutils.NewTestContext()
	node := corpus.Map(
		corpus.Pair{Key: "X", Value: corpus.Scalar("y")},
	).WithSpecial("frobnicate")

	_, err := s.engine.Resolve(gctx, node)
	s.Error(err)
}

func TestSpecialsTestSuite(t *testing.T) {
	suite.Run(t, new(SpecialsTestSuite))
}
