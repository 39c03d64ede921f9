package names_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/engine/names"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/testutils"
)

type ComposerTestSuite struct {
	suite.Suite
}

func (s *ComposerTestSuite) newComposer(seed int64) names.Composer {
	provider := dice.NewSeeded(seed)
	eng, err := engine.New(&engine.Config{Dice: provider})
	s.Require().NoError(err)

	composer, err := names.New(&names.Config{Dice: provider, Engine: eng})
	s.Require().NoError(err)
	return composer
}

func (s *ComposerTestSuite) compose(seed int64, race, subrace string, gender entities.Gender) *names.Result {
	composer := s.newComposer(seed)
	gctx := testutils.NewTestContext()

	result, err := composer.ComposeFor(gctx, race, subrace, gender)
	s.Require().NoError(err)
	s.Require().NotEmpty(result.Name)
	s.Require().NotEmpty(result.ShortName)
	return result
}

func (s *ComposerTestSuite) TestComposeRequiresRace() {
	composer := s.newComposer(1)
	gctx := testutils.NewTestContext()

	_, err := composer.Compose(gctx)
	s.Error(err)
}

func (s *ComposerTestSuite) TestComposeReadsRecord() {
	composer := s.newComposer(2)
	gctx := testutils.NewTestContext()
	gctx.Record.Race = &entities.Entry{Name: "Triton"}
	gctx.Record.Gender = entities.GenderMale

	result, err := composer.Compose(gctx)
	s.Require().NoError(err)
	s.Len(strings.Fields(result.Name), 2)
}

func (s *ComposerTestSuite) TestHumanFantasyName() {
	for seed := int64(0); seed < 30; seed++ {
		result := s.compose(seed, "Human", "", entities.GenderFemale)
		first := strings.Fields(result.Name)[0]
		s.Contains([]string{
			"Atala", "Ceidil", "Meilil",
			"Aisha", "Farah", "Nura",
			"Arizima", "Chathi", "Nephis",
		}, first)
	}
}

func (s *ComposerTestSuite) TestHumanTribalSurname() {
	sawTribe, sawSurname, sawBare := false, false, false
	for seed := int64(0); seed < 60; seed++ {
		result := s.compose(seed, "Human", "", entities.GenderMale)
		switch {
		case strings.Contains(result.Name, " of the ") && strings.HasSuffix(result.Name, " tribe"):
			sawTribe = true
		case len(strings.Fields(result.Name)) == 2:
			sawSurname = true
		case len(strings.Fields(result.Name)) == 1:
			sawBare = true
		}
	}
	s.True(sawTribe, "tribe-surname ethnicity never drawn")
	s.True(sawSurname, "plain-surname ethnicity never drawn")
	s.True(sawBare, "surname-less ethnicity never drawn")
}

func (s *ComposerTestSuite) TestHumanRealWorldModeDropsSurname() {
	for seed := int64(0); seed < 30; seed++ {
		composer := s.newComposer(seed)
		gctx := testutils.NewTestContext()
		gctx.Options.EthnicityMode = entities.EthnicityRealWorld

		result, err := composer.ComposeFor(gctx, "Human", "", entities.GenderMale)
		s.Require().NoError(err)
		s.Len(strings.Fields(result.Name), 1)
	}
}

func (s *ComposerTestSuite) TestHumanUsesCachedEthnicity() {
	composer := s.newComposer(3)
	gctx := testutils.NewTestContext()
	gctx.SetEthnicity("Bedine")

	result, err := composer.ComposeFor(gctx, "Human", "", entities.GenderMale)
	s.Require().NoError(err)
	s.Contains([]string{"Aali", "Rashid", "Tahnon"}, strings.Fields(result.Name)[0])
	s.Equal("Bedine", gctx.Ethnicity())
}

func (s *ComposerTestSuite) TestElfAdult() {
	composer := s.newComposer(4)
	gctx := testutils.NewTestContext()
	gctx.Record.Race = &entities.Entry{
		Name: "Elf",
		Detail: entities.Parent([]entities.Trait{
			{Name: "Age", Content: entities.Leaf("450 years")},
		}),
	}
	gctx.Record.Gender = entities.GenderMale

	result, err := composer.Compose(gctx)
	s.Require().NoError(err)
	parts := strings.Fields(result.Name)
	s.Require().Len(parts, 2)
	s.Contains([]string{"Adran", "Carric", "Laucian"}, parts[0])
	s.Contains([]string{"Amakiir", "Galanodel", "Siannodel"}, parts[1])
}

func (s *ComposerTestSuite) TestElfChild() {
	composer := s.newComposer(5)
	gctx := testutils.NewTestContext()
	gctx.Record.Race = &entities.Entry{
		Name: "Elf",
		Detail: entities.Parent([]entities.Trait{
			{Name: "Age", Content: entities.Leaf("12 years")},
		}),
	}
	gctx.Record.Gender = entities.GenderFemale

	result, err := composer.Compose(gctx)
	s.Require().NoError(err)
	parts := strings.Fields(result.Name)
	s.Require().Len(parts, 2)
	s.Contains([]string{"Naeris", "Phann", "Vall"}, parts[0])
}

func (s *ComposerTestSuite) TestDrowOverride() {
	result := s.compose(6, "Elf", "Drow", entities.GenderFemale)
	parts := strings.Fields(result.Name)
	s.Require().Len(parts, 2)
	s.Contains([]string{"Briza", "Quenthel", "Vierna"}, parts[0])
	s.Contains([]string{"Baenre", "Do'Urden", "Xorlarrin"}, parts[1])
}

func (s *ComposerTestSuite) TestDwarfClan() {
	result := s.compose(7, "Dwarf", "Hill Dwarf", entities.GenderMale)
	parts := strings.Fields(result.Name)
	s.Require().Len(parts, 2)
	s.Contains([]string{"Balderk", "Fireforge", "Ungart"}, parts[1])
}

func (s *ComposerTestSuite) TestDuergarClan() {
	result := s.compose(8, "Dwarf", "Duergar", entities.GenderMale)
	parts := strings.Fields(result.Name)
	s.Require().Len(parts, 2)
	s.Contains([]string{"Ashlord", "Deepdelver", "Graycloak"}, parts[1])
}

func (s *ComposerTestSuite) TestGnomeLongForm() {
	for seed := int64(0); seed < 20; seed++ {
		result := s.compose(seed, "Gnome", "", entities.GenderFemale)

		tokens := strings.Fields(result.Name)
		quoted := -1
		for i, tok := range tokens {
			if strings.HasPrefix(tok, `"`) {
				quoted = i
			}
		}
		s.Require().GreaterOrEqual(quoted, 4, "at least four first names before the nickname")
		s.LessOrEqual(quoted, 7)
		s.Equal(quoted, len(tokens)-2, "nickname then clan close the name")

		// The short form keeps one first name, the nickname, and the clan.
		short := strings.Fields(result.ShortName)
		s.Require().Len(short, 3)
		s.Contains(tokens[:quoted], short[0])
		s.Equal(tokens[quoted], short[1])
		s.Equal(tokens[quoted+1], short[2])
	}
}

func (s *ComposerTestSuite) TestDeepGnomeKeepsFullName() {
	result := s.compose(9, "Gnome", "Deep Gnome", entities.GenderMale)
	s.Equal(result.Name, result.ShortName)
}

func (s *ComposerTestSuite) TestGoliathThreePart() {
	result := s.compose(10, "Goliath", "", entities.GenderMale)
	s.Contains(result.Name, `"`)
	s.Len(strings.Fields(result.Name), 3)
}

func (s *ComposerTestSuite) TestTieflingVirtueOutcome() {
	sawVirtue := false
	for seed := int64(0); seed < 40; seed++ {
		result := s.compose(seed, "Tiefling", "", entities.GenderMale)
		first := strings.Fields(result.Name)[0]
		if first == "Despair" || first == "Hope" || first == "Torment" {
			sawVirtue = true
		}
	}
	s.True(sawVirtue, "virtue names never drawn")
}

func (s *ComposerTestSuite) TestGithFactionPools() {
	yanki := s.compose(11, "Gith", "Githyanki", entities.GenderMale)
	s.Contains([]string{"Duurth", "Quith", "Xamodas"}, yanki.Name)

	zerai := s.compose(11, "Gith", "Githzerai", entities.GenderMale)
	s.Contains([]string{"Dak", "Ferzth", "Shrakk"}, zerai.Name)
}

func (s *ComposerTestSuite) TestTabaxiShortensToNickname() {
	result := s.compose(12, "Tabaxi", "", entities.GenderFemale)
	s.Contains(result.Name, `"`)
	s.Contains(result.Name, " of the ")
	s.NotContains(result.ShortName, `"`)
	s.Equal(strings.Fields(result.Name)[0], strings.Trim(result.ShortName, `"`))
}

func (s *ComposerTestSuite) TestSatyrQuotedNickname() {
	result := s.compose(13, "Satyr", "", entities.GenderMale)
	s.Contains(result.Name, `"`)
	s.Len(strings.Fields(result.Name), 2)
}

func (s *ComposerTestSuite) TestSimicHybridTemplates() {
	seen := map[int]bool{}
	for seed := int64(0); seed < 60; seed++ {
		result := s.compose(seed, "Simic Hybrid", "", entities.GenderFemale)
		first := strings.Fields(result.Name)[0]
		switch {
		case first == "Bryss" || first == "Nileya" || first == "Soliya":
			seen[0] = true // vedalken
		case first == "Adrie" || first == "Keyleth" || first == "Shanairra":
			seen[1] = true // elf
		default:
			seen[2] = true // human
		}
	}
	s.Len(seen, 3, "all three templates must show up")
}

func (s *ComposerTestSuite) TestHalfElfBlends() {
	elfFirsts := map[string]bool{"Adran": true, "Carric": true, "Laucian": true}
	humanSeen, elfSeen := false, false
	for seed := int64(0); seed < 60; seed++ {
		result := s.compose(seed, "Half-Elf", "", entities.GenderMale)
		if elfFirsts[strings.Fields(result.Name)[0]] {
			elfSeen = true
		} else {
			humanSeen = true
		}
	}
	s.True(humanSeen)
	s.True(elfSeen)
}

func (s *ComposerTestSuite) TestHalfOrcBlends() {
	orcFirsts := map[string]bool{"Dench": true, "Grutok": true, "Shump": true}
	orcSeen, humanSeen := false, false
	for seed := int64(0); seed < 60; seed++ {
		result := s.compose(seed, "Half-Orc", "", entities.GenderMale)
		if orcFirsts[strings.Fields(result.Name)[0]] {
			orcSeen = true
		} else {
			humanSeen = true
		}
	}
	s.True(orcSeen)
	s.True(humanSeen)
}

func (s *ComposerTestSuite) TestDirectPoolRace() {
	result := s.compose(14, "Kenku", "", entities.GenderUnknown)
	s.Contains([]string{"Basket Weaver", "Mouse Catcher", "Whistler"}, result.Name)
}

func (s *ComposerTestSuite) TestGenericGenderedRace() {
	result := s.compose(15, "Aasimar", "", entities.GenderFemale)
	s.Contains([]string{"Arken", "Ilmater", "Valna"}, result.Name)
}

func (s *ComposerTestSuite) TestUnknownRaceFails() {
	composer := s.newComposer(16)
	gctx := testutils.NewTestContext()

	_, err := composer.ComposeFor(gctx, "Modron", "", entities.GenderMale)
	s.Error(err)
}

func TestComposerTestSuite(t *testing.T) {
	suite.Run(t, new(ComposerTestSuite))
}
