package life_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/engine"
	"github.com/hearthfire/npcforge/internal/engine/life"
	"github.com/hearthfire/npcforge/internal/engine/names"
	"github.com/hearthfire/npcforge/internal/engine/npc"
	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
	"github.com/hearthfire/npcforge/internal/testutils"
)

type LifeTestSuite struct {
	suite.Suite
}

func (s *LifeTestSuite) newGenerator(seed int64) life.Generator {
	provider := dice.NewSeeded(seed)

	eng, err := engine.New(&engine.Config{Dice: provider})
	s.Require().NoError(err)

	composer, err := names.New(&names.Config{Dice: provider, Engine: eng})
	s.Require().NoError(err)

	npcGen, err := npc.New(&npc.Config{Dice: provider})
	s.Require().NoError(err)

	gen, err := life.New(&life.Config{
		Dice:   provider,
		Engine: eng,
		Names:  composer,
		NPC:    npcGen,
	})
	s.Require().NoError(err)
	return gen
}

func (s *LifeTestSuite) newContext(race, name string) *engine.Context {
	gctx := testutils.NewTestContext("ebr")
	gctx.Record.Race = &entities.Entry{
		Name: race,
		Detail: entities.Parent([]entities.Trait{
			{Name: "Age", Content: entities.Leaf("25 years")},
		}),
	}
	gctx.Record.Gender = entities.GenderFemale
	gctx.Record.Name = name
	return gctx
}

func (s *LifeTestSuite) TestGenerateRequiresRace() {
	gen := s.newGenerator(1)
	gctx := testutils.NewTestContext()

	_, err := gen.Generate(gctx)
	s.Error(err)
}

func (s *LifeTestSuite) TestOriginTraits() {
	gen := s.newGenerator(2)
	gctx := s.newContext("Human", "Atala Basha")

	result, err := gen.Generate(gctx)
	s.Require().NoError(err)
	s.Require().NotNil(result.Origin)

	alignments := []string{
		"Chaotic Evil", "Chaotic Neutral", "Lawful Evil", "Neutral Evil",
		"Neutral", "Neutral Good", "Lawful Good", "Lawful Neutral", "Chaotic Good",
	}
	s.Contains(alignments, entities.FindText(result.Origin, "Alignment"))
	s.NotEmpty(entities.FindText(result.Origin, "Birthplace"))
	s.NotEmpty(entities.FindText(result.Origin, "Parents"))
	s.NotEmpty(entities.FindText(result.Origin, "Raised By"))
	s.NotEmpty(entities.FindText(result.Origin, "Lifestyle"))
	s.NotEmpty(entities.FindText(result.Origin, "Childhood Home"))
	s.NotEmpty(entities.FindText(result.Origin, "Childhood Memories"))

	s.NotEmpty(result.Trinket)
}

func (s *LifeTestSuite) TestParentsOmittedWithoutRacePool() {
	gen := s.newGenerator(3)
	gctx := s.newContext("Dwarf", "Bruenor Stonehelm")

	result, err := gen.Generate(gctx)
	s.Require().NoError(err)

	_, found := result.Origin.Find("Parents")
	s.False(found)
}

func (s *LifeTestSuite) TestAbsentParentAccompaniesUpbringing() {
	for seed := int64(0); seed < 40; seed++ {
		gen := s.newGenerator(seed)
		gctx := s.newContext("Human", "Atala Basha")

		result, err := gen.Generate(gctx)
		s.Require().NoError(err)

		raisedBy := entities.FindText(result.Origin, "Raised By")
		_, hasReason := result.Origin.Find("Absent Parent")
		if raisedBy == "Mother and father" {
			s.False(hasReason)
		} else {
			s.True(hasReason, "upbringing %q needs an absent-parent reason", raisedBy)
		}
	}
}

func (s *LifeTestSuite) TestEventCount() {
	counts := map[int]bool{}
	for seed := int64(0); seed < 60; seed++ {
		gen := s.newGenerator(seed)
		gctx := s.newContext("Human", "Atala Basha")

		result, err := gen.Generate(gctx)
		s.Require().NoError(err)
		s.Require().NotNil(result.Events)

		n := len(result.Events.Children)
		s.GreaterOrEqual(n, 3)
		s.LessOrEqual(n, 5)
		counts[n] = true

		seen := map[string]bool{}
		for _, event := range result.Events.Children {
			s.False(seen[event.Name], "event category %q drawn twice", event.Name)
			seen[event.Name] = true
			s.NotEmpty(event.Content.Text)
		}
	}
	s.Len(counts, 3, "all of three, four, and five events must occur across seeds")
}

func (s *LifeTestSuite) TestJobEventKeepsDiceNotation() {
	sawJob := false
	for seed := int64(0); seed < 80 && !sawJob; seed++ {
		gen := s.newGenerator(seed)
		gctx := s.newContext("Human", "Atala Basha")

		result, err := gen.Generate(gctx)
		s.Require().NoError(err)

		job, found := result.Events.Find("Job")
		if !found {
			continue
		}
		sawJob = true
		s.Contains(job.Text, "2d6 × 10 gp", "the savings roll stays unresolved in the event text")
	}
	s.True(sawJob, "no seed drew a job event")
}

func (s *LifeTestSuite) TestSiblingTraits() {
	sawSibling := false
	for seed := int64(0); seed < 40 && !sawSibling; seed++ {
		gen := s.newGenerator(seed)
		gctx := s.newContext("Human", "Atala Basha")

		result, err := gen.Generate(gctx)
		s.Require().NoError(err)
		if result.Siblings == nil {
			continue
		}
		sawSibling = true

		s.LessOrEqual(len(result.Siblings.Children), 2)
		for _, trait := range result.Siblings.Children {
			sibling := trait.Content
			s.Equal("Human", entities.FindText(sibling, "Race"))
			s.Contains([]string{"Male", "Female"}, entities.FindText(sibling, "Gender"))
			s.NotEmpty(entities.FindText(sibling, "Name"))
			s.NotEmpty(entities.FindText(sibling, "Occupation"))
			s.NotEmpty(entities.FindText(sibling, "Status"))
			s.Contains([]string{"Hostile", "Indifferent", "Friendly"}, entities.FindText(sibling, "Attitude"))
			s.Contains(
				[]string{"Twin, triplet, or quadruplet", "Older", "Younger"},
				entities.FindText(sibling, "Birth Order"),
			)
		}
	}
	s.True(sawSibling, "no seed produced a sibling")
}

func (s *LifeTestSuite) TestSiblingNamesKeepFirstNameOnly() {
	sawName := false
	for seed := int64(0); seed < 40; seed++ {
		gen := s.newGenerator(seed)
		gctx := s.newContext("Human", "Atala Basha")

		result, err := gen.Generate(gctx)
		s.Require().NoError(err)
		if result.Siblings == nil {
			continue
		}
		for _, trait := range result.Siblings.Children {
			name := entities.FindText(trait.Content, "Name")
			s.NotEmpty(name)
			s.NotContains(name, " ", "sibling names drop everything after the first name")
			sawName = true
		}
	}
	s.True(sawName, "no seed produced a named sibling")
}

func (s *LifeTestSuite) TestWarforgedVocabulary() {
	sawSibling := false
	for seed := int64(0); seed < 60; seed++ {
		gen := s.newGenerator(seed)
		gctx := s.newContext("Warforged", "Lantern")

		result, err := gen.Generate(gctx)
		s.Require().NoError(err)

		_, hasBirthplace := result.Origin.Find("Birthplace")
		s.False(hasBirthplace)
		s.NotEmpty(entities.FindText(result.Origin, "Built"))

		if result.Siblings == nil {
			continue
		}
		for _, trait := range result.Siblings.Children {
			sawSibling = true
			sibling := trait.Content
			_, hasGender := sibling.Find("Gender")
			s.False(hasGender, "constructed siblings carry no gender")
			s.Contains(
				[]string{"Built at the same time as you", "Built before you", "Built after you"},
				entities.FindText(sibling, "Construction Order"),
			)
		}
	}
	s.True(sawSibling)
}

func (s *LifeTestSuite) TestMixedHeritageSiblingRaces() {
	seen := map[string]bool{}
	for seed := int64(0); seed < 120; seed++ {
		gen := s.newGenerator(seed)
		gctx := s.newContext("Half-Elf", "Adran Amakiir")

		result, err := gen.Generate(gctx)
		s.Require().NoError(err)
		if result.Siblings == nil {
			continue
		}
		for _, trait := range result.Siblings.Children {
			race := entities.FindText(trait.Content, "Race")
			s.Contains([]string{"Half-Elf", "Human", "Elf"}, race)
			seen[race] = true
		}
	}
	s.True(seen["Half-Elf"])
	s.True(seen["Human"] || seen["Elf"], "mixed parents never produced a pure-race sibling")
}

func (s *LifeTestSuite) TestSiblingNameGuard() {
	// Shrink the name pool so every draw collides with the character.
	sawGuardError := false
	for seed := int64(0); seed < 40; seed++ {
		gen := s.newGenerator(seed)
		gctx := s.newContext("Kenku", "Whistler")
		gctx.Corpus = &corpus.Set{
			Races:   gctx.Corpus.Races,
			Classes: gctx.Corpus.Classes,
			Names:   gctx.Corpus.Names.ReplaceChild("Kenku", corpus.ScalarList("Whistler")),
			Life:    gctx.Corpus.Life,
			NPC:     gctx.Corpus.NPC,
			Misc:    gctx.Corpus.Misc,
		}

		result, err := gen.Generate(gctx)
		if err != nil {
			s.True(errors.IsInfeasibleCount(err))
			sawGuardError = true
			continue
		}
		s.Nil(result.Siblings, "a sibling slipped past the name guard")
	}
	s.True(sawGuardError, "the name guard never tripped")
}

func TestLifeTestSuite(t *testing.T) {
	suite.Run(t, new(LifeTestSuite))
}
