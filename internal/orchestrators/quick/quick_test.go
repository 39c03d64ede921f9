package quick_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/npcforge/internal/corpus"
	"github.com/hearthfire/npcforge/internal/dice"
	"github.com/hearthfire/npcforge/internal/errors"
	"github.com/hearthfire/npcforge/internal/orchestrators/quick"
	"github.com/hearthfire/npcforge/internal/testutils"
)

type QuickTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *QuickTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *QuickTestSuite) newOrchestrator(seed int64) *quick.Orchestrator {
	orc, err := quick.New(&quick.Config{Dice: dice.NewSeeded(seed)})
	s.Require().NoError(err)
	return orc
}

func (s *QuickTestSuite) TestGenerateFillsEveryField() {
	orc := s.newOrchestrator(1)
	pools := testutils.NewTestCorpus().Quick

	output, err := orc.Generate(s.ctx, &quick.GenerateInput{Pools: pools})
	s.Require().NoError(err)

	character := output.Character
	s.NotEmpty(character.Race)
	s.NotEmpty(character.Faction)
	s.NotEmpty(character.Class)
	s.NotEmpty(character.Deity)
	s.NotEmpty(character.Ability)
}

func (s *QuickTestSuite) TestDrawsComeFromThePools() {
	pools := testutils.NewTestCorpus().Quick
	races, _ := pools.Child("Races")

	for seed := int64(0); seed < 25; seed++ {
		output, err := s.newOrchestrator(seed).Generate(s.ctx, &quick.GenerateInput{Pools: pools})
		s.Require().NoError(err)
		s.Contains(races.Strings(), output.Character.Race)
	}
}

func (s *QuickTestSuite) TestMissingPool() {
	orc := s.newOrchestrator(1)
	pools := corpus.Map(
		corpus.Pair{Key: "Races", Value: corpus.ScalarList("Norn")},
	)

	_, err := orc.Generate(s.ctx, &quick.GenerateInput{Pools: pools})
	s.True(errors.IsMissingCorpusField(err))
}

func (s *QuickTestSuite) TestEmptyPool() {
	orc := s.newOrchestrator(1)
	pools := corpus.Map(
		corpus.Pair{Key: "Races", Value: corpus.List()},
		corpus.Pair{Key: "Factions", Value: corpus.ScalarList("Iron Pact")},
		corpus.Pair{Key: "Classes", Value: corpus.ScalarList("Warden")},
		corpus.Pair{Key: "Deities", Value: corpus.ScalarList("The Silent One")},
		corpus.Pair{Key: "Abilities", Value: corpus.ScalarList("Stonehide")},
	)

	_, err := orc.Generate(s.ctx, &quick.GenerateInput{Pools: pools})
	s.Error(err)
}

func (s *QuickTestSuite) TestNilPools() {
	orc := s.newOrchestrator(1)

	_, err := orc.Generate(s.ctx, &quick.GenerateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestQuickTestSuite(t *testing.T) {
	suite.Run(t, new(QuickTestSuite))
}
