package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
	"github.com/hearthfire/npcforge/internal/redis"
	"github.com/hearthfire/npcforge/internal/repositories/character"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mini *miniredis.Miniredis
	repo character.Repository
	ctx  context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	client, err := redis.NewClient(mini.Addr(), nil)
	s.Require().NoError(err)

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.mini.Close()
}

func (s *RedisRepositoryTestSuite) record(id string) *entities.CharacterRecord {
	return &entities.CharacterRecord{
		ID:     id,
		Race:   &entities.Entry{Name: "Dwarf"},
		Gender: entities.GenderFemale,
		Name:   "Vistra Fireforge",
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Record: s.record("char-1")})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.Require().NoError(err)
	s.Equal("Vistra Fireforge", out.Record.Name)
	s.Equal("Dwarf", out.Record.RaceName())
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Record: s.record("char-1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Record: s.record("char-1")})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Record: &entities.CharacterRecord{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Record: s.record("char-1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char-1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
	for _, id := range []string{"char-1", "char-2", "char-3"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Record: s.record(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Records, 3)
}

func (s *RedisRepositoryTestSuite) TestRetentionExpiry() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Record: s.record("char-1")})
	s.Require().NoError(err)

	s.mini.FastForward(character.DefaultRetention + time.Second)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char-1"})
	s.True(errors.IsNotFound(err))

	// Listing prunes the expired record from the index.
	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Records)
	s.False(s.mini.Exists("npcforge:characters"))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
