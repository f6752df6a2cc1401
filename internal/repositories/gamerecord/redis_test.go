package gamerecord

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/courtside/hoopgen/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Require().Error(err)

	_, err = NewRedis(&RedisConfig{})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	record := testRecord("medium_game_7")

	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Record: record})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "medium_game_7"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("medium_game_7", retrieved.GameID)
	s.Equal(record.Example, retrieved.Example)
	s.Equal(record.Report, retrieved.Report)
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing_game"})
	s.Require().ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestListGameIDsSorted() {
	for _, id := range []string{"medium_game_2", "basic_game_1", "hard_game_3"} {
		err := s.repo.SaveGame(s.ctx, &SaveGameInput{Record: testRecord(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListGameIDs(s.ctx, &ListGameIDsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"basic_game_1", "hard_game_3", "medium_game_2"}, out.GameIDs)
}

func (s *RedisRepositoryTestSuite) TestSaveGameOverwrites() {
	record := testRecord("basic_game_1")
	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Record: record})
	s.Require().NoError(err)

	updated := testRecord("basic_game_1")
	updated.Report.FinalScore = "Homeland: 4, Awayside: 0"
	err = s.repo.SaveGame(s.ctx, &SaveGameInput{Record: updated})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "basic_game_1"})
	s.Require().NoError(err)
	s.Equal("Homeland: 4, Awayside: 0", retrieved.Report.FinalScore)

	out, err := s.repo.ListGameIDs(s.ctx, &ListGameIDsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"basic_game_1"}, out.GameIDs)
}

func (s *RedisRepositoryTestSuite) TestArtifactsStoredUnderSeparateKeys() {
	err := s.repo.SaveGame(s.ctx, &SaveGameInput{Record: testRecord("basic_game_1")})
	s.Require().NoError(err)

	s.True(s.mr.Exists("gamerecord:basic_game_1:example"))
	s.True(s.mr.Exists("gamerecord:basic_game_1:report"))

	members, err := s.mr.SMembers("gamerecord:ids")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"basic_game_1"}, members)

	var example models.GameExample
	raw, err := s.mr.Get("gamerecord:basic_game_1:example")
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal([]byte(raw), &example))
	s.Equal("Homeland vs Awayside", example.Matchup)
}
