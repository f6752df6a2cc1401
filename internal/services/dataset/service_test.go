package dataset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/courtside/hoopgen/internal/common/clock/mocks"
	uuidMocks "github.com/courtside/hoopgen/internal/common/uuid/mocks"
	"github.com/courtside/hoopgen/internal/config"
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/repositories/gamerecord"
	repoMocks "github.com/courtside/hoopgen/internal/repositories/gamerecord/mocks"
	"github.com/courtside/hoopgen/internal/services/simulation"
	simMocks "github.com/courtside/hoopgen/internal/services/simulation/mocks"
)

type DatasetServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockSim   *simMocks.MockService
	mockRepo  *repoMocks.MockRepository
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	svc       Service
	ctx       context.Context

	testTime  time.Time
	testRunID string
}

func (s *DatasetServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSim = simMocks.NewMockService(s.mockCtrl)
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	svc, err := New(&Config{
		Simulator:  s.mockSim,
		Repository: s.mockRepo,
		Clock:      s.mockClock,
		UUID:       s.mockUUID,
		Workers:    2,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.testRunID = "test-run-id"
}

func TestDatasetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DatasetServiceTestSuite))
}

// simOutput builds a distinguishable artifact pair per game.
func simOutput(gameID string) *simulation.SimulateGameOutput {
	return &simulation.SimulateGameOutput{
		Example: &models.GameExample{Matchup: gameID},
		Report:  &models.TrueReport{Matchup: gameID},
	}
}

func (s *DatasetServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Repository: s.mockRepo, Clock: s.mockClock, UUID: s.mockUUID})
	s.Require().ErrorIs(err, ErrNilSimulator)

	_, err = New(&Config{Simulator: s.mockSim, Clock: s.mockClock, UUID: s.mockUUID})
	s.Require().ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{Simulator: s.mockSim, Repository: s.mockRepo, UUID: s.mockUUID})
	s.Require().ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Simulator: s.mockSim, Repository: s.mockRepo, Clock: s.mockClock})
	s.Require().ErrorIs(err, ErrNilUUID)
}

func (s *DatasetServiceTestSuite) TestGenerateDatasetValidatesInput() {
	_, err := s.svc.GenerateDataset(s.ctx, nil)
	s.Require().ErrorIs(err, ErrNilInput)

	_, err = s.svc.GenerateDataset(s.ctx, &GenerateDatasetInput{GamesPerDifficulty: 1})
	s.Require().ErrorIs(err, ErrNoDifficulties)

	_, err = s.svc.GenerateDataset(s.ctx, &GenerateDatasetInput{
		Difficulties: []config.Level{config.LevelBasic},
	})
	s.Require().ErrorIs(err, ErrNoGames)
}

func (s *DatasetServiceTestSuite) TestGenerateDatasetWritesGridInOrder() {
	input := &GenerateDatasetInput{
		Difficulties:       []config.Level{config.LevelBasic, config.LevelMedium},
		GamesPerDifficulty: 2,
		Seed:               100,
	}

	s.mockUUID.EXPECT().NewUUID().Return(s.testRunID)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.mockClock.EXPECT().Now().Return(s.testTime.Add(3 * time.Second))

	// Each grid cell gets its own seed, stepped from the base seed by a
	// fixed stride over a single counter.
	expected := []struct {
		gameID string
		in     *simulation.SimulateGameInput
	}{
		{"basic_game_1", &simulation.SimulateGameInput{Difficulty: config.LevelBasic, Seed: 100}},
		{"basic_game_2", &simulation.SimulateGameInput{Difficulty: config.LevelBasic, Seed: 100 + seedStride}},
		{"medium_game_1", &simulation.SimulateGameInput{Difficulty: config.LevelMedium, Seed: 100 + 2*seedStride}},
		{"medium_game_2", &simulation.SimulateGameInput{Difficulty: config.LevelMedium, Seed: 100 + 3*seedStride}},
	}

	saves := make([]any, 0, len(expected))
	for _, cell := range expected {
		out := simOutput(cell.gameID)
		s.mockSim.EXPECT().SimulateGame(gomock.Any(), cell.in).Return(out, nil)
		saves = append(saves, s.mockRepo.EXPECT().SaveGame(gomock.Any(), &gamerecord.SaveGameInput{
			Record: &models.GameRecord{
				GameID:  cell.gameID,
				Example: out.Example,
				Report:  out.Report,
			},
		}).Return(nil))
	}
	gomock.InOrder(saves...)

	out, err := s.svc.GenerateDataset(s.ctx, input)
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().NotNil(out.Run)

	s.Equal(s.testRunID, out.Run.ID)
	s.Equal(int64(100), out.Run.Seed)
	s.Equal([]string{"basic", "medium"}, out.Run.Difficulties)
	s.Equal(2, out.Run.GamesPerDifficulty)
	s.Equal(4, out.Run.GamesWritten)
	s.Equal(s.testTime, out.Run.StartedAt)
	s.Equal(3*time.Second, out.Run.Duration)
}

func (s *DatasetServiceTestSuite) TestGenerateDatasetSimulationFailureSkipsPersist() {
	input := &GenerateDatasetInput{
		Difficulties:       []config.Level{config.LevelBasic},
		GamesPerDifficulty: 2,
		Seed:               7,
	}

	s.mockUUID.EXPECT().NewUUID().Return(s.testRunID)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.mockSim.EXPECT().
		SimulateGame(gomock.Any(), &simulation.SimulateGameInput{Difficulty: config.LevelBasic, Seed: 7}).
		Return(simOutput("basic_game_1"), nil)
	s.mockSim.EXPECT().
		SimulateGame(gomock.Any(), &simulation.SimulateGameInput{Difficulty: config.LevelBasic, Seed: 7 + seedStride}).
		Return(nil, DatasetError("boom"))

	_, err := s.svc.GenerateDataset(s.ctx, input)
	s.Require().Error(err)
	s.Contains(err.Error(), "basic_game_2")
}

func (s *DatasetServiceTestSuite) TestGenerateDatasetSaveFailureStops() {
	input := &GenerateDatasetInput{
		Difficulties:       []config.Level{config.LevelBasic},
		GamesPerDifficulty: 2,
		Seed:               7,
	}

	s.mockUUID.EXPECT().NewUUID().Return(s.testRunID)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.mockSim.EXPECT().
		SimulateGame(gomock.Any(), &simulation.SimulateGameInput{Difficulty: config.LevelBasic, Seed: 7}).
		Return(simOutput("basic_game_1"), nil)
	s.mockSim.EXPECT().
		SimulateGame(gomock.Any(), &simulation.SimulateGameInput{Difficulty: config.LevelBasic, Seed: 7 + seedStride}).
		Return(simOutput("basic_game_2"), nil)

	gomock.InOrder(
		s.mockRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(nil),
		s.mockRepo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(DatasetError("disk full")),
	)

	_, err := s.svc.GenerateDataset(s.ctx, input)
	s.Require().Error(err)
	s.Contains(err.Error(), "basic_game_2")
	s.Contains(err.Error(), "disk full")
}
