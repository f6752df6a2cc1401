// Package simulation generates complete basketball games: a stochastic
// event loop advances the game period by period, mutating team and player
// statistics through reversible deltas so that the final box score is
// always consistent with the rendered play-by-play.
package simulation

import (
	"context"
	"fmt"

	"github.com/courtside/hoopgen/internal/config"
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
	"github.com/courtside/hoopgen/internal/services/narrative"
)

// service implements the Service interface
type service struct {
	league   *config.League
	profiles map[config.Level]*config.DifficultyProfile
}

// New creates a new simulation service
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.League == nil {
		return nil, ErrNilLeague
	}

	if err := cfg.League.Validate(); err != nil {
		return nil, err
	}

	if len(cfg.Profiles) == 0 {
		return nil, ErrNoProfiles
	}

	for level, profile := range cfg.Profiles {
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", level, err)
		}
	}

	return &service{
		league:   cfg.League,
		profiles: cfg.Profiles,
	}, nil
}

// SimulateGame runs one complete game. Everything random in the game,
// from the matchup draw to the last free throw, comes from a stream
// seeded by input.Seed, so equal inputs reproduce the game exactly.
func (s *service) SimulateGame(ctx context.Context, input *SimulateGameInput) (*SimulateGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	profile, ok := s.profiles[input.Difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, input.Difficulty)
	}

	stream := rng.New(&rng.Config{Seed: input.Seed})

	// The narrator samples its sub-lexicons first, before any game
	// decision draws from the stream.
	narrator, err := narrative.New(&narrative.Config{
		Stream:     stream,
		Breadth:    profile.LexiconBreadth,
		AssistBias: profile.AdversarialAssistBias,
	})
	if err != nil {
		return nil, err
	}

	teamA, teamB, err := s.matchup(stream, input)
	if err != nil {
		return nil, err
	}

	state := models.NewGameState(string(input.Difficulty),
		prepareTeam(stream, teamA), prepareTeam(stream, teamB))

	eng := newEngine(state, profile, stream, narrator)
	if err := eng.run(); err != nil {
		return nil, err
	}

	return &SimulateGameOutput{
		Example: buildExample(state),
		Report:  buildReport(state),
	}, nil
}

// matchup resolves the two teams for a game: the pinned pair when the
// input names one, otherwise a two-team draw from the league.
func (s *service) matchup(stream rng.Stream, input *SimulateGameInput) (*config.Team, *config.Team, error) {
	if (input.TeamA == "") != (input.TeamB == "") {
		return nil, nil, ErrPartialMatchup
	}

	if input.TeamA != "" {
		if input.TeamA == input.TeamB {
			return nil, nil, fmt.Errorf("%w: %q", ErrSameTeam, input.TeamA)
		}
		teamA := s.league.Team(input.TeamA)
		if teamA == nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTeam, input.TeamA)
		}
		teamB := s.league.Team(input.TeamB)
		if teamB == nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownTeam, input.TeamB)
		}
		return teamA, teamB, nil
	}

	drawn := rng.Sample(stream, s.league.Names(), 2)
	return s.league.Team(drawn[0]), s.league.Team(drawn[1]), nil
}

// prepareTeam builds a team's game state from its league entry, shuffling
// the squad to decide who starts.
func prepareTeam(stream rng.Stream, team *config.Team) *models.TeamState {
	lineup := rng.Sample(stream, team.Players, len(team.Players))
	return models.NewTeamState(team.Name, team.Coach, team.Players, lineup)
}
