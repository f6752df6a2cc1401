package models

import (
	"fmt"
)

// StateError is a game-state validation error.
type StateError string

// Error returns the string representation of the error.
func (e StateError) Error() string {
	return string(e)
}

const (
	// ErrInvariant is wrapped by every violation CheckInvariants reports
	ErrInvariant StateError = "invariant violated"
)

// ScoringRecord captures the most recent made basket while it is still
// reviewable. The window closes at the next possession-ending event.
type ScoringRecord struct {
	// Kind is the scoring event kind that produced the basket
	Kind EventKind

	// PointValue is 2 or 3
	PointValue int

	// Team is the scoring team
	Team string

	// Passer is the player credited with the assist
	Passer string

	// Scorer is the player credited with the basket
	Scorer string

	// Delta is the exact stat delta the basket applied
	Delta Delta
}

// GameState is the owned aggregate for one game: both team states, the
// period machine position, possession, and the event log. It is mutated
// only by the simulation loop that owns it.
type GameState struct {
	// Difficulty names the profile the game was generated under
	Difficulty string

	// Period is the current period
	Period Period

	// TeamA and TeamB are the team names in drawn order. TeamA opens
	// the first jump ball.
	TeamA string

	// TeamB is the second team
	TeamB string

	// Teams maps team name to team state
	Teams map[string]*TeamState

	// Possession names the team with the ball. Empty on a dead ball
	// between possessions.
	Possession string

	// BallHandler names the player with the ball, when play is live
	BallHandler string

	// Events is the ordered play-by-play log
	Events []Event

	// LastScoring is the reviewable scoring record, if any
	LastScoring *ScoringRecord
}

// NewGameState assembles the aggregate for two prepared teams. The game
// opens in Q1 with no possession assigned; the jump ball decides it.
func NewGameState(difficulty string, teamA, teamB *TeamState) *GameState {
	return &GameState{
		Difficulty: difficulty,
		Period:     PeriodQ1,
		TeamA:      teamA.Name,
		TeamB:      teamB.Name,
		Teams: map[string]*TeamState{
			teamA.Name: teamA,
			teamB.Name: teamB,
		},
	}
}

// Team returns the state for the named team.
func (g *GameState) Team(name string) *TeamState {
	return g.Teams[name]
}

// Opponent returns the name of the other team.
func (g *GameState) Opponent(name string) string {
	if name == g.TeamA {
		return g.TeamB
	}
	return g.TeamA
}

// Append adds a rendered entry to the log and returns it. IDs are
// assigned contiguously from 1.
func (g *GameState) Append(kind EventKind, text, team string, players ...string) *Event {
	g.Events = append(g.Events, Event{
		ID:      len(g.Events) + 1,
		Kind:    kind,
		Text:    text,
		Team:    team,
		Players: players,
	})
	return &g.Events[len(g.Events)-1]
}

// Apply replays every change in the delta onto both the named player's
// line and their team's line, keeping team totals equal to the sum over
// players by construction.
func (g *GameState) Apply(delta Delta) {
	for _, c := range delta {
		team := g.Teams[c.Team]
		team.Stats.Add(c.Stat, c.Amount)
		team.Players[c.Player].Stats.Add(c.Stat, c.Amount)
	}
}

// Score returns the named team's points total.
func (g *GameState) Score(name string) int {
	return g.Teams[name].Stats.Points
}

// Tied reports whether the two teams are level.
func (g *GameState) Tied() bool {
	return g.Score(g.TeamA) == g.Score(g.TeamB)
}

// CheckInvariants verifies the structural guarantees the simulation
// relies on: no negative counts, attempts covering makes at both
// granularities, team totals equal to participant sums, the on-court,
// participant, starter, and roster sets properly nested, and no
// fouled-out player on the floor. A nil error means the state is sound.
func (g *GameState) CheckInvariants() error {
	for _, name := range []string{g.TeamA, g.TeamB} {
		t := g.Teams[name]
		if t == nil {
			return fmt.Errorf("%w: team %s missing", ErrInvariant, name)
		}
		if err := checkLine(&t.Stats, "team "+name); err != nil {
			return err
		}

		roster := make(map[string]bool, len(t.Roster))
		for _, p := range t.Roster {
			roster[p] = true
		}
		for _, p := range t.StartingLineup {
			if !t.IsParticipant(p) {
				return fmt.Errorf("%w: starter %s of %s not in participants", ErrInvariant, p, name)
			}
		}
		for _, p := range t.Participants {
			if !roster[p] {
				return fmt.Errorf("%w: participant %s of %s not on roster", ErrInvariant, p, name)
			}
		}
		for _, p := range t.OnCourt {
			if !t.IsParticipant(p) {
				return fmt.Errorf("%w: on-court %s of %s not in participants", ErrInvariant, p, name)
			}
			if t.Players[p].FouledOut {
				return fmt.Errorf("%w: fouled-out %s of %s still on court", ErrInvariant, p, name)
			}
		}

		for _, p := range t.Roster {
			if err := checkLine(&t.Players[p].Stats, fmt.Sprintf("player %s (%s)", p, name)); err != nil {
				return err
			}
		}
		for _, stat := range AllStats {
			sum := 0
			for _, p := range t.Participants {
				sum += t.Players[p].Stats.Value(stat)
			}
			if got := t.Stats.Value(stat); got != sum {
				return fmt.Errorf("%w: team %s %s is %d, players sum to %d", ErrInvariant, name, stat, got, sum)
			}
		}
	}
	return nil
}

// checkLine verifies per-line guarantees: nothing negative, every shot
// category's attempts covering its makes.
func checkLine(l *StatLine, owner string) error {
	for _, stat := range AllStats {
		if v := l.Value(stat); v < 0 {
			return fmt.Errorf("%w: %s %s is negative (%d)", ErrInvariant, owner, stat, v)
		}
	}
	for _, pair := range ShotPairs {
		attempts, makes := l.Value(pair[0]), l.Value(pair[1])
		if attempts < makes {
			return fmt.Errorf("%w: %s has %d %s but only %d %s", ErrInvariant, owner, makes, pair[1], attempts, pair[0])
		}
	}
	return nil
}
