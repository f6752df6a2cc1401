package models

// TeamState tracks one team's roster, lineup, and accumulated statistics
// for a single game.
type TeamState struct {
	// Name is the team identifier used in logs and reports
	Name string

	// Coach is the head coach's name, used in timeout and substitution lines
	Coach string

	// Roster is the full player list in league order, as reported
	Roster []string

	// StartingLineup is the five players on the floor at tip-off
	StartingLineup []string

	// InitialBench is the bench as of tip-off, as reported
	InitialBench []string

	// OnCourt is the current floor unit. Five players, or four once the
	// team is short-handed.
	OnCourt []string

	// Bench holds the players currently available to check in
	Bench []string

	// Participants records, in order of first appearance, everyone who
	// has been on court
	Participants []string

	// Stats accumulates the team totals
	Stats StatLine

	// Players maps each roster name to its per-player state
	Players map[string]*PlayerState

	// FoulsThisPeriod counts team fouls in the current period. Reset at
	// every period start; consulted only when the bonus rule is enabled.
	FoulsThisPeriod int

	// ShortHanded is set once a player fouls out with an empty bench.
	// It never resets.
	ShortHanded bool
}

// NewTeamState builds the game-time state for a team. roster keeps its
// league order for reporting; lineup is the same set in per-game shuffled
// order, so the first five start and the rest open on the bench.
func NewTeamState(name, coach string, roster, lineup []string) *TeamState {
	t := &TeamState{
		Name:           name,
		Coach:          coach,
		Roster:         append([]string(nil), roster...),
		StartingLineup: append([]string(nil), lineup[:5]...),
		InitialBench:   append([]string(nil), lineup[5:]...),
		OnCourt:        append([]string(nil), lineup[:5]...),
		Bench:          append([]string(nil), lineup[5:]...),
		Participants:   append([]string(nil), lineup[:5]...),
		Players:        make(map[string]*PlayerState, len(roster)),
	}
	for _, name := range roster {
		t.Players[name] = &PlayerState{
			Name: name,
			Team: t.Name,
		}
	}
	for _, name := range t.OnCourt {
		t.Players[name].OnCourt = true
	}
	return t
}

// Player returns the state for the named player, or nil if the player is
// not on the roster.
func (t *TeamState) Player(name string) *PlayerState {
	return t.Players[name]
}

// IsParticipant reports whether the named player has appeared on court.
func (t *TeamState) IsParticipant(name string) bool {
	for _, p := range t.Participants {
		if p == name {
			return true
		}
	}
	return false
}

// AddParticipant records a first appearance. Repeat appearances are
// ignored.
func (t *TeamState) AddParticipant(name string) {
	if !t.IsParticipant(name) {
		t.Participants = append(t.Participants, name)
	}
}

// AvailableCount returns how many players remain eligible to play: the
// floor unit plus the bench.
func (t *TeamState) AvailableCount() int {
	return len(t.OnCourt) + len(t.Bench)
}

// RemoveFromCourt takes the named player off the floor without a
// replacement. No-op if the player is not on court.
func (t *TeamState) RemoveFromCourt(name string) {
	for i, p := range t.OnCourt {
		if p == name {
			t.OnCourt = append(t.OnCourt[:i], t.OnCourt[i+1:]...)
			t.Players[name].OnCourt = false
			return
		}
	}
}

// RemoveFromBench withdraws the named player from the bench. No-op if
// the player is not benched.
func (t *TeamState) RemoveFromBench(name string) {
	for i, p := range t.Bench {
		if p == name {
			t.Bench = append(t.Bench[:i], t.Bench[i+1:]...)
			return
		}
	}
}

// SendToCourt puts the named player on the floor and records the
// appearance.
func (t *TeamState) SendToCourt(name string) {
	t.OnCourt = append(t.OnCourt, name)
	t.Players[name].OnCourt = true
	t.AddParticipant(name)
}

// SendToBench returns an on-court player to the bench.
func (t *TeamState) SendToBench(name string) {
	t.RemoveFromCourt(name)
	t.Bench = append(t.Bench, name)
}
