package simulation

import (
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
)

// randomSubstitutions gives both teams one substitution chance at a dead
// ball, always in team-A-then-team-B order.
func (e *engine) randomSubstitutions() {
	e.substitutionChance(e.state.Team(e.state.TeamA), "")
	e.substitutionChance(e.state.Team(e.state.TeamB), "")
}

// substitutionChance rolls the profile's substitution rate for one team
// and, on success, swaps a random floor player for a random bench
// player. locked names a player who must stay on the floor (the shooter
// between free throws). A rate of zero consumes no randomness.
func (e *engine) substitutionChance(team *models.TeamState, locked string) {
	if e.profile.SubstitutionRate <= 0 {
		return
	}
	if !rng.Chance(e.stream, e.profile.SubstitutionRate) {
		return
	}
	if len(team.Bench) == 0 {
		return
	}
	options := otherPlayers(team.OnCourt, locked)
	if len(options) == 0 {
		return
	}

	out := rng.Pick(e.stream, options)
	in := rng.Pick(e.stream, team.Bench)
	team.SendToBench(out)
	team.RemoveFromBench(in)
	team.SendToCourt(in)

	text := e.narrator.Substitution(team.Coach, in, out)
	e.state.Append(models.EventKindSubstitution, text, team.Name, in, out)
}
