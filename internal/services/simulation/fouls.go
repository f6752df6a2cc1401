package simulation

import (
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
)

// runShootingFoul charges a defender with a foul on the shot, counts the
// attempt, and sends the shooter to the line for two or three free
// throws depending on the shot family.
func runShootingFoul(e *engine, kind models.EventKind, offense, defense *models.TeamState) bool {
	shooter := e.state.BallHandler
	fouler := rng.Pick(e.stream, defense.OnCourt)
	three := threePoint(kind)
	attempted := models.Stat2PTAttempted
	shots := 2
	if three {
		attempted = models.Stat3PTAttempted
		shots = 3
	}

	e.state.Apply(models.Delta{
		{Team: offense.Name, Player: shooter, Stat: attempted, Amount: 1},
		{Team: defense.Name, Player: fouler, Stat: models.StatFouls, Amount: 1},
	})
	e.state.Append(kind, e.narrator.ShootingFoul(shooter, fouler, three), defense.Name, shooter, fouler)

	e.checkFoulOut(defense, fouler)
	defense.FoulsThisPeriod++

	e.freeThrows(shooter, offense, defense, shots, true)
	return true
}

// freeThrows resolves a trip to the line. A made final attempt hands the
// ball to the opposing team for an inbound; a missed final attempt goes
// to a live rebound. When subsBetween is set, both teams get a
// substitution window between attempts, with the shooter locked on the
// floor.
func (e *engine) freeThrows(shooter string, shooting, opposing *models.TeamState, shots int, subsBetween bool) {
	for shot := 1; shot <= shots; shot++ {
		last := shot == shots
		if e.stream.Float64() <= 0.5 {
			e.state.Apply(models.Delta{
				{Team: shooting.Name, Player: shooter, Stat: models.StatPoints, Amount: 1},
				{Team: shooting.Name, Player: shooter, Stat: models.StatFTMade, Amount: 1},
				{Team: shooting.Name, Player: shooter, Stat: models.StatFTAttempted, Amount: 1},
			})
			e.state.Append(models.EventKindFreeThrowMade, e.narrator.FreeThrowMade(shooter, shot), shooting.Name, shooter)
			if last {
				e.state.Possession = opposing.Name
				e.state.BallHandler = ""
			}
		} else {
			e.state.Apply(models.Delta{
				{Team: shooting.Name, Player: shooter, Stat: models.StatFTAttempted, Amount: 1},
			})
			e.state.Append(models.EventKindFreeThrowMissed, e.narrator.FreeThrowMissed(shooter, shot), shooting.Name, shooter)
			if last {
				e.rebound(shooting, opposing)
			}
		}
		if !last && subsBetween {
			e.substitutionChance(shooting, shooter)
			e.substitutionChance(opposing, "")
		}
	}
}

// checkFoulOut disqualifies the player once they reach the personal foul
// limit. A player fouled out on the floor is replaced from the bench, or
// leaves the team short-handed when the bench is empty. Reports whether
// the player was disqualified.
func (e *engine) checkFoulOut(team *models.TeamState, player string) bool {
	p := team.Player(player)
	if p == nil || p.FouledOut || p.Stats.Fouls < e.profile.FoulLimit {
		return false
	}

	wasOnCourt := p.OnCourt
	if wasOnCourt {
		team.RemoveFromCourt(player)
	} else {
		team.RemoveFromBench(player)
	}
	p.FouledOut = true

	text := e.narrator.FoulOut(player, e.profile.FoulLimit, team.Name, team.AvailableCount())
	e.state.Append(models.EventKindFoulOut, text, team.Name, player)

	if !wasOnCourt {
		return true
	}
	if len(team.Bench) == 0 {
		team.ShortHanded = true
		e.state.Append(models.EventKindShortHanded, e.narrator.ShortHanded(team.Name), team.Name)
		return true
	}

	replacement := rng.Pick(e.stream, team.Bench)
	team.RemoveFromBench(replacement)
	team.SendToCourt(replacement)
	text = e.narrator.FoulOutSubstitution(team.Coach, replacement, player)
	e.state.Append(models.EventKindSubstitution, text, team.Name, replacement, player)
	return true
}
