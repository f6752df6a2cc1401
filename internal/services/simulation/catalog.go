package simulation

import (
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
)

// eventDef binds a sampleable event kind to its precondition and its
// execution. run reports whether the possession ended with a shot
// attempt, which period accounting uses to close periods.
type eventDef struct {
	eligible func(e *engine, offense, defense *models.TeamState) bool
	run      func(e *engine, kind models.EventKind, offense, defense *models.TeamState) bool
}

// catalog is the closed table of possession-ending events the sampler
// chooses from. Forced follow-ups (rebounds, free throws, foul-outs,
// reviews) and period markers are appended by the engine directly and
// have no entry here.
var catalog = map[models.EventKind]eventDef{
	models.EventKindTurnover: {eligible: alwaysEligible, run: runTurnover},
	models.EventKindSteal:    {eligible: alwaysEligible, run: runSteal},
	models.EventKindTimeout:  {eligible: alwaysEligible, run: runTimeout},

	models.EventKindScore2PT:        {eligible: needsTwoAttackers, run: runScore},
	models.EventKindScore2PTReverse: {eligible: needsTwoAttackers, run: runScore},
	models.EventKindScore3PT:        {eligible: needsTwoAttackers, run: runScore},
	models.EventKindScore3PTReverse: {eligible: needsTwoAttackers, run: runScore},

	models.EventKindMiss2PT: {eligible: needsTwoAttackers, run: runMiss},
	models.EventKindMiss3PT: {eligible: needsTwoAttackers, run: runMiss},

	models.EventKindBlock2PT: {eligible: alwaysEligible, run: runBlock},
	models.EventKindBlock3PT: {eligible: alwaysEligible, run: runBlock},

	models.EventKindShootingFoul2PT: {eligible: defenseCanFoul, run: runShootingFoul},
	models.EventKindShootingFoul3PT: {eligible: defenseCanFoul, run: runShootingFoul},
}

func alwaysEligible(_ *engine, _, _ *models.TeamState) bool {
	return true
}

// needsTwoAttackers gates events narrated as a pass into a shot, which
// need a passer and a distinct shooter on the floor.
func needsTwoAttackers(_ *engine, offense, _ *models.TeamState) bool {
	return len(offense.OnCourt) >= 2
}

// defenseCanFoul gates personal fouls. A team with an empty bench has no
// substitution path left for a foul-out, so it stops committing fouls.
func defenseCanFoul(_ *engine, _, defense *models.TeamState) bool {
	return len(defense.Bench) > 0
}

// threePoint reports whether the kind belongs to the 3PT shot family.
func threePoint(kind models.EventKind) bool {
	switch kind {
	case models.EventKindScore3PT, models.EventKindScore3PTReverse,
		models.EventKindMiss3PT, models.EventKindBlock3PT, models.EventKindShootingFoul3PT:
		return true
	}
	return false
}

// runScore credits an assisted basket, opens the review window, and
// hands possession over.
func runScore(e *engine, kind models.EventKind, offense, defense *models.TeamState) bool {
	passer := e.state.BallHandler
	scorer := e.pickTeammate(offense, passer)
	three := threePoint(kind)
	points, made, attempted := 2, models.Stat2PTMade, models.Stat2PTAttempted
	if three {
		points, made, attempted = 3, models.Stat3PTMade, models.Stat3PTAttempted
	}

	delta := models.Delta{
		{Team: offense.Name, Player: passer, Stat: models.StatAssists, Amount: 1},
		{Team: offense.Name, Player: scorer, Stat: models.StatPoints, Amount: points},
		{Team: offense.Name, Player: scorer, Stat: made, Amount: 1},
		{Team: offense.Name, Player: scorer, Stat: attempted, Amount: 1},
	}
	e.state.Apply(delta)
	e.state.LastScoring = &models.ScoringRecord{
		Kind:       kind,
		PointValue: points,
		Team:       offense.Name,
		Passer:     passer,
		Scorer:     scorer,
		Delta:      delta,
	}

	text := e.narrator.AssistedMake(passer, scorer, three)
	if kind == models.EventKindScore2PTReverse || kind == models.EventKindScore3PTReverse {
		text = e.narrator.ReverseAssistedMake(passer, scorer, three)
	}
	e.state.Append(kind, text, offense.Name, passer, scorer)

	e.state.Possession = defense.Name
	e.reviewLastScore(offense, defense)
	e.randomSubstitutions()
	e.state.BallHandler = ""
	return true
}

// runMiss records a missed shot off a pass and resolves the rebound.
func runMiss(e *engine, kind models.EventKind, offense, defense *models.TeamState) bool {
	passer := e.state.BallHandler
	shooter := e.pickTeammate(offense, passer)
	three := threePoint(kind)
	attempted := models.Stat2PTAttempted
	if three {
		attempted = models.Stat3PTAttempted
	}

	e.state.Apply(models.Delta{
		{Team: offense.Name, Player: shooter, Stat: attempted, Amount: 1},
	})
	e.state.Append(kind, e.narrator.AssistedMiss(passer, shooter, three), offense.Name, passer, shooter)

	e.rebound(offense, defense)
	return true
}

// runTurnover kills the possession with a bad pass. The ball is dead, so
// the next possession opens with an inbound.
func runTurnover(e *engine, _ models.EventKind, offense, defense *models.TeamState) bool {
	player := e.state.BallHandler
	e.state.Apply(models.Delta{
		{Team: offense.Name, Player: player, Stat: models.StatTurnovers, Amount: 1},
	})
	e.state.Append(models.EventKindTurnover, e.narrator.Turnover(player), offense.Name, player)

	e.state.Possession = defense.Name
	e.substitutionChance(offense, "")
	e.state.BallHandler = ""
	return false
}

// runSteal flips possession live: the stealer keeps the ball moving with
// no inbound.
func runSteal(e *engine, _ models.EventKind, offense, defense *models.TeamState) bool {
	victim := e.state.BallHandler
	stealer := rng.Pick(e.stream, defense.OnCourt)

	e.state.Apply(models.Delta{
		{Team: defense.Name, Player: stealer, Stat: models.StatSteals, Amount: 1},
		{Team: offense.Name, Player: victim, Stat: models.StatTurnovers, Amount: 1},
	})
	e.state.Append(models.EventKindSteal, e.narrator.Steal(stealer, victim), defense.Name, stealer, victim)

	e.state.Possession = defense.Name
	e.state.BallHandler = stealer
	return false
}

// runTimeout pauses play, opens a substitution window for both teams,
// and resumes with an inbound. Possession does not change.
func runTimeout(e *engine, _ models.EventKind, offense, _ *models.TeamState) bool {
	e.state.Append(models.EventKindTimeout, e.narrator.Timeout(offense.Coach), offense.Name)
	e.randomSubstitutions()
	e.state.Append(models.EventKindGameResume, e.narrator.Resume(), "")
	e.inbound(offense)
	return false
}

// runBlock records a rejected shot attempt and resolves the rebound.
func runBlock(e *engine, kind models.EventKind, offense, defense *models.TeamState) bool {
	shooter := e.state.BallHandler
	blocker := rng.Pick(e.stream, defense.OnCourt)
	three := threePoint(kind)
	attempted := models.Stat2PTAttempted
	if three {
		attempted = models.Stat3PTAttempted
	}

	e.state.Apply(models.Delta{
		{Team: defense.Name, Player: blocker, Stat: models.StatBlocks, Amount: 1},
		{Team: offense.Name, Player: shooter, Stat: attempted, Amount: 1},
	})
	e.state.Append(kind, e.narrator.Block(blocker, shooter, three), defense.Name, blocker, shooter)

	e.rebound(offense, defense)
	return true
}
