package simulation

import (
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
)

// reviewLastScore rolls the profile's VAR rate against the reviewable
// scoring record and, on a hit, either overturns the basket as an
// offensive foul or reclassifies its point value. Both corrections apply
// the inverse of the recorded delta or a fresh delta; nothing is ever
// recomputed from the box score. A rate of zero consumes no randomness.
func (e *engine) reviewLastScore(offense, defense *models.TeamState) {
	rec := e.state.LastScoring
	if rec == nil || e.profile.VARRate <= 0 {
		return
	}
	if !rng.Chance(e.stream, e.profile.VARRate) {
		return
	}

	overturn := e.stream.Intn(2) == 0
	if overturn && len(offense.Bench) == 0 {
		// An overturn charges the scorer with a foul, and a team with
		// an empty bench cannot absorb a foul-out.
		overturn = false
	}
	if overturn {
		e.overturnScore(rec, offense, defense)
	} else {
		e.reclassifyScore(rec, offense)
	}
	e.state.LastScoring = nil
}

// overturnScore wipes the basket and rules an offensive foul on the
// scorer: the recorded delta is rolled back, the scorer picks up a foul
// and a turnover, and possession stands with the defense. When the bonus
// rule is live and the offensive foul pushes the team past the limit,
// the fouled defender shoots two.
func (e *engine) overturnScore(rec *models.ScoringRecord, offense, defense *models.TeamState) {
	e.state.Apply(rec.Delta.Inverse())

	victim := rng.Pick(e.stream, defense.OnCourt)
	e.state.Apply(models.Delta{
		{Team: offense.Name, Player: rec.Scorer, Stat: models.StatFouls, Amount: 1},
		{Team: offense.Name, Player: rec.Scorer, Stat: models.StatTurnovers, Amount: 1},
	})
	text := e.narrator.VAROverturn(rec.Scorer, victim)
	e.state.Append(models.EventKindVAROverturn, text, offense.Name, rec.Scorer, victim)

	e.checkFoulOut(offense, rec.Scorer)
	offense.FoulsThisPeriod++

	if e.profile.TeamFoulLimit > 0 && offense.FoulsThisPeriod > e.profile.TeamFoulLimit {
		e.state.Append(models.EventKindBonusFreeThrows, e.narrator.BonusFreeThrows(victim), defense.Name, victim)
		e.freeThrows(victim, defense, offense, 2, false)
	}
}

// reclassifyScore moves the basket between the two- and three-point
// categories. The assist stands; only the point value and the shot pair
// move.
func (e *engine) reclassifyScore(rec *models.ScoringRecord, offense *models.TeamState) {
	var delta models.Delta
	var text string
	if rec.PointValue == 3 {
		delta = models.Delta{
			{Team: offense.Name, Player: rec.Scorer, Stat: models.StatPoints, Amount: -1},
			{Team: offense.Name, Player: rec.Scorer, Stat: models.Stat3PTMade, Amount: -1},
			{Team: offense.Name, Player: rec.Scorer, Stat: models.Stat3PTAttempted, Amount: -1},
			{Team: offense.Name, Player: rec.Scorer, Stat: models.Stat2PTMade, Amount: 1},
			{Team: offense.Name, Player: rec.Scorer, Stat: models.Stat2PTAttempted, Amount: 1},
		}
		text = e.narrator.VARDowngrade(rec.Scorer)
	} else {
		delta = models.Delta{
			{Team: offense.Name, Player: rec.Scorer, Stat: models.StatPoints, Amount: 1},
			{Team: offense.Name, Player: rec.Scorer, Stat: models.Stat2PTMade, Amount: -1},
			{Team: offense.Name, Player: rec.Scorer, Stat: models.Stat2PTAttempted, Amount: -1},
			{Team: offense.Name, Player: rec.Scorer, Stat: models.Stat3PTMade, Amount: 1},
			{Team: offense.Name, Player: rec.Scorer, Stat: models.Stat3PTAttempted, Amount: 1},
		}
		text = e.narrator.VARUpgrade(rec.Scorer)
	}

	e.state.Apply(delta)
	e.state.Append(models.EventKindVARReclassify, text, offense.Name, rec.Scorer)
}
