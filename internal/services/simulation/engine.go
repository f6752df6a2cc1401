package simulation

import (
	"fmt"

	"github.com/courtside/hoopgen/internal/config"
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
	"github.com/courtside/hoopgen/internal/services/narrative"
)

// engine advances one game from the opening jump ball to the final
// whistle. It owns the game state and the random stream for the game's
// lifetime; nothing else mutates either.
type engine struct {
	state    *models.GameState
	profile  *config.DifficultyProfile
	stream   rng.Stream
	narrator *narrative.Service

	// targets holds per-period event budgets. Overtimes append to it.
	targets []int

	// billed counts events charged against the current period's budget
	billed int

	// total counts events charged for the whole game
	total int

	// target is the game's event budget, extended by each overtime
	target int

	// openers names the team with opening possession for Q1 through Q4
	openers [4]string
}

func newEngine(state *models.GameState, profile *config.DifficultyProfile, stream rng.Stream, narrator *narrative.Service) *engine {
	return &engine{
		state:    state,
		profile:  profile,
		stream:   stream,
		narrator: narrator,
	}
}

// run plays the whole game. The only error it can return is an invariant
// violation, which always indicates a bug in an event mutator rather
// than a runtime condition.
func (e *engine) run() error {
	e.openGame()

	for e.total < e.target {
		before := len(e.state.Events)
		endedWithShot := e.playPossession()
		e.bill(len(e.state.Events)-before, endedWithShot)

		if err := e.checkState(); err != nil {
			return err
		}

		if e.advanceQuarter(endedWithShot) {
			continue
		}
		e.maybeExtendOvertime()
		e.state.LastScoring = nil
	}

	e.closeGame()
	return e.checkState()
}

// openGame splits the event budget across the four quarters, resolves
// the opening jump ball, and fixes the possession rotation: the jump
// winner opens Q1 and Q3, the other team Q2 and Q4.
func (e *engine) openGame() {
	e.target = e.profile.TargetEvents
	e.targets = make([]int, 4)
	base, rem := e.target/4, e.target%4
	for i := range e.targets {
		e.targets[i] = base
		if i < rem {
			e.targets[i]++
		}
	}

	teamA := e.state.Team(e.state.TeamA)
	teamB := e.state.Team(e.state.TeamB)
	jumperA := rng.Pick(e.stream, teamA.OnCourt)
	jumperB := rng.Pick(e.stream, teamB.OnCourt)
	winner, jumper := teamA, jumperA
	if e.stream.Intn(2) == 1 {
		winner, jumper = teamB, jumperB
	}
	other := e.state.Opponent(winner.Name)

	e.openers = [4]string{winner.Name, other, winner.Name, other}
	e.state.Possession = winner.Name
	e.state.BallHandler = jumper
	e.state.Append(models.EventKindJumpBall,
		e.narrator.JumpBall(jumperA, jumperB, jumper), "", jumperA, jumperB)
	e.state.Append(models.EventKindPeriodStart,
		e.narrator.PeriodStart(e.state.Period), "")
}

// playPossession runs one offensive trip: an inbound if the ball is
// dead, a pass chain, then one sampled possession-ending event. It
// reports whether the trip ended with a shot attempt.
func (e *engine) playPossession() bool {
	offense := e.state.Team(e.state.Possession)
	defense := e.state.Team(e.state.Opponent(offense.Name))

	if e.state.BallHandler == "" {
		e.inbound(offense)
	}
	e.runPassChain(offense)

	kind := e.sampleKind(offense, defense)
	return catalog[kind].run(e, kind, offense, defense)
}

// inbound puts the ball in play from the sideline.
func (e *engine) inbound(offense *models.TeamState) {
	inbounder := rng.Pick(e.stream, offense.OnCourt)
	receiver := e.pickTeammate(offense, inbounder)
	e.state.Append(models.EventKindInboundPass,
		e.narrator.InboundPass(inbounder, receiver), offense.Name, inbounder, receiver)
	e.state.BallHandler = receiver
}

// runPassChain moves the ball between teammates up to the difficulty's
// pass cap before the possession resolves.
func (e *engine) runPassChain(offense *models.TeamState) {
	passes := e.stream.Intn(e.profile.MaxPasses + 1)
	for i := 0; i < passes; i++ {
		passer := e.state.BallHandler
		options := otherPlayers(offense.OnCourt, passer)
		if len(options) == 0 {
			return
		}
		receiver := rng.Pick(e.stream, options)
		e.state.Append(models.EventKindPass,
			e.narrator.Pass(passer, receiver), offense.Name, passer, receiver)
		e.state.BallHandler = receiver
	}
}

// sampleKind draws the possession-ending event among currently eligible
// kinds, weighted by the difficulty profile. When nothing eligible has a
// positive weight it falls back to a timeout, which is always playable
// and keeps the game moving.
func (e *engine) sampleKind(offense, defense *models.TeamState) models.EventKind {
	kinds := make([]models.EventKind, 0, len(models.WeightedEventKinds))
	weights := make([]int, 0, len(models.WeightedEventKinds))
	for _, kind := range models.WeightedEventKinds {
		if !catalog[kind].eligible(e, offense, defense) {
			continue
		}
		kinds = append(kinds, kind)
		weights = append(weights, e.profile.WeightFor(kind))
	}

	idx := rng.WeightedIndex(e.stream, weights)
	if idx < 0 {
		return models.EventKindTimeout
	}
	return kinds[idx]
}

// bill charges this possession's events against the period budget,
// capped at what the period has left. In Q4 and overtime the charge is
// held one short of the cap unless the possession ended with a shot
// attempt, so those periods only ever close on a shot.
func (e *engine) bill(added int, endedWithShot bool) {
	if added <= 0 {
		return
	}

	budget := e.targets[e.periodIndex()]
	charge := added
	if room := budget - e.billed; charge > room {
		charge = room
	}
	if int(e.state.Period) >= 4 && !endedWithShot && e.billed+charge >= budget {
		charge = budget - e.billed - 1
	}
	if charge < 0 {
		charge = 0
	}

	e.billed += charge
	e.total += charge
}

// advanceQuarter closes Q1 through Q3 once the period budget is spent
// and the last possession ended with a shot attempt. Returns true when
// the game moved to the next quarter.
func (e *engine) advanceQuarter(endedWithShot bool) bool {
	if int(e.state.Period) >= 4 {
		return false
	}
	if !endedWithShot || e.billed < e.targets[e.periodIndex()] {
		return false
	}

	e.state.Append(models.EventKindPeriodEnd, e.narrator.PeriodEnd(e.state.Period), "")
	e.state.Period = e.state.Period.Next()
	e.billed = 0
	e.state.Possession = e.openers[e.periodIndex()]
	e.state.BallHandler = ""
	e.state.Append(models.EventKindPeriodStart, e.narrator.PeriodStart(e.state.Period), "")
	e.resetPeriodFouls()
	e.state.LastScoring = nil
	return true
}

// maybeExtendOvertime checks the score once the game budget is spent in
// Q4 or a later overtime. A tie appends a new overtime period with half
// a quarter's budget and a fresh jump ball; otherwise the loop is left
// to run out and the game ends.
func (e *engine) maybeExtendOvertime() {
	if e.total < e.target || int(e.state.Period) < 4 {
		return
	}
	if !e.state.Tied() {
		return
	}

	ended := e.state.Period
	e.state.Append(models.EventKindPeriodEnd, e.narrator.PeriodEnd(ended), "")
	e.state.Append(models.EventKindOvertimeCalled, e.narrator.TieAnnouncement(ended), "")

	budget := e.targets[0] / 2
	if budget < 1 {
		budget = 1
	}
	e.targets = append(e.targets, budget)
	e.target += budget
	e.billed = 0
	e.resetPeriodFouls()

	teamA := e.state.Team(e.state.TeamA)
	teamB := e.state.Team(e.state.TeamB)
	jumperA := rng.Pick(e.stream, teamA.OnCourt)
	jumperB := rng.Pick(e.stream, teamB.OnCourt)
	winner, jumper := teamA, jumperA
	if e.stream.Intn(2) == 1 {
		winner, jumper = teamB, jumperB
	}

	e.state.Append(models.EventKindJumpBall,
		e.narrator.OvertimeJumpBall(ended.OvertimeNumber()+1, jumperA, jumperB, jumper), "", jumperA, jumperB)
	e.state.Period = e.state.Period.Next()
	e.state.Append(models.EventKindPeriodStart, e.narrator.PeriodStart(e.state.Period), "")
	e.state.Possession = winner.Name
	e.state.BallHandler = jumper
}

// closeGame ends the final period and the game. The terminal period's
// end marker has not been appended yet: quarter transitions only close
// Q1 through Q3, and a tie extension closes its own period.
func (e *engine) closeGame() {
	e.state.Append(models.EventKindPeriodEnd, e.narrator.PeriodEnd(e.state.Period), "")
	e.state.Append(models.EventKindEndOfGame, e.narrator.EndOfGame(), "")
}

// rebound resolves a live ball after a miss: offensive one time in
// five, defensive otherwise. The rebounding team takes possession with
// the rebounder holding the ball.
func (e *engine) rebound(offense, defense *models.TeamState) {
	team := defense
	kind := models.EventKindDefensiveRebound
	side := models.StatDefensiveRebounds
	if e.stream.Float64() < 0.2 {
		team = offense
		kind = models.EventKindOffensiveRebound
		side = models.StatOffensiveRebounds
	}

	player := rng.Pick(e.stream, team.OnCourt)
	e.state.Apply(models.Delta{
		{Team: team.Name, Player: player, Stat: models.StatRebounds, Amount: 1},
		{Team: team.Name, Player: player, Stat: side, Amount: 1},
	})

	text := e.narrator.DefensiveRebound(player)
	if kind == models.EventKindOffensiveRebound {
		text = e.narrator.OffensiveRebound(player)
	}
	e.state.Append(kind, text, team.Name, player)

	e.state.Possession = team.Name
	e.state.BallHandler = player
}

// pickTeammate draws an on-court player other than excluded, falling
// back to excluded when nobody else is on the floor.
func (e *engine) pickTeammate(team *models.TeamState, excluded string) string {
	options := otherPlayers(team.OnCourt, excluded)
	if len(options) == 0 {
		return excluded
	}
	return rng.Pick(e.stream, options)
}

func (e *engine) periodIndex() int {
	return int(e.state.Period) - 1
}

func (e *engine) resetPeriodFouls() {
	e.state.Team(e.state.TeamA).FoulsThisPeriod = 0
	e.state.Team(e.state.TeamB).FoulsThisPeriod = 0
}

func (e *engine) checkState() error {
	if err := e.state.CheckInvariants(); err != nil {
		return fmt.Errorf("after event %d: %w", len(e.state.Events), err)
	}
	return nil
}

func otherPlayers(onCourt []string, excluded string) []string {
	others := make([]string, 0, len(onCourt))
	for _, p := range onCourt {
		if p != excluded {
			others = append(others, p)
		}
	}
	return others
}
