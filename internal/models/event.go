package models

// EventKind classifies one entry in the play-by-play log.
type EventKind string

const (
	// EventKindJumpBall opens Q1 and every overtime period
	EventKindJumpBall EventKind = "jump_ball"

	// EventKindPeriodStart marks the start of a period
	EventKindPeriodStart EventKind = "period_start"

	// EventKindPeriodEnd marks the end of a period
	EventKindPeriodEnd EventKind = "period_end"

	// EventKindOvertimeCalled marks a tied period end going to overtime
	EventKindOvertimeCalled EventKind = "overtime_called"

	// EventKindInboundPass opens a possession after a dead ball
	EventKindInboundPass EventKind = "inbound_pass"

	// EventKindPass is a ball-movement hop inside a possession
	EventKindPass EventKind = "pass"

	// EventKindTurnover is a bad pass losing possession
	EventKindTurnover EventKind = "turnover"

	// EventKindSteal is a turnover forced by a named defender
	EventKindSteal EventKind = "steal"

	// EventKindTimeout is a coach-called stoppage
	EventKindTimeout EventKind = "timeout"

	// EventKindGameResume closes a timeout stoppage
	EventKindGameResume EventKind = "game_resume"

	// EventKindScore2PT is an assisted two-point make
	EventKindScore2PT EventKind = "score_2pt"

	// EventKindScore2PTReverse is an assisted two-point make phrased
	// from the receiver's side
	EventKindScore2PTReverse EventKind = "score_2pt_reverse"

	// EventKindScore3PT is an assisted three-point make
	EventKindScore3PT EventKind = "score_3pt"

	// EventKindScore3PTReverse is an assisted three-point make phrased
	// from the receiver's side
	EventKindScore3PTReverse EventKind = "score_3pt_reverse"

	// EventKindMiss2PT is a missed two-point attempt
	EventKindMiss2PT EventKind = "miss_2pt"

	// EventKindMiss3PT is a missed three-point attempt
	EventKindMiss3PT EventKind = "miss_3pt"

	// EventKindBlock2PT is a two-point attempt swatted by a defender
	EventKindBlock2PT EventKind = "block_2pt"

	// EventKindBlock3PT is a three-point attempt swatted by a defender
	EventKindBlock3PT EventKind = "block_3pt"

	// EventKindShootingFoul2PT is a foul on a two-point attempt,
	// resolved with two free throws
	EventKindShootingFoul2PT EventKind = "shooting_foul_2pt"

	// EventKindShootingFoul3PT is a foul on a three-point attempt,
	// resolved with three free throws
	EventKindShootingFoul3PT EventKind = "shooting_foul_3pt"

	// EventKindFreeThrowMade is one made free-throw attempt
	EventKindFreeThrowMade EventKind = "free_throw_made"

	// EventKindFreeThrowMissed is one missed free-throw attempt
	EventKindFreeThrowMissed EventKind = "free_throw_missed"

	// EventKindOffensiveRebound keeps the ball with the shooting team
	EventKindOffensiveRebound EventKind = "offensive_rebound"

	// EventKindDefensiveRebound flips possession to the defense
	EventKindDefensiveRebound EventKind = "defensive_rebound"

	// EventKindSubstitution is a lineup change at a dead ball
	EventKindSubstitution EventKind = "substitution"

	// EventKindFoulOut is a disqualification at the personal foul limit
	EventKindFoulOut EventKind = "foul_out"

	// EventKindShortHanded marks a team continuing without a full unit
	EventKindShortHanded EventKind = "short_handed"

	// EventKindVAROverturn is a reviewed basket ruled an offensive foul
	EventKindVAROverturn EventKind = "var_overturn"

	// EventKindVARReclassify is a reviewed basket moved between the
	// two- and three-point categories
	EventKindVARReclassify EventKind = "var_reclassify"

	// EventKindBonusFreeThrows announces bonus free throws once the
	// team-foul limit is exceeded
	EventKindBonusFreeThrows EventKind = "bonus_free_throws"

	// EventKindEndOfGame closes the log
	EventKindEndOfGame EventKind = "end_of_game"
)

// WeightedEventKinds lists the sampler-selectable kinds in their
// canonical order. Difficulty weight tables and eligibility filtering
// both follow this order.
var WeightedEventKinds = []EventKind{
	EventKindTurnover,
	EventKindSteal,
	EventKindTimeout,
	EventKindScore2PT,
	EventKindScore2PTReverse,
	EventKindScore3PT,
	EventKindScore3PTReverse,
	EventKindMiss2PT,
	EventKindBlock2PT,
	EventKindShootingFoul2PT,
	EventKindMiss3PT,
	EventKindBlock3PT,
	EventKindShootingFoul3PT,
}

// Event is one rendered play-by-play entry.
type Event struct {
	// ID is the 1-based position in the log. IDs are contiguous.
	ID int

	// Kind classifies the entry
	Kind EventKind

	// Text is the rendered description shown in the example artifact
	Text string

	// Team names the team the entry is attributed to, when any
	Team string

	// Players lists the players involved, when any
	Players []string
}
