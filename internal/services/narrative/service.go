// Package narrative renders play-by-play text for simulated games. A Service
// is created once per game: it samples per-game sub-lexicons from the game's
// random stream so that two games with the same seed read identically.
package narrative

import (
	"fmt"

	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/rng"
)

// Config holds the narrative service configuration
type Config struct {
	// Stream is the game's random source, shared with the simulation
	Stream rng.Stream

	// Breadth divides each phrase pool to form the per-game sub-lexicon.
	// 1 keeps every phrase, larger values narrow the wording.
	Breadth int

	// AssistBias is the probability that a plain pass borrows assist-pass
	// wording instead of neutral ball-movement wording.
	AssistBias float64
}

// Service renders event descriptions from per-game sub-lexicons
type Service struct {
	stream rng.Stream
	bias   float64

	assistPass   []string
	receiverPass []string
	plainPass    []string
	madeTwo      []string
	madeThree    []string
	missedTwo    []string
	missedThree  []string
}

// New creates a narrative service, sampling the game's sub-lexicons
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Stream == nil {
		return nil, ErrNilStream
	}

	if cfg.Breadth < 1 {
		return nil, ErrInvalidBreadth
	}

	if cfg.AssistBias < 0 || cfg.AssistBias > 1 {
		return nil, ErrInvalidBias
	}

	return &Service{
		stream:       cfg.Stream,
		bias:         cfg.AssistBias,
		assistPass:   narrow(cfg.Stream, assistPassPhrases, cfg.Breadth),
		receiverPass: narrow(cfg.Stream, receiverPassPhrases, cfg.Breadth),
		plainPass:    plainPassPhrases,
		madeTwo:      narrow(cfg.Stream, madeTwoPhrases, cfg.Breadth),
		madeThree:    narrow(cfg.Stream, madeThreePhrases, cfg.Breadth),
		missedTwo:    narrow(cfg.Stream, missedTwoPhrases, cfg.Breadth),
		missedThree:  narrow(cfg.Stream, missedThreePhrases, cfg.Breadth),
	}, nil
}

// narrow samples a sub-lexicon of size len(pool)/breadth, with a floor of
// 8/breadth phrases so narrow pools keep some variety.
func narrow(s rng.Stream, pool []string, breadth int) []string {
	size := len(pool) / breadth
	if floor := 8 / breadth; size < floor {
		size = floor
	}

	if size > len(pool) {
		size = len(pool)
	}

	return rng.Sample(s, pool, size)
}

// JumpBall renders the opening jump ball
func (s *Service) JumpBall(jumperA, jumperB, winner string) string {
	return fmt.Sprintf("The game starts with a jump ball between %s and %s. %s wins possession.", jumperA, jumperB, winner)
}

// OvertimeJumpBall renders the jump ball opening an overtime period
func (s *Service) OvertimeJumpBall(number int, jumperA, jumperB, winner string) string {
	return fmt.Sprintf("Overtime %d jump ball between %s and %s. %s wins the tip.", number, jumperA, jumperB, winner)
}

// PeriodStart renders a period-start marker
func (s *Service) PeriodStart(period models.Period) string {
	return fmt.Sprintf("Start of %s.", period)
}

// PeriodEnd renders a period-end marker
func (s *Service) PeriodEnd(period models.Period) string {
	return fmt.Sprintf("End of %s.", period)
}

// TieAnnouncement renders the transition from a tied period into overtime
func (s *Service) TieAnnouncement(ended models.Period) string {
	next := 1
	if ended.IsOvertime() {
		next = ended.OvertimeNumber() + 1
	}

	return fmt.Sprintf("%s ends in a tie. Going to OT%d.", ended, next)
}

// EndOfGame renders the final marker
func (s *Service) EndOfGame() string {
	return "End of game."
}

// InboundPass renders the inbound opening a possession
func (s *Service) InboundPass(inbounder, receiver string) string {
	return fmt.Sprintf("%s inbounds the ball to %s to start the possession.", inbounder, receiver)
}

// Pass renders a ball-movement pass. With probability AssistBias the wording
// is drawn from the assist-pass sub-lexicon instead of the neutral pool.
func (s *Service) Pass(passer, receiver string) string {
	pool := s.plainPass
	if s.stream.Float64() < s.bias {
		pool = s.assistPass
	}

	return fmt.Sprintf("%s %s %s.", passer, rng.Pick(s.stream, pool), receiver)
}

// AssistedMake renders a made basket set up by a pass
func (s *Service) AssistedMake(passer, scorer string, three bool) string {
	return fmt.Sprintf("%s %s %s, who %s", passer, rng.Pick(s.stream, s.assistPass), scorer, s.shotPhrase(three))
}

// ReverseAssistedMake renders a made basket from the scorer's point of view
func (s *Service) ReverseAssistedMake(passer, scorer string, three bool) string {
	return fmt.Sprintf("%s %s %s, and %s", scorer, rng.Pick(s.stream, s.receiverPass), passer, s.shotPhrase(three))
}

// AssistedMiss renders a missed shot set up by a pass
func (s *Service) AssistedMiss(passer, shooter string, three bool) string {
	pool := s.missedTwo
	if three {
		pool = s.missedThree
	}

	return fmt.Sprintf("%s %s %s, who %s", passer, rng.Pick(s.stream, s.assistPass), shooter, rng.Pick(s.stream, pool))
}

func (s *Service) shotPhrase(three bool) string {
	if three {
		return rng.Pick(s.stream, s.madeThree)
	}

	return rng.Pick(s.stream, s.madeTwo)
}

// Turnover renders a dead-ball turnover
func (s *Service) Turnover(player string) string {
	return fmt.Sprintf("A bad pass from %s results in a turnover.", player)
}

// Steal renders a live-ball steal
func (s *Service) Steal(stealer, victim string) string {
	return fmt.Sprintf("%s steals the ball from %s!", stealer, victim)
}

// Timeout renders a coach calling a timeout
func (s *Service) Timeout(coach string) string {
	return fmt.Sprintf("%s calls a timeout.", coach)
}

// Resume renders play restarting after a timeout
func (s *Service) Resume() string {
	return "The game resumes after a timeout."
}

// Block renders a blocked shot attempt
func (s *Service) Block(blocker, shooter string, three bool) string {
	return fmt.Sprintf("%s tries a %s shot, but is blocked by %s!", shooter, pointLabel(three), blocker)
}

// ShootingFoul renders a foul on a shot attempt
func (s *Service) ShootingFoul(shooter, fouler string, three bool) string {
	shots := "two"
	if three {
		shots = "three"
	}

	return fmt.Sprintf("%s is fouled by %s on a %s attempt and will go to the line for %s shots.", shooter, fouler, pointLabel(three), shots)
}

// FreeThrowMade renders a made free throw. shot is 1-based within the trip.
func (s *Service) FreeThrowMade(shooter string, shot int) string {
	return fmt.Sprintf("%s makes the %s free throw.", shooter, ftOrdinals[shot-1])
}

// FreeThrowMissed renders a missed free throw. shot is 1-based within the trip.
func (s *Service) FreeThrowMissed(shooter string, shot int) string {
	return fmt.Sprintf("%s misses the %s free throw.", shooter, ftOrdinals[shot-1])
}

// OffensiveRebound renders an offensive board
func (s *Service) OffensiveRebound(player string) string {
	return fmt.Sprintf("Offensive rebound by %s!", player)
}

// DefensiveRebound renders a defensive board
func (s *Service) DefensiveRebound(player string) string {
	return fmt.Sprintf("Defensive rebound by %s.", player)
}

// Substitution renders a routine lineup change
func (s *Service) Substitution(coach, playerIn, playerOut string) string {
	return fmt.Sprintf("Substitution by %s: %s comes in for %s.", coach, playerIn, playerOut)
}

// FoulOutSubstitution renders the forced replacement of a disqualified player
func (s *Service) FoulOutSubstitution(coach, playerIn, playerOut string) string {
	return fmt.Sprintf("Substitution by %s: %s comes in for %s (fouled out).", coach, playerIn, playerOut)
}

// FoulOut renders a player's disqualification
func (s *Service) FoulOut(player string, limit int, team string, available int) string {
	return fmt.Sprintf("%s commits a %dth foul and is disqualified. %s available players: %d.", player, limit, team, available)
}

// ShortHanded renders a team running out of substitutes
func (s *Service) ShortHanded(team string) string {
	return fmt.Sprintf("%s has no eligible substitutes and will continue short-handed.", team)
}

// VAROverturn renders a basket annulled for an offensive foul
func (s *Service) VAROverturn(scorer, victim string) string {
	return fmt.Sprintf("After a VAR review, the previous basket by %s is overturned due to an offensive foul committed by %s against %s before the shot.", scorer, scorer, victim)
}

// VARDowngrade renders a three corrected to a two
func (s *Service) VARDowngrade(scorer string) string {
	return fmt.Sprintf("After a VAR review, %s's basket is downgraded from three to two points (toe on the line).", scorer)
}

// VARUpgrade renders a two corrected to a three
func (s *Service) VARUpgrade(scorer string) string {
	return fmt.Sprintf("After a VAR review, %s's basket is upgraded from two to three points (foot behind the line).", scorer)
}

// BonusFreeThrows renders the bonus award once a team is over the foul limit
func (s *Service) BonusFreeThrows(shooter string) string {
	return fmt.Sprintf("%s is awarded two free throws (team fouls in bonus).", shooter)
}

func pointLabel(three bool) string {
	if three {
		return "3-point"
	}

	return "2-point"
}
