package config

import (
	"fmt"

	"github.com/courtside/hoopgen/internal/models"
)

// Level names a difficulty profile.
type Level string

const (
	// LevelBasic is the easiest difficulty: short games, generous pass
	// chains, neutral wording, no reviews
	LevelBasic Level = "basic"

	// LevelMedium adds reviews, adversarial wording, and longer games
	LevelMedium Level = "medium"

	// LevelHard is the longest and most adversarial setting
	LevelHard Level = "hard"
)

// DefaultFoulLimit is the personal foul count that disqualifies a player.
const DefaultFoulLimit = 5

// Levels lists the builtin difficulty levels in generation order.
var Levels = []Level{LevelBasic, LevelMedium, LevelHard}

// ParseLevel validates a difficulty name from a flag or file.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelBasic, LevelMedium, LevelHard:
		return Level(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// DifficultyProfile bundles every tuning knob consumed by one game run.
// Profiles are pure data: the engine and the narrative renderer read
// them, nothing writes them after load.
type DifficultyProfile struct {
	// TargetEvents is the regulation event budget, split across the
	// four quarters
	TargetEvents int `yaml:"target_events"`

	// MaxPasses caps the pass chain inside one possession
	MaxPasses int `yaml:"difficulty_max_passes"`

	// AdversarialAssistBias is the probability that a plain pass is
	// phrased with an assist-scented verb
	AdversarialAssistBias float64 `yaml:"adversarial_assist_bias"`

	// SubstitutionRate is the per-team substitution probability at each
	// dead-ball window
	SubstitutionRate float64 `yaml:"substitution_rate"`

	// VARRate is the review probability after a made basket
	VARRate float64 `yaml:"var_rate"`

	// LexiconBreadth narrows the wording pools: each pool keeps roughly
	// a 1/LexiconBreadth share, so 1 keeps full variety
	LexiconBreadth int `yaml:"lexicon_breadth"`

	// EventWeights is the relative-weight table over the sampler's
	// selectable kinds
	EventWeights map[models.EventKind]int `yaml:"event_weights"`

	// FoulLimit is the personal foul count that disqualifies a player
	FoulLimit int `yaml:"foul_limit"`

	// TeamFoulLimit enables per-period bonus free throws when positive:
	// once a team's period foul count exceeds it, the next non-shooting
	// foul sends the fouled side to the line. Zero disables the rule.
	TeamFoulLimit int `yaml:"team_foul_limit"`
}

// WeightFor returns the relative weight of an event kind, zero when the
// kind is absent from the table.
func (p *DifficultyProfile) WeightFor(kind models.EventKind) int {
	return p.EventWeights[kind]
}

// Validate rejects profiles the engine cannot run.
func (p *DifficultyProfile) Validate() error {
	if p.TargetEvents <= 0 {
		return fmt.Errorf("%w: target_events must be positive, got %d", ErrInvalidProfile, p.TargetEvents)
	}
	if p.MaxPasses < 0 {
		return fmt.Errorf("%w: difficulty_max_passes must not be negative, got %d", ErrInvalidProfile, p.MaxPasses)
	}
	if p.AdversarialAssistBias < 0 || p.AdversarialAssistBias > 1 {
		return fmt.Errorf("%w: adversarial_assist_bias must be in [0,1], got %g", ErrInvalidProfile, p.AdversarialAssistBias)
	}
	if p.SubstitutionRate < 0 || p.SubstitutionRate > 1 {
		return fmt.Errorf("%w: substitution_rate must be in [0,1], got %g", ErrInvalidProfile, p.SubstitutionRate)
	}
	if p.VARRate < 0 || p.VARRate > 1 {
		return fmt.Errorf("%w: var_rate must be in [0,1], got %g", ErrInvalidProfile, p.VARRate)
	}
	if p.LexiconBreadth < 1 {
		return fmt.Errorf("%w: lexicon_breadth must be at least 1, got %d", ErrInvalidProfile, p.LexiconBreadth)
	}
	if p.FoulLimit < 1 {
		return fmt.Errorf("%w: foul_limit must be at least 1, got %d", ErrInvalidProfile, p.FoulLimit)
	}
	if p.TeamFoulLimit < 0 {
		return fmt.Errorf("%w: team_foul_limit must not be negative, got %d", ErrInvalidProfile, p.TeamFoulLimit)
	}

	known := make(map[models.EventKind]bool, len(models.WeightedEventKinds))
	for _, kind := range models.WeightedEventKinds {
		known[kind] = true
	}
	total := 0
	for kind, w := range p.EventWeights {
		if !known[kind] {
			return fmt.Errorf("%w: weight for unknown event kind %q", ErrInvalidProfile, kind)
		}
		if w < 0 {
			return fmt.Errorf("%w: weight for %q must not be negative, got %d", ErrInvalidProfile, kind, w)
		}
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("%w: event_weights need at least one positive entry", ErrInvalidProfile)
	}
	return nil
}

// BuiltinProfiles returns fresh copies of the three canonical profiles.
// Callers may mutate the result without affecting later calls.
func BuiltinProfiles() map[Level]*DifficultyProfile {
	return map[Level]*DifficultyProfile{
		LevelBasic: {
			TargetEvents:          150,
			MaxPasses:             5,
			AdversarialAssistBias: 0,
			SubstitutionRate:      0.05,
			VARRate:               0,
			LexiconBreadth:        4,
			FoulLimit:             DefaultFoulLimit,
			EventWeights: map[models.EventKind]int{
				models.EventKindTurnover:        4,
				models.EventKindSteal:           5,
				models.EventKindTimeout:         4,
				models.EventKindScore2PT:        3,
				models.EventKindScore2PTReverse: 0,
				models.EventKindScore3PT:        3,
				models.EventKindScore3PTReverse: 0,
				models.EventKindMiss2PT:         10,
				models.EventKindBlock2PT:        8,
				models.EventKindShootingFoul2PT: 8,
				models.EventKindMiss3PT:         9,
				models.EventKindBlock3PT:        8,
				models.EventKindShootingFoul3PT: 7,
			},
		},
		LevelMedium: {
			TargetEvents:          600,
			MaxPasses:             3,
			AdversarialAssistBias: 1,
			SubstitutionRate:      0.1,
			VARRate:               0.05,
			LexiconBreadth:        2,
			FoulLimit:             DefaultFoulLimit,
			EventWeights: map[models.EventKind]int{
				models.EventKindTurnover:        3,
				models.EventKindSteal:           5,
				models.EventKindTimeout:         3,
				models.EventKindScore2PT:        7,
				models.EventKindScore2PTReverse: 5,
				models.EventKindScore3PT:        7,
				models.EventKindScore3PTReverse: 5,
				models.EventKindMiss2PT:         8,
				models.EventKindBlock2PT:        6,
				models.EventKindShootingFoul2PT: 5,
				models.EventKindMiss3PT:         7,
				models.EventKindBlock3PT:        6,
				models.EventKindShootingFoul3PT: 5,
			},
		},
		LevelHard: {
			TargetEvents:          900,
			MaxPasses:             1,
			AdversarialAssistBias: 1,
			SubstitutionRate:      0.15,
			VARRate:               0.1,
			LexiconBreadth:        1,
			FoulLimit:             DefaultFoulLimit,
			EventWeights: map[models.EventKind]int{
				models.EventKindTurnover:        2,
				models.EventKindSteal:           5,
				models.EventKindTimeout:         2,
				models.EventKindScore2PT:        9,
				models.EventKindScore2PTReverse: 7,
				models.EventKindScore3PT:        9,
				models.EventKindScore3PTReverse: 7,
				models.EventKindMiss2PT:         6,
				models.EventKindBlock2PT:        4,
				models.EventKindShootingFoul2PT: 3,
				models.EventKindMiss3PT:         5,
				models.EventKindBlock3PT:        4,
				models.EventKindShootingFoul3PT: 3,
			},
		},
	}
}
