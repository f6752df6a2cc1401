package models

import "fmt"

// Stat identifies a single tracked statistic on a stat line.
type Stat string

const (
	// StatPoints is the scored-points total
	StatPoints Stat = "points"

	// StatAssists is the assists total
	StatAssists Stat = "assists"

	// StatRebounds is the combined rebounds total
	StatRebounds Stat = "rebounds"

	// StatDefensiveRebounds counts rebounds collected by the defense
	StatDefensiveRebounds Stat = "defensive_rebounds"

	// StatOffensiveRebounds counts rebounds collected by the offense
	StatOffensiveRebounds Stat = "offensive_rebounds"

	// StatFouls is the personal (player) or accumulated (team) foul count
	StatFouls Stat = "fouls"

	// StatSteals is the steals total
	StatSteals Stat = "steals"

	// StatBlocks is the blocked-shots total
	StatBlocks Stat = "blocks"

	// StatTurnovers is the turnovers total
	StatTurnovers Stat = "turnovers"

	// Stat2PTMade counts made two-point shots
	Stat2PTMade Stat = "2pt_shots_made"

	// Stat2PTAttempted counts attempted two-point shots
	Stat2PTAttempted Stat = "2pt_shots_attempted"

	// Stat3PTMade counts made three-point shots
	Stat3PTMade Stat = "3pt_shots_made"

	// Stat3PTAttempted counts attempted three-point shots
	Stat3PTAttempted Stat = "3pt_shots_attempted"

	// StatFTMade counts made free throws
	StatFTMade Stat = "ft_made"

	// StatFTAttempted counts attempted free throws
	StatFTAttempted Stat = "ft_attempted"
)

// AllStats lists every tracked statistic in wire order.
var AllStats = []Stat{
	StatPoints,
	StatAssists,
	StatRebounds,
	StatDefensiveRebounds,
	StatOffensiveRebounds,
	StatFouls,
	StatSteals,
	StatBlocks,
	StatTurnovers,
	Stat2PTMade,
	Stat2PTAttempted,
	Stat3PTMade,
	Stat3PTAttempted,
	StatFTMade,
	StatFTAttempted,
}

// ShotPairs lists each attempted/made pair that must satisfy
// attempts >= makes on every line.
var ShotPairs = [][2]Stat{
	{Stat2PTAttempted, Stat2PTMade},
	{Stat3PTAttempted, Stat3PTMade},
	{StatFTAttempted, StatFTMade},
}

// StatLine holds the full statistic set for one team or one player.
// Field order and JSON tags match the report schema consumed downstream.
type StatLine struct {
	Points            int `json:"points"`
	Assists           int `json:"assists"`
	Rebounds          int `json:"rebounds"`
	DefensiveRebounds int `json:"defensive_rebounds"`
	OffensiveRebounds int `json:"offensive_rebounds"`
	Fouls             int `json:"fouls"`
	Steals            int `json:"steals"`
	Blocks            int `json:"blocks"`
	Turnovers         int `json:"turnovers"`
	TwoPTMade         int `json:"2pt_shots_made"`
	TwoPTAttempted    int `json:"2pt_shots_attempted"`
	ThreePTMade       int `json:"3pt_shots_made"`
	ThreePTAttempted  int `json:"3pt_shots_attempted"`
	FTMade            int `json:"ft_made"`
	FTAttempted       int `json:"ft_attempted"`
}

// field returns the addressed counter for stat. The stat set is closed,
// so an unknown stat is a programming error.
func (l *StatLine) field(stat Stat) *int {
	switch stat {
	case StatPoints:
		return &l.Points
	case StatAssists:
		return &l.Assists
	case StatRebounds:
		return &l.Rebounds
	case StatDefensiveRebounds:
		return &l.DefensiveRebounds
	case StatOffensiveRebounds:
		return &l.OffensiveRebounds
	case StatFouls:
		return &l.Fouls
	case StatSteals:
		return &l.Steals
	case StatBlocks:
		return &l.Blocks
	case StatTurnovers:
		return &l.Turnovers
	case Stat2PTMade:
		return &l.TwoPTMade
	case Stat2PTAttempted:
		return &l.TwoPTAttempted
	case Stat3PTMade:
		return &l.ThreePTMade
	case Stat3PTAttempted:
		return &l.ThreePTAttempted
	case StatFTMade:
		return &l.FTMade
	case StatFTAttempted:
		return &l.FTAttempted
	}
	panic(fmt.Sprintf("models: unknown stat %q", stat))
}

// Value returns the current count for stat.
func (l *StatLine) Value(stat Stat) int {
	return *l.field(stat)
}

// Add adjusts the count for stat by amount. Amount may be negative.
func (l *StatLine) Add(stat Stat, amount int) {
	*l.field(stat) += amount
}
