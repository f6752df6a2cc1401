package models

// PlayerState tracks one player's availability and personal statistics
// for a single game.
type PlayerState struct {
	// Name is the player's name as it appears in logs and reports
	Name string

	// Team is the name of the owning team
	Team string

	// Stats is the player's personal line. Stats.Fouls is the personal
	// foul count consulted by the foul-out rule.
	Stats StatLine

	// FouledOut is set when the player reaches the personal foul limit
	FouledOut bool

	// OnCourt mirrors membership in the team's on-court set
	OnCourt bool
}
