package models

import (
	"time"
)

// Run summarizes one dataset-generation invocation.
type Run struct {
	// ID is the unique identifier for this run
	ID string

	// Seed is the base seed per-game seeds were derived from
	Seed int64

	// Difficulties lists the difficulty levels generated, in order
	Difficulties []string

	// GamesPerDifficulty is how many games each difficulty produced
	GamesPerDifficulty int

	// GamesWritten is the total number of persisted games
	GamesWritten int

	// StartedAt is when generation began
	StartedAt time.Time

	// Duration is the wall-clock time the run took
	Duration time.Duration
}
