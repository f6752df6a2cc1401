package dataset

import (
	"github.com/courtside/hoopgen/internal/common/clock"
	"github.com/courtside/hoopgen/internal/common/uuid"
	"github.com/courtside/hoopgen/internal/config"
	"github.com/courtside/hoopgen/internal/models"
	"github.com/courtside/hoopgen/internal/repositories/gamerecord"
	"github.com/courtside/hoopgen/internal/services/simulation"
)

// Config holds the dataset service configuration
type Config struct {
	// Simulator generates individual games
	Simulator simulation.Service

	// Repository persists the generated artifact pairs
	Repository gamerecord.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUID generates run identifiers
	UUID uuid.UUID

	// Workers bounds concurrent game simulation. Defaults to
	// DefaultWorkers when not positive.
	Workers int
}

// GenerateDatasetInput contains parameters for one generation run
type GenerateDatasetInput struct {
	// Difficulties lists the levels to generate, in output order
	Difficulties []config.Level

	// GamesPerDifficulty is how many games to generate per level
	GamesPerDifficulty int

	// Seed is the base seed. Every game derives its own stream seed
	// from it, so a run is reproducible end to end.
	Seed int64
}

// GenerateDatasetOutput contains the run summary
type GenerateDatasetOutput struct {
	// Run summarizes what was generated
	Run *models.Run
}
