package simulation

import (
	"github.com/courtside/hoopgen/internal/config"
	"github.com/courtside/hoopgen/internal/models"
)

// Config holds the simulation service configuration
type Config struct {
	// League is the pool of teams games are drawn from
	League *config.League

	// Profiles maps each supported difficulty to its tuning
	Profiles map[config.Level]*config.DifficultyProfile
}

// SimulateGameInput contains parameters for simulating one game
type SimulateGameInput struct {
	// Difficulty selects the profile for this game
	Difficulty config.Level

	// Seed fixes the game's random stream. The same seed, difficulty,
	// and matchup always reproduce the same game.
	Seed int64

	// TeamA and TeamB optionally pin the matchup. Leave both empty to
	// draw two teams from the league.
	TeamA string

	// TeamB is the second pinned team
	TeamB string
}

// SimulateGameOutput contains the generated artifact pair
type SimulateGameOutput struct {
	// Example is the narrative artifact handed to the reader
	Example *models.GameExample

	// Report is the ground-truth box score
	Report *models.TrueReport
}
