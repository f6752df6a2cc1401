package simulation

// SimulationError is a custom error type for simulation errors
type SimulationError string

// Error implements the error interface
func (e SimulationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         SimulationError = "config cannot be nil"
	ErrNilLeague         SimulationError = "league cannot be nil"
	ErrNoProfiles        SimulationError = "at least one difficulty profile is required"
	ErrNilInput          SimulationError = "input cannot be nil"
	ErrUnknownDifficulty SimulationError = "no profile registered for difficulty"
	ErrUnknownTeam       SimulationError = "team is not in the league"
	ErrSameTeam          SimulationError = "a matchup needs two different teams"
	ErrPartialMatchup    SimulationError = "fix both teams or neither"
)
