package simulation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/courtside/hoopgen/internal/services/simulation Service

import "context"

// Service defines the interface for game simulation
type Service interface {
	// SimulateGame runs one complete game and returns its paired artifacts
	SimulateGame(ctx context.Context, input *SimulateGameInput) (*SimulateGameOutput, error)
}
