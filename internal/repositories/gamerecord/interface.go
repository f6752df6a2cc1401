package gamerecord

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/courtside/hoopgen/internal/repositories/gamerecord Repository

import (
	"context"
	"errors"

	"github.com/courtside/hoopgen/internal/models"
)

// ErrGameNotFound is returned when no record exists for a game ID
var ErrGameNotFound = errors.New("game record not found")

// Repository defines the interface for generated game persistence
type Repository interface {
	// SaveGame persists one generated game's artifact pair
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game's artifact pair by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error)

	// ListGameIDs retrieves the stored game IDs, sorted
	ListGameIDs(ctx context.Context, input *ListGameIDsInput) (*ListGameIDsOutput, error)
}
