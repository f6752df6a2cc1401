package dataset

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/courtside/hoopgen/internal/services/dataset Service

import "context"

// Service defines the interface for dataset generation
type Service interface {
	// GenerateDataset simulates and persists a batch of games
	GenerateDataset(ctx context.Context, input *GenerateDatasetInput) (*GenerateDatasetOutput, error)
}
