package gamerecord

import "github.com/courtside/hoopgen/internal/models"

type SaveGameInput struct {
	Record *models.GameRecord
}

type GetGameInput struct {
	GameID string
}

type ListGameIDsInput struct {
}

type ListGameIDsOutput struct {
	GameIDs []string
}
