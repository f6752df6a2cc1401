package gamerecord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/courtside/hoopgen/internal/models"
)

const (
	// Key prefixes for Redis
	recordKeyPrefix = "gamerecord:"
	gameIDsKey      = "gamerecord:ids"
)

// RedisConfig holds configuration for the Redis game record repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game record repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveGame persists a game's artifact pair to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	if record.Example == nil || record.Report == nil {
		return errors.New("record needs both artifacts")
	}

	// Marshal both artifacts to JSON
	exampleJSON, err := json.Marshal(record.Example)
	if err != nil {
		return fmt.Errorf("failed to marshal example: %w", err)
	}

	reportJSON, err := json.Marshal(record.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save both artifacts and index the game ID
	pipe.Set(ctx, exampleKey(record.GameID), exampleJSON, 0)
	pipe.Set(ctx, reportKey(record.GameID), reportJSON, 0)
	pipe.SAdd(ctx, gameIDsKey, record.GameID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetGame retrieves a game's artifact pair by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameRecord, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	exampleJSON, err := r.client.Get(ctx, exampleKey(input.GameID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get example: %w", err)
	}

	reportJSON, err := r.client.Get(ctx, reportKey(input.GameID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	// Unmarshal the artifacts from JSON
	var example models.GameExample
	if err := json.Unmarshal([]byte(exampleJSON), &example); err != nil {
		return nil, fmt.Errorf("failed to unmarshal example: %w", err)
	}

	var report models.TrueReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &models.GameRecord{
		GameID:  input.GameID,
		Example: &example,
		Report:  &report,
	}, nil
}

// ListGameIDs retrieves the stored game IDs from Redis, sorted
func (r *redisRepository) ListGameIDs(ctx context.Context, input *ListGameIDsInput) (*ListGameIDsOutput, error) {
	ids, err := r.client.SMembers(ctx, gameIDsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game IDs: %w", err)
	}

	sort.Strings(ids)
	return &ListGameIDsOutput{GameIDs: ids}, nil
}

func exampleKey(gameID string) string {
	return fmt.Sprintf("%s%s:example", recordKeyPrefix, gameID)
}

func reportKey(gameID string) string {
	return fmt.Sprintf("%s%s:report", recordKeyPrefix, gameID)
}
