package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/courtside/hoopgen/internal/common/clock"
	"github.com/courtside/hoopgen/internal/common/uuid"
	"github.com/courtside/hoopgen/internal/config"
	"github.com/courtside/hoopgen/internal/repositories/gamerecord"
	"github.com/courtside/hoopgen/internal/services/dataset"
	"github.com/courtside/hoopgen/internal/services/simulation"
)

// envConfig is the environment surface. Flags of the same meaning win
// over these values.
type envConfig struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	Store         string `env:"HOOPGEN_STORE" envDefault:"jsonl"`
	OutputPath    string `env:"HOOPGEN_OUT" envDefault:"game_data.jsonl"`
	Seed          int64  `env:"HOOPGEN_SEED" envDefault:"0"`
	Workers       int    `env:"HOOPGEN_WORKERS" envDefault:"4"`
}

func main() {
	// A .env file is a development convenience, not a requirement
	_ = godotenv.Load()

	var envCfg envConfig
	if err := env.Parse(&envCfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	var (
		games         = flag.Int("games", 3, "games to generate per difficulty")
		difficulties  = flag.String("difficulties", "basic,medium,hard", "comma-separated difficulty levels")
		seed          = flag.Int64("seed", envCfg.Seed, "base seed; 0 derives one from the clock")
		store         = flag.String("store", envCfg.Store, "record store: jsonl or redis")
		out           = flag.String("out", envCfg.OutputPath, "output path for the jsonl store")
		profilesPath  = flag.String("profiles", "", "optional YAML file overriding difficulty profiles")
		leaguePath    = flag.String("league", "", "optional YAML file replacing the builtin league")
		workers       = flag.Int("workers", envCfg.Workers, "concurrent game simulations")
		foulLimit     = flag.Int("foul-limit", 0, "override the personal foul limit for every profile; 0 keeps profile values")
		teamFoulLimit = flag.Int("team-foul-limit", -1, "override the per-period team foul limit for every profile; 0 disables the bonus, -1 keeps profile values")
	)
	flag.Parse()

	levels, err := parseLevels(*difficulties)
	if err != nil {
		log.Fatalf("Failed to parse difficulties: %v", err)
	}

	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	league, err := config.LoadLeague(*leaguePath)
	if err != nil {
		log.Fatalf("Failed to load league: %v", err)
	}

	profiles, err := config.LoadProfiles(*profilesPath)
	if err != nil {
		log.Fatalf("Failed to load profiles: %v", err)
	}
	for _, profile := range profiles {
		if *foulLimit > 0 {
			profile.FoulLimit = *foulLimit
		}
		if *teamFoulLimit >= 0 {
			profile.TeamFoulLimit = *teamFoulLimit
		}
	}

	repo, err := buildRepository(&envCfg, *store, *out)
	if err != nil {
		log.Fatalf("Failed to create record repository: %v", err)
	}

	simulator, err := simulation.New(&simulation.Config{
		League:   league,
		Profiles: profiles,
	})
	if err != nil {
		log.Fatalf("Failed to create simulation service: %v", err)
	}

	datasetSvc, err := dataset.New(&dataset.Config{
		Simulator:  simulator,
		Repository: repo,
		Clock:      &clock.DefaultClock{},
		UUID:       uuid.New(),
		Workers:    *workers,
	})
	if err != nil {
		log.Fatalf("Failed to create dataset service: %v", err)
	}

	// Interrupts cancel in-flight simulation rather than killing the
	// process mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Generating %d games per difficulty (%s) with base seed %d", *games, *difficulties, baseSeed)

	result, err := datasetSvc.GenerateDataset(ctx, &dataset.GenerateDatasetInput{
		Difficulties:       levels,
		GamesPerDifficulty: *games,
		Seed:               baseSeed,
	})
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	run := result.Run
	log.Printf("Run %s wrote %d games (%s) in %s", run.ID, run.GamesWritten, strings.Join(run.Difficulties, ", "), run.Duration)
}

// parseLevels splits and validates the difficulty list
func parseLevels(raw string) ([]config.Level, error) {
	parts := strings.Split(raw, ",")
	levels := make([]config.Level, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		level, err := config.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no difficulties given")
	}
	return levels, nil
}

// buildRepository picks the record store backend
func buildRepository(envCfg *envConfig, store, out string) (gamerecord.Repository, error) {
	switch store {
	case "jsonl":
		return gamerecord.NewJSONL(&gamerecord.JSONLConfig{Path: out})
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     envCfg.RedisAddr,
			Password: envCfg.RedisPassword,
			DB:       0,
		})
		return gamerecord.NewRedis(&gamerecord.RedisConfig{RedisClient: redisClient})
	}
	return nil, fmt.Errorf("unknown store %q", store)
}
