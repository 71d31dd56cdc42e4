package main

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-alchemy/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-alchemy/internal/config"
	"github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/formula"
	"github.com/KirkDiggler/rpg-alchemy/internal/orchestrators/index"
	"github.com/KirkDiggler/rpg-alchemy/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-alchemy/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-alchemy/internal/redis"
	"github.com/KirkDiggler/rpg-alchemy/internal/repositories/actor"
	alchemicalindex "github.com/KirkDiggler/rpg-alchemy/internal/repositories/alchemical_index"
)

// dependencies is the wired service graph shared by every command
type dependencies struct {
	indexService   index.Service
	formulaService formula.Service
	redis          redisclient.Client
	close          func()
}

// loadConfig reads the environment and applies the flags that were set
func loadConfig(port int, catalogDir string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if port != 0 {
		cfg.Port = port
	}
	if catalogDir != "" {
		cfg.CatalogDir = catalogDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newDependencies(cfg *config.Config) (*dependencies, error) {
	sources, err := catalog.LoadYAMLSources(cfg.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	registry := catalog.NewRegistry(sources...)
	slog.Info("Loaded catalogs", "dir", cfg.CatalogDir, "catalogs", registry.Names())

	redisClient, err := redisclient.NewClient(cfg.RedisClient())
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	indexRepo, err := alchemicalindex.NewRedis(&alchemicalindex.RedisConfig{
		Client:    redisClient,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index repository: %w", err)
	}

	actorRepo, err := actor.NewRedis(&actor.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create actor repository: %w", err)
	}

	indexService, err := index.NewOrchestrator(&index.Config{
		IndexRepo:     indexRepo,
		Catalogs:      registry,
		Clock:         clock.New(),
		IDGenerator:   idgen.NewUUID("build"),
		SystemVersion: cfg.SystemVersion,
		Locale:        cfg.Locale,
		YieldInterval: cfg.YieldInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index service: %w", err)
	}

	formulaService, err := formula.NewOrchestrator(&formula.Config{
		ActorRepo: actorRepo,
		IndexRepo: indexRepo,
		Catalogs:  registry,
		Clock:     clock.New(),
		Settings:  cfg.GrantSettings(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create formula service: %w", err)
	}

	return &dependencies{
		indexService:   indexService,
		formulaService: formulaService,
		redis:          redisClient,
		close: func() {
			_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
		},
	}, nil
}
