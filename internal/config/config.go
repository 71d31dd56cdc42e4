// Package config loads service configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	"github.com/KirkDiggler/rpg-alchemy/internal/redis"
)

// Config holds every setting the server and the local builder read
type Config struct {
	Port          int    `env:"ALCHEMY_PORT" envDefault:"50051"`
	RedisAddr     string `env:"ALCHEMY_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"ALCHEMY_REDIS_PASSWORD"`
	RedisDB       int    `env:"ALCHEMY_REDIS_DB"`
	RedisPoolSize int    `env:"ALCHEMY_REDIS_POOL_SIZE"`
	RedisTLS      bool   `env:"ALCHEMY_REDIS_TLS"`
	Namespace     string `env:"ALCHEMY_NAMESPACE" envDefault:"alchemy"`

	CatalogDir string `env:"ALCHEMY_CATALOG_DIR" envDefault:"./catalogs"`
	// Catalogs limits index builds to these catalogs; empty builds them all
	Catalogs       []string      `env:"ALCHEMY_CATALOGS" envSeparator:","`
	SystemVersion  string        `env:"ALCHEMY_SYSTEM_VERSION" envDefault:"unknown"`
	Locale         string        `env:"ALCHEMY_LOCALE" envDefault:"en"`
	BuildOnStartup bool          `env:"ALCHEMY_BUILD_ON_STARTUP"`
	YieldInterval  time.Duration `env:"ALCHEMY_YIELD_INTERVAL" envDefault:"16ms"`

	GrantMode       string `env:"ALCHEMY_GRANT_MODE" envDefault:"ask_each"`
	PruneLowerTiers bool   `env:"ALCHEMY_PRUNE_LOWER_TIERS"`
	RequiredRarity  string `env:"ALCHEMY_REQUIRED_RARITY" envDefault:"common"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	errors.ValidateRange("redis_db", c.RedisDB, 0, 15, vb)
	errors.ValidateRequired("namespace", c.Namespace, vb)
	errors.ValidateRequired("catalog_dir", c.CatalogDir, vb)
	if c.YieldInterval < 0 {
		vb.Field("yield_interval", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	settings := c.GrantSettings()
	return settings.Validate()
}

// RedisClient returns the connection settings for the shared Redis client
func (c *Config) RedisClient() *redis.ClientConfig {
	return &redis.ClientConfig{
		Addr:        c.RedisAddr,
		Password:    c.RedisPassword,
		DB:          c.RedisDB,
		PoolSize:    c.RedisPoolSize,
		DialTimeout: 5 * time.Second,
		UseTLS:      c.RedisTLS,
	}
}

// GrantSettings returns the default settings for level-change grants with
// the rarity normalized; invalid settings are returned as read
func (c *Config) GrantSettings() alchemy.GrantSettings {
	settings := alchemy.GrantSettings{
		Mode:            alchemy.GrantMode(c.GrantMode),
		PruneLowerTiers: c.PruneLowerTiers,
		RequiredRarity:  alchemy.Rarity(c.RequiredRarity),
	}
	if normalized, err := settings.Normalize(); err == nil {
		return normalized
	}
	return settings
}
