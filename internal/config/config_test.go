package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-alchemy/internal/config"
	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "alchemy", cfg.Namespace)
	assert.Equal(t, "localhost:6379", cfg.RedisClient().Addr)
	assert.Zero(t, cfg.RedisClient().DB)
	assert.Equal(t, 16*time.Millisecond, cfg.YieldInterval)
	assert.Empty(t, cfg.Catalogs)
	assert.Equal(t, alchemy.DefaultGrantSettings(), cfg.GrantSettings())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"ALCHEMY_PORT":              "6000",
		"ALCHEMY_CATALOGS":          "equipment,homebrew",
		"ALCHEMY_GRANT_MODE":        "auto",
		"ALCHEMY_PRUNE_LOWER_TIERS": "true",
		"ALCHEMY_REQUIRED_RARITY":   "uncommon",
		"ALCHEMY_BUILD_ON_STARTUP":  "true",
		"ALCHEMY_REDIS_DB":          "3",
		"ALCHEMY_REDIS_TLS":         "true",
	})
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, []string{"equipment", "homebrew"}, cfg.Catalogs)
	assert.True(t, cfg.BuildOnStartup)
	assert.Equal(t, 3, cfg.RedisClient().DB)
	assert.True(t, cfg.RedisClient().UseTLS)
	assert.Equal(t, alchemy.GrantSettings{
		Mode:            alchemy.GrantModeAuto,
		PruneLowerTiers: true,
		RequiredRarity:  alchemy.RarityUncommon,
	}, cfg.GrantSettings())
}

func TestLoadFrom_RarityIsNormalized(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"ALCHEMY_REQUIRED_RARITY": "Uncommon"})
	require.NoError(t, err)

	assert.Equal(t, alchemy.RarityUncommon, cfg.GrantSettings().RequiredRarity)
}

func TestLoadFrom_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unparsable port", env: map[string]string{"ALCHEMY_PORT": "fifty"}},
		{name: "port out of range", env: map[string]string{"ALCHEMY_PORT": "70000"}},
		{name: "unknown grant mode", env: map[string]string{"ALCHEMY_GRANT_MODE": "sometimes"}},
		{name: "redis db out of range", env: map[string]string{"ALCHEMY_REDIS_DB": "16"}},
		{name: "unknown rarity", env: map[string]string{"ALCHEMY_REQUIRED_RARITY": "legendary"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.LoadFrom(tc.env)
			assert.Nil(t, cfg)
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}
