package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	"github.com/KirkDiggler/rpg-alchemy/internal/redis"
)

func TestNewClientValidation(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *redis.ClientConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "missing addr", cfg: &redis.ClientConfig{}},
		{name: "db out of range", cfg: &redis.ClientConfig{Addr: "localhost:6379", DB: 16}},
		{name: "negative pool", cfg: &redis.ClientConfig{Addr: "localhost:6379", PoolSize: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := redis.NewClient(tc.cfg)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(&redis.ClientConfig{Addr: mr.Addr(), DB: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, redis.Ping(context.Background(), client))

	mr.SetError("ERR simulated outage")
	err = redis.Ping(context.Background(), client)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
