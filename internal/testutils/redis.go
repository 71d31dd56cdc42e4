// Package testutils holds shared fixtures and the in-memory Redis used by
// repository and orchestrator tests.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-alchemy/internal/redis"
)

// CreateTestRedis returns a client on a fresh miniredis together with the
// server, so a test can inspect keys or make every command fail with SetError.
func CreateTestRedis(t *testing.T) (redis.Client, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(&redis.ClientConfig{Addr: mr.Addr()})
	require.NoError(t, err, "failed to create redis client")

	return client, mr, func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}
}
