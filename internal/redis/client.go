// Package redis owns the go-redis connection shared by the index and actor
// repositories.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
)

// ClientConfig describes a single Redis instance.
type ClientConfig struct {
	Addr     string
	Password string
	DB       int
	// PoolSize of zero keeps the go-redis default.
	PoolSize    int
	DialTimeout time.Duration
	UseTLS      bool
}

// Validate validates the ClientConfig.
func (cfg *ClientConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("redis client config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("addr", cfg.Addr, vb)
	errors.ValidateRange("db", cfg.DB, 0, 15, vb)
	if cfg.PoolSize < 0 {
		vb.Field("pool_size", "must not be negative")
	}
	return vb.Build()
}

// NewClient builds a client without dialing; the first command connects.
func NewClient(cfg *ClientConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := &redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	}
	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(opts), nil
}

// Ping checks that the store answers before the server starts taking calls.
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis did not answer ping")
	}
	return nil
}
