package alchemicalindex

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-alchemy/internal/entities/alchemy"
	"github.com/KirkDiggler/rpg-alchemy/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-alchemy/internal/redis"
)

const (
	// DefaultNamespace prefixes both index keys
	DefaultNamespace = "alchemy"

	entriesKeySuffix = ":index:entries"
	metaKeySuffix    = ":index:meta"

	errIndexNil = "index cannot be nil"
)

type redisRepository struct {
	client    redisclient.Client
	namespace string
}

// RedisConfig contains configuration for the Redis index repository.
type RedisConfig struct {
	Client    redisclient.Client
	Namespace string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed index repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &redisRepository{
		client:    cfg.Client,
		namespace: namespace,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	values, err := r.client.MGet(ctx, r.entriesKey(), r.metaKey()).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get alchemical index")
	}

	entriesJSON, entriesOK := values[0].(string)
	metaJSON, metaOK := values[1].(string)
	if !entriesOK || !metaOK {
		return nil, errors.NotFound("alchemical index not found")
	}

	index := alchemy.NewIndex()
	if err := json.Unmarshal([]byte(entriesJSON), &index.Entries); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal index entries")
	}
	if index.Entries == nil {
		index.Entries = make(map[string]*alchemy.IndexEntry)
	}
	if err := json.Unmarshal([]byte(metaJSON), &index.Metadata); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal index metadata")
	}

	return &GetOutput{Index: index}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Index == nil {
		return nil, errors.InvalidArgument(errIndexNil)
	}

	entriesJSON, err := json.Marshal(input.Index.Entries)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal index entries")
	}
	metaJSON, err := json.Marshal(input.Index.Metadata)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal index metadata")
	}

	// Both keys flip together so readers never see entries from one build
	// with metadata from another.
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.entriesKey(), entriesJSON, 0)
		pipe.Set(ctx, r.metaKey(), metaJSON, 0)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save alchemical index")
	}

	return &SaveOutput{Metadata: input.Index.Metadata}, nil
}

func (r *redisRepository) entriesKey() string {
	return r.namespace + entriesKeySuffix
}

func (r *redisRepository) metaKey() string {
	return r.namespace + metaKeySuffix
}

// EntriesKey returns the Redis key holding index entries for a namespace
// Exposed for testing purposes
func EntriesKey(namespace string) string {
	return namespace + entriesKeySuffix
}

// MetaKey returns the Redis key holding index metadata for a namespace
// Exposed for testing purposes
func MetaKey(namespace string) string {
	return namespace + metaKeySuffix
}
