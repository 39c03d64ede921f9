package character

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/hearthfire/npcforge/internal/entities"
	"github.com/hearthfire/npcforge/internal/errors"
	"github.com/hearthfire/npcforge/internal/pkg/clock"
	redisclient "github.com/hearthfire/npcforge/internal/redis"
)

const (
	characterKeyPrefix = "npcforge:character:"
	characterIndexKey  = "npcforge:characters"

	// DefaultRetention is how long a stored record lives without being
	// refreshed
	DefaultRetention = 15 * time.Minute

	errRecordNil     = "character record cannot be nil"
	errRecordIDEmpty = "character ID cannot be empty"
)

type redisRepository struct {
	client    redisclient.Client
	clock     clock.Clock
	retention time.Duration
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock

	// Retention overrides DefaultRetention when positive.
	Retention time.Duration
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	retention := cfg.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &redisRepository{
		client:    cfg.Client,
		clock:     c,
		retention: retention,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := characterKeyPrefix + input.Record.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Record.ID)
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, r.retention)
	pipe.SAdd(ctx, characterIndexKey, input.Record.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store character")
	}

	return &CreateOutput{Record: input.Record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := characterKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var record entities.CharacterRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	key := characterKeyPrefix + input.ID

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	if err := r.client.SRem(ctx, characterIndexKey, input.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to remove character from index")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, characterIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list character IDs")
	}

	records := make([]*entities.CharacterRecord, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Expired records linger in the index until listed.
			if errors.IsNotFound(err) {
				if err := r.client.SRem(ctx, characterIndexKey, id).Err(); err != nil {
					return nil, errors.Wrapf(err, "failed to prune expired character %s", id)
				}
				continue
			}
			return nil, err
		}
		records = append(records, out.Record)
	}

	return &ListOutput{Records: records}, nil
}
