package character

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/KirkDiggler/vop-sheet/internal/errors"
	"github.com/KirkDiggler/vop-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/vop-sheet/internal/redis"
)

const savedAtSuffix = ":savedAt"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis save slot repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a Redis-backed repository. The slot name is the key; the
// saved-at stamp lives next to it under "<slot>:savedAt".
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	payloadCmd := pipe.Get(ctx, input.Slot)
	savedAtCmd := pipe.Get(ctx, input.Slot+savedAtSuffix)
	if _, err := pipe.Exec(ctx); err != nil && !redisclient.IsNil(err) {
		return nil, errors.Wrapf(err, "failed to load slot %s", input.Slot)
	}

	payload, err := payloadCmd.Bytes()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.SlotEmpty(input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to load slot %s", input.Slot)
	}

	character, err := decode(input.Slot, payload)
	if err != nil {
		slog.WarnContext(ctx, "discarding undecodable save",
			"slot", input.Slot,
			"error", err.Error())
		return nil, err
	}

	out := &LoadOutput{Character: character}
	if raw, err := savedAtCmd.Result(); err == nil {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			out.SavedAt = time.UnixMilli(ms).UTC()
		}
	}
	return out, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := encode(input.Character)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, input.Slot, data, 0)
	pipe.Set(ctx, input.Slot+savedAtSuffix, strconv.FormatInt(now.UnixMilli(), 10), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save slot %s", input.Slot)
	}

	slog.DebugContext(ctx, "saved character",
		"slot", input.Slot,
		"bytes", len(data))

	return &SaveOutput{SavedAt: now}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	if err := r.client.Del(ctx, input.Slot, input.Slot+savedAtSuffix).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete slot %s", input.Slot)
	}
	return &DeleteOutput{}, nil
}
