package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"tripweaver/pkg/utils"
)

const redisKeyPrefix = "tripweaver:settings:"

type RedisSettingsRepository struct {
	client *redis.Client
}

func NewRedisSettingsRepository(client *redis.Client) KVStore {
	return &RedisSettingsRepository{client: client}
}

func (r *RedisSettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: redis get %s: %v", utils.ErrDatabaseError, key, err)
	}
	return v, true, nil
}

func (r *RedisSettingsRepository) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", utils.ErrDatabaseError, key, err)
	}
	return nil
}

func (r *RedisSettingsRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%w: redis del %s: %v", utils.ErrDatabaseError, key, err)
	}
	return nil
}
