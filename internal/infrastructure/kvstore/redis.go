package kvstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore maps keys straight onto Redis string values. Opt-in
// backend for sharing state with other local tooling.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (r *RedisStore) Get(key string) ([]byte, bool, error) {
	raw, err := r.rdb.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *RedisStore) Set(key string, value []byte) error {
	return r.rdb.Set(context.Background(), key, value, 0).Err()
}

func (r *RedisStore) Delete(key string) error {
	return r.rdb.Del(context.Background(), key).Err()
}

var _ Store = (*RedisStore)(nil)
