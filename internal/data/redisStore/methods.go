package redisStore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrConflict = errors.New("redis: watched key changed, transaction aborted")

func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s *Store) GetBytes(ctx context.Context, key string) ([]byte, error) {
	return s.client.Get(ctx, key).Bytes()
}

func (s *Store) Del(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *Store) IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	count, err := s.client.Exists(ctx, key).Result()
	return count > 0, err
}

// ListPush appends and refreshes the key ttl in one round trip.
func (s *Store) ListPush(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, value)
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	return err
}

func (s *Store) ListGetAll(ctx context.Context, key string) ([]string, error) {
	return s.client.LRange(ctx, key, 0, -1).Result()
}

// set members index documents per workspace
func (s *Store) SetRemove(ctx context.Context, key string, member string) error {
	return s.client.SRem(ctx, key, member).Err()
}

func (s *Store) SetMembers(ctx context.Context, key string) ([]string, error) {
	return s.client.SMembers(ctx, key).Result()
}

func (s *Store) HashGet(ctx context.Context, key string, field string) (string, error) {
	return s.client.HGet(ctx, key, field).Result()
}

func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	return s.client.Incr(ctx, key).Result()
}

// SetIndexedIfExists writes key and adds member to indexKey while every guard
// key exists. It returns (false, nil) when a guard is missing and ErrConflict
// when a guard changed during the transaction.
func (s *Store) SetIndexedIfExists(ctx context.Context, key string, value interface{}, ttl time.Duration, indexKey string, member string, guards ...string) (bool, error) {
	written := false
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		count, err := tx.Exists(ctx, guards...).Result()
		if err != nil {
			return err
		}
		if count != int64(len(guards)) {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, value, ttl)
			pipe.SAdd(ctx, indexKey, member)
			if ttl > 0 {
				pipe.Expire(ctx, indexKey, ttl)
			}
			return nil
		})
		if err == nil {
			written = true
		}
		return err
	}, guards...)

	if errors.Is(err, redis.TxFailedErr) {
		return false, ErrConflict
	}
	return written, err
}

// HashSetIfAbsent writes field only if nobody else touched the hash in between.
// It returns (false, nil) when the field already exists and ErrConflict when a
// concurrent writer changed the hash during the transaction.
func (s *Store) HashSetIfAbsent(ctx context.Context, key string, field string, value interface{}) (bool, error) {
	created := false
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, key, field).Result()
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, field, value)
			return nil
		})
		if err == nil {
			created = true
		}
		return err
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return false, ErrConflict
	}
	return created, err
}
