package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/data/redisStore"
	"github.com/akolanti/lexgate/internal/domain/userModel"
	"github.com/akolanti/lexgate/pkg/logger_i"
)

const userSeqKey = config.RedisUsersKey + ":seq"

// RedisUserStore keeps users in one hash keyed by lower-cased email.
// Signups go through WATCH/MULTI so concurrent writers cannot overwrite each other.
type RedisUserStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisUserStore(ctx context.Context, opts redisStore.Options) *RedisUserStore {
	s := redisStore.GetRedisStore(ctx, opts, config.RedisUserStore)
	if s == nil {
		return nil
	}
	return NewRedisUserStore(s)
}

func NewRedisUserStore(s *redisStore.Store) *RedisUserStore {
	return &RedisUserStore{
		store:  s,
		logger: logger_i.NewLogger("UserStore"),
	}
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *RedisUserStore) CreateUser(ctx context.Context, user userModel.User) (userModel.User, error) {
	log := s.logger.Trace(ctx)
	field := normaliseEmail(user.Email)

	for attempt := 1; attempt <= config.UserStoreMaxTxRetries; attempt++ {
		id, err := s.store.Incr(ctx, userSeqKey)
		if err != nil {
			return user, fmt.Errorf("allocate user id: %w", err)
		}
		user.Id = id

		data, err := json.Marshal(user)
		if err != nil {
			return user, fmt.Errorf("marshal user: %w", err)
		}

		created, err := s.store.HashSetIfAbsent(ctx, config.RedisUsersKey, field, data)
		if errors.Is(err, redisStore.ErrConflict) {
			log.Warn("user store changed during signup, retrying", "attempt", attempt)
			continue
		}
		if err != nil {
			return user, fmt.Errorf("save user: %w", err)
		}
		if !created {
			return user, userModel.ErrUserExists
		}
		log.Info("user created", "userId", user.Id)
		return user, nil
	}
	return user, fmt.Errorf("save user: %w", redisStore.ErrConflict)
}

func (s *RedisUserStore) GetUserByEmail(ctx context.Context, email string) (userModel.User, error) {
	var user userModel.User
	val, err := s.store.HashGet(ctx, config.RedisUsersKey, normaliseEmail(email))
	if s.store.IsNil(err) {
		return user, userModel.ErrUserNotFound
	} else if err != nil {
		return user, fmt.Errorf("read user: %w", err)
	}
	if err = json.Unmarshal([]byte(val), &user); err != nil {
		return user, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}
