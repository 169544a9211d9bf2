package store

import (
	"context"
	"sync"

	"github.com/akolanti/lexgate/internal/domain/userModel"
)

type InMemoryUserStore struct {
	userLock *sync.Mutex
	users    map[string]userModel.User
	lastId   int64
}

func InitInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		userLock: new(sync.Mutex),
		users:    make(map[string]userModel.User),
	}
}

func (store *InMemoryUserStore) CreateUser(ctx context.Context, user userModel.User) (userModel.User, error) {
	store.userLock.Lock()
	defer store.userLock.Unlock()
	key := normaliseEmail(user.Email)
	if _, exists := store.users[key]; exists {
		return user, userModel.ErrUserExists
	}
	store.lastId++
	user.Id = store.lastId
	store.users[key] = user
	return user, nil
}

func (store *InMemoryUserStore) GetUserByEmail(ctx context.Context, email string) (userModel.User, error) {
	store.userLock.Lock()
	defer store.userLock.Unlock()
	user, ok := store.users[normaliseEmail(email)]
	if !ok {
		return user, userModel.ErrUserNotFound
	}
	return user, nil
}
