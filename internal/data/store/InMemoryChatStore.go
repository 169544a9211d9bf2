package store

import (
	"context"
	"sync"

	"github.com/akolanti/lexgate/internal/domain/chatModel"
)

type InMemoryChatStore struct {
	chatLock      *sync.RWMutex
	chatMap       map[string][]chatModel.ChatMessage
	conversations map[string]chatModel.Conversation
}

func InitInMemoryChatStore() *InMemoryChatStore {
	return &InMemoryChatStore{
		chatLock:      new(sync.RWMutex),
		chatMap:       make(map[string][]chatModel.ChatMessage),
		conversations: make(map[string]chatModel.Conversation),
	}
}

func (store *InMemoryChatStore) Append(ctx context.Context, workspaceId string, msg chatModel.ChatMessage) error {
	store.chatLock.Lock()
	defer store.chatLock.Unlock()
	store.chatMap[workspaceId] = append(store.chatMap[workspaceId], msg)
	return nil
}

func (store *InMemoryChatStore) History(ctx context.Context, workspaceId string) ([]chatModel.ChatMessage, error) {
	store.chatLock.RLock()
	defer store.chatLock.RUnlock()
	history := make([]chatModel.ChatMessage, len(store.chatMap[workspaceId]))
	copy(history, store.chatMap[workspaceId])
	return history, nil
}

func (store *InMemoryChatStore) Clear(ctx context.Context, workspaceId string) error {
	store.chatLock.Lock()
	defer store.chatLock.Unlock()
	delete(store.chatMap, workspaceId)
	delete(store.conversations, workspaceId)
	return nil
}

func (store *InMemoryChatStore) SaveConversation(ctx context.Context, workspaceId string, conv chatModel.Conversation) error {
	store.chatLock.Lock()
	defer store.chatLock.Unlock()
	store.conversations[workspaceId] = conv
	return nil
}

func (store *InMemoryChatStore) GetConversation(ctx context.Context, workspaceId string) (chatModel.Conversation, bool) {
	store.chatLock.RLock()
	defer store.chatLock.RUnlock()
	conv, ok := store.conversations[workspaceId]
	return conv, ok
}
