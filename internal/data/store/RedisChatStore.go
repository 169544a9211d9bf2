package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/data/redisStore"
	"github.com/akolanti/lexgate/internal/domain/chatModel"
	"github.com/akolanti/lexgate/pkg/logger_i"
)

const (
	chatKeyPrefix         = "chat:"
	conversationKeyPrefix = "conversation:"
)

type RedisChatStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisChatStore(ctx context.Context, opts redisStore.Options) *RedisChatStore {
	s := redisStore.GetRedisStore(ctx, opts, config.RedisChatStore)
	if s == nil {
		return nil
	}
	return NewRedisChatStore(s)
}

func NewRedisChatStore(s *redisStore.Store) *RedisChatStore {
	return &RedisChatStore{
		store:  s,
		logger: logger_i.NewLogger("ChatStore"),
	}
}

func (s *RedisChatStore) Append(ctx context.Context, workspaceId string, msg chatModel.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal chat message: %w", err)
	}
	if err = s.store.ListPush(ctx, chatKeyPrefix+workspaceId, data, config.RedisChatStoreTTL); err != nil {
		s.logger.Trace(ctx).Error("error saving chat", "workspaceId", workspaceId, "error", err)
		return err
	}
	return nil
}

func (s *RedisChatStore) History(ctx context.Context, workspaceId string) ([]chatModel.ChatMessage, error) {
	raw, err := s.store.ListGetAll(ctx, chatKeyPrefix+workspaceId)
	if err != nil {
		return nil, fmt.Errorf("read chat history: %w", err)
	}
	history := make([]chatModel.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg chatModel.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			s.logger.Trace(ctx).Warn("skipping malformed chat entry", "workspaceId", workspaceId, "error", err)
			continue
		}
		history = append(history, msg)
	}
	return history, nil
}

func (s *RedisChatStore) Clear(ctx context.Context, workspaceId string) error {
	return s.store.Del(ctx, chatKeyPrefix+workspaceId, conversationKeyPrefix+workspaceId)
}

func (s *RedisChatStore) SaveConversation(ctx context.Context, workspaceId string, conv chatModel.Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, conversationKeyPrefix+workspaceId, data, config.RedisChatStoreTTL)
}

func (s *RedisChatStore) GetConversation(ctx context.Context, workspaceId string) (chatModel.Conversation, bool) {
	var conv chatModel.Conversation
	val, err := s.store.Get(ctx, conversationKeyPrefix+workspaceId)
	if err != nil {
		if !s.store.IsNil(err) {
			s.logger.Trace(ctx).Error("error reading conversation", "workspaceId", workspaceId, "error", err)
		}
		return conv, false
	}
	if err = json.Unmarshal([]byte(val), &conv); err != nil {
		return conv, false
	}
	return conv, true
}
