package chatModel

import (
	"context"
	"time"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type ChatMessage struct {
	Text      string `json:"text"`
	Sender    Sender `json:"sender"`
	Timestamp string `json:"timestamp"`
}

func NewMessage(sender Sender, text string) ChatMessage {
	return ChatMessage{
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Conversation keeps the upstream handles a workspace needs for follow-up queries.
type Conversation struct {
	SessionID  string `json:"session_id,omitempty"`
	Endpoint   string `json:"endpoint,omitempty"` //the endpoint that opened the session
	DocumentID string `json:"document_id,omitempty"`
}

type ChatStore interface {
	Append(ctx context.Context, workspaceId string, msg ChatMessage) error
	History(ctx context.Context, workspaceId string) ([]ChatMessage, error)
	Clear(ctx context.Context, workspaceId string) error

	SaveConversation(ctx context.Context, workspaceId string, conv Conversation) error
	GetConversation(ctx context.Context, workspaceId string) (Conversation, bool)
}
