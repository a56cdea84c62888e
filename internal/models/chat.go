package models

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderSerena Sender = "serena"
)

// ChatMessage is one line of the companion conversation. History is
// append-only and ordered oldest-first.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage returns a ChatMessage with a fresh id.
func NewChatMessage(sender Sender, message string, ts time.Time) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Message:   message,
		Timestamp: ts,
	}
}
