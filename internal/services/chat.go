package services

import (
	"context"
	"fmt"
	"time"

	"github.com/serenadiary/serena/internal/models"
	"github.com/serenadiary/serena/internal/serena"
	"github.com/serenadiary/serena/internal/storage"
)

// ChatService persists a conversation turn: the user's message followed by
// the companion's scripted reply. The responder only reads the message; every
// storage write happens here.
type ChatService interface {
	SendMessage(ctx context.Context, text string) (user, reply *models.ChatMessage, err error)
	History(ctx context.Context) ([]models.ChatMessage, error)
	ClearHistory(ctx context.Context) error
}

type chatService struct {
	store     *storage.Store
	responder *serena.Responder
	now       func() time.Time
}

// NewChatService constructs a ChatService over the given store and responder.
func NewChatService(store *storage.Store, responder *serena.Responder) ChatService {
	return &chatService{store: store, responder: responder, now: time.Now}
}

func (c *chatService) SendMessage(ctx context.Context, text string) (*models.ChatMessage, *models.ChatMessage, error) {
	userMsg := models.NewChatMessage(models.SenderUser, text, c.now())
	if err := c.store.AddChatMessage(ctx, *userMsg); err != nil {
		return nil, nil, fmt.Errorf("failed to store message: %w", err)
	}

	response := c.responder.RespondToMessage(text)
	replyMsg := models.NewChatMessage(models.SenderSerena, response.Message, c.now())
	if err := c.store.AddChatMessage(ctx, *replyMsg); err != nil {
		return nil, nil, fmt.Errorf("failed to store reply: %w", err)
	}

	return userMsg, replyMsg, nil
}

func (c *chatService) History(ctx context.Context) ([]models.ChatMessage, error) {
	return c.store.ListChatMessages(ctx)
}

func (c *chatService) ClearHistory(ctx context.Context) error {
	return c.store.ClearChatMessages(ctx)
}
