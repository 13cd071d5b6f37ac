package chat

import (
	"context"

	"foodmate-server/internal/domain"
)

// ChatRepository handles chat data operations. Messages belong to the chat
// aggregate and are only ever written through it, so one exchange (user
// message, assistant message, title, timestamp) lands atomically.
type ChatRepository interface {
	Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error)
	FindByID(ctx context.Context, chatID, userID uint) (*domain.Chat, error)
	FindSummariesByUserID(ctx context.Context, userID uint) ([]domain.Chat, error)
	UpdateTitle(ctx context.Context, chatID, userID uint, title string) (*domain.Chat, error)
	Delete(ctx context.Context, chatID, userID uint) error
	AppendExchange(ctx context.Context, chatID uint, userMsg, assistantMsg *domain.Message, title string) error
}
