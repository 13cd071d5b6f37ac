// File: internal/dtos/chat.go
package dtos

import (
	"time"

	"foodmate-server/internal/domain"
)

// ChatSummary is the list projection: title and timestamps, no messages.
type ChatSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required"`
}

// ExchangeResponse is the result of one chat turn.
type ExchangeResponse struct {
	UserMessage      *domain.Message         `json:"userMessage"`
	AssistantMessage *domain.Message         `json:"assistantMessage"`
	Recommendations  []domain.Recommendation `json:"recommendations"`
}

func NewChatSummaries(chats []domain.Chat) []ChatSummary {
	out := make([]ChatSummary, 0, len(chats))
	for _, c := range chats {
		out = append(out, ChatSummary{
			ID:        c.ID,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return out
}
