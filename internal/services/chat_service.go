// File: internal/services/chat_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"foodmate-server/internal/domain"
	"foodmate-server/internal/repository/chat"
	"foodmate-server/internal/services/ai"
)

var (
	ErrEmptyMessage = errors.New("message must not be empty")
	ErrEmptyTitle   = errors.New("title must not be empty")
)

const titleMaxRunes = 50

// ChatService orchestrates chat CRUD and the message exchange flow.
type ChatService struct {
	chatRepo chat.ChatRepository
	provider ai.Provider
	logger   Logger
}

func NewChatService(chatRepo chat.ChatRepository, provider ai.Provider, logger Logger) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		provider: provider,
		logger:   logger,
	}
}

// GetUserChats returns the caller's chats, most recently updated first.
func (s *ChatService) GetUserChats(ctx context.Context, userID uint) ([]domain.Chat, error) {
	return s.chatRepo.FindSummariesByUserID(ctx, userID)
}

// CreateChat inserts an empty chat owned by the caller.
func (s *ChatService) CreateChat(ctx context.Context, userID uint) (*domain.Chat, error) {
	created, err := s.chatRepo.Create(ctx, &domain.Chat{
		UserID:   userID,
		Title:    domain.DefaultChatTitle,
		Messages: []domain.Message{},
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("chat created", "chat_id", created.ID, "user_id", userID)
	return created, nil
}

// GetChat loads a chat with its messages; ownership-scoped.
func (s *ChatService) GetChat(ctx context.Context, chatID, userID uint) (*domain.Chat, error) {
	return s.chatRepo.FindByID(ctx, chatID, userID)
}

// DeleteChat removes a chat and its messages; ownership-scoped.
func (s *ChatService) DeleteChat(ctx context.Context, chatID, userID uint) error {
	if err := s.chatRepo.Delete(ctx, chatID, userID); err != nil {
		return err
	}
	s.logger.Info("chat deleted", "chat_id", chatID, "user_id", userID)
	return nil
}

// RenameChat sets a non-empty trimmed title; ownership-scoped.
func (s *ChatService) RenameChat(ctx context.Context, chatID, userID uint, title string) (*domain.Chat, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return s.chatRepo.UpdateTitle(ctx, chatID, userID, title)
}

// Exchange holds the result of one chat turn.
type Exchange struct {
	UserMessage      *domain.Message
	AssistantMessage *domain.Message
	Recommendations  []domain.Recommendation
}

// SendMessage runs one chat turn: detect the message language, generate the
// assistant reply, append the user/assistant pair and, when the pair forms
// the chat's first exchange, derive the chat title from the user's text.
// All writes land in one transaction.
func (s *ChatService) SendMessage(ctx context.Context, userID, chatID uint, text string) (*Exchange, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	// Ownership-scoped load; also tells us whether this is the first
	// exchange. A foreign chat is indistinguishable from a missing one.
	before, err := s.chatRepo.FindByID(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}

	language := DetectLanguage(text)

	reply, err := s.provider.Reply(ctx, text)
	if err != nil {
		s.logger.Error("reply generation failed", "error", err, "chat_id", chatID)
		return nil, err
	}

	userMsg := &domain.Message{
		Role:     domain.RoleUser,
		Content:  text,
		Language: language,
	}
	assistantMsg := &domain.Message{
		Role:     domain.RoleAssistant,
		Content:  reply.Content,
		Language: language,
	}

	title := ""
	if len(before.Messages) == 0 {
		title = deriveTitle(text)
	}

	if err := s.chatRepo.AppendExchange(ctx, chatID, userMsg, assistantMsg, title); err != nil {
		return nil, err
	}

	s.logger.Info("exchange stored",
		"chat_id", chatID,
		"user_id", userID,
		"language", language,
		"recommendations", len(reply.Recommendations))

	return &Exchange{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		Recommendations:  reply.Recommendations,
	}, nil
}

// deriveTitle builds a chat title from the first user message: the first 50
// runes, with an ellipsis when truncated.
func deriveTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= titleMaxRunes {
		return text
	}
	return string(runes[:titleMaxRunes]) + "..."
}
