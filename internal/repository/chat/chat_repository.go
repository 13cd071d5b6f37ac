// File: internal/repository/chat/chat_repository.go
package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"foodmate-server/internal/domain"
)

// ErrChatNotFound covers both a missing chat and a chat owned by someone
// else; callers must not be able to tell the two apart.
var ErrChatNotFound = errors.New("chat not found")

type gormChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &gormChatRepository{db: db}
}

func (r *gormChatRepository) Create(ctx context.Context, chat *domain.Chat) (*domain.Chat, error) {
	if err := r.db.WithContext(ctx).Create(chat).Error; err != nil {
		return nil, fmt.Errorf("creating chat: %w", err)
	}
	return chat, nil
}

// FindByID loads a chat with its messages in insertion order. The lookup is
// ownership-scoped.
func (r *gormChatRepository) FindByID(ctx context.Context, chatID, userID uint) (*domain.Chat, error) {
	var chat domain.Chat
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", chatID, userID).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.id ASC")
		}).
		First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding chat %d: %w", chatID, err)
	}
	if chat.Messages == nil {
		chat.Messages = []domain.Message{}
	}
	return &chat, nil
}

// FindSummariesByUserID returns the user's chats without messages, most
// recently updated first.
func (r *gormChatRepository) FindSummariesByUserID(ctx context.Context, userID uint) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := r.db.WithContext(ctx).
		Select("id", "user_id", "title", "created_at", "updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("finding chats for user %d: %w", userID, err)
	}
	return chats, nil
}

func (r *gormChatRepository) UpdateTitle(ctx context.Context, chatID, userID uint, title string) (*domain.Chat, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Chat{}).
		Where("id = ? AND user_id = ?", chatID, userID).
		Updates(map[string]interface{}{
			"title":      title,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("updating title for chat %d: %w", chatID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrChatNotFound
	}
	return r.FindByID(ctx, chatID, userID)
}

// Delete removes the chat and its messages in one transaction; foreign-key
// cascades are not assumed.
func (r *gormChatRepository) Delete(ctx context.Context, chatID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", chatID, userID).Delete(&domain.Chat{})
		if result.Error != nil {
			return fmt.Errorf("deleting chat %d: %w", chatID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrChatNotFound
		}
		if err := tx.Where("chat_id = ?", chatID).Delete(&domain.Message{}).Error; err != nil {
			return fmt.Errorf("deleting messages of chat %d: %w", chatID, err)
		}
		return nil
	})
}

// AppendExchange appends a user/assistant message pair, optionally sets the
// title, and touches updated_at, all in one transaction.
func (r *gormChatRepository) AppendExchange(ctx context.Context, chatID uint, userMsg, assistantMsg *domain.Message, title string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userMsg.ChatID = chatID
		assistantMsg.ChatID = chatID

		if err := tx.Create(userMsg).Error; err != nil {
			return fmt.Errorf("appending user message: %w", err)
		}
		if err := tx.Create(assistantMsg).Error; err != nil {
			return fmt.Errorf("appending assistant message: %w", err)
		}

		updates := map[string]interface{}{"updated_at": time.Now()}
		if title != "" {
			updates["title"] = title
		}
		result := tx.Model(&domain.Chat{}).Where("id = ?", chatID).Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("touching chat %d: %w", chatID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrChatNotFound
		}
		return nil
	})
}
