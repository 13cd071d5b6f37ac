// File: internal/domain/message.go
package domain

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry within a chat. Messages are append-only, ordered
// by insertion, and only ever written through their owning chat.
type Message struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ChatID    uint      `json:"chatId" gorm:"index;not null"`
	Role      string    `json:"role" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}
