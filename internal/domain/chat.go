// File: internal/domain/chat.go
package domain

import "time"

// DefaultChatTitle is the title of a chat until its first exchange derives one.
const DefaultChatTitle = "New Chat"

// Chat represents a single conversation thread owned by exactly one user.
type Chat struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
