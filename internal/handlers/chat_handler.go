// File: internal/handlers/chat_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"foodmate-server/internal/dtos"
	"foodmate-server/internal/middleware"
	"foodmate-server/internal/repository/chat"
	"foodmate-server/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
	validate    *validator.Validate
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		validate:    validator.New(),
	}
}

// chatID pulls the {id} path variable.
func chatID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// GetUserChats returns the caller's chats, most recently updated first.
func (h *ChatHandler) GetUserChats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	chats, err := h.chatService.GetUserChats(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not retrieve chats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dtos.NewChatSummaries(chats))
}

// CreateChat inserts an empty chat owned by the caller.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	created, err := h.chatService.CreateChat(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not create chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetChat returns one chat with its messages.
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := chatID(r)
	if err != nil {
		writeError(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	c, err := h.chatService.GetChat(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteChat removes a chat owned by the caller.
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := chatID(r)
	if err != nil {
		writeError(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	if err := h.chatService.DeleteChat(r.Context(), id, userID); err != nil {
		if errors.Is(err, chat.ErrChatNotFound) {
			writeError(w, "Chat not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not delete chat", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Chat deleted successfully"})
}

// UpdateTitle renames a chat owned by the caller.
func (h *ChatHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := chatID(r)
	if err != nil {
		writeError(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	var req dtos.UpdateTitleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, "Title is required", http.StatusBadRequest)
		return
	}

	updated, err := h.chatService.RenameChat(r.Context(), id, userID, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTitle):
			writeError(w, "Title is required", http.StatusBadRequest)
		case errors.Is(err, chat.ErrChatNotFound):
			writeError(w, "Chat not found", http.StatusNotFound)
		default:
			writeError(w, "Could not update title", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Title updated successfully",
		"chat":    updated,
	})
}

// SendMessage runs one chat turn and returns both new messages plus the
// recommendation list.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := chatID(r)
	if err != nil {
		writeError(w, "Invalid chat ID", http.StatusBadRequest)
		return
	}

	var req dtos.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	exchange, err := h.chatService.SendMessage(r.Context(), userID, id, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyMessage):
			writeError(w, "Message is required", http.StatusBadRequest)
		case errors.Is(err, chat.ErrChatNotFound):
			writeError(w, "Chat not found", http.StatusNotFound)
		default:
			writeError(w, "Could not process message", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, dtos.ExchangeResponse{
		UserMessage:      exchange.UserMessage,
		AssistantMessage: exchange.AssistantMessage,
		Recommendations:  exchange.Recommendations,
	})
}
