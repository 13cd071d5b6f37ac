// File: internal/handlers/router_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodmate-server/internal/domain"
	"foodmate-server/internal/middleware"
	chatrepo "foodmate-server/internal/repository/chat"
	userrepo "foodmate-server/internal/repository/user"
	"foodmate-server/internal/services"
	"foodmate-server/internal/services/ai"
	"foodmate-server/internal/services/user_services"
)

const testSecret = "handler-test-secret"

// newTestRouter wires the full stack over an in-memory database, with the
// same routes the server registers.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.Message{}))

	logger := &services.NoOpLogger{}
	userRepo := userrepo.NewGormUserRepository(db)
	chatRepo := chatrepo.NewChatRepository(db)

	authService := user_services.NewAuthService(userRepo, testSecret, logger)
	userService := user_services.NewUserService(userRepo, logger)
	chatService := services.NewChatService(chatRepo, ai.NewRuleProvider(), logger)

	authHandler := NewAuthHandler(authService)
	chatHandler := NewChatHandler(chatService)
	userHandler := NewUserHandler(userService)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", Health).Methods("GET")
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.NewJWTMiddleware(authService, userRepo))
	protected.HandleFunc("/chats", chatHandler.GetUserChats).Methods("GET")
	protected.HandleFunc("/chats", chatHandler.CreateChat).Methods("POST")
	protected.HandleFunc("/chats/{id:[0-9]+}", chatHandler.GetChat).Methods("GET")
	protected.HandleFunc("/chats/{id:[0-9]+}", chatHandler.DeleteChat).Methods("DELETE")
	protected.HandleFunc("/chats/{id:[0-9]+}/messages", chatHandler.SendMessage).Methods("POST")
	protected.HandleFunc("/chats/{id:[0-9]+}/title", chatHandler.UpdateTitle).Methods("PUT")
	protected.HandleFunc("/user/profile", userHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/user/profile", userHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/user/location", userHandler.SetLocation).Methods("POST")
	protected.HandleFunc("/user/location", userHandler.GetLocation).Methods("GET")
	protected.HandleFunc("/user/location", userHandler.DeleteLocation).Methods("DELETE")

	return r
}

// doJSON performs one request against the router. A non-empty token becomes a
// bearer Authorization header.
func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func registerUser(t *testing.T, router *mux.Router, name, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createChat(t *testing.T, router *mux.Router, token string) uint {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/chats", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	id, ok := decodeBody(t, rec)["id"].(float64)
	require.True(t, ok)
	return uint(id)
}
