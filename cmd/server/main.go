// File: cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"foodmate-server/internal/config"
	"foodmate-server/internal/domain"
	"foodmate-server/internal/handlers"
	"foodmate-server/internal/middleware"
	chatrepo "foodmate-server/internal/repository/chat"
	userrepo "foodmate-server/internal/repository/user"
	"foodmate-server/internal/services"
	"foodmate-server/internal/services/ai"
	"foodmate-server/internal/services/user_services"
)

func main() {
	cfg := config.Load()
	logger := services.NewLogger("foodmate-server")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Chat{}, &domain.Message{}); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	// --- Repositories ---
	userRepo := userrepo.NewGormUserRepository(db)
	chatRepo := chatrepo.NewChatRepository(db)

	// --- Services ---
	var provider ai.Provider = ai.NewRuleProvider()
	if cfg.OpenAIAPIKey != "" {
		aiConfig := ai.DefaultConfig()
		aiConfig.APIKey = cfg.OpenAIAPIKey
		aiConfig.BaseURL = cfg.OpenAIBaseURL
		if cfg.OpenAIModel != "" {
			aiConfig.Model = cfg.OpenAIModel
		}
		if err := aiConfig.Validate(); err != nil {
			logger.Error("ai config invalid", "error", err)
			os.Exit(1)
		}
		provider = ai.NewOpenAIProvider(aiConfig)
		logger.Info("using OpenAI reply provider", "model", aiConfig.Model)
	}

	authService := user_services.NewAuthService(userRepo, cfg.JWTSecretKey, logger)
	userService := user_services.NewUserService(userRepo, logger)
	chatService := services.NewChatService(chatRepo, provider, logger)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)
	userHandler := handlers.NewUserHandler(userService)

	// --- Router ---
	r := mux.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.Use(middleware.RecoverPanic(logger))
	r.Use(middleware.RequestLogger(logger))

	// Preflight requests are answered inside the CORS middleware; this route
	// only exists so the router matches them.
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	api := r.PathPrefix("/api").Subrouter()

	// --- Public routes ---
	api.HandleFunc("/health", handlers.Health).Methods("GET")
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// --- Protected routes ---
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

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", "port", cfg.ServerPort, "origin", cfg.AllowedOrigin)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server startup failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
