// Package main is the entry point for the todo service.
package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/taskhub/todo-service/internal/config"
	"github.com/taskhub/todo-service/internal/database"
	"github.com/taskhub/todo-service/internal/handlers"
	"github.com/taskhub/todo-service/internal/repository"
	"github.com/taskhub/todo-service/internal/routes"
	"github.com/taskhub/todo-service/internal/service"
	"github.com/taskhub/todo-service/pkg/password"
)

// @title Todo Service API
// @version 1.0
// @description Multi-user task list service with JWT bearer authentication
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// A missing .env is fine; environment variables may come from anywhere.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.MigrateUp(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Services
	hasher := password.NewHasher()
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	if jwtService == nil {
		log.Fatal().Msg("JWT_SECRET must be at least 32 bytes")
	}
	authService := service.NewAuthService(userRepo, jwtService, hasher)
	userService := service.NewUserService(userRepo, hasher)
	todoService := service.NewTodoService(todoRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	todoHandler := handlers.NewTodoHandler(todoService)
	healthHandler := handlers.NewHealthHandler()

	router := gin.New()
	routes.Setup(router, log, jwtService, authHandler, userHandler, todoHandler, healthHandler)

	log.Info().Str("port", cfg.Port).Msg("starting todo service")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
