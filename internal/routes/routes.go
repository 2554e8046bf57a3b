// Package routes defines HTTP routes for the todo service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/taskhub/todo-service/internal/handlers"
	"github.com/taskhub/todo-service/internal/middleware"
	"github.com/taskhub/todo-service/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	log zerolog.Logger,
	jwtService service.JWTService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes (public)
	auth := router.Group("/auth")
	{
		auth.POST("/", authHandler.Register)
		auth.POST("/token", authHandler.Login)
	}

	// Every protected route resolves the caller's identity before any
	// data access happens.
	requireAuth := middleware.RequireAuth(jwtService)

	user := router.Group("/user", requireAuth)
	{
		user.GET("/", userHandler.Get)
		user.PUT("/password", userHandler.ChangePassword)
	}

	todos := router.Group("/todos", requireAuth)
	{
		todos.GET("/", todoHandler.List)
		todos.POST("/todo", todoHandler.Create)
		todos.GET("/todo/:todo_id", todoHandler.Get)
		todos.PUT("/todo/:todo_id", todoHandler.Update)
		todos.DELETE("/todo/:todo_id", todoHandler.Delete)
	}
}
