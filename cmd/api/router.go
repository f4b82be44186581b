package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"customers-backend/internal/auth/delivery"
	authUsecase "customers-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const healthcheckTimeout = 2 * time.Second

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, logger *slog.Logger, mongoClient *mongo.Client, redisClient *redis.Client) {
	authHandler := delivery.NewAuthHandler(authUsecase, logger)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthcheckTimeout)
		defer cancel()

		if err := mongoClient.Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "dependency": "mongo"})
			return
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "dependency": "redis"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/google", authHandler.GoogleAuth)
	r.POST("/google/token", authHandler.GoogleTokenAuth)
	r.GET("/user", delivery.CurrentUserMiddleware(authUsecase), authHandler.Me)
}
