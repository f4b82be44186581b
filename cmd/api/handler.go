package api

import (
	"log/slog"

	authUsecase "customers-backend/internal/auth/usecase"
	"customers-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	config      *config.Config
	logger      *slog.Logger
	mongoClient *mongo.Client
	redisClient *redis.Client
}

func NewHandler(authUc authUsecase.AuthUsecase, cfg *config.Config, logger *slog.Logger, mongoClient *mongo.Client, redisClient *redis.Client) *Handler {
	return &Handler{
		authUsecase: authUc,
		config:      cfg,
		logger:      logger,
		mongoClient: mongoClient,
		redisClient: redisClient,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.logger, h.mongoClient, h.redisClient)

	return r.Run(addr)
}
