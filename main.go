package main

import (
	"context"
	"log"
	"log/slog"

	api "customers-backend/cmd/api"
	authRepo "customers-backend/internal/auth/repository"
	authUsecase "customers-backend/internal/auth/usecase"
	"customers-backend/pkg/config"
	"customers-backend/pkg/database"
	"customers-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logg, logCloser, err := logger.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logCloser.Close()

	ctx := context.Background()

	// Initialize document store
	mongoClient, db, err := database.NewMongoConnection(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to mongo:", err)
	}
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	// Unique indexes back the check-then-insert flows
	if err := authRepo.EnsureCustomerIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create customer indexes:", err)
	}
	if err := authRepo.EnsureProviderLinkIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create provider link indexes:", err)
	}

	// Initialize session store
	redisClient, err := database.NewRedisConnection(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to redis:", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	// Initialize repositories (dependency injection)
	customerRepo := authRepo.NewCustomerRepository(db)
	providerRepo := authRepo.NewProviderLinkRepository(db)
	sessionRepo := authRepo.NewSessionRepository(redisClient)

	// Initialize use case
	authUsecaseInstance := authUsecase.NewAuthUsecase(customerRepo, providerRepo, sessionRepo, cfg, logg)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, cfg, logg, mongoClient, redisClient)

	// Start server
	logg.Info("server starting", slog.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
