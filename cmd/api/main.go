package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/config"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/handler"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/logger"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/repository/firestore"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting registration service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	ctx := context.Background()

	// Initialize Firestore client
	firestoreClient, err := firestore.NewClient(ctx, &cfg.Firestore, log)
	if err != nil {
		log.Fatal("Failed to create Firestore client", zap.Error(err))
	}
	defer func(firestoreClient *firestore.Client) {
		if err := firestoreClient.Close(); err != nil {
			log.Error("Failed to close Firestore client", zap.Error(err))
		}
	}(firestoreClient)

	// Initialize repository and make sure the counters document exists
	repo := firestore.NewRepository(firestoreClient, log)
	if err := repo.EnsureStats(ctx); err != nil {
		log.Fatal("Failed to ensure stats document", zap.Error(err))
	}

	// Initialize registration service
	registrationService := service.NewRegistrationService(repo, log)

	// Initialize handler
	h := handler.NewHandler(registrationService, cfg.Service.AllowedOrigins, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
