package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"ralph-xpert-backend/config"
	_ "ralph-xpert-backend/docs" // Important for Swagger
	"ralph-xpert-backend/internal/delivery/http/api"
	"ralph-xpert-backend/internal/repository/postgres"
	"ralph-xpert-backend/internal/usecase"
	"ralph-xpert-backend/pkg/auth"
	"ralph-xpert-backend/pkg/database"
	"ralph-xpert-backend/pkg/logger"
)

// @title           Ralph Xpert Contact API
// @version         1.0
// @description     Contact collection backend with admin dashboard and VCF export.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Log.Info("Database connection established")

	// 4. Setup Repositories
	contactRepo := postgres.NewContactRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)

	// 5. Setup Auth (credential table + token signer)
	credentials := auth.NewCredentialStore(cfg.AdminCredentials)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	// 6. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(credentials, tokens)
	contactUC := usecase.NewContactUsecase(contactRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, validate)
	exportUC := usecase.NewExportUsecase(contactRepo, cfg.ProductName)
	statsUC := usecase.NewStatsUsecase(messageRepo, contactRepo)

	// 7. Setup Router
	router := api.NewRouter(api.RouterDeps{
		AuthUC:    authUC,
		ContactUC: contactUC,
		MessageUC: messageUC,
		ExportUC:  exportUC,
		StatsUC:   statsUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
