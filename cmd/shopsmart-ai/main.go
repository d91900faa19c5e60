package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shopsmart-ai/internal/api"
	"shopsmart-ai/internal/api/handlers"
	"shopsmart-ai/internal/llm"
	"shopsmart-ai/internal/service"
	"shopsmart-ai/pkg/config"
	"shopsmart-ai/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration; a missing completion API credential is fatal here,
	// before anything starts listening.
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting ShopSmart AI service")

	// The completion client holds the only process-wide configuration and is
	// immutable after this point.
	completer := llm.NewClient(&cfg.LLM, appLogger)

	assistant := service.NewAssistantService(completer, appLogger)
	assistantHandler := handlers.NewAssistantHandler(assistant, appLogger)

	app := api.SetupRouter(assistantHandler, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
