// Command checkdb is a read-only diagnostic: it reports the product count
// and the names of the first few rows, then exits.
package main

import (
	"context"
	"log"

	"shopsmart-ai/internal/repository"
	"shopsmart-ai/pkg/config"
	"shopsmart-ai/pkg/logger"
	"shopsmart-ai/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	productRepo := repository.NewProductRepository(db, appLogger)

	count, err := productRepo.Count(ctx)
	if err != nil {
		appLogger.Fatal("Failed to count products", zap.Error(err))
	}
	appLogger.Info("Product count", zap.Int64("count", count))

	products, err := productRepo.List(ctx, 5)
	if err != nil {
		appLogger.Fatal("Failed to list products", zap.Error(err))
	}
	for _, product := range products {
		appLogger.Info("Product", zap.String("name", product.Name))
	}
}
