// Command updateprices applies a fixed set of product price corrections in a
// single transaction. The id->price map is edited in place here when a new
// correction batch is needed; identifiers with no matching row are skipped.
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

// Product price updates
var updates = map[string]float64{
	"1022": 5000.90,
	"1021": 790.0,
	"1020": 4500.0,
}

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

	changes, notFound, err := productRepo.UpdatePrices(ctx, updates)
	if err != nil {
		appLogger.Fatal("Failed to update prices", zap.Error(err))
	}

	for _, change := range changes {
		appLogger.Info("Updated product price",
			zap.String("id", change.ID),
			zap.String("name", change.Name),
			zap.Float64("old_price", change.OldPrice),
			zap.Float64("new_price", change.NewPrice),
		)
	}
	for _, id := range notFound {
		appLogger.Warn("Product not found in database", zap.String("id", id))
	}

	appLogger.Info("All prices updated successfully")
}
