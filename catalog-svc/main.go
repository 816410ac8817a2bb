package main

import (
	"context"
	"time"

	httpapi "foodcourt/catalog-svc/internal/api/http"
	"foodcourt/catalog-svc/internal/service"
	"foodcourt/catalog-svc/internal/storage"
	"foodcourt/config"

	"go.uber.org/zap"
)

func main() {
	logger := config.NewLogger("catalog-svc")
	defer logger.Sync()

	config.LoadEnv(logger)

	db := config.MustInitPostgres(logger)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to ensure database schema", zap.Error(err))
	}
	if config.GetEnv("CATALOG_SEED", "true") == "true" {
		restaurants, foods := storage.DemoCatalog()
		seeded, err := repo.Seed(ctx, restaurants, foods)
		if err != nil {
			logger.Fatal("failed to seed catalog", zap.Error(err))
		}
		logger.Info("catalog seed checked", zap.Bool("seeded", seeded))
	}
	cancel()

	catalogService := service.NewCatalogService(repo)
	handler := httpapi.NewHandler(catalogService, logger)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8082"), httpapi.NewRouter(handler), logger)
}
