package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodcourt/config"
	httpapi "foodcourt/tracker-svc/internal/api/http"
	"foodcourt/tracker-svc/internal/service"
	"foodcourt/tracker-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	logger := config.NewLogger("tracker-svc")
	defer logger.Sync()

	config.LoadEnv(logger)

	rdb := config.MustInitRedis(logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrdersTopic, config.GetEnv("KAFKA_GROUP_ID", "tracker-svc-consumer"))
	defer reader.Close()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(reader, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go consumer.Start(ctx)

	handler := httpapi.NewHandler(service.NewTrackingService(store), logger)
	server := httpapi.NewServer(":"+config.GetEnv("PORT", "8083"), httpapi.NewRouter(handler))

	go func() {
		logger.Info("tracker service starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
