package main

import (
	"context"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"foodcourt/api-gateway/internal/gateway"
	"foodcourt/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	logger := config.NewLogger("api-gateway")
	defer logger.Sync()

	config.LoadEnv(logger)

	cfg := gateway.Config{
		StorefrontURL: config.GetEnv("STOREFRONT_SVC_URL", "http://localhost:8081"),
		CatalogURL:    config.GetEnv("CATALOG_SVC_URL", "http://localhost:8082"),
		TrackerURL:    config.GetEnv("TRACKER_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{Timeout: config.GetDuration("UPSTREAM_TIMEOUT", 15*time.Second)}, logger)

	rps, err := strconv.ParseFloat(config.GetEnv("RATE_LIMIT_RPS", "20"), 64)
	if err != nil {
		logger.Fatal("invalid RATE_LIMIT_RPS", zap.Error(err))
	}
	limiter := gateway.NewRateLimiter(rps, config.GetInt("RATE_LIMIT_BURST", 40), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go limiter.RunCleanup(ctx, 5*time.Minute)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	})
	handler := c.Handler(limiter.Middleware(gw.SetupRoutes()))

	server := &http.Server{
		Addr:              ":" + config.GetEnv("PORT", "8080"),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("api gateway starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
