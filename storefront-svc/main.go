package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcourt/config"
	httpapi "foodcourt/storefront-svc/internal/api/http"
	"foodcourt/storefront-svc/internal/api/ws"
	"foodcourt/storefront-svc/internal/catalog"
	"foodcourt/storefront-svc/internal/service"
	"foodcourt/storefront-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	logger := config.NewLogger("storefront-svc")
	defer logger.Sync()

	config.LoadEnv(logger)

	catalogClient := catalog.NewClient(
		config.GetEnv("CATALOG_URL", "http://localhost:8082"),
		&http.Client{Timeout: config.GetDuration("CATALOG_TIMEOUT", 10*time.Second)},
		logger,
	)

	kafkaWriter := config.NewKafkaWriter(config.OrdersTopic)
	defer kafkaWriter.Close()

	publisher := storage.NewKafkaPublisher(kafkaWriter, logger)
	hub := ws.NewHub(logger)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Warn("JWT_SECRET not set, using development secret")
		secret = "foodcourt-dev-secret"
	}

	authService := service.NewAuthService(service.StubAuthenticator{}, service.AuthConfig{
		Delay:    config.GetDuration("AUTH_DELAY", time.Second),
		Secret:   []byte(secret),
		TokenTTL: config.GetDuration("TOKEN_TTL", 24*time.Hour),
	}, logger)

	cartService := service.NewCartService()

	orderService := service.NewOrderService(service.OrderConfig{
		Latency: config.GetDuration("ORDER_LATENCY", 1500*time.Millisecond),
	}, service.RealScheduler(), service.DefaultQRGenerator{
		BaseURL: config.GetEnv("QR_BASE_URL", "http://localhost:8080"),
		Size:    config.GetInt("QR_SIZE", 256),
	}, logger, publisher, hub)
	defer orderService.Close()

	checkoutService := service.NewCheckoutService(cartService, authService, orderService, catalogClient, logger)

	handler := httpapi.NewHandler(catalogClient, cartService, authService, orderService, checkoutService, hub, logger)
	server := httpapi.NewServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler))

	go httpapi.StartServer(server, logger)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
