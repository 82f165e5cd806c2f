package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vibe-commerce/internal/config"
	"vibe-commerce/internal/db"
	"vibe-commerce/internal/events"
	"vibe-commerce/internal/httpserver"
	cartrepo "vibe-commerce/internal/repository/cart"
	orderrepo "vibe-commerce/internal/repository/order"
	productrepo "vibe-commerce/internal/repository/product"
	cartsvc "vibe-commerce/internal/service/cart"
	catalogsvc "vibe-commerce/internal/service/catalog"
	checkoutsvc "vibe-commerce/internal/service/checkout"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	catalogService := catalogsvc.New(productRepo, logger)
	cartService := cartsvc.New(cartRepo, productRepo)

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaOrderTopic)
		defer producer.Close()
		logger.Printf("order events enabled, topic %s", cfg.KafkaOrderTopic)
	}
	checkoutService := newCheckoutService(orderRepo, cartService, producer, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		UserID:      cfg.MockUserID,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// newCheckoutService avoids passing a typed-nil publisher into the service
// when Kafka is not configured.
func newCheckoutService(orders orderrepo.Repository, carts *cartsvc.Service, producer *events.Producer, logger *log.Logger) *checkoutsvc.Service {
	if producer == nil {
		return checkoutsvc.New(orders, carts, nil, logger)
	}
	return checkoutsvc.New(orders, carts, producer, logger)
}
