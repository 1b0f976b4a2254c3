package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/florista/storefront/internal/api/handlers"
	"github.com/florista/storefront/internal/api/middleware"
	"github.com/florista/storefront/internal/config"
	"github.com/florista/storefront/internal/health"
	"github.com/florista/storefront/internal/metrics"
	repository "github.com/florista/storefront/internal/repositories"
	"github.com/florista/storefront/internal/scheduler"
	service "github.com/florista/storefront/internal/services"
	"github.com/florista/storefront/internal/tracing"
	"github.com/florista/storefront/pkg/imagegen"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup (optional)
	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init(context.Background(), &cfg.Tracing)
		if err != nil {
			slog.Error("Failed to initialize tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				slog.Warn("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
			}
		}()
	}

	// In-memory stores
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository()
	orderRepo := repository.NewOrderRepository()
	sessionRepo := repository.NewSessionRepository()

	// Order timeline scheduler
	sched := scheduler.New()
	defer sched.Stop()

	// Image generator: static stub unless an API key is configured
	var generator imagegen.Generator
	if cfg.ImageGen.APIKey != "" {
		generator = imagegen.NewFluxClient(cfg.ImageGen.Endpoint, cfg.ImageGen.APIKey, cfg.ImageGen.Timeout)
	} else {
		generator = imagegen.NewStaticGenerator(cfg.ImageGen.StaticURL)
	}

	catalogService := service.NewCatalogService(catalogRepo)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(cartRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	sessionService := service.NewSessionService(sessionRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	composerService := service.NewComposerService(sessionRepo, catalogRepo, cartService, generator, service.ComposerConfig{
		PriceMultiplier: cfg.Composer.PriceMultiplier,
		BouquetName:     cfg.Composer.BouquetName,
	})
	composerHandler := handlers.NewComposerHandler(composerService)
	orderService := service.NewOrderService(orderRepo, cartRepo, sessionRepo, sched, service.OrderTiming{
		AssemblingDelay: cfg.OrderTiming.AssemblingDelay,
		ReadyDelay:      cfg.OrderTiming.ReadyDelay,
	})
	orderHandler := handlers.NewOrderHandler(orderService)

	healthHandler, err := health.NewHealthHandler(&health.Endpoints{
		Scheduler: sched,
		Generator: generator,
	})
	if err != nil {
		slog.Error("Failed to initialize health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/catalog/flowers", catalogHandler.ListFlowers())
	routerMux.HandleFunc("GET /api/v1/catalog/bouquets", catalogHandler.ListBouquets())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("PATCH /api/v1/cart/items/{id}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("GET /api/v1/composer", composerHandler.State())
	routerMux.HandleFunc("POST /api/v1/composer/flowers/{id}/toggle", composerHandler.ToggleFlower())
	routerMux.HandleFunc("POST /api/v1/composer/generate", composerHandler.Generate())
	routerMux.HandleFunc("POST /api/v1/composer/cart", composerHandler.AddToCart())
	routerMux.HandleFunc("POST /api/v1/checkout", orderHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/order", orderHandler.CurrentOrder())
	routerMux.HandleFunc("PATCH /api/v1/order/status", orderHandler.UpdateStatus())
	routerMux.HandleFunc("GET /api/v1/session", sessionHandler.State())
	routerMux.HandleFunc("PUT /api/v1/session/view", sessionHandler.SetView())
	routerMux.HandleFunc("POST /api/v1/session/cart/open", sessionHandler.OpenCart())
	routerMux.HandleFunc("POST /api/v1/session/cart/close", sessionHandler.CloseCart())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = middleware.Session(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}

}
