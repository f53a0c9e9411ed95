package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/tshirt-designer/internal/config"
	"github.com/Lixing-Zhang/tshirt-designer/internal/handlers"
	"github.com/Lixing-Zhang/tshirt-designer/internal/middleware"
	"github.com/Lixing-Zhang/tshirt-designer/internal/service"
	"github.com/Lixing-Zhang/tshirt-designer/internal/validation"
	"github.com/Lixing-Zhang/tshirt-designer/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting t-shirt designer server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"env", cfg.App.Env,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	translator, images, providerMode, err := buildAIAdapters(ctx, cfg.AI, log)
	if err != nil {
		log.Error("failed to initialize AI provider", "error", err)
		os.Exit(1)
	}

	store, err := openOrderStore(ctx, cfg.Store, log)
	if err != nil {
		log.Error("failed to initialize order store", "error", err)
		os.Exit(1)
	}

	// Initialize services
	designService := service.NewDesignService(translator, images, log)
	orderService := service.NewOrderService(store.repo, validation.NewValidator(), cfg.Order.BasePrice, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log, providerMode, store.mode)
	designHandler := handlers.NewDesignHandler(designService, cfg.IsDevelopment(), log)
	orderHandler := handlers.NewOrderHandler(orderService, cfg.IsDevelopment(), log)
	pageHandler := handlers.NewPageHandler(cfg.App.StaticDir, log)

	r := newRouter(cfg, log, healthHandler, designHandler, orderHandler, pageHandler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	if err := store.close(shutdownCtx); err != nil {
		log.Error("failed to close order store", "error", err)
	}

	log.Info("server stopped gracefully")
}

func newRouter(
	cfg *config.Config,
	log *slog.Logger,
	healthHandler *handlers.HealthHandler,
	designHandler *handlers.DesignHandler,
	orderHandler *handlers.OrderHandler,
	pageHandler *handlers.PageHandler,
) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(cfg.Auth))

		r.Post("/generate-design", designHandler.GenerateDesign)
		r.Post("/improve-design", designHandler.ImproveDesign)

		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders/{userId}", orderHandler.ListOrders)
	})

	r.Get("/static/*", pageHandler.Static)
	r.Get("/", pageHandler.Index)
	r.Get("/{page}", pageHandler.Page)

	return r
}
