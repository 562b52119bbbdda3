package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/steventanyang/laudure/internal/api"
	"github.com/steventanyang/laudure/internal/cache"
	"github.com/steventanyang/laudure/internal/config"
	"github.com/steventanyang/laudure/internal/database"
	"github.com/steventanyang/laudure/internal/dataset"
	"github.com/steventanyang/laudure/internal/menu"
	"github.com/steventanyang/laudure/internal/report"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Environment variables from .env take effect before config load
	if err := godotenv.Load(); err == nil {
		log.Println("Environment loaded from .env")
	}

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *metricsPort != 0 {
		cfg.MetricsPort = *metricsPort
	}

	// Load the dataset snapshot once; the aggregators treat it as
	// immutable from here on.
	data, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("Loaded %d diners from %s", len(data.Diners), cfg.DatasetPath)

	// Report archive is optional; the dashboard runs without it.
	var archive *report.Archive
	if cfg.DatabaseURL != "" {
		if err := database.InitDB(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer database.CloseDB()

		archive, err = report.NewArchive(database.GetDB())
		if err != nil {
			log.Fatalf("Failed to initialize report archive: %v", err)
		}
	}

	opts := api.Options{
		Archive:      archive,
		JWTSecret:    cfg.JWTSecret,
		AllowOrigins: cfg.CORS.AllowOrigins,
	}
	if cfg.Cache.Enabled {
		opts.Cache = cache.New(cfg.Cache.Expiration.Std())
	}

	server := api.NewServer(data, menu.NewClassifier(menu.Default()), opts)

	// Start metrics server
	if cfg.Metrics.Enabled {
		go startMetricsServer(cfg.MetricsPort, cfg.Metrics.Path)
	}

	// Start API server
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server.Router(),
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func startMetricsServer(port int, path string) {
	metricsRouter := gin.Default()
	metricsRouter.GET(path, gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
