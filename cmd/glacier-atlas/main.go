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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/pamirlabs/glacier-atlas/internal/api"
	"github.com/pamirlabs/glacier-atlas/internal/catalog"
	"github.com/pamirlabs/glacier-atlas/internal/config"
	"github.com/pamirlabs/glacier-atlas/internal/logging"
	"github.com/pamirlabs/glacier-atlas/internal/mesh"
	"github.com/pamirlabs/glacier-atlas/internal/models"
	"github.com/pamirlabs/glacier-atlas/internal/repository"
	"github.com/pamirlabs/glacier-atlas/internal/simulation"
	"github.com/pamirlabs/glacier-atlas/internal/stream"
	"github.com/pamirlabs/glacier-atlas/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat := catalog.New()
	meshes := mesh.NewCache()

	if cfg.Mesh.Prewarm {
		prewarm(ctx, cfg, cat, meshes)
	}

	broadcaster := stream.NewBroadcaster()
	runner := simulation.NewRunner(db, broadcaster, cfg.Sim.TickInterval, cfg.Sim.Steps)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimit(rate.Limit(cfg.Server.RateLimit), 2*cfg.Server.RateLimit))

	handler := api.NewHandler(cat, meshes, runner, db, broadcaster,
		cfg.Mesh.DefaultResolution, cfg.Mesh.MaxResolution)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()
	runner.Stop()
	broadcaster.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}

// prewarm builds the default-resolution geometry for every catalog glacier
// through the worker pool so first requests hit a hot cache.
func prewarm(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, meshes *mesh.Cache) {
	start := time.Now()

	pool := worker.NewPool(cfg.Worker.Count, cfg.Worker.BufferSize,
		func(ctx context.Context, g *models.Glacier) error {
			meshes.Terrain(cfg.Mesh.DefaultResolution, g)
			meshes.GlacierBody(cfg.Mesh.DefaultResolution, g)
			return nil
		})
	pool.Start(ctx)

	for _, g := range cat.All() {
		g := g
		pool.Submit(&g)
	}
	pool.Stop()

	slog.Info("mesh cache prewarmed", "entries", meshes.Len(), "took", time.Since(start))
}
