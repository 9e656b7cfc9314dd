package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Dino-996/microservizi-tracker/internal/api"
	"github.com/Dino-996/microservizi-tracker/internal/db"
	"github.com/Dino-996/microservizi-tracker/internal/tracker"
	"github.com/Dino-996/microservizi-tracker/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("config: failed to load: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: failed to build: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var store tracker.Store
	if cfg.Mongo.URI != "" {
		mongoStore, err := db.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			logger.Fatal("mongo: failed to connect", zap.Error(err))
		}
		defer func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				logger.Warn("mongo: close error", zap.Error(err))
			}
		}()

		if err := mongoStore.EnsureCollections(ctx); err != nil {
			logger.Fatal("mongo: ensure collections", zap.Error(err))
		}

		store = db.NewStore(mongoStore)
	} else {
		logger.Warn("MONGO_URI not set; using in-memory store, data will not survive a restart")
		store = tracker.NewMemoryStore()
	}

	service := tracker.NewService(store)
	router := setupRouter(service, logger, cfg.WebDir)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server crashed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}

func setupRouter(service *tracker.Service, logger *zap.Logger, webDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.StaticFile("/", filepath.Join(webDir, "index.html"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.NewHandler(service, logger).RegisterRoutes(router)

	return router
}
