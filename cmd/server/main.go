package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"praxis/internal/cache"
	"praxis/internal/config"
	"praxis/internal/platform/logger"
	"praxis/internal/render"
	"praxis/internal/repository"
	"praxis/internal/service"
	"praxis/internal/transport/rest"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("failed to ping MongoDB", "error", err)
	}
	log.Info("connected to MongoDB", "uri", cfg.MongoURI)

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("failed to ping Redis", "error", err)
	}
	log.Info("connected to Redis", "addr", cfg.RedisAddr)

	// Initialize repositories
	templateRepo := repository.NewTemplateRepo(db)
	followUpRepo := repository.NewFollowUpRepo(db)
	clientRepo := repository.NewClientRepo(db)
	catalogRepo := repository.NewCatalogRepo(db)
	deckRepo := repository.NewDeckRepo(db)

	// Initialize caches
	selectionCache := cache.NewSelectionCache(rdb)
	exclusionCache := cache.NewExclusionCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	templateSvc := service.NewTemplateService(templateRepo)
	clientSvc := service.NewClientService(clientRepo, selectionCache, log)
	followUpSvc := service.NewFollowUpService(followUpRepo, templateRepo, clientRepo, deckRepo)
	matchingSvc := service.NewMatchingService(clientRepo, catalogRepo, followUpRepo, templateRepo, exclusionCache)
	rasterizer := render.NewPNGRasterizer(cfg.ChartFont)
	exportSvc := service.NewExportService(followUpSvc, rasterizer, log)

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		TemplateService: templateSvc,
		ClientService:   clientSvc,
		FollowUpService: followUpSvc,
		MatchingService: matchingSvc,
		ExportService:   exportSvc,
		CatalogRepo:     catalogRepo,
		DeckRepo:        deckRepo,
	}
	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen and serve", "error", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
