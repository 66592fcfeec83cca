// @title Summa Reader API
// @version 1.0
// @description Read-only navigation API for the Summa Theologica.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"summa-reader/internal/adapter"
	"summa-reader/internal/cache"
	"summa-reader/internal/config"
	"summa-reader/internal/domain"
	"summa-reader/internal/handler"
	"summa-reader/internal/loader"
	"summa-reader/internal/logger"
	"summa-reader/internal/middleware"
	"summa-reader/internal/service"
	"summa-reader/internal/watch"
	"syscall"
	"time"

	_ "summa-reader/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Document source and loader
	source := loader.NewSource(cfg.Document.Source, cfg.Document.FetchTimeout)
	documentLoader := loader.NewLoader(source)
	appLogger.Info("Document source configured", zap.String("source", source.ID()))

	// Group table
	table := domain.DefaultGroupTable()
	if cfg.Outline.TableFile != "" {
		table, err = domain.LoadGroupTable(cfg.Outline.TableFile)
		if err != nil {
			appLogger.Fatal("Failed to load group table", zap.String("file", cfg.Outline.TableFile), zap.Error(err))
		}
		appLogger.Info("Group table loaded", zap.String("file", cfg.Outline.TableFile), zap.Int("parts", len(table)))
	}

	// Document cache
	var sharedCache domain.Cache
	var documentCache service.DocumentCache
	switch cfg.Cache.Mode {
	case config.CacheModeRedis:
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("Successfully connected to Redis")
		sharedCache = adapter.NewRedisCacheAdapter(redisClient)
		documentCache = service.NewRedisDocumentCache(sharedCache, cfg.Cache.TTL)
	case config.CacheModeMemory:
		documentCache = service.NewMemoryDocumentCache()
	default:
		documentCache = service.NewNoopDocumentCache()
	}
	appLogger.Info("Document cache initialized", zap.String("mode", cfg.Cache.Mode))

	// Services
	readerService := service.NewReaderService(documentLoader, documentCache, table)
	healthService := service.NewHealthService(sharedCache, documentLoader)
	workCatalog := service.NewWorkCatalog()

	startupCheck := healthService.Check(ctx)
	if startupCheck.Status != service.StatusOK {
		appLogger.Warn("Starting with unhealthy dependencies",
			zap.String("cache", startupCheck.Cache),
			zap.String("document", startupCheck.Document),
		)
	}
	if totals, err := readerService.VerifyTotals(ctx); err == nil {
		appLogger.Info("Document totals",
			zap.Int("questions", totals.ActualQuestions),
			zap.Int("articles", totals.ActualArticles),
			zap.Bool("consistent", totals.Consistent),
		)
	}

	// Reload on file changes
	if fileSource, ok := source.(*loader.FileSource); ok && cfg.Document.Watch {
		watcher, err := watch.NewFileWatcher(fileSource.Path(), watch.DefaultDebounce, func(ctx context.Context) error {
			_, err := readerService.Reload(ctx)
			return err
		})
		if err != nil {
			appLogger.Fatal("Failed to watch document file", zap.Error(err))
		}
		defer watcher.Close()
		go watcher.Run(ctx)
		appLogger.Info("Watching document file", zap.String("path", fileSource.Path()))
	}

	// Handlers
	summaHandler := handler.NewSummaHandler(readerService)
	worksHandler := handler.NewWorksHandler(workCatalog)
	healthHandler := handler.NewHealthHandler(healthService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.AllowOrigins, AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, summaHandler, worksHandler, healthHandler)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
