package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"museum-review/internal/auth"
	"museum-review/internal/config"
	"museum-review/internal/events"
	"museum-review/internal/handler"
	"museum-review/internal/infrastructure/database"
	"museum-review/internal/logger"
	"museum-review/internal/metrics"
	"museum-review/internal/notification"
	"museum-review/internal/repository"
	"museum-review/internal/service"
	"museum-review/internal/storage"
	"museum-review/internal/textextract"
	"museum-review/internal/validator"
	"museum-review/internal/workflow"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	table, err := workflow.LoadTable(cfg.StagesFile)
	if err != nil {
		logger.Fatal("Failed to load stage table",
			slog.String("error", err.Error()))
	}

	authenticator, err := auth.ParseTokens(cfg.ReviewerTokens)
	if err != nil {
		logger.Fatal("Failed to parse reviewer tokens",
			slog.String("error", err.Error()))
	}

	articleRepo, healthChecks, closeStore := openStore(cfg)
	defer closeStore()

	store, filesDir := openStorage(cfg)

	publisher, err := events.NewPublisher(events.NATSConfig{
		URL:     cfg.NATSURL,
		Subject: cfg.NATSSubject,
		Name:    "museum-review",
	})
	if err != nil {
		logger.Fatal("Failed to connect to NATS",
			slog.String("error", err.Error()))
	}
	defer publisher.Close()

	emailProvider := notification.NewEmailProvider(notification.EmailJSConfig{
		Endpoint:   cfg.EmailJSEndpoint,
		ServiceID:  cfg.EmailJSServiceID,
		PublicKey:  cfg.EmailJSPublicKey,
		PrivateKey: cfg.EmailJSPrivateKey,
		Timeout:    cfg.EmailTimeout,
	})
	dispatcher := notification.NewDispatcher(emailProvider, notification.DispatcherConfig{
		TemplateID:     cfg.EmailJSTemplateID,
		Workers:        cfg.NotificationWorkers,
		QueueSize:      cfg.NotificationQueueSize,
		SendTimeout:    cfg.EmailTimeout,
		EnqueueTimeout: cfg.NotificationEnqueueTimeout,
	})

	// Initialize services
	engine := workflow.NewEngine(articleRepo, dispatcher, publisher)
	submissionService := service.NewSubmissionService(articleRepo, store, validator.NewValidator(), publisher)
	articleService := service.NewArticleService(articleRepo)
	reviewService := service.NewReviewService(articleRepo, table, engine)
	publicationService := service.NewPublicationService(articleRepo, table, engine, textextract.New(), store)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.Routes{
		Submissions:   handler.NewSubmissionHandler(submissionService),
		Articles:      handler.NewArticleHandler(articleService),
		Review:        handler.NewReviewHandler(reviewService),
		Publication:   handler.NewPublicationHandler(publicationService),
		Health:        handler.NewHealthHandler(healthChecks...),
		Authenticator: authenticator,
		CORSOrigins:   cfg.CORSOrigins,
		FilesDir:      filesDir,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("store", cfg.StoreDriver),
			slog.String("storage", cfg.StorageDriver),
			slog.Int("stages", len(table.Stages())),
			slog.Int("reviewers", authenticator.Len()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Stop taking requests first so no new rejection is queued after the
	// dispatcher closes.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Flushing notification queue")
	dispatcher.Close()

	logger.Info("Server exited")
}

// openStore connects the configured article store and returns its health
// checks and a cleanup func.
func openStore(cfg *config.Config) (repository.ArticleRepository, []handler.HealthCheck, func()) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, db, err := database.NewMongo(context.Background(), database.MongoConfig{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
		})
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB",
				slog.String("error", err.Error()))
		}
		repo := repository.NewMongoArticleRepository(db)
		if err := repo.EnsureIndexes(context.Background()); err != nil {
			logger.Fatal("Failed to create MongoDB indexes",
				slog.String("error", err.Error()))
		}
		check := handler.HealthCheck{Name: "mongodb", Check: func(ctx context.Context) error {
			return database.MongoHealthCheck(ctx, client)
		}}
		return repo, []handler.HealthCheck{check}, func() {
			_ = client.Disconnect(context.Background())
		}

	case config.StoreDriverMemory:
		logger.Warn("Using the in-memory article store; data is lost on restart")
		return repository.NewMemoryArticleRepository(), nil, func() {}

	default:
		poolConfig := database.PoolConfig{
			Host:              cfg.DBHost,
			Port:              cfg.DBPort,
			User:              cfg.DBUser,
			Password:          cfg.DBPassword,
			Database:          cfg.DBName,
			SSLMode:           cfg.DBSSLMode,
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		}
		if err := database.Migrate(poolConfig.URL(), cfg.MigrationsDir); err != nil {
			logger.Fatal("Failed to migrate database",
				slog.String("error", err.Error()))
		}

		pool, err := database.NewPostgres(context.Background(), poolConfig)
		if err != nil {
			logger.Fatal("Failed to connect to database",
				slog.String("error", err.Error()))
		}

		// Start database pool metrics collector
		poolStatsCollector := metrics.NewPoolStatsCollector(pool)
		poolStatsCollector.Start(15 * time.Second)

		check := handler.HealthCheck{Name: "database", Check: func(ctx context.Context) error {
			metrics.LogHealthCheckMetrics(ctx, pool)
			return database.HealthCheck(ctx, pool)
		}}
		return repository.NewPostgresArticleRepository(pool), []handler.HealthCheck{check}, func() {
			poolStatsCollector.Stop()
			pool.Close()
		}
	}
}

// openStorage builds the object store. For the local store it also returns
// the directory to serve under /files.
func openStorage(cfg *config.Config) (storage.Store, string) {
	if cfg.StorageDriver == config.StorageDriverSupabase {
		store, err := storage.NewSupabaseStore(storage.SupabaseConfig{
			URL:     cfg.SupabaseURL,
			Key:     cfg.SupabaseKey,
			Bucket:  cfg.SupabaseBucket,
			Timeout: cfg.StorageTimeout,
		})
		if err != nil {
			logger.Fatal("Failed to configure Supabase storage",
				slog.String("error", err.Error()))
		}
		return store, ""
	}

	store, err := storage.NewLocalStore(cfg.StorageDir, cfg.StorageBaseURL)
	if err != nil {
		logger.Fatal("Failed to configure local storage",
			slog.String("error", err.Error()))
	}
	return store, store.Dir()
}
