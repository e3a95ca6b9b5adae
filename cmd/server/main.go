package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/internal/infrastructure/config"
	"shavtzak-service/internal/infrastructure/persistence"
	mongoRepo "shavtzak-service/internal/interface/repository"
	"shavtzak-service/internal/interface/rest"
	"shavtzak-service/internal/interface/weather"
	"shavtzak-service/internal/usecase"
	"shavtzak-service/pkg/logger"
	"shavtzak-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Shavtzak Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	location, err := time.LoadLocation(cfg.RolloverTimezone)
	if err != nil {
		log.Fatal("Failed to load rollover timezone", "tz", cfg.RolloverTimezone, "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Optional audit trail; disabled when no DSN is configured
	var auditRepository repository.AuditRepository
	if cfg.PostgresDSN != "" {
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		auditRepository, err = mongoRepo.NewGormAuditRepository(gormDB)
		if err != nil {
			log.Fatal("Failed to prepare audit trail", "error", err)
		}
	} else {
		log.Info("Audit trail disabled, no POSTGRES_DSN configured")
	}

	// Set up repositories
	weekRepo := mongoRepo.NewMongoWeekRepository(db)
	settingsRepo := mongoRepo.NewMongoSettingsRepository(db)
	blobRepo, err := mongoRepo.NewGridFSBlobRepository(db)
	if err != nil {
		log.Fatal("Failed to open blob bucket", "error", err)
	}

	// Set up usecases
	appMetrics := metrics.NewMetrics("shavtzak")
	weekService := usecase.NewWeekService(weekRepo, auditRepository, appMetrics, log)
	replicator := usecase.NewReplicator(weekRepo, auditRepository, appMetrics, log)
	historyService := usecase.NewHistoryService(weekRepo, log, nil)
	settingsService := usecase.NewSettingsService(settingsRepo, cfg.SettingsDebounce, log)
	exporter := usecase.NewWeekExporter(weekRepo, log)
	forecastService := weather.NewForecastService(cfg.WeatherEndpoint, cfg.WeatherLatitude, cfg.WeatherLongitude, log)

	router := rest.NewRouter(rest.Dependencies{
		Logger:          log,
		ManagerPassword: cfg.ManagerPassword,
		AllowedOrigins:  cfg.AllowedOrigins,
		Location:        location,
		Weeks:           weekService,
		Replicator:      replicator,
		History:         historyService,
		Settings:        settingsService,
		Exporter:        exporter,
		Weather:         forecastService,
		Blobs:           blobRepo,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	// Persist any debounced settings writes still waiting
	settingsService.Flush(shutdownCtx)

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Shavtzak Service stopped")
}
