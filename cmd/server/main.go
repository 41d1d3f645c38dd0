package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"

	"airline-service/internal/domain/repository"
	"airline-service/internal/infrastructure/config"
	"airline-service/internal/infrastructure/persistence"
	"airline-service/internal/infrastructure/router"
	"airline-service/internal/interface/api"
	gormRepo "airline-service/internal/interface/repository"
	"airline-service/internal/usecase"
	"airline-service/pkg/logger"
	"airline-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Airline Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	db, err := persistence.NewPostgres(cfg.PostgresDSN, log, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	if cfg.DBAutoMigrate {
		if err := persistence.Migrate(db); err != nil {
			log.Fatal("Failed to migrate database", "error", err)
		}
		log.Info("Database schema migrated")
	}

	// Set up the change log, backed by MongoDB when configured
	var mongoClient *mongo.Client
	changeLogRepo := gormRepo.NewNopChangeLogRepository()
	if cfg.ChangeLogEnabled() {
		log.Info("Connecting to MongoDB")
		mongoClient, err = persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		changeLogRepo = gormRepo.NewMongoChangeLogRepository(persistence.GetDatabase(mongoClient, cfg.MongoDB))
	} else {
		log.Warn("MONGODB_DSN not set, change log disabled")
	}

	// Set up repositories
	var (
		airlineRepository repository.AirlineRepository = gormRepo.NewGormAirlineRepository(db)
		airportRepository repository.AirportRepository = gormRepo.NewGormAirportRepository(db)
	)

	// Set up services
	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)
	changes := usecase.NewChangeRecorder(changeLogRepo, clock.WallClock, log)
	airportService := usecase.NewAirportService(airportRepository, changes, m, log)
	airlineService := usecase.NewAirlineService(airlineRepository, changes, clock.WallClock, m, log)
	associationService := usecase.NewAirlineAirportService(airlineRepository, airportRepository, changes, m, log)

	handler := router.NewRouter(router.Handlers{
		Airlines:        api.NewAirlineHandler(airlineService, m, log),
		Airports:        api.NewAirportHandler(airportService, m, log),
		AirlineAirports: api.NewAirlineAirportHandler(associationService, m, log),
		Changes:         api.NewChangeHandler(changes, m, log),
	}, m, prometheus.DefaultGatherer, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
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

	cancel()

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	if err := persistence.Close(db); err != nil {
		log.Error("PostgreSQL close error", "error", err)
	}

	log.Info("Airline Service stopped")
}
