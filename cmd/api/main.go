package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	activeRaffleUseCase "github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/activeraffle"
	allocationUseCase "github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/allocation"
	drawUseCase "github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/draw"
	paymentMethodUseCase "github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/paymentmethod"
	prizeUseCase "github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/prize"
	purchaseUseCase "github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/purchase"
	raffleUseCase "github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/raffle"

	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/identifier"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/notification"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/security"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLoggerWithOptions(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
		Compress:   cfg.Logger.Compress,
	})
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp)
	startupCtx, cancelStartup := tp.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	if _, err := dbManager.Connect(startupCtx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()
	ids := identifier.NewGenerator()

	// Payment methods are cached; a cold registry is loaded on first use
	registry := paymentMethodUseCase.NewRegistry(dbManager.PaymentMethodRepository(), tp, appLogger, cfg.PaymentMethods.CacheTTL)
	if err := registry.Refresh(startupCtx); err != nil {
		appLogger.Warn("Failed to preload payment methods", map[string]any{"error": err.Error()})
	}

	probes := map[string]handler.HealthProbe{
		"database": func(ctx context.Context) error {
			status := dbManager.Health(ctx)
			if !status.Healthy {
				return errors.New(status.Error)
			}
			return nil
		},
	}

	drawLocks, redisClient, err := buildDrawLocks(startupCtx, cfg, dbManager, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialise draw locks", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		probes["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	notifier, closeNotifier, err := buildNotifier(cfg, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialise notifier", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer closeNotifier()

	proofStorage, err := storage.NewLocalProofStorage(cfg.Storage.ProofDir, cfg.Storage.PublicBaseURL, cfg.Storage.MaxProofBytes, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialise proof storage", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	tokens, err := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		appLogger.Error("Failed to initialise token manager", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize use cases
	engine := allocationUseCase.NewEngine(uow, ids, tp, appLogger)

	purchaseOpts := []purchaseUseCase.Option{
		purchaseUseCase.WithMaxNumbers(cfg.Purchase.MaxNumbers),
		purchaseUseCase.WithRequestTimeout(cfg.Purchase.RequestTimeout),
	}
	if cfg.Purchase.SerializePerRaffle {
		purchaseOpts = append(purchaseOpts, purchaseUseCase.WithRaffleQueue(cfg.Purchase.QueueSize))
	}
	purchaseService := purchaseUseCase.NewService(engine, registry, proofStorage, notifier, uow, ids, tp, appLogger, purchaseOpts...)
	queryService := purchaseUseCase.NewQueryService(engine, uow, appLogger)
	activeRaffleService := activeRaffleUseCase.NewService(uow, tp, appLogger)
	raffleService := raffleUseCase.NewService(uow, tp, appLogger)
	prizeService := prizeUseCase.NewService(uow, tp, appLogger)
	drawService := drawUseCase.NewService(uow, drawLocks, random.NewCryptoSource(), tp, appLogger, cfg.Draw.LockTTL)
	paymentMethodService := paymentMethodUseCase.NewService(dbManager.PaymentMethodRepository(), registry, tp, appLogger)

	// Initialize API handlers
	handlers := routes.Handlers{
		Raffle:        handler.NewRaffleHandler(raffleService, activeRaffleService, appLogger),
		Purchase:      handler.NewPurchaseHandler(purchaseService, queryService, cfg.Storage.MaxProofBytes, appLogger),
		Prize:         handler.NewPrizeHandler(prizeService, appLogger),
		Draw:          handler.NewDrawHandler(drawService, appLogger),
		PaymentMethod: handler.NewPaymentMethodHandler(paymentMethodService, appLogger),
		Health:        handler.NewHealthHandler(probes, 2*time.Second, tp, appLogger),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.CORSOrigins)
	routes.SetupRoutes(router, handlers, middleware.AdminAuth(tokens, appLogger))

	// Uploaded proofs are served from disk when the public URL is a local path
	if strings.HasPrefix(cfg.Storage.PublicBaseURL, "/") {
		router.Static(cfg.Storage.PublicBaseURL, proofStorage.Dir())
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	// In-flight purchases finish before storage goes away
	purchaseService.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// buildDrawLocks picks the draw lock backend. The redis client is returned so it can be probed and closed.
func buildDrawLocks(ctx context.Context, cfg *config.Config, dbManager *database.Manager, appLogger coreport.Logger) (persistence.RaffleLockRepository, *redis.Client, error) {
	if cfg.Draw.LockBackend != config.LockBackendRedis {
		locks := dbManager.RaffleLockRepository()
		if err := locks.CleanupExpiredLocks(ctx); err != nil {
			appLogger.Warn("Failed to clean up expired draw locks", map[string]any{"error": err.Error()})
		}
		return locks, nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}

	appLogger.Info("Using redis draw locks", map[string]any{"addr": cfg.Redis.Addr})
	return lock.NewRedisLock(client, cfg.Redis.KeyPrefix, appLogger), client, nil
}

// buildNotifier returns the AMQP publisher when notifications are enabled and the log notifier otherwise
func buildNotifier(cfg *config.Config, tp coreport.TimeProvider, appLogger coreport.Logger) (gateway.Notifier, func(), error) {
	if !cfg.Notification.Enabled {
		return notification.NewLogNotifier(tp, appLogger), func() {}, nil
	}

	conn, ch, err := notification.Dial(cfg.Notification.AMQPURL)
	if err != nil {
		return nil, nil, err
	}

	notifier, err := notification.NewAMQPNotifier(ch, cfg.Notification.Queue, cfg.Notification.PublishTimeout, tp, appLogger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	return notifier, func() {
		_ = notifier.Close()
		_ = conn.Close()
	}, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverPostgres:
		if cfg.Database.Host == "" && os.Getenv("RS_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or RS_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" && os.Getenv("RS_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or RS_DB_USERNAME environment variable)")
		}
		if cfg.Database.Password == "" && os.Getenv("RS_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or RS_DB_PASSWORD environment variable)")
		}
		if cfg.Database.Database == "" && os.Getenv("RS_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or RS_DB_NAME environment variable)")
		}
	case database.DriverSQLite:
		if cfg.Database.SQLitePath == "" {
			missingConfigs = append(missingConfigs, "database.sqlitePath")
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or RS_AUTH_JWT_SECRET environment variable)")
	}
	if cfg.Storage.ProofDir == "" {
		missingConfigs = append(missingConfigs, "storage.proofDir")
	}
	if cfg.Notification.Enabled && cfg.Notification.AMQPURL == "" {
		missingConfigs = append(missingConfigs, "notification.amqpURL (or RS_AMQP_URL environment variable)")
	}

	switch cfg.Draw.LockBackend {
	case config.LockBackendDatabase:
	case config.LockBackendRedis:
		if cfg.Redis.Addr == "" {
			missingConfigs = append(missingConfigs, "redis.addr")
		}
	default:
		return fmt.Errorf("invalid draw.lockBackend: %s, must be %s or %s",
			cfg.Draw.LockBackend, config.LockBackendDatabase, config.LockBackendRedis)
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite serializes every write")
		}
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes")
		}
		for _, origin := range cfg.Server.CORSOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.corsOrigins allows every origin")
			}
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
