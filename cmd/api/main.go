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

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	coreport "github.com/amirhossein-jamali/alert-processor/internal/domain/port/core"
	eventUseCase "github.com/amirhossein-jamali/alert-processor/internal/domain/usecase/event"
	userUseCase "github.com/amirhossein-jamali/alert-processor/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction() || cfg.Logger.Format == "json")
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	appLogger.Info("Configuration loaded", map[string]any{
		"env":       cfg.Environment,
		"log_level": appLogger.GetLevel().String(),
		"db_driver": cfg.Database.Driver,
	})

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	dbManager := database.NewManager(database.CreateConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(startupCtx); err != nil {
		return err
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(startupCtx); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	userService := userUseCase.NewUserUseCase(userRepo, tp, appLogger)
	eventService := eventUseCase.NewEventService(uow, tp, appLogger, coreport.Duration(cfg.Ingestion.RequestTimeout()))

	if cfg.Ingestion.SeedDefaultUsers {
		if err := migration.SeedDefaultUsers(startupCtx, userService); err != nil {
			appLogger.Error("Failed to create default users", map[string]any{"error": err.Error()})
		}
	}

	router := routes.NewRouter(appLogger, routes.Handlers{
		Event:  handler.NewEventHandler(eventService, appLogger),
		User:   handler.NewUserHandler(userService, eventService, cfg.Ingestion.HistoryLimit, appLogger),
		Health: handler.NewHealthHandler(dbManager, appLogger),
	})

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           corsHandler(router),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path")
		}
	case database.DriverPostgres:
		required := map[string]string{
			"database.host":     cfg.Database.Host,
			"database.port":     cfg.Database.Port,
			"database.username": cfg.Database.Username,
			"database.password": cfg.Database.Password,
			"database.database": cfg.Database.Database,
		}
		for _, key := range []string{"database.host", "database.port", "database.username", "database.password", "database.database"} {
			if required[key] == "" {
				envKey := config.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
				missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", key, envKey))
			}
		}
	default:
		return fmt.Errorf("invalid database.driver value: %q, must be one of: %s, %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Ingestion.RequestTimeoutMs < 0 {
		return errors.New("ingestion.requestTimeoutMs must not be negative")
	}
	if cfg.Ingestion.HistoryLimit <= 0 {
		missingConfigs = append(missingConfigs, "ingestion.historyLimit")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
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

	if cfg.IsProduction() {
		var warnings []string

		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite serializes all writes; use postgres in production")
		}

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver == database.DriverPostgres &&
			sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		for _, origin := range cfg.Server.AllowedOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.allowedOrigins allows every origin")
				break
			}
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
