package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"okada/cmd"
	httpin "okada/internal/adapters/in/http"
	"okada/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := newLogger(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Error connecting to database", zap.Error(err))
	}

	if configs.MigrateOnUp {
		if err = postgres.Migrate(db); err != nil {
			logger.Fatal("Error migrating database", zap.Error(err))
		}
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		logger.Fatal("Error creating jobs", zap.Error(err))
	}
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal("Error starting jobs", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = startWebServer(ctx, app, configs.HTTPPort, logger); err != nil {
		logger.Error("Web server stopped with error", zap.Error(err))
	}

	jobManager.StopAll()

	if sqlDB, dbErr := db.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
}

// newLogger creates a production logger at the given level.
func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = atomicLevel

	return loggerCfg.Build()
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *zap.Logger) error {
	verifier, err := app.CreateTokenVerifier()
	if err != nil {
		return err
	}

	e, err := httpin.NewRouter(app.CreateServer(), verifier, logger.Named("http"))
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Web server listening", zap.String("port", port))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
