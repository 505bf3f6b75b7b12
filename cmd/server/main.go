package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/gin-gonic/gin"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/api"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/catalog"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/config"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/db"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/logging"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/notify"
	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.Log.Level, cfg.Log.JSON); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Sync()

	logging.L().Info("asset flow service starting",
		logging.String("git_sha", cfg.Build.GitSHA),
		logging.String("build_time", cfg.Build.BuildTime),
	)

	ctx := context.Background()

	notifiers := notify.Multi{notify.LogNotifier{}}
	if cfg.AWS.Enabled(cfg.JWT) {
		awsCfg, err := config.LoadAWS(ctx, cfg.AWS.Region)
		if err != nil {
			logging.L().Fatal("failed to load AWS config", logging.Error(err))
		}

		secretCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = cfg.ResolveSecrets(secretCtx, secretsmanager.NewFromConfig(awsCfg))
		cancel()
		if err != nil {
			logging.L().Fatal("failed to resolve secrets", logging.Error(err))
		}

		if cfg.AWS.NotifyTopicARN != "" {
			notifiers = append(notifiers, notify.NewSNSNotifier(awsCfg, cfg.AWS.NotifyTopicARN))
		}
	}

	if err := cfg.Validate(); err != nil {
		logging.L().Fatal("invalid configuration", logging.Error(err))
	}

	cat := catalog.Default()
	var opts []api.Option

	// Database is optional; the built-in catalog serves when it is absent or unreachable
	if cfg.Database.Enabled() {
		database, err := openCatalogStore(ctx, cfg.Database)
		if err != nil {
			logging.L().Warn("catalog store unavailable, using built-in catalog", logging.Error(err))
		} else {
			defer database.Close()
			opts = append(opts, api.WithDatabase(database))

			loaded, err := database.LoadCatalog(ctx)
			if err != nil {
				logging.L().Warn("catalog load failed, using built-in catalog", logging.Error(err))
			} else {
				cat = loaded
			}
		}
	}

	sessions := session.NewStore(cfg.JWT.Secret, cfg.JWT.TTL())
	handler := api.NewHandler(cat, sessions, notifiers, opts...)

	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}
	router := api.NewRouter(handler, api.RouterConfig{
		CORSOrigin: cfg.CORS.Origin,
		GitSHA:     cfg.Build.GitSHA,
		BuildTime:  cfg.Build.BuildTime,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.L().Info("listening", logging.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.L().Fatal("failed to start server", logging.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.L().Error("graceful shutdown failed", logging.Error(err))
	}
}

func openCatalogStore(ctx context.Context, cfg config.Database) (*db.Database, error) {
	database, err := db.NewDatabase(ctx, cfg.DSN(), cfg.MaxRetries)
	if err != nil {
		return nil, err
	}

	initCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := database.InitSchema(initCtx); err != nil {
		database.Close()
		return nil, err
	}
	if err := database.SeedCatalog(initCtx, catalog.Default()); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}
