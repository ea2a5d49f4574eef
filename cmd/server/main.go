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

	"github.com/rohits-web03/resumehub/internal/api"
	"github.com/rohits-web03/resumehub/internal/api/handlers"
	"github.com/rohits-web03/resumehub/internal/api/services"
	"github.com/rohits-web03/resumehub/internal/config"
	"github.com/rohits-web03/resumehub/internal/logging"
	"github.com/rohits-web03/resumehub/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repositories.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	files, err := repositories.OpenFileStore(cfg)
	if err != nil {
		return err
	}

	h := handlers.New(handlers.Deps{
		Auth: services.NewAuthService(store, services.AuthOptions{
			Secret:     []byte(cfg.JWTSecret),
			TokenTTL:   cfg.TokenTTL,
			BcryptCost: cfg.BcryptCost,
		}),
		Profiles:       services.NewProfileService(store),
		Files:          files,
		Google:         services.NewGoogleOAuthConfig(cfg.Google),
		FrontendURL:    cfg.FrontendURL,
		Production:     cfg.IsProduction(),
		UploadMaxBytes: cfg.UploadMaxBytes,
		Log:            logger,
	})

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.SetupRouter(h, cfg.CorsOptions(), logger),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server is listening", zap.String("addr", server.Addr), zap.String("db", cfg.DBDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
