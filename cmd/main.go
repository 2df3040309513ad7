package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"family_shapes/config"
	"family_shapes/internal/clients"
	"family_shapes/internal/delivery"
	grpcHandler "family_shapes/internal/delivery/grpc"
	"family_shapes/internal/domain"
	"family_shapes/internal/repository"
	"family_shapes/internal/usecase"
	"family_shapes/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := setupLogger("info", "json")

	cfg := config.LoadConfig(logger)
	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)
	logger.Info("Starting Family Shapes portal...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.DatabaseURL, cfg.DBTimeout)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	logger.Info("Database connection established.")

	if err := repository.Migrate(ctx, database, logger); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	waitlistRepo := repository.NewPostgresWaitlistRepository(database, logger)
	accountRepo := repository.NewPostgresAccountRepository(database, logger)
	sessionRepo := repository.NewPostgresSessionRepository(database, logger)
	logger.Info("Repositories initialized.")

	var deleter domain.AccountDeleter
	if cfg.AccountDeletionURL != "" {
		deletionClient := clients.NewAccountDeletionClient(cfg.AccountDeletionURL, cfg.AccountDeletionToken, cfg.AccountDeletionTimeout, logger)
		defer deletionClient.Close()
		deleter = deletionClient
	}

	waitlistUseCase := usecase.NewWaitlistUseCase(waitlistRepo, logger)
	accountUseCase := usecase.NewAccountUseCase(accountRepo, sessionRepo, deleter, cfg.SessionTTL, cfg.AdminEmails, logger)
	logger.Info("Use cases initialized.")

	router, err := delivery.NewRouter(delivery.RouterDeps{
		Waitlist:   waitlistUseCase,
		Accounts:   accountUseCase,
		SessionTTL: cfg.SessionTTL,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatalf("Failed to build router: %v", err)
	}

	httpServer := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	httpLis, grpcLis, err := listen(cfg.HTTPPort, cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to bind listeners: %v", err)
	}
	healthServer := grpcHandler.NewHealthServer(logger)

	go func() {
		if err := healthServer.Serve(grpcLis); err != nil {
			logger.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	go func() {
		logger.Infof("HTTP server listening on %s", httpLis.Addr())
		if err := httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()
	healthServer.SetServing(true)

	<-ctx.Done()
	logger.Warn("Shutdown signal received...")
	healthServer.SetServing(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}
	healthServer.Stop()

	logger.Info("Family Shapes portal shut down gracefully.")
}

// listen binds both ports up front so health never reports SERVING for a
// server that could not take its address.
func listen(httpAddr, grpcAddr string) (net.Listener, net.Listener, error) {
	httpLis, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on HTTP port %s: %w", httpAddr, err)
	}
	grpcLis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		httpLis.Close()
		return nil, nil, fmt.Errorf("failed to listen on gRPC port %s: %w", grpcAddr, err)
	}
	return httpLis, grpcLis, nil
}

func setupLogger(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
