package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"inventory/internal/app"
	"inventory/internal/config"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	// --- Assemble storage, session and routes ---
	application, err := app.New(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize application")
	}

	runErr := run(application, cfg.AppPort, logger)
	application.Close()
	if runErr != nil {
		logger.WithError(runErr).Error("Server stopped with error")
		os.Exit(1)
	}
	logger.Info("Server gracefully stopped")
}

// run serves HTTP until SIGINT/SIGTERM arrives or the listener fails.
func run(application *app.App, port string, logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("port", port).Info("Starting server")
		return application.Fiber.Listen(port)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server...")
		return application.Fiber.Shutdown()
	})

	return g.Wait()
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.WithField("level", level).Warn("Unknown LOG_LEVEL, using info")
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	logrus.SetFormatter(logger.Formatter)
	logrus.SetLevel(lvl)
	return logger
}
