package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"hrm/internal/app/server"
	"hrm/internal/platform/config"
	"hrm/internal/platform/db"
	"hrm/internal/platform/logging"
)

func main() {
	initSchema := flag.Bool("init-schema", false, "create missing tables before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logrus.SetOutput(logger.Out)
	logrus.SetFormatter(logger.Formatter)
	logrus.SetLevel(logger.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("startup failed")
	}
	defer app.Close()

	if *initSchema {
		schemaCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err := db.ApplySchema(schemaCtx, app.DB)
		cancel()
		if err != nil {
			logger.WithError(err).Error("apply schema failed")
			app.Close()
			os.Exit(1)
		}
		logger.Info("schema applied")
	}

	if err := app.Run(ctx); err != nil {
		logger.WithError(err).Error("server stopped")
		app.Close()
		os.Exit(1)
	}
}
