package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"cafe-ledger/confs"
	"cafe-ledger/db"
	"cafe-ledger/logging"
	"cafe-ledger/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.Connect(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// run server
	srv := server.NewServer(database, logger)
	if err := srv.Start(ctx, cfg.HTTPAddr); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
