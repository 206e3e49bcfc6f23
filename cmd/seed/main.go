// Command seed loads the starting roles, permissions and sample content into
// the configured database. It is safe to run repeatedly.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"contracting-cms/internal/config"
	"contracting-cms/internal/database"
	"contracting-cms/internal/logger"
	"contracting-cms/internal/seed"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("configs/.env")
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(cfg.DSN(), log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := seed.New(db, log).Run(ctx); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
	log.Info("seed complete")
}
