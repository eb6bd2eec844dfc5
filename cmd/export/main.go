// Command export dumps every scorecard inquiry from the external store
// into a human-readable text file. Run it once, or with -listen to
// re-export on a 24-hour timer (suitable for a long-lived sidecar
// instead of cron).
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shipgate/site-api/internal/config"
	"github.com/shipgate/site-api/internal/export"
	"github.com/shipgate/site-api/internal/observability"
	"github.com/shipgate/site-api/internal/pocketbase"
)

func main() {
	listen := flag.Bool("listen", false, "keep running and re-export every 24 hours")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store := pocketbase.New(cfg.PocketBase, logger)
	exporter := export.New(store, logger, cfg.Export)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *listen {
		logger.Info("running in listener mode, exporting every 24 hours")
		exporter.Listen(ctx)
		return
	}

	total, path, err := exporter.Run(ctx)
	if err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}
	logger.Info("export complete", zap.Int("total", total), zap.String("path", path))
}
