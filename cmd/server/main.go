package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/standup-scribe/internal/app"
	"github.com/nguyentantai21042004/standup-scribe/internal/config"
	"github.com/nguyentantai21042004/standup-scribe/internal/metrics"
	"github.com/nguyentantai21042004/standup-scribe/internal/server"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	envPath := flag.String("env", "", "dotenv file (default .env when present)")
	addr := flag.String("addr", "", "listen address, overrides server.addr")
	flag.Parse()

	ctx := context.Background()

	if err := config.LoadEnv(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log := app.NewLogger(cfg)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Daily Meeting Transcriber API")
	log.Info(ctx, "========================================")

	proc, err := app.NewProcessor(ctx, cfg, log, app.Options{Metrics: metrics.DefaultMetrics})
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}
	if cfg.Notion.Token == "" {
		log.Warn(ctx, "NOTION_TOKEN is not set; requests with a database descriptor will be rejected")
	}

	srv := server.New(cfg, proc, log, nil)
	if err := srv.Start(ctx); err != nil {
		log.Error(ctx, "Failed to start server: %v", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Info(ctx, "Shutdown signal received")

	if err := srv.Stop(ctx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Server stopped")
}
