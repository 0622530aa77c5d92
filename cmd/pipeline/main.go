package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/standup-scribe/internal/app"
	"github.com/nguyentantai21042004/standup-scribe/internal/config"
	"github.com/nguyentantai21042004/standup-scribe/internal/metrics"
	"github.com/nguyentantai21042004/standup-scribe/internal/watcher"
)

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file")
	envPath := flag.String("env", "", "dotenv file (default .env when present)")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	if err := config.LoadEnv(*envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := app.NewLogger(cfg)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Standup Recording Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	target, err := cfg.ResolveTarget()
	if err != nil {
		log.Error(ctx, "Invalid Notion target: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	proc, err := app.NewProcessor(ctx, cfg, log, app.Options{
		RequirePublish: target != nil,
		Metrics:        metrics.DefaultMetrics,
	})
	if err != nil {
		log.Error(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Reports: %s", cfg.Paths.Output)
	log.Info(ctx, "Archive: %s", cfg.Paths.Archived)
	if target != nil {
		log.Info(ctx, "Publishing to Notion database %s", target.DatabaseID)
	}
	log.Info(ctx, "Summary provider: %s", cfg.Summary.Provider)
	log.Info(ctx, "Chunk policy: %s, ceiling %d bytes", cfg.Audio.ChunkPolicy, cfg.Audio.CeilingBytes)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		// Graceful shutdown: Start returns once in-flight recordings finish
		log.Info(ctx, "Shutting down gracefully...")
		cancel()
		<-errChan
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		cancel()
	}

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
