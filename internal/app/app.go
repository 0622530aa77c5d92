// Package app wires the pipeline stages from configuration for the commands.
package app

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/standup-scribe/internal/chunker"
	"github.com/nguyentantai21042004/standup-scribe/internal/config"
	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
	"github.com/nguyentantai21042004/standup-scribe/internal/metrics"
	"github.com/nguyentantai21042004/standup-scribe/internal/notion"
	"github.com/nguyentantai21042004/standup-scribe/internal/processor"
	"github.com/nguyentantai21042004/standup-scribe/internal/progress"
	"github.com/nguyentantai21042004/standup-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/standup-scribe/internal/transcriber"
	"github.com/nguyentantai21042004/standup-scribe/pkg/executor"
)

// Options select the optional parts of the pipeline.
type Options struct {
	// RequirePublish fails the build when no Notion token is configured.
	RequirePublish bool
	Metrics        *metrics.Metrics
	Progress       *progress.Reporter
}

// NewLogger builds the logger described by cfg.Logging.
func NewLogger(cfg *config.Config) logger.Logger {
	return logger.NewWithConfig(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
}

// NewProcessor checks credentials and assembles transcription, summary and
// publishing into a Processor. The publisher is set whenever a Notion token exists.
func NewProcessor(ctx context.Context, cfg *config.Config, log logger.Logger, opts Options) (processor.Processor, error) {
	if err := cfg.RequireOpenAI(); err != nil {
		return nil, err
	}
	if opts.RequirePublish {
		if err := cfg.RequirePublish(); err != nil {
			return nil, err
		}
	}

	policy, err := chunker.ParsePolicy(cfg.Audio.ChunkPolicy)
	if err != nil {
		return nil, err
	}

	exec := executor.New()
	if _, err := exec.LookPath(ffmpegOrDefault(cfg.Audio.FFmpegPath)); err != nil {
		log.Warn(ctx, "ffmpeg not found (%v); files above %d bytes cannot be chunked", err, cfg.Audio.CeilingBytes)
	}

	tr := transcriber.New(transcriber.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.TranscriptionModel,
		Timeout: cfg.OpenAI.TranscriptionTimeout,
	}, log)
	media := chunker.NewFFmpeg(exec, cfg.Audio.FFmpegPath, cfg.Audio.FFprobePath, cfg.Audio.ChunkFormat)
	engine := chunker.New(tr, media, log, chunker.Options{
		CeilingBytes: cfg.Audio.CeilingBytes,
		Policy:       policy,
		TempDir:      cfg.Paths.Temp,
		ChunkExt:     cfg.Audio.ChunkFormat,
		Metrics:      opts.Metrics,
		Progress:     opts.Progress,
	})

	sum, err := NewSummarizer(cfg, log)
	if err != nil {
		return nil, err
	}

	var pub notion.Publisher
	if cfg.Notion.Token != "" {
		pub = notion.New(notion.Config{
			Token:   cfg.Notion.Token,
			BaseURL: cfg.Notion.BaseURL,
			Version: cfg.Notion.Version,
			Timeout: cfg.Notion.Timeout,
		}, log)
	}

	return processor.New(cfg, processor.Deps{
		Engine:     engine,
		Summarizer: sum,
		Publisher:  pub,
		Metrics:    opts.Metrics,
		Progress:   opts.Progress,
	}, log), nil
}

// NewSummarizer returns the backend named by cfg.Summary.Provider.
func NewSummarizer(cfg *config.Config, log logger.Logger) (summarizer.Summarizer, error) {
	switch cfg.Summary.Provider {
	case "", "openai":
		return summarizer.NewOpenAI(summarizer.OpenAIConfig{
			APIKey:      cfg.OpenAI.APIKey,
			BaseURL:     cfg.OpenAI.BaseURL,
			Model:       cfg.OpenAI.SummaryModel,
			Temperature: cfg.OpenAI.Temperature,
			Timeout:     cfg.OpenAI.SummaryTimeout,
		}, log), nil
	case "gemini":
		if len(cfg.Summary.GeminiAPIKeys) == 0 {
			return nil, fmt.Errorf("%w: no Gemini API keys configured", config.ErrMissingCredential)
		}
		return summarizer.NewGemini(cfg.Summary.GeminiAPIKeys, cfg.Summary.GeminiModel, cfg.OpenAI.SummaryTimeout, log), nil
	default:
		return nil, fmt.Errorf("unknown summary provider %q", cfg.Summary.Provider)
	}
}

func ffmpegOrDefault(path string) string {
	if path == "" {
		return "ffmpeg"
	}
	return path
}
