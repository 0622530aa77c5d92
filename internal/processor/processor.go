package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
)

// ErrNoPublisher is returned when publishing is requested without a configured publisher.
var ErrNoPublisher = errors.New("publishing requested but no publisher is configured")

// Run orchestrates transcription, summary and the report outputs
func (p *implProcessor) Run(ctx context.Context, req Request) (*Result, error) {
	if err := p.sem.acquire(ctx); err != nil {
		return nil, err
	}
	defer p.sem.release()

	runID := logger.RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = logger.WithRunID(ctx, runID)
	}

	startTime := time.Now()
	p.metrics.RunStarted()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting run for: %s", req.AudioPath)
	p.logger.Info(ctx, "========================================")

	res, err := p.run(ctx, req, &Result{RunID: runID})

	duration := time.Since(startTime)
	if err != nil {
		p.metrics.RecordRun("failed", duration)
		p.logger.Error(ctx, "Run failed after %s: %v", duration, err)
		return res, err
	}
	p.metrics.RecordRun("success", duration)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Run completed successfully!")
	p.logger.Info(ctx, "Tokens used: %d", res.Tokens())
	if res.ReportPath != "" {
		p.logger.Info(ctx, "Report: %s", res.ReportPath)
	}
	if res.Page != nil {
		p.logger.Info(ctx, "Published page: %s", res.Page.ID)
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return res, nil
}

func (p *implProcessor) run(ctx context.Context, req Request, res *Result) (*Result, error) {
	if req.Publish && req.Target == nil {
		return nil, errors.New("publishing requested without a database target")
	}
	if req.Publish && p.publisher == nil {
		return nil, ErrNoPublisher
	}

	// Step 1: Transcribe (chunked when above the upload ceiling)
	transcript, err := p.engine.TranscribeFull(ctx, req.AudioPath, req.Language)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	if transcript == "" {
		p.logger.Warn(ctx, "Transcript is empty, summarizing anyway")
	}
	res.Transcript = transcript

	// Step 2: Summarize
	summary, err := p.summarize(ctx, transcript, req)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	res.Summary = summary

	// Step 3: Write the report locally
	if req.SaveReport {
		if err := p.saveReport(ctx, req, res); err != nil {
			return res, fmt.Errorf("save report: %w", err)
		}
	}

	// Step 4: Publish
	if req.Publish {
		page, err := p.publish(ctx, req, summary.Markdown)
		if err != nil {
			return res, fmt.Errorf("publish: %w", err)
		}
		res.Page = page
	}

	return res, nil
}

// Process runs a watched recording with the configured target and archives it on success
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	target, err := p.cfg.ResolveTarget()
	if err != nil {
		return fmt.Errorf("resolve target: %w", err)
	}

	prompt, language, err := ResolvePrompt(p.cfg, "", false)
	if err != nil {
		return err
	}

	base := filepath.Base(audioPath)
	req := Request{
		AudioPath:  audioPath,
		Language:   language,
		Prompt:     prompt,
		Publish:    target != nil && p.publisher != nil,
		Target:     target,
		SaveReport: true,
		OutputDir:  p.cfg.Paths.Output,
		ReportName: strings.TrimSuffix(base, filepath.Ext(base)) + ".md",
	}
	if target != nil && p.publisher == nil {
		p.logger.Warn(ctx, "Database target configured but no publisher available; saving locally only")
	}

	if _, err := p.Run(ctx, req); err != nil {
		return fmt.Errorf("process %s: %w", base, err)
	}

	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move recording to archived folder: %v", err)
	}
	return nil
}
