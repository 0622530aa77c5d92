package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/standup-scribe/internal/app"
	"github.com/nguyentantai21042004/standup-scribe/internal/config"
	"github.com/nguyentantai21042004/standup-scribe/internal/processor"
	"github.com/nguyentantai21042004/standup-scribe/internal/progress"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scribe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file (optional)")
		envPath    = fs.String("env", "", "dotenv file (default .env when present)")
		publish    = fs.Bool("notion", false, "publish the report to Notion instead of writing a file")
		category   = fs.String("category", "", "Notion category property")
		title      = fs.String("title", "", "Notion page title")
		targetFile = fs.String("target", "", "Notion database descriptor JSON file")
		docx       = fs.Bool("docx", false, "also write the report as .docx")
		outDir     = fs.String("out", "", "directory for the Markdown report")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: scribe [flags] <audio-file> [prompt-file]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return exitUsage
	}
	audioPath := fs.Arg(0)
	promptPath := fs.Arg(1)

	if err := config.LoadEnv(*envPath); err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitError
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Failed to load config: %v\n", err)
		return exitError
	}
	if *outDir != "" {
		cfg.Paths.Output = *outDir
	}
	if *docx {
		cfg.Output.Docx = true
	}
	if *targetFile != "" {
		cfg.Notion.TargetFile = *targetFile
	}

	log := app.NewLogger(cfg)

	prompt, language, err := processor.ResolvePrompt(cfg, promptPath, promptPath != "")
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitError
	}

	req := processor.Request{
		AudioPath:  audioPath,
		Language:   language,
		Prompt:     prompt,
		Publish:    *publish,
		SaveReport: !*publish,
		OutputDir:  cfg.Paths.Output,
		Category:   *category,
		Title:      *title,
	}
	if *publish {
		target, err := cfg.ResolveTarget()
		if err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return exitError
		}
		if target == nil {
			fmt.Fprintln(stderr, "❌ No Notion database configured: set NOTION_DB_SCHEMA, NOTION_DB_FILE or -target")
			return exitError
		}
		req.Target = target
	}

	proc, err := app.NewProcessor(ctx, cfg, log, app.Options{
		RequirePublish: *publish,
		Progress:       progress.New(stdout),
	})
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitError
	}

	fmt.Fprintf(stdout, "🎧 Transcribing %s\n", audioPath)
	res, err := proc.Run(ctx, req)
	if res != nil && res.Summary != nil {
		fmt.Fprintf(stdout, "🔢 Total tokens used: %d\n", res.Tokens())
	}
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return exitError
	}

	if res.ReportPath != "" {
		fmt.Fprintf(stdout, "✅ Markdown summary saved to %s\n", res.ReportPath)
	}
	if res.DocxPath != "" {
		fmt.Fprintf(stdout, "✅ DOCX saved to %s\n", res.DocxPath)
	}
	if res.Page != nil {
		fmt.Fprintf(stdout, "✅ Summary sent to Notion: %s\n", res.Page.URL)
	}
	return exitOK
}
