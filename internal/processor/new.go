package processor

import (
	"time"

	"github.com/nguyentantai21042004/standup-scribe/internal/chunker"
	"github.com/nguyentantai21042004/standup-scribe/internal/config"
	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
	"github.com/nguyentantai21042004/standup-scribe/internal/metrics"
	"github.com/nguyentantai21042004/standup-scribe/internal/notion"
	"github.com/nguyentantai21042004/standup-scribe/internal/progress"
	"github.com/nguyentantai21042004/standup-scribe/internal/summarizer"
)

// Deps are the pipeline stages. Publisher may be nil when nothing is published;
// Metrics and Progress may be nil.
type Deps struct {
	Engine     chunker.Engine
	Summarizer summarizer.Summarizer
	Publisher  notion.Publisher
	Metrics    *metrics.Metrics
	Progress   *progress.Reporter
}

type implProcessor struct {
	cfg        *config.Config
	engine     chunker.Engine
	summarizer summarizer.Summarizer
	publisher  notion.Publisher
	metrics    *metrics.Metrics
	progress   *progress.Reporter
	logger     logger.Logger
	sem        *semaphore
	now        func() time.Time
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		engine:     deps.Engine,
		summarizer: deps.Summarizer,
		publisher:  deps.Publisher,
		metrics:    deps.Metrics,
		progress:   deps.Progress,
		logger:     log,
		sem:        newSemaphore(cfg.Performance.MaxConcurrent),
		now:        time.Now,
	}
}
