package chunker

import (
	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
	"github.com/nguyentantai21042004/standup-scribe/internal/metrics"
	"github.com/nguyentantai21042004/standup-scribe/internal/progress"
)

// DefaultCeiling is the largest upload the transcription endpoint accepts, minus headroom.
const DefaultCeiling int64 = 24 * 1024 * 1024

type Options struct {
	// CeilingBytes is the size at or above which the source is chunked.
	CeilingBytes int64
	Policy       Policy
	// TempDir is the parent of each run's chunk directory. Empty means os.TempDir().
	TempDir string
	// ChunkExt is the extension given to encoded chunk files.
	ChunkExt string
	Metrics  *metrics.Metrics
	Progress *progress.Reporter
}

type implEngine struct {
	transcriber Transcriber
	media       Media
	logger      logger.Logger
	opts        Options
}

// New creates an Engine. Zero option values fall back to defaults.
func New(tr Transcriber, media Media, log logger.Logger, opts Options) Engine {
	if opts.CeilingBytes <= 0 {
		opts.CeilingBytes = DefaultCeiling
	}
	if opts.ChunkExt == "" {
		opts.ChunkExt = "mp3"
	}
	return &implEngine{
		transcriber: tr,
		media:       media,
		logger:      log,
		opts:        opts,
	}
}
