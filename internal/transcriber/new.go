package transcriber

import (
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "whisper-1"
	DefaultTimeout = 600 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type implTranscriber struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  logger.Logger
}

// New creates a Whisper-compatible transcription client.
func New(cfg Config, log logger.Logger) Transcriber {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &implTranscriber{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  log,
	}
}
