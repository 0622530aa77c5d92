package notion

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jomei/notionapi"
	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultVersion = "2022-06-28"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	Token   string
	BaseURL string
	Version string
	Timeout time.Duration
}

type implPublisher struct {
	client *notionapi.Client
	logger logger.Logger
}

// New creates a Publisher for the Notion pages API.
func New(cfg Config, log logger.Logger) Publisher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Host == "" {
		log.Warn(context.Background(), "Invalid Notion base URL %q, using %s", cfg.BaseURL, DefaultBaseURL)
		base, _ = url.Parse(DefaultBaseURL)
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &transport{
			base:    base,
			version: cfg.Version,
			next:    http.DefaultTransport,
		},
	}
	return &implPublisher{
		client: notionapi.NewClient(notionapi.Token(cfg.Token), notionapi.WithHTTPClient(httpClient)),
		logger: log,
	}
}
