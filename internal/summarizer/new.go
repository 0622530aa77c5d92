package summarizer

import (
	"net/http"
	"sync"
	"time"

	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultTemperature = 0.3
	DefaultTimeout     = 180 * time.Second
)

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

type implOpenAI struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      logger.Logger
}

// NewOpenAI creates a Summarizer backed by the chat completions API.
func NewOpenAI(cfg OpenAIConfig, log logger.Logger) Summarizer {
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &implOpenAI{
		client:      openai.NewClientWithConfig(cc),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      log,
	}
}

type implGemini struct {
	mu          sync.Mutex
	apiKeys     []string
	currentKey  int
	model       string
	temperature float32
	timeout     time.Duration
	logger      logger.Logger
	generate    generateFunc
}

// NewGemini creates a Summarizer that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, timeout time.Duration, log logger.Logger) Summarizer {
	if model == "" {
		model = DefaultGeminiModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &implGemini{
		apiKeys:     apiKeys,
		model:       model,
		temperature: DefaultTemperature,
		timeout:     timeout,
		logger:      log,
		generate:    generateContent,
	}
}
