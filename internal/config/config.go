package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrMissingCredential is returned when a required API credential is empty.
var ErrMissingCredential = errors.New("missing credential")

type Config struct {
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Summary     SummaryConfig     `yaml:"summary"`
	Notion      NotionConfig      `yaml:"notion"`
	Audio       AudioConfig       `yaml:"audio"`
	Paths       PathsConfig       `yaml:"paths"`
	Prompts     PromptsConfig     `yaml:"prompts"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Server      ServerConfig      `yaml:"server"`
}

type OpenAIConfig struct {
	APIKey               string        `yaml:"api_key"`
	BaseURL              string        `yaml:"base_url" validate:"omitempty,url"`
	TranscriptionModel   string        `yaml:"transcription_model"`
	SummaryModel         string        `yaml:"summary_model"`
	Temperature          float32       `yaml:"temperature" validate:"gte=0,lte=2"`
	TranscriptionTimeout time.Duration `yaml:"transcription_timeout"`
	SummaryTimeout       time.Duration `yaml:"summary_timeout"`
}

type SummaryConfig struct {
	Provider      string   `yaml:"provider" validate:"oneof=openai gemini"`
	GeminiModel   string   `yaml:"gemini_model"`
	GeminiAPIKeys []string `yaml:"gemini_api_keys"`
}

type NotionConfig struct {
	Token   string        `yaml:"token"`
	BaseURL string        `yaml:"base_url" validate:"omitempty,url"`
	Version string        `yaml:"version"`
	Timeout time.Duration `yaml:"timeout"`
	// TargetFile is a JSON descriptor file with the database id.
	TargetFile string `yaml:"target_file"`
	// Target is the same descriptor given inline as JSON.
	Target   string `yaml:"target"`
	Category string `yaml:"category"`
	Title    string `yaml:"title"`
}

type AudioConfig struct {
	CeilingBytes int64  `yaml:"ceiling_bytes" validate:"gt=0"`
	ChunkFormat  string `yaml:"chunk_format"`
	ChunkPolicy  string `yaml:"chunk_policy" validate:"oneof=best_effort fail_fast"`
	FFmpegPath   string `yaml:"ffmpeg_path"`
	FFprobePath  string `yaml:"ffprobe_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type PromptsConfig struct {
	File     string `yaml:"file"`
	Language string `yaml:"language"`
}

type OutputConfig struct {
	Pattern string `yaml:"pattern"`
	Docx    bool   `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" validate:"gte=1"`
}

type ServerConfig struct {
	Addr           string `yaml:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" validate:"gt=0"`
}

// Validate fills defaults and checks enumerated and ranged fields.
// Credentials are checked separately by RequireOpenAI and RequirePublish.
func (c *Config) Validate() error {
	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.OpenAI.SummaryModel == "" {
		c.OpenAI.SummaryModel = "gpt-4o-mini"
	}
	if c.OpenAI.Temperature == 0 {
		c.OpenAI.Temperature = 0.3
	}
	if c.OpenAI.TranscriptionTimeout == 0 {
		c.OpenAI.TranscriptionTimeout = 600 * time.Second
	}
	if c.OpenAI.SummaryTimeout == 0 {
		c.OpenAI.SummaryTimeout = 180 * time.Second
	}
	if c.Summary.Provider == "" {
		c.Summary.Provider = "openai"
	}
	if c.Summary.GeminiModel == "" {
		c.Summary.GeminiModel = "gemini-2.5-flash"
	}
	if c.Notion.Version == "" {
		c.Notion.Version = "2022-06-28"
	}
	if c.Notion.Timeout == 0 {
		c.Notion.Timeout = 30 * time.Second
	}
	if c.Audio.CeilingBytes == 0 {
		c.Audio.CeilingBytes = 24 * 1024 * 1024
	}
	if c.Audio.ChunkFormat == "" {
		c.Audio.ChunkFormat = "mp3"
	}
	if c.Audio.ChunkPolicy == "" {
		c.Audio.ChunkPolicy = "best_effort"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Prompts.File == "" {
		c.Prompts.File = "prompt.json"
	}
	if c.Prompts.Language == "" {
		c.Prompts.Language = "fr"
	}
	if c.Output.Pattern == "" {
		c.Output.Pattern = "Daily-{day}-{month}-{year}.md"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = 512 * 1024 * 1024
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Summary.Provider == "gemini" && len(c.Summary.GeminiAPIKeys) == 0 {
		return fmt.Errorf("%w: summary.gemini_api_keys is required for the gemini provider", ErrMissingCredential)
	}

	return nil
}

// RequireOpenAI checks the credential used for transcription and the default summary backend.
func (c *Config) RequireOpenAI() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("%w: OPENAI_API_KEY is not set", ErrMissingCredential)
	}
	return nil
}

// RequirePublish checks the credential needed to publish reports.
func (c *Config) RequirePublish() error {
	if c.Notion.Token == "" {
		return fmt.Errorf("%w: NOTION_TOKEN is not set", ErrMissingCredential)
	}
	return nil
}
