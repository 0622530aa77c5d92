package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "gemini provider with keys",
			config: Config{
				Summary: SummaryConfig{Provider: "gemini", GeminiAPIKeys: []string{"k1"}},
			},
			wantErr: false,
		},
		{
			name: "gemini provider without keys",
			config: Config{
				Summary: SummaryConfig{Provider: "gemini"},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Summary: SummaryConfig{Provider: "llama"},
			},
			wantErr: true,
		},
		{
			name: "unknown chunk policy",
			config: Config{
				Audio: AudioConfig{ChunkPolicy: "retry"},
			},
			wantErr: true,
		},
		{
			name: "unknown log format",
			config: Config{
				Logging: LoggingConfig{Format: "text"},
			},
			wantErr: true,
		},
		{
			name: "bad base url",
			config: Config{
				OpenAI: OpenAIConfig{BaseURL: "not a url"},
			},
			wantErr: true,
		},
		{
			name: "negative concurrency",
			config: Config{
				Performance: PerformanceConfig{MaxConcurrent: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	checks := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"transcription model", cfg.OpenAI.TranscriptionModel, "whisper-1"},
		{"summary model", cfg.OpenAI.SummaryModel, "gpt-4o-mini"},
		{"temperature", cfg.OpenAI.Temperature, float32(0.3)},
		{"transcription timeout", cfg.OpenAI.TranscriptionTimeout, 600 * time.Second},
		{"summary timeout", cfg.OpenAI.SummaryTimeout, 180 * time.Second},
		{"notion timeout", cfg.Notion.Timeout, 30 * time.Second},
		{"notion version", cfg.Notion.Version, "2022-06-28"},
		{"ceiling", cfg.Audio.CeilingBytes, int64(24 * 1024 * 1024)},
		{"policy", cfg.Audio.ChunkPolicy, "best_effort"},
		{"language", cfg.Prompts.Language, "fr"},
		{"prompt file", cfg.Prompts.File, "prompt.json"},
		{"pattern", cfg.Output.Pattern, "Daily-{day}-{month}-{year}.md"},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("LOG_LEVEL", "")

	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
openai:
  api_key: "sk-file"
  transcription_timeout: "90s"

audio:
  ceiling_bytes: 1048576
  chunk_policy: "fail_fast"

paths:
  input: "data/input"
  output: "reports"

notion:
  category: "Standup"

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-file" {
		t.Errorf("APIKey = %v, want %v", cfg.OpenAI.APIKey, "sk-file")
	}
	if cfg.OpenAI.TranscriptionTimeout != 90*time.Second {
		t.Errorf("TranscriptionTimeout = %v, want %v", cfg.OpenAI.TranscriptionTimeout, 90*time.Second)
	}
	if cfg.Audio.CeilingBytes != 1048576 {
		t.Errorf("CeilingBytes = %v, want %v", cfg.Audio.CeilingBytes, 1048576)
	}
	if cfg.Audio.ChunkPolicy != "fail_fast" {
		t.Errorf("ChunkPolicy = %v, want fail_fast", cfg.Audio.ChunkPolicy)
	}
	if cfg.Paths.Output != "reports" {
		t.Errorf("Output = %v, want %v", cfg.Paths.Output, "reports")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Format = %v, want json", cfg.Logging.Format)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("openai:\n  api_key: from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OPENAI_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OpenAI.APIKey != "from-env" {
		t.Errorf("APIKey = %v, want from-env", cfg.OpenAI.APIKey)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.OpenAI.SummaryModel != "gpt-4o-mini" {
		t.Errorf("SummaryModel = %v, want defaults applied", cfg.OpenAI.SummaryModel)
	}
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.yaml"))
	if err != nil {
		t.Fatalf("Load(config.yaml) error = %v", err)
	}
	if cfg.OpenAI.TranscriptionTimeout != 600*time.Second {
		t.Errorf("TranscriptionTimeout = %v, want 600s", cfg.OpenAI.TranscriptionTimeout)
	}
	if cfg.Audio.CeilingBytes != 24*1024*1024 {
		t.Errorf("CeilingBytes = %d, want 24 MiB", cfg.Audio.CeilingBytes)
	}
	if cfg.Paths.Output != "data/output" || cfg.Server.Addr != ":8000" {
		t.Errorf("paths/server = %+v / %+v", cfg.Paths, cfg.Server)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("openai: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"OPENAI_API_KEY":   " sk-env ",
		"NOTION_TOKEN":     "secret_x",
		"NOTION_CATEGORY":  "Standup",
		"NOTION_TITLE":     "Team A",
		"NOTION_DB_SCHEMA": `{"id":"db1"}`,
		"GEMINI_API_KEYS":  "a, b,,c",
		"PROMPT_FILE":      "custom.json",
		"NOTION_DB_FILE":   "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Config{Notion: NotionConfig{TargetFile: "keep.json"}}
	cfg.ApplyEnv(lookup)

	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("APIKey = %q, want trimmed sk-env", cfg.OpenAI.APIKey)
	}
	if cfg.Notion.Token != "secret_x" || cfg.Notion.Category != "Standup" || cfg.Notion.Title != "Team A" {
		t.Errorf("Notion = %+v", cfg.Notion)
	}
	if cfg.Notion.Target != `{"id":"db1"}` {
		t.Errorf("Target = %q", cfg.Notion.Target)
	}
	if cfg.Notion.TargetFile != "keep.json" {
		t.Errorf("empty env should not clear TargetFile, got %q", cfg.Notion.TargetFile)
	}
	if got := cfg.Summary.GeminiAPIKeys; len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("GeminiAPIKeys = %v, want [a b c]", got)
	}
	if cfg.Prompts.File != "custom.json" {
		t.Errorf("Prompts.File = %q", cfg.Prompts.File)
	}
}

func TestRequireCredentials(t *testing.T) {
	var cfg Config
	if err := cfg.RequireOpenAI(); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("RequireOpenAI() error = %v, want ErrMissingCredential", err)
	}
	if err := cfg.RequirePublish(); !errors.Is(err, ErrMissingCredential) {
		t.Errorf("RequirePublish() error = %v, want ErrMissingCredential", err)
	}

	cfg.OpenAI.APIKey = "sk"
	cfg.Notion.Token = "secret"
	if err := cfg.RequireOpenAI(); err != nil {
		t.Errorf("RequireOpenAI() error = %v", err)
	}
	if err := cfg.RequirePublish(); err != nil {
		t.Errorf("RequirePublish() error = %v", err)
	}
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("SCRIBE_TEST_DOTENV=loaded\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCRIBE_TEST_DOTENV", "")
	os.Unsetenv("SCRIBE_TEST_DOTENV")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("SCRIBE_TEST_DOTENV"); got != "loaded" {
		t.Errorf("SCRIBE_TEST_DOTENV = %q, want loaded", got)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("LoadEnv() should fail for an explicit missing file")
	}
}
