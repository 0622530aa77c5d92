package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies environment overrides and
// validates the result. An empty path starts from defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads a dotenv file into the process environment without
// overriding variables that are already set. When path is empty, ".env" is
// loaded if it exists.
func LoadEnv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables. lookup is os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	set("OPENAI_API_KEY", &c.OpenAI.APIKey)
	set("OPENAI_BASE_URL", &c.OpenAI.BaseURL)
	set("SUMMARY_PROVIDER", &c.Summary.Provider)
	set("NOTION_TOKEN", &c.Notion.Token)
	set("NOTION_CATEGORY", &c.Notion.Category)
	set("NOTION_TITLE", &c.Notion.Title)
	set("NOTION_DB_SCHEMA", &c.Notion.Target)
	set("NOTION_DB_FILE", &c.Notion.TargetFile)
	set("PROMPT_FILE", &c.Prompts.File)
	set("LOG_LEVEL", &c.Logging.Level)
	set("SCRIBE_TEMP_DIR", &c.Paths.Temp)

	if v, ok := lookup("GEMINI_API_KEYS"); ok && strings.TrimSpace(v) != "" {
		c.Summary.GeminiAPIKeys = splitList(v)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
