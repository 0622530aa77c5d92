package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// PromptOverride holds the optional fields of a prompt override file.
type PromptOverride struct {
	System   string `json:"system_prompt"`
	User     string `json:"user_prompt"`
	Language string `json:"language"`
}

// LoadPrompts reads a prompt override file. A missing file is an error only
// when required is true; malformed JSON is always an error.
func LoadPrompts(path string, required bool) (PromptOverride, error) {
	var p PromptOverride
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return p, nil
		}
		return p, fmt.Errorf("read prompt file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("invalid JSON in prompt file %s: %w", path, err)
	}
	return p, nil
}
