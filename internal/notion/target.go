package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMissingDatabaseID means a descriptor has neither "id" nor "database_id".
var ErrMissingDatabaseID = errors.New("database id not found in descriptor: key 'id' or 'database_id' missing")

// Target is the database a report is published to, with optional property overrides.
type Target struct {
	DatabaseID string
	Category   string
	Title      string
}

type targetDescriptor struct {
	ID         string `json:"id"`
	DatabaseID string `json:"database_id"`
	Category   string `json:"category"`
	Title      string `json:"title"`
}

// ParseTarget decodes a descriptor JSON object. "id" wins over "database_id".
func ParseTarget(data []byte) (Target, error) {
	var d targetDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return Target{}, fmt.Errorf("invalid database descriptor: %w", err)
	}

	id := d.ID
	if id == "" {
		id = d.DatabaseID
	}
	if id == "" {
		return Target{}, ErrMissingDatabaseID
	}
	return Target{DatabaseID: id, Category: d.Category, Title: d.Title}, nil
}

// LoadTarget reads and parses a descriptor file.
func LoadTarget(path string) (Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Target{}, fmt.Errorf("read database descriptor %s: %w", path, err)
	}
	t, err := ParseTarget(data)
	if err != nil {
		return Target{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
