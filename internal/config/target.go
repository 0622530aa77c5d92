package config

import (
	"fmt"

	"github.com/nguyentantai21042004/standup-scribe/internal/notion"
)

// ResolveTarget returns the configured publish target, preferring the
// descriptor file over the inline descriptor. It returns nil when neither is set.
func (c *Config) ResolveTarget() (*notion.Target, error) {
	switch {
	case c.Notion.TargetFile != "":
		t, err := notion.LoadTarget(c.Notion.TargetFile)
		if err != nil {
			return nil, err
		}
		return &t, nil
	case c.Notion.Target != "":
		t, err := notion.ParseTarget([]byte(c.Notion.Target))
		if err != nil {
			return nil, fmt.Errorf("NOTION_DB_SCHEMA: %w", err)
		}
		return &t, nil
	default:
		return nil, nil
	}
}
