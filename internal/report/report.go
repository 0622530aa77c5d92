// Package report writes generated summaries to disk.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultPattern names reports after the local date, e.g. Daily-17-05-24.md.
const DefaultPattern = "Daily-{day}-{month}-{year}.md"

// FileName expands {day}, {month} and {year} (two digits each) in pattern.
func FileName(pattern string, t time.Time) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	r := strings.NewReplacer(
		"{day}", t.Format("02"),
		"{month}", t.Format("01"),
		"{year}", t.Format("06"),
	)
	return r.Replace(pattern)
}

// SaveMarkdown writes md to dir/name, creating dir if needed, and returns the path.
func SaveMarkdown(dir, name, md string) (string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}

// DocxPath returns the .docx sibling of a Markdown report path.
func DocxPath(mdPath string) string {
	return strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".docx"
}
