package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed recording into the archived folder
func (p *implProcessor) moveToArchived(ctx context.Context, audioPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived folder: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(audioPath))
	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
