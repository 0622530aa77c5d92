package notion

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/standup-scribe/internal/markdown"
)

// Publisher creates database pages.
type Publisher interface {
	Publish(ctx context.Context, page Page) (*Result, error)
}

// Page is one report submission.
type Page struct {
	DatabaseID string
	Title      string
	Category   string
	Date       time.Time
	Blocks     []markdown.Block
}

// Result identifies the created page.
type Result struct {
	ID  string
	URL string
}
