package summarizer

import "context"

// Summarizer condenses a transcript into a Markdown report.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, prompt Prompt) (*Summary, error)
}

// Summary is the generated report and the tokens it cost.
type Summary struct {
	Markdown         string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
