package processor

import (
	"context"

	"github.com/nguyentantai21042004/standup-scribe/internal/notion"
	"github.com/nguyentantai21042004/standup-scribe/internal/summarizer"
)

// Processor runs the transcribe, summarize and publish pipeline for one recording.
type Processor interface {
	// Run processes one request. When a summary was produced the returned
	// Result is non-nil even if a later step failed.
	Run(ctx context.Context, req Request) (*Result, error)
	// Process handles a recording dropped into the watch folder and archives it.
	Process(ctx context.Context, audioPath string) error
}

type Request struct {
	AudioPath string
	Language  string
	Prompt    summarizer.Prompt

	// Publish sends the report to Target. SaveReport writes it to OutputDir.
	Publish    bool
	Target     *notion.Target
	SaveReport bool
	OutputDir  string
	// ReportName overrides the date-based file name.
	ReportName string

	// Category and Title override the descriptor and configured values.
	Category string
	Title    string
}

type Result struct {
	RunID      string
	Transcript string
	Summary    *summarizer.Summary
	ReportPath string
	DocxPath   string
	Page       *notion.Result
}

// TranscriptOK reports whether transcription produced any text.
func (r *Result) TranscriptOK() bool {
	return r != nil && r.Transcript != ""
}

// Tokens returns the total tokens spent on the summary.
func (r *Result) Tokens() int {
	if r == nil || r.Summary == nil {
		return 0
	}
	return r.Summary.TotalTokens
}

// Markdown returns the generated report, or "".
func (r *Result) Markdown() string {
	if r == nil || r.Summary == nil {
		return ""
	}
	return r.Summary.Markdown
}
