package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/standup-scribe/internal/markdown"
	"github.com/nguyentantai21042004/standup-scribe/internal/notion"
	"github.com/nguyentantai21042004/standup-scribe/internal/report"
	"github.com/nguyentantai21042004/standup-scribe/internal/summarizer"
)

const (
	defaultCategory    = "Daily"
	defaultTitlePrefix = "Daily "
)

func (p *implProcessor) summarize(ctx context.Context, transcript string, req Request) (*summarizer.Summary, error) {
	timer := p.progress.Start("Generating summary")
	start := time.Now()
	summary, err := p.summarizer.Summarize(ctx, transcript, req.Prompt)
	timer.Stop()
	p.metrics.RecordRemoteCall("summary", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	p.metrics.RecordTokens(summary.PromptTokens, summary.CompletionTokens)
	p.logger.Info(ctx, "Summary generated: %d chars, %d tokens", len(summary.Markdown), summary.TotalTokens)
	return summary, nil
}

// saveReport writes the Markdown report, and the DOCX copy when enabled.
func (p *implProcessor) saveReport(ctx context.Context, req Request, res *Result) error {
	name := req.ReportName
	if name == "" {
		name = report.FileName(p.cfg.Output.Pattern, p.now())
	}

	path, err := report.SaveMarkdown(req.OutputDir, name, res.Summary.Markdown)
	if err != nil {
		return err
	}
	res.ReportPath = path
	p.logger.Info(ctx, "Report saved to %s", path)

	if !p.cfg.Output.Docx {
		return nil
	}
	docxPath := report.DocxPath(path)
	if err := report.SaveDocx(docxPath, p.pageTitle(req), markdown.Translate(res.Summary.Markdown)); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	res.DocxPath = docxPath
	p.logger.Info(ctx, "DOCX saved to %s", docxPath)
	return nil
}

func (p *implProcessor) publish(ctx context.Context, req Request, md string) (*notion.Result, error) {
	page := notion.Page{
		DatabaseID: req.Target.DatabaseID,
		Title:      p.pageTitle(req),
		Category:   p.pageCategory(req),
		Date:       p.now(),
		Blocks:     markdown.Translate(md),
	}
	p.logger.Info(ctx, "Publishing %d blocks to database %s", len(page.Blocks), page.DatabaseID)

	timer := p.progress.Start("Publishing to Notion")
	start := time.Now()
	result, err := p.publisher.Publish(ctx, page)
	timer.Stop()
	p.metrics.RecordRemoteCall("publish", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// pageCategory picks the first of: request, descriptor, config, "Daily".
func (p *implProcessor) pageCategory(req Request) string {
	var fromTarget string
	if req.Target != nil {
		fromTarget = req.Target.Category
	}
	return firstNonEmpty(req.Category, fromTarget, p.cfg.Notion.Category, defaultCategory)
}

// pageTitle picks the first of: request, descriptor, config, "Daily YYYY-MM-DD".
func (p *implProcessor) pageTitle(req Request) string {
	var fromTarget string
	if req.Target != nil {
		fromTarget = req.Target.Title
	}
	return firstNonEmpty(req.Title, fromTarget, p.cfg.Notion.Title, defaultTitlePrefix+p.now().Format("2006-01-02"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
