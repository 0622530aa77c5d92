package notion

import (
	"context"
	"errors"
	"fmt"

	"github.com/jomei/notionapi"
	"github.com/nguyentantai21042004/standup-scribe/internal/apierr"
)

const service = "Notion"

// ErrMissingPageID means the create call succeeded without returning a page id,
// so remaining blocks have nowhere to go.
var ErrMissingPageID = errors.New("created page has no id")

// Publish creates a page in the target database with the report blocks under a
// "Daily summary" heading. Blocks beyond the per-request limit are appended in batches.
func (p *implPublisher) Publish(ctx context.Context, page Page) (*Result, error) {
	if page.DatabaseID == "" {
		return nil, ErrMissingDatabaseID
	}

	groups := batches(buildChildren(page.Blocks))
	created, err := p.client.Page.Create(ctx, &notionapi.PageCreateRequest{
		Parent:     notionapi.Parent{DatabaseID: notionapi.DatabaseID(NormalizeDatabaseID(page.DatabaseID))},
		Properties: buildProperties(page),
		Children:   groups[0],
	})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", classify(err))
	}

	pageID := string(created.ID)
	p.logger.Info(ctx, "Created Notion page %s with %d blocks", pageID, len(groups[0]))
	if pageID == "" && len(groups) > 1 {
		return nil, fmt.Errorf("append %d remaining batches: %w", len(groups)-1, ErrMissingPageID)
	}

	for i, group := range groups[1:] {
		req := &notionapi.AppendBlockChildrenRequest{Children: group}
		if _, err := p.client.Block.AppendChildren(ctx, notionapi.BlockID(pageID), req); err != nil {
			return nil, fmt.Errorf("append blocks batch %d: %w", i+2, classify(err))
		}
		p.logger.Debug(ctx, "Appended %d blocks to page %s", len(group), pageID)
	}

	return &Result{ID: pageID, URL: created.URL}, nil
}

// classify maps client errors onto apierr codes.
func classify(err error) error {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var notionErr *notionapi.Error
	if errors.As(err, &notionErr) {
		return apierr.Classify(service, notionErr.Status, []byte(fmt.Sprintf("%s: %s", notionErr.Code, notionErr.Message)))
	}
	return apierr.FromTransport(service, err)
}
