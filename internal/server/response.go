package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/standup-scribe/internal/apierr"
	"github.com/nguyentantai21042004/standup-scribe/internal/chunker"
	"github.com/nguyentantai21042004/standup-scribe/internal/notion"
	"github.com/nguyentantai21042004/standup-scribe/internal/processor"
)

// processResponse is the body of POST /process-audio.
type processResponse struct {
	Tokens            int    `json:"tokens"`
	TranscriptSuccess bool   `json:"transcript_success"`
	Markdown          string `json:"markdown"`
	NotionSent        bool   `json:"notion_sent"`
	Error             string `json:"error,omitempty"`
}

func newProcessResponse(res *processor.Result, err error) processResponse {
	body := processResponse{
		Tokens:            res.Tokens(),
		TranscriptSuccess: res.TranscriptOK(),
		Markdown:          res.Markdown(),
		NotionSent:        res != nil && res.Page != nil,
	}
	if err != nil {
		body.Error = err.Error()
	}
	return body
}

// statusFor maps a run outcome to an HTTP status. A run that produced a
// summary is a success even when publishing failed; the error is in the body.
func statusFor(res *processor.Result, err error) int {
	if err == nil || res.Markdown() != "" {
		return http.StatusOK
	}

	var remote *apierr.Error
	switch {
	case errors.Is(err, chunker.ErrSourceUnreadable),
		errors.Is(err, chunker.ErrDecodeFailure),
		errors.Is(err, notion.ErrMissingDatabaseID),
		errors.Is(err, processor.ErrNoPublisher):
		return http.StatusBadRequest
	case errors.As(err, &remote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, processResponse{Error: err.Error()})
}
