package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/standup-scribe/internal/notion"
	"github.com/nguyentantai21042004/standup-scribe/internal/processor"
)

const (
	audioField  = "file"
	targetField = "notion_schema"
	// maxDescriptorBytes caps the uploaded database descriptor.
	maxDescriptorBytes = 64 * 1024
)

func (s *Server) processAudio(c *gin.Context) {
	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxUploadBytes)

	audio, err := c.FormFile(audioField)
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("audio file is required in field %q: %w", audioField, err))
		return
	}

	target, err := s.requestTarget(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	if s.cfg.Paths.Temp != "" {
		if err := os.MkdirAll(s.cfg.Paths.Temp, 0755); err != nil {
			respondError(c, http.StatusInternalServerError, fmt.Errorf("create temp root: %w", err))
			return
		}
	}
	dir, err := os.MkdirTemp(s.cfg.Paths.Temp, "upload-*")
	if err != nil {
		respondError(c, http.StatusInternalServerError, fmt.Errorf("create upload dir: %w", err))
		return
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Warn(ctx, "Failed to cleanup upload dir %s: %v", dir, err)
		}
	}()

	audioPath := filepath.Join(dir, uploadName(audio.Filename))
	if err := c.SaveUploadedFile(audio, audioPath); err != nil {
		respondError(c, http.StatusInternalServerError, fmt.Errorf("save upload: %w", err))
		return
	}

	prompt, language, err := processor.ResolvePrompt(s.cfg, "", false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	s.logger.Info(ctx, "Processing upload %s (%d bytes)", audio.Filename, audio.Size)
	res, err := s.processor.Run(ctx, processor.Request{
		AudioPath: audioPath,
		Language:  language,
		Prompt:    prompt,
		Publish:   target != nil,
		Target:    target,
	})

	c.JSON(statusFor(res, err), newProcessResponse(res, err))
}

// requestTarget returns the uploaded descriptor, else the configured one, else nil.
func (s *Server) requestTarget(c *gin.Context) (*notion.Target, error) {
	fh, err := c.FormFile(targetField)
	if errors.Is(err, http.ErrMissingFile) {
		return s.cfg.ResolveTarget()
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", targetField, err)
	}

	data, err := readDescriptor(fh)
	if err != nil {
		return nil, err
	}
	t, err := notion.ParseTarget(data)
	if err != nil {
		return nil, fmt.Errorf("invalid Notion schema file: %w", err)
	}
	return &t, nil
}

func readDescriptor(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", targetField, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxDescriptorBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", targetField, err)
	}
	if len(data) > maxDescriptorBytes {
		return nil, fmt.Errorf("%s is larger than %d bytes", targetField, maxDescriptorBytes)
	}
	return data, nil
}

// uploadName keeps the client's extension so the transcriber can pick a content type.
func uploadName(name string) string {
	ext := filepath.Ext(filepath.Base(name))
	if ext == "" {
		ext = ".wav"
	}
	return "audio" + ext
}
