package chunker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/standup-scribe/internal/logger"
)

// Chunks shorter than this are never re-split.
const minResplitLength = 2 * time.Second

const maxRunIDLength = 64

// TranscribeFull transcribes audioPath. Sources under the ceiling go to the
// transcriber unchanged; larger ones are cut into time spans, transcribed one
// at a time and stitched in order.
func (e *implEngine) TranscribeFull(ctx context.Context, audioPath, language string) (string, error) {
	size, err := sourceSize(audioPath)
	if err != nil {
		return "", err
	}

	if size < e.opts.CeilingBytes {
		e.logger.Info(ctx, "Transcribing %s directly (%d bytes)", filepath.Base(audioPath), size)
		text, err := e.transcribe(ctx, audioPath, language, "Transcription")
		if err != nil {
			return "", fmt.Errorf("transcribe %s: %w", audioPath, err)
		}
		return text, nil
	}

	return e.transcribeChunked(ctx, audioPath, size, language)
}

func sourceSize(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s is a directory", ErrSourceUnreadable, path)
	}
	return info.Size(), nil
}

func (e *implEngine) transcribeChunked(ctx context.Context, audioPath string, size int64, language string) (string, error) {
	total, err := e.media.Duration(ctx, audioPath)
	if err != nil {
		if errors.Is(err, ErrDecodeFailure) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	chunk := ChunkDuration(e.opts.CeilingBytes, size, total)
	queue := Plan(total, chunk)
	e.logger.Info(ctx, "Source is %d bytes (%s), splitting into %d chunks of %s",
		size, total, len(queue), chunk)

	dir, err := e.makeRunDir(ctx)
	if err != nil {
		return "", err
	}
	defer e.cleanupDir(ctx, dir)

	var transcript strings.Builder
	planned := len(queue)
	failed := 0
	encoded := false

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		span := queue[0]
		queue = queue[1:]

		text, halves, err := e.transcribeSpan(ctx, dir, audioPath, span, planned, language)
		decodeErr := errors.Is(err, ErrDecodeFailure)
		if err != nil {
			// A source that never encodes is unusable; a later encode failure only loses that chunk.
			if ctx.Err() != nil || (decodeErr && !encoded) {
				return "", err
			}
			e.opts.Metrics.RecordChunk("failed")
			if e.opts.Policy == PolicyFailFast {
				return "", fmt.Errorf("chunk %d: %w", span.Index+1, err)
			}
			e.logger.Warn(ctx, "Chunk %d/%d failed, continuing without it: %v", span.Index+1, planned, err)
			failed++
			text = ""
		}
		if !decodeErr {
			encoded = true
		}
		if halves != nil {
			queue = append(halves, queue...)
			continue
		}
		if err == nil {
			e.opts.Metrics.RecordChunk("ok")
		}

		transcript.WriteString(" ")
		transcript.WriteString(text)
	}

	if failed > 0 {
		e.logger.Warn(ctx, "Transcript is partial: %d of %d chunks failed", failed, planned)
	}
	return strings.TrimSpace(transcript.String()), nil
}

// transcribeSpan encodes one span and transcribes it. When the encoded file is
// still above the ceiling it returns the two halves to process instead.
func (e *implEngine) transcribeSpan(ctx context.Context, dir, src string, span Span, planned int, language string) (string, []Span, error) {
	chunkPath := filepath.Join(dir, fmt.Sprintf("chunk-%04d-%d.%s", span.Index, span.Start.Milliseconds(), e.opts.ChunkExt))
	defer e.cleanupTempFile(ctx, chunkPath)

	if err := e.media.Extract(ctx, src, chunkPath, span); err != nil {
		if ctx.Err() != nil {
			return "", nil, ctx.Err()
		}
		return "", nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	if info, err := os.Stat(chunkPath); err == nil && info.Size() > e.opts.CeilingBytes {
		if span.Length() >= minResplitLength {
			e.logger.Warn(ctx, "Chunk %d encoded to %d bytes, above ceiling; splitting %s in two",
				span.Index+1, info.Size(), span.Length())
			e.opts.Metrics.RecordChunk("resplit")
			left, right := span.split()
			return "", []Span{left, right}, nil
		}
		e.logger.Warn(ctx, "Chunk %d is %d bytes, above ceiling; sending anyway", span.Index+1, info.Size())
	}

	label := fmt.Sprintf("Transcribing chunk %d/%d", span.Index+1, planned)
	text, err := e.transcribe(ctx, chunkPath, language, label)
	if err != nil {
		return "", nil, err
	}
	e.logger.Debug(ctx, "Chunk %d (%s-%s): %d chars", span.Index+1, span.Start, span.End, len(text))
	return text, nil, nil
}

// transcribe wraps one remote call with the progress indicator and latency metric.
func (e *implEngine) transcribe(ctx context.Context, path, language, label string) (string, error) {
	timer := e.opts.Progress.Start(label)
	start := time.Now()
	text, err := e.transcriber.Transcribe(ctx, path, language)
	timer.Stop()
	e.opts.Metrics.RecordRemoteCall("transcription", time.Since(start), err)
	return text, err
}

// makeRunDir creates a chunk directory unique to this run.
func (e *implEngine) makeRunDir(ctx context.Context) (string, error) {
	parent := e.opts.TempDir
	if parent != "" {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return "", fmt.Errorf("create temp root: %w", err)
		}
	}

	runID := safeRunID(logger.RunIDFromContext(ctx))
	if runID == "" {
		runID = uuid.NewString()
	}

	dir, err := os.MkdirTemp(parent, "chunks-"+runID+"-*")
	if err != nil {
		return "", fmt.Errorf("create chunk dir: %w", err)
	}
	return dir, nil
}

// safeRunID keeps a run id usable as a file name fragment.
func safeRunID(id string) string {
	if len(id) > maxRunIDLength {
		id = id[:maxRunIDLength]
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return '_'
	}, id)
}

// cleanupTempFile removes a chunk file, logs warning if fails
func (e *implEngine) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		e.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}

func (e *implEngine) cleanupDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		e.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	}
}
