package chunker

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/standup-scribe/pkg/executor"
)

type ffmpegMedia struct {
	executor    executor.Executor
	ffmpegPath  string
	ffprobePath string
	format      string
}

// NewFFmpeg returns a Media backed by the ffprobe and ffmpeg binaries.
// format is the container chunks are encoded to, e.g. "mp3".
func NewFFmpeg(exec executor.Executor, ffmpegPath, ffprobePath, format string) Media {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if format == "" {
		format = "mp3"
	}
	return &ffmpegMedia{
		executor:    exec,
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		format:      format,
	}
}

// Duration reads the container duration reported by ffprobe.
func (m *ffmpegMedia) Duration(ctx context.Context, path string) (time.Duration, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := m.executor.Execute(ctx, m.ffprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ffprobe %s: %v", ErrDecodeFailure, path, err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%w: no duration for %s (got %q)", ErrDecodeFailure, path, strings.TrimSpace(out))
	}

	return time.Duration(seconds * float64(time.Second)).Truncate(time.Millisecond), nil
}

// Extract encodes span of src into dst.
func (m *ffmpegMedia) Extract(ctx context.Context, src, dst string, span Span) error {
	// -ss before -i seeks on the input; -t bounds the output length.
	args := []string{
		"-v", "error",
		"-y",
		"-ss", formatSeconds(span.Start),
		"-t", formatSeconds(span.Length()),
		"-i", src,
		"-vn",
		"-f", m.format,
		dst,
	}

	if _, err := m.executor.Execute(ctx, m.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extract %s-%s: %w", span.Start, span.End, err)
	}
	return nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
