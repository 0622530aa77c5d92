package chunker

import (
	"context"
	"time"
)

// Engine turns an audio file of any size into one transcript.
type Engine interface {
	TranscribeFull(ctx context.Context, audioPath, language string) (string, error)
}

// Transcriber transcribes one file that fits under the service ceiling.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}

// Media probes and slices audio files.
type Media interface {
	Duration(ctx context.Context, path string) (time.Duration, error)
	Extract(ctx context.Context, src, dst string, span Span) error
}
