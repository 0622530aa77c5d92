package transcriber

import "context"

// Transcriber sends one audio file to a speech-to-text endpoint.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}
