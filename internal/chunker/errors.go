package chunker

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnreadable means the input audio is missing or cannot be opened.
	ErrSourceUnreadable = errors.New("audio source unreadable")
	// ErrDecodeFailure means the audio container or codec could not be decoded.
	ErrDecodeFailure = errors.New("audio decode failure")
)

// Policy decides what a failed chunk transcription does to the run.
type Policy int

const (
	// PolicyBestEffort records an empty contribution and moves on.
	PolicyBestEffort Policy = iota
	// PolicyFailFast aborts the run on the first failed chunk.
	PolicyFailFast
)

func (p Policy) String() string {
	switch p {
	case PolicyBestEffort:
		return "best_effort"
	case PolicyFailFast:
		return "fail_fast"
	default:
		return "unknown"
	}
}

// ParsePolicy accepts "best_effort" (or "") and "fail_fast".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "best_effort":
		return PolicyBestEffort, nil
	case "fail_fast":
		return PolicyFailFast, nil
	default:
		return PolicyBestEffort, fmt.Errorf("unknown chunk policy %q", s)
	}
}
