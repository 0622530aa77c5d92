// Package apierr classifies failures of remote API calls (transcription,
// summary, publish) into authentication, rate limit, API and transport errors.
package apierr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Code classifies a remote call failure.
type Code int

const (
	// CodeTimeout indicates the request did not complete before its deadline.
	CodeTimeout Code = iota
	// CodeNetwork indicates a connection-level failure (refused, DNS, reset).
	CodeNetwork
	// CodeAuth indicates rejected credentials (401/403).
	CodeAuth
	// CodeRateLimit indicates rate limiting or exhausted quota (429).
	CodeRateLimit
	// CodeAPI is any other non-2xx response.
	CodeAPI
)

func (c Code) String() string {
	switch c {
	case CodeTimeout:
		return "timeout"
	case CodeNetwork:
		return "network"
	case CodeAuth:
		return "auth"
	case CodeRateLimit:
		return "rate_limit"
	case CodeAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is a classified remote call failure.
type Error struct {
	// Service names the remote side, e.g. "OpenAI" or "Notion".
	Service string
	Code    Code
	// StatusCode is 0 for transport-level failures.
	StatusCode int
	// Body is the raw response body, trimmed.
	Body string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeAuth:
		return fmt.Sprintf("invalid %s API key (%d Unauthorized)", e.Service, e.StatusCode)
	case CodeRateLimit:
		return fmt.Sprintf("%s rate limit exceeded or quota reached (%d)", e.Service, e.StatusCode)
	case CodeTimeout:
		return fmt.Sprintf("%s network timeout: %v", e.Service, e.Err)
	case CodeNetwork:
		return fmt.Sprintf("%s network error: %v", e.Service, e.Err)
	default:
		return fmt.Sprintf("%s API error (%d): %s", e.Service, e.StatusCode, e.Body)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify converts a response status into an error. Returns nil for 2xx.
func Classify(service string, statusCode int, body []byte) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	e := &Error{
		Service:    service,
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}
	switch statusCode {
	case 401, 403:
		e.Code = CodeAuth
	case 429:
		e.Code = CodeRateLimit
	default:
		e.Code = CodeAPI
	}
	return e
}

// FromTransport wraps an error returned before any response was read.
func FromTransport(service string, err error) error {
	if err == nil {
		return nil
	}

	code := CodeNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		code = CodeTimeout
	}
	return &Error{Service: service, Code: code, Err: err}
}

func IsAuth(err error) bool {
	return hasCode(err, CodeAuth)
}

func IsRateLimit(err error) bool {
	return hasCode(err, CodeRateLimit)
}

func IsTimeout(err error) bool {
	return hasCode(err, CodeTimeout)
}

func IsNetwork(err error) bool {
	return hasCode(err, CodeNetwork)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func hasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
