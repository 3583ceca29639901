package utils

import (
	"errors"
	"fmt"
)

const (
	ExitOK = iota
	ExitUsage
	ExitURLParse
	ExitTransport
	ExitHTTPStatus
	ExitFileIO
)

type URLParseError struct {
	URL string
	Err error
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.URL, e.Err)
}

func (e *URLParseError) Unwrap() error { return e.Err }

// TransportError covers connection, DNS and timeout failures as well as
// failures while reading the response body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type HTTPStatusError struct {
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("server returned %s", e.Status)
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

type FileIOError struct {
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileIOError) Unwrap() error { return e.Err }

func ExitCode(err error) int {
	var (
		urlErr    *URLParseError
		transErr  *TransportError
		statusErr *HTTPStatusError
		fileErr   *FileIOError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &urlErr):
		return ExitURLParse
	case errors.As(err, &transErr):
		return ExitTransport
	case errors.As(err, &statusErr):
		return ExitHTTPStatus
	case errors.As(err, &fileErr):
		return ExitFileIO
	default:
		return ExitUsage
	}
}
