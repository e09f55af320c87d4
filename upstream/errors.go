package upstream

import "fmt"

// FetchError reports a non-success HTTP status from an upstream feed.
type FetchError struct {
	Feed       string
	StatusCode int
	StatusText string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch failed: %d %s", e.Feed, e.StatusCode, e.StatusText)
}

// DecodeError reports a malformed binary feed payload. The message is
// whatever the underlying decoder reported.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// ParseError reports a malformed XML feed payload. The message is whatever
// the underlying parser reported.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }
