package upstream

import (
	"context"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds the outbound fetch when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// NewClient returns an HTTP client with the given timeout in milliseconds,
// falling back to DefaultTimeout when ms is not positive.
func NewClient(timeoutMS int) *http.Client {
	timeout := DefaultTimeout
	if timeoutMS > 0 {
		timeout = time.Duration(timeoutMS) * time.Millisecond
	}
	return &http.Client{Timeout: timeout}
}

// Fetch issues a GET against url, identifying itself with userAgent, and
// returns the full response body. Statuses outside the 2xx range are
// reported as a *FetchError named after feed.
func Fetch(ctx context.Context, client *http.Client, feed, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &FetchError{
			Feed:       feed,
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
	}
	return io.ReadAll(resp.Body)
}
