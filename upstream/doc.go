// Package upstream handles fetching third-party feed payloads over HTTP.
//
// It provides the shared GET helper used by both feed services and the error
// types they report: FetchError for non-success upstream statuses,
// DecodeError for malformed binary payloads, and ParseError for malformed
// XML payloads.
package upstream
