// Package dashboard serves the normalized transit and weather alert feeds
// consumed by the dashboard front end.
//
// Each endpoint is a stateless fetch-decode-reshape-respond pipeline: one
// outbound HTTP call, synchronous mapping work, and a JSON response with a
// permissive CORS header and an advisory caching hint. Failures never
// propagate past the handler; they become a 500 with {"error": message}.
package dashboard
