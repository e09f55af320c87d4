package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type errorPayload struct {
	Error string `json:"error"`
}

// writeJSON serializes v with the permissive cross-origin header set even on
// the error path, so browser clients can read the body and apply their own
// fallback logic.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// cacheControl formats the advisory caching hint attached to successful
// responses.
func cacheControl(freshSeconds, staleSeconds int) string {
	return fmt.Sprintf("s-maxage=%d, stale-while-revalidate=%d", freshSeconds, staleSeconds)
}

// errorMessage extracts a human-readable message, falling back to a generic
// string when the failure carries none.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "failed"
	}
	return err.Error()
}
