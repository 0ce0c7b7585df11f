package api

import (
	"encoding/json"
	"net/http"
)

// MethodNotAllowedHandler is the router-wide fallback for known paths hit
// with the wrong verb, e.g. DELETE on /feed.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)

		_ = json.NewEncoder(w).Encode("This method is not allowed")
	}
}
