package utils

import (
	"encoding/json"
	"net/http"
	"strings"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error body: {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]interface{}{"error": message})
}

// PathSegment returns the idx-th segment of a slash-trimmed URL path, or ""
// when the path is too short. Handlers use it to pull ids out of wildcard
// routes.
func PathSegment(path string, idx int) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if idx < 0 || idx >= len(segments) {
		return ""
	}
	return segments[idx]
}
