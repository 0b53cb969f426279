package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes an error response. Every error shares the {message}
// shape; 5xx callers pass a generic message and log the detail themselves.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"message": message})
}

// internalError logs the failure server-side and sends the generic public
// message. Driver and store detail never reaches the client.
func internalError(w http.ResponseWriter, what string, err error) {
	slog.Error(what, "error", err)
	jsonError(w, http.StatusInternalServerError, "Internal server error.")
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
