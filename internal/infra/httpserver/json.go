package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

// errResponse is the error body: a human-readable message plus an
// optional detail string. Raw provider payloads never pass through here.
type errResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	body := errResponse{Message: msg}
	if err != nil {
		body.Error = err.Error()
	}
	writeJSON(w, status, body)
}
