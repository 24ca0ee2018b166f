package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, map[string]string{"error": msg}, status)
}

// writeErrorDetails is used for validation failures where field-level detail
// helps the caller.
func writeErrorDetails(w http.ResponseWriter, status int, msg string, details any) {
	writeJSON(w, map[string]any{"error": msg, "details": details}, status)
}
