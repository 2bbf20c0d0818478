package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

const errNotConfigured = "Server not configured: API Key missing."

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// recoverJSON turns a panic in a handler into a 500 carrying prefix and, when
// withDetail is set, the panic value. Deferred cleanups registered after it
// have already run by the time it writes.
func recoverJSON(w http.ResponseWriter, prefix string, withDetail bool) {
	rec := recover()
	if rec == nil {
		return
	}
	if rec == http.ErrAbortHandler {
		panic(rec)
	}
	slog.Error("handler panic", "panic", rec)
	msg := prefix
	if withDetail {
		msg += fmt.Sprint(rec)
	}
	writeError(w, http.StatusInternalServerError, msg)
}
