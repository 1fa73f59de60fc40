package main

import (
	"log/slog"
	"net/http"
)

// healthy reports whether the server can serve traffic. The session store is
// probed through the read-only connection so a wedged database surfaces here
// instead of on the first real page load.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var sessions int
	if err := app.database.ReadOnly.
		QueryRowContext(r.Context(), "SELECT COUNT(*) FROM sessions").
		Scan(&sessions); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "session store probe", slog.Any("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"unavailable"}`))
		return
	}

	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
