package main

import (
	"log/slog"
	"net/http"
	"time"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))

	buf, renderErr := app.renderToBuf(r.Context(), "error", nil)
	if renderErr != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "render error page", slog.Any("error", renderErr))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r))
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// parseDateParam parses the "date" path parameter from the request URL.
// Returns the ISO date string and true if successful. On failure, sends
// HTTP 404 response automatically.
func (app *application) parseDateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	dateStr := r.PathValue("date")
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		http.NotFound(w, r)
		return "", false
	}
	return dateStr, true
}
