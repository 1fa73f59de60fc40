package main

import (
	"fmt"
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		plain = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(shared(next))))
		}
	)

	mux.Handle("GET /days/{date}", session(http.HandlerFunc(app.dayGET)))
	mux.Handle("POST /days/{date}/toggle", session(http.HandlerFunc(app.dayTogglePOST)))

	mux.Handle("GET /calendar", session(http.HandlerFunc(app.calendarGET)))
	mux.Handle("GET /stats", session(http.HandlerFunc(app.statsGET)))

	mux.Handle("GET /exercises", session(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("GET /exercises/{group}/{name}", session(http.HandlerFunc(app.exerciseInfoGET)))
	mux.Handle("POST /exercises/{group}/{name}/video", session(http.HandlerFunc(app.exerciseVideoPOST)))

	mux.Handle("GET /nutrition", session(http.HandlerFunc(app.nutritionGET)))
	mux.Handle("POST /nutrition/profile", session(http.HandlerFunc(app.nutritionProfilePOST)))
	mux.Handle("GET /nutrition/days/{date}", session(http.HandlerFunc(app.nutritionDayGET)))
	mux.Handle("POST /nutrition/days/{date}/meals", session(http.HandlerFunc(app.nutritionMealPOST)))
	mux.Handle("POST /nutrition/days/{date}/meals/{index}/delete", session(http.HandlerFunc(app.nutritionMealDeletePOST)))

	mux.Handle("GET /settings", session(http.HandlerFunc(app.settingsGET)))
	mux.Handle("POST /settings/start-date", session(http.HandlerFunc(app.settingsStartDatePOST)))
	mux.Handle("POST /settings/week", session(http.HandlerFunc(app.settingsWeekPOST)))
	mux.Handle("POST /settings/reset", session(http.HandlerFunc(app.settingsResetPOST)))

	mux.Handle("GET /api/healthy", plain(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	// File server with custom 404 handling
	fileServerHandler, err := app.fileServerHandler()
	if err != nil {
		return nil, fmt.Errorf("fileServerHandler: %w", err)
	}
	mux.Handle("/", fileServerHandler)

	return mux, nil
}
