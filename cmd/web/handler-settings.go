package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mkoskela/gymlog/internal/program"
)

const displayDateFormat = "02/01/2006"

type settingsTemplateData struct {
	BaseTemplateData
	StartDate     string
	CurrentWeek   int
	Weeks         []int
	TotalWorkouts int
	Error         string
}

func (app *application) settingsData(r *http.Request, errorMessage string) settingsTemplateData {
	startDate := ""
	if iso := app.programService.ProgramStartDate(); iso != "" {
		if parsed, err := time.Parse(time.DateOnly, iso); err == nil {
			startDate = parsed.Format(displayDateFormat)
		}
	}

	weeks := make([]int, program.MaxWeek)
	for i := range weeks {
		weeks[i] = i + 1
	}

	return settingsTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		StartDate:        startDate,
		CurrentWeek:      app.currentWeek(r),
		Weeks:            weeks,
		TotalWorkouts:    app.programService.TotalWorkouts(),
		Error:            errorMessage,
	}
}

func (app *application) settingsGET(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "settings", app.settingsData(r, ""))
}

// settingsStartDatePOST anchors the program calendar to a start date given
// in DD/MM/YYYY format.
func (app *application) settingsStartDatePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := app.programService.SetProgramStartDate(r.PostForm.Get("start_date")); err != nil {
		app.render(w, r, http.StatusUnprocessableEntity, "settings",
			app.settingsData(r, "The start date must be a valid date in DD/MM/YYYY format."))
		return
	}

	redirect(w, r, "/settings")
}

// settingsWeekPOST pins the viewed program week in the session.
func (app *application) settingsWeekPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	week, err := strconv.Atoi(r.PostForm.Get("week"))
	if err != nil || week < 1 || week > program.MaxWeek {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	app.sessionManager.Put(r.Context(), currentWeekSessionKey, week)
	redirect(w, r, "/")
}

// settingsResetPOST wipes the progress log.
func (app *application) settingsResetPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.programService.ResetProgress(); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Remove(r.Context(), currentWeekSessionKey)

	redirect(w, r, "/settings")
}
