package main

import (
	"net/http"
	"time"

	"github.com/mkoskela/gymlog/internal/program"
)

type statsTemplateData struct {
	BaseTemplateData
	TotalWorkouts int
	Streak        int
	WeekInfo      program.WeekInfo
	WeekStats     program.WeekStats
	MonthStats    program.MonthStats
	GroupStats    []program.GroupStats
}

// statsGET renders the progress overview.
func (app *application) statsGET(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	week := app.currentWeek(r)

	streak, err := app.programService.Streak(now.Format(time.DateOnly))
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := statsTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		TotalWorkouts:    app.programService.TotalWorkouts(),
		Streak:           streak,
		WeekInfo:         program.WeekInfoFor(week),
		WeekStats:        app.programService.WeekStatsFor(week),
		MonthStats:       app.programService.MonthStatsFor(now.Year(), now.Month()),
		GroupStats:       app.programService.GroupStats(),
	}

	app.render(w, r, http.StatusOK, "stats", data)
}
