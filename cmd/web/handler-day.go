package main

import (
	"net/http"
	"time"

	"github.com/mkoskela/gymlog/internal/program"
)

type exerciseRow struct {
	ID          string
	Name        string
	MuscleGroup string
	Sets        int
	Reps        string
	Category    string
	Completed   bool
}

type dayTemplateData struct {
	BaseTemplateData
	Date      string
	Weekday   string
	WeekInfo  program.WeekInfo
	Stats     program.DayStats
	Groups    []string
	Exercises []exerciseRow
}

// dayGET shows the exercise checklist for one calendar date.
func (app *application) dayGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	week, err := app.programService.ResolveWeekForDate(date, app.currentWeek(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	weekday := weekdayFor(day)

	plan := app.programService.WeekPlanFor(week)
	groups := plan[weekday]

	var rows []exerciseRow
	for _, group := range groups {
		for _, ex := range app.programService.ExercisesFor(group, weekday, week) {
			sets, reps := program.DisplaySetsReps(ex, week)
			key := program.ExerciseKey{
				MuscleGroup: group,
				Exercise:    ex.Name,
				Weekday:     weekday,
				Week:        week,
			}
			rows = append(rows, exerciseRow{
				ID:          key.String(),
				Name:        ex.Name,
				MuscleGroup: group,
				Sets:        sets,
				Reps:        reps,
				Category:    ex.Category,
				Completed:   app.programService.IsCompleted(date, key),
			})
		}
	}

	stats, err := app.programService.DayStatsFor(date, week)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := dayTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Date:             date,
		Weekday:          day.Format("Monday"),
		WeekInfo:         program.WeekInfoFor(week),
		Stats:            stats,
		Groups:           groups,
		Exercises:        rows,
	}

	app.render(w, r, http.StatusOK, "day", data)
}

// dayTogglePOST flips the completion state of one exercise on one date.
func (app *application) dayTogglePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	key, err := program.ParseExerciseKey(r.PostForm.Get("id"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if key.Week == 0 {
		// Legacy identifiers lack the week suffix; normalize to the week the
		// date resolves to before writing.
		week, weekErr := app.programService.ResolveWeekForDate(date, app.currentWeek(r))
		if weekErr != nil {
			app.serverError(w, r, weekErr)
			return
		}
		key.Week = week
	}
	done := r.PostForm.Get("done") == "true"

	if err = app.programService.SetCompleted(date, key, done); err != nil {
		app.serverError(w, r, err)
		return
	}

	redirect(w, r, "/days/"+date)
}
