package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/mkoskela/gymlog/internal/errors"
	"github.com/mkoskela/gymlog/internal/program"
)

// currentWeekSessionKey stores the week the user has chosen to view.
const currentWeekSessionKey = "current_week"

// currentWeek returns the program week to show: an explicit session choice
// wins, otherwise the week is derived from the progress log.
func (app *application) currentWeek(r *http.Request) int {
	if week := app.sessionManager.GetInt(r.Context(), currentWeekSessionKey); week > 0 {
		return week
	}
	return app.programService.AutoDetectCurrentWeek()
}

// weekdayFor converts a calendar date to the schedule's weekday key.
func weekdayFor(t time.Time) program.Weekday {
	return program.Weekday(strings.ToLower(t.Format("Monday")))
}

type homeTemplateData struct {
	BaseTemplateData
	WeekInfo  program.WeekInfo
	WeekStats program.WeekStats
	Days      []dayView
	Weeks     []int
	Streak    int
}

// dayView represents a single day's view data.
type dayView struct {
	// Date is the ISO date of this day, empty when no start date maps it.
	Date string
	// Name is the weekday name (e.g. "Monday")
	Name string
	// IsToday indicates if this is the current day
	IsToday bool
	// IsRestDay indicates whether no muscle groups are scheduled
	IsRestDay bool
	// Groups lists the scheduled muscle groups
	Groups []string
	// Stats carries the completion state when the date is known
	Stats program.DayStats
}

// weekDatesOrCalendarWeek maps a program week to dates. Without a program
// start date we assume the viewed week is the current calendar week.
func (app *application) weekDatesOrCalendarWeek(week int, today time.Time) ([]string, error) {
	r, err := app.programService.WeekDates(week)
	if err == nil {
		return r.Dates, nil
	}
	if !errors.Is(err, program.ErrNoStartDate) {
		return nil, err
	}

	offset := (int(today.Weekday()) + 6) % 7 //nolint:mnd // time.Weekday starts the week on Sunday.
	monday := today.AddDate(0, 0, -offset)
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i).Format(time.DateOnly)
	}
	return dates, nil
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	week := app.currentWeek(r)
	today := time.Now()
	todayISO := today.Format(time.DateOnly)

	dates, err := app.weekDatesOrCalendarWeek(week, today)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	plan := app.programService.WeekPlanFor(week)
	days := make([]dayView, 0, len(dates))
	for _, date := range dates {
		day, parseErr := time.Parse(time.DateOnly, date)
		if parseErr != nil {
			app.serverError(w, r, parseErr)
			return
		}
		weekday := weekdayFor(day)
		groups := plan[weekday]

		stats, statsErr := app.programService.DayStatsFor(date, week)
		if statsErr != nil {
			app.serverError(w, r, statsErr)
			return
		}

		days = append(days, dayView{
			Date:      date,
			Name:      day.Format("Monday"),
			IsToday:   date == todayISO,
			IsRestDay: len(groups) == 0,
			Groups:    groups,
			Stats:     stats,
		})
	}

	streak, err := app.programService.Streak(todayISO)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	weeks := make([]int, program.MaxWeek)
	for i := range weeks {
		weeks[i] = i + 1
	}

	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		WeekInfo:         program.WeekInfoFor(week),
		WeekStats:        app.programService.WeekStatsFor(week),
		Days:             days,
		Weeks:            weeks,
		Streak:           streak,
	}

	app.render(w, r, http.StatusOK, "home", data)
}
