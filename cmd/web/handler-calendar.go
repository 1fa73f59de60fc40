package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mkoskela/gymlog/internal/program"
)

type calendarDay struct {
	Date      string
	DayNumber int
	IsToday   bool
	IsFuture  bool
	IsRestDay bool
	Trained   bool
	HasLog    bool
}

type calendarTemplateData struct {
	BaseTemplateData
	Year       int
	MonthName  string
	Month      int
	PrevYear   int
	PrevMonth  int
	NextYear   int
	NextMonth  int
	MonthStats program.MonthStats
	// Weeks is the month grid: rows of seven cells, nil for padding days.
	Weeks [][]*calendarDay
}

// calendarGET renders the month grid with trained-day markers.
func (app *application) calendarGET(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		month = m
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayISO := now.Format(time.DateOnly)
	fallbackWeek := app.currentWeek(r)

	var (
		weeks [][]*calendarDay
		row   = make([]*calendarDay, 7)
	)
	offset := (int(first.Weekday()) + 6) % 7 //nolint:mnd // grid weeks start on Monday.
	col := offset
	for dayNumber := 1; dayNumber <= daysInMonth; dayNumber++ {
		date := first.AddDate(0, 0, dayNumber-1).Format(time.DateOnly)

		cell := &calendarDay{
			Date:      date,
			DayNumber: dayNumber,
			IsToday:   date == todayISO,
			IsFuture:  date > todayISO,
		}
		if !cell.IsFuture {
			week, err := app.programService.ResolveWeekForDate(date, fallbackWeek)
			if err != nil {
				app.serverError(w, r, err)
				return
			}
			stats, err := app.programService.DayStatsFor(date, week)
			if err != nil {
				app.serverError(w, r, err)
				return
			}
			cell.IsRestDay = stats.IsRestDay
			cell.Trained = stats.Trained()
			cell.HasLog = stats.Completed > 0
		}

		row[col] = cell
		col++
		if col == len(row) {
			weeks = append(weeks, row)
			row = make([]*calendarDay, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, row)
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)

	data := calendarTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Year:             year,
		MonthName:        first.Month().String(),
		Month:            month,
		PrevYear:         prev.Year(),
		PrevMonth:        int(prev.Month()),
		NextYear:         next.Year(),
		NextMonth:        int(next.Month()),
		MonthStats:       app.programService.MonthStatsFor(year, time.Month(month)),
		Weeks:            weeks,
	}

	app.render(w, r, http.StatusOK, "calendar", data)
}
