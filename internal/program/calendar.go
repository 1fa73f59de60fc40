package program

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mkoskela/gymlog/internal/errors"
)

const (
	dateFormat        = time.DateOnly
	displayDateFormat = "02/01/2006"
)

// ErrNoStartDate is returned when a calendar query needs the program start
// date and none has been set.
var ErrNoStartDate = errors.NewSentinel("program start date not set")

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// mondayOf returns the Monday of the calendar week containing t.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// SetProgramStartDate records the first day of program week 1. The date
// arrives in DD/MM/YYYY display format and is stored as the user's literal
// chosen date without Monday alignment. The whole calendar mapping is
// recomputed and the progress log persisted.
func (s *Service) SetProgramStartDate(display string) error {
	start, err := time.Parse(displayDateFormat, display)
	if err != nil {
		return fmt.Errorf("parse start date %q: %w", display, err)
	}

	s.doc.ProgramStartDate = start.Format(dateFormat)
	s.doc.CalendarMapping = buildCalendarMapping(start)

	if err = s.repo.progress.Save(s.doc); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ProgramStartDate returns the stored start date in YYYY-MM-DD form, or the
// empty string when none is set.
func (s *Service) ProgramStartDate() string {
	return s.doc.ProgramStartDate
}

// buildCalendarMapping derives the calendar span of every supported program
// week from the start date.
func buildCalendarMapping(start time.Time) map[string]WeekRange {
	mapping := make(map[string]WeekRange, MaxWeek)
	for week := 1; week <= MaxWeek; week++ {
		mapping[strconv.Itoa(week)] = weekRangeFrom(start, week)
	}
	return mapping
}

func weekRangeFrom(start time.Time, week int) WeekRange {
	first := start.AddDate(0, 0, (week-1)*len(Weekdays))
	dates := make([]string, len(Weekdays))
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i).Format(dateFormat)
	}
	return WeekRange{
		StartDate: dates[0],
		EndDate:   dates[len(dates)-1],
		Dates:     dates,
	}
}

// WeekDates returns the calendar dates belonging to a program week.
// ErrNoStartDate is returned when no program start date has been set.
func (s *Service) WeekDates(week int) (WeekRange, error) {
	if r, ok := s.doc.CalendarMapping[strconv.Itoa(week)]; ok {
		return r, nil
	}
	if s.doc.ProgramStartDate == "" {
		return WeekRange{}, ErrNoStartDate
	}
	start, err := parseDate(s.doc.ProgramStartDate)
	if err != nil {
		return WeekRange{}, err
	}
	return weekRangeFrom(start, week), nil
}

// ResolveWeekForDate maps a calendar date to a program week number. The
// resolution cascade keeps historical percentages stable once established:
//
//  1. an explicit week assignment for the date is authoritative;
//  2. the mode of the "_week{N}" suffixes among the date's own completion
//     entries, persisted for future calls;
//  3. an assignment or suffix mode borrowed from the other dates in the same
//     Monday-Sunday calendar week, persisted likewise;
//  4. the caller's current week as a last resort.
//
// Ties on the mode resolve to the lowest week number.
func (s *Service) ResolveWeekForDate(date string, fallback int) (int, error) {
	week, inferred, err := s.weekForDate(date, fallback)
	if err != nil {
		return 0, err
	}
	if inferred {
		s.doc.ExerciseWeeks[date] = week
		if saveErr := s.repo.progress.Save(s.doc); saveErr != nil {
			s.logger.LogAttrs(context.Background(), slog.LevelWarn, "persist inferred week",
				slog.String("date", date),
				slog.Int("week", week),
				errors.SlogError(saveErr))
		}
	}
	return week, nil
}

// weekForDate runs the resolution cascade without side effects. The inferred
// flag tells the caller whether the result came from inference and should be
// memoized into the explicit assignments.
func (s *Service) weekForDate(date string, fallback int) (int, bool, error) {
	if week, ok := s.doc.ExerciseWeeks[date]; ok {
		return week, false, nil
	}

	if week, ok := suffixWeekMode(s.doc.CompletedExercises[date]); ok {
		return week, true, nil
	}

	day, err := parseDate(date)
	if err != nil {
		return 0, false, err
	}
	monday := mondayOf(day)

	siblings := make([]string, 0, len(Weekdays)-1)
	for i := range Weekdays {
		d := monday.AddDate(0, 0, i).Format(dateFormat)
		if d != date {
			siblings = append(siblings, d)
		}
	}

	for _, d := range siblings {
		if week, ok := s.doc.ExerciseWeeks[d]; ok {
			return week, true, nil
		}
	}

	var weeks []int
	for _, d := range siblings {
		for id := range s.doc.CompletedExercises[d] {
			if key, keyErr := ParseExerciseKey(id); keyErr == nil && key.Week > 0 {
				weeks = append(weeks, key.Week)
			}
		}
	}
	if week, ok := modeOfWeeks(weeks); ok {
		return week, true, nil
	}

	return fallback, false, nil
}

// suffixWeekMode extracts the most frequent week suffix among a date's
// completion entries.
func suffixWeekMode(entries map[string]bool) (int, bool) {
	var weeks []int
	for id := range entries {
		if key, err := ParseExerciseKey(id); err == nil && key.Week > 0 {
			weeks = append(weeks, key.Week)
		}
	}
	return modeOfWeeks(weeks)
}

// modeOfWeeks returns the most frequent week number; ties resolve to the
// lowest so inference stays deterministic.
func modeOfWeeks(weeks []int) (int, bool) {
	if len(weeks) == 0 {
		return 0, false
	}
	counts := make(map[int]int, len(weeks))
	for _, w := range weeks {
		counts[w]++
	}
	best, bestCount := 0, 0
	for w, count := range counts {
		if count > bestCount || (count == bestCount && w < best) {
			best, bestCount = w, count
		}
	}
	return best, true
}
