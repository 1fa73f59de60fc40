package program

import (
	"fmt"
	"sort"
	"time"
)

// MonthStatsFor summarises the trained days of a calendar month from the
// precomputed completed-workouts index.
func (s *Service) MonthStatsFor(year int, month time.Month) MonthStats {
	monthKey := fmt.Sprintf("%04d-%02d", year, month)
	completedDays := len(s.doc.CompletedWorkouts[monthKey])

	// Day 0 of the next month is the last day of this one.
	totalDays := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	return MonthStats{
		CompletedDays:  completedDays,
		TotalDays:      totalDays,
		CompletionRate: float64(completedDays) / float64(totalDays) * 100,
	}
}

// WeekStatsFor rolls the seven days of a program week into one completion
// figure. Without a program start date the week's dates are taken from the
// explicit week assignments instead of the calendar mapping.
func (s *Service) WeekStatsFor(week int) WeekStats {
	var dates []string
	if r, err := s.WeekDates(week); err == nil {
		dates = r.Dates
	} else {
		for date, assigned := range s.doc.ExerciseWeeks {
			if assigned == week {
				dates = append(dates, date)
			}
		}
		sort.Strings(dates)
	}

	stats := WeekStats{Week: week}
	for _, date := range dates {
		day, err := s.DayStatsFor(date, week)
		if err != nil || day.IsRestDay {
			continue
		}
		stats.Completed += day.Completed
		stats.Total += day.Total
	}
	if stats.Total > 0 {
		stats.Percentage = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

// AutoDetectCurrentWeek derives the default "current week" from the progress
// log: the highest week number with any completed exercise, advanced by one
// once that week's completion reaches the trained threshold. With an empty
// log the program starts at week 1.
func (s *Service) AutoDetectCurrentWeek() int {
	highest := 0
	for _, entries := range s.doc.CompletedExercises {
		for id, done := range entries {
			if !done {
				continue
			}
			if key, err := ParseExerciseKey(id); err == nil && key.Week > highest {
				highest = key.Week
			}
		}
	}
	if highest == 0 {
		return 1
	}

	if s.WeekStatsFor(highest).Percentage >= trainedThreshold {
		return min(highest+1, MaxWeek)
	}
	return highest
}

// streakWindow bounds how far back the streak walk looks.
const streakWindow = 60

// Streak counts consecutive trained days ending at today. Rest days neither
// extend nor break the streak, and an unstarted today is skipped rather than
// treated as a miss so the streak does not zero out every evening before the
// workout is logged.
func (s *Service) Streak(today string) (int, error) {
	day, err := parseDate(today)
	if err != nil {
		return 0, err
	}

	fallback := s.AutoDetectCurrentWeek()
	streak := 0
	for i := 0; i < streakWindow; i++ {
		date := day.AddDate(0, 0, -i).Format(dateFormat)

		week, _, weekErr := s.weekForDate(date, fallback)
		if weekErr != nil {
			return 0, weekErr
		}
		stats, statsErr := s.DayStatsFor(date, week)
		if statsErr != nil {
			return 0, statsErr
		}

		switch {
		case stats.IsRestDay:
			continue
		case stats.Total > 0 && stats.Percentage >= trainedThreshold:
			streak++
		case i == 0:
			// Today may simply not be finished yet.
			continue
		default:
			return streak, nil
		}
	}
	return streak, nil
}

// GroupStats counts completed exercise instances per muscle group against
// the pool available over the whole program.
func (s *Service) GroupStats() []GroupStats {
	completed := make(map[string]int, len(s.cfg.Exercises))
	for group := range s.cfg.Exercises {
		completed[group] = 0
	}
	for _, entries := range s.doc.CompletedExercises {
		for id, done := range entries {
			if !done {
				continue
			}
			if key, err := ParseExerciseKey(id); err == nil {
				if _, known := completed[key.MuscleGroup]; known {
					completed[key.MuscleGroup]++
				}
			}
		}
	}

	groups := make([]string, 0, len(completed))
	for group := range completed {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	stats := make([]GroupStats, 0, len(groups))
	for _, group := range groups {
		available := len(s.cfg.Exercises[group]) * MaxWeek
		rate := 0.0
		if available > 0 {
			rate = float64(completed[group]) / float64(available) * 100
		}
		stats = append(stats, GroupStats{
			MuscleGroup: group,
			Completed:   completed[group],
			Available:   available,
			Rate:        rate,
		})
	}
	return stats
}
