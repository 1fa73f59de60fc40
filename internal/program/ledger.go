package program

import (
	"fmt"
	"sort"
)

// IsCompleted reports whether the exercise instance has been marked complete
// on the given date. Legacy identifiers without a week suffix are accepted as
// a bare match, but suffixed entries of other weeks are never consulted:
// completion state is independent per program week.
func (s *Service) IsCompleted(date string, key ExerciseKey) bool {
	entries, ok := s.doc.CompletedExercises[date]
	if !ok {
		return false
	}
	if done, found := entries[key.String()]; found {
		return done
	}
	if done, found := entries[key.legacyString()]; found {
		return done
	}
	return false
}

// SetCompleted records the completion state of an exercise instance and
// refreshes the derived indexes, in order: the completion entry is written,
// the date's week assignment is set if absent (or on any completion, so an
// explicit re-mark can correct a wrong inference), the completed-workouts
// index is rebuilt, and the whole progress log is persisted. On a write
// failure the in-memory state stays authoritative and the error is returned.
//
// The key must carry a week number: callers normalize legacy identifiers to
// the active week before writing, so a week-less key here would poison the
// date's week assignment.
func (s *Service) SetCompleted(date string, key ExerciseKey, done bool) error {
	if _, err := parseDate(date); err != nil {
		return err
	}
	if key.Week < 1 {
		return fmt.Errorf("exercise key %q: missing week number", key.legacyString())
	}

	entries, ok := s.doc.CompletedExercises[date]
	if !ok {
		entries = make(map[string]bool)
		s.doc.CompletedExercises[date] = entries
	}
	entries[key.String()] = done

	if _, assigned := s.doc.ExerciseWeeks[date]; !assigned || done {
		s.doc.ExerciseWeeks[date] = key.Week
	}

	s.recomputeCompletedWorkouts(key.Week)

	if err := s.repo.progress.Save(s.doc); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// recentDays is how far back the completed-workouts rebuild looks for rest
// days that have no completion entries of their own.
const recentDays = 30

// recomputeCompletedWorkouts rebuilds the trained-days index and the total
// workout counter from the completion entries. Every date with entries is
// re-evaluated, plus the trailing days before today so newly relevant rest
// days get counted.
func (s *Service) recomputeCompletedWorkouts(fallbackWeek int) {
	dates := make(map[string]struct{}, len(s.doc.CompletedExercises)+recentDays)
	for date := range s.doc.CompletedExercises {
		dates[date] = struct{}{}
	}
	today := s.now()
	for i := 0; i < recentDays; i++ {
		dates[today.AddDate(0, 0, -i).Format(dateFormat)] = struct{}{}
	}

	completed := make(map[string][]string)
	total := 0
	for date := range dates {
		week, ok := s.doc.ExerciseWeeks[date]
		if !ok {
			week = fallbackWeek
		}

		stats, err := s.DayStatsFor(date, week)
		if err != nil {
			continue
		}
		if !stats.Trained() {
			continue
		}

		monthKey := date[:7] // YYYY-MM
		completed[monthKey] = append(completed[monthKey], date)
		total++
	}

	for _, monthDates := range completed {
		sort.Strings(monthDates)
	}
	s.doc.CompletedWorkouts = completed
	s.doc.TotalWorkouts = total
}

// DayStatsFor computes the completion stats of a calendar date under the
// given program week's plan. A day with no scheduled muscle groups is a rest
// day and conventionally reports 100 percent.
func (s *Service) DayStatsFor(date string, week int) (DayStats, error) {
	day, err := parseDate(date)
	if err != nil {
		return DayStats{}, err
	}
	weekday := weekdayOf(day)

	plan := weekPlanFor(s.cfg, week)
	groups := plan[weekday]
	if len(groups) == 0 {
		return DayStats{Percentage: 100, IsRestDay: true}, nil
	}

	stats := DayStats{MuscleGroups: groups}
	for _, group := range groups {
		for _, ex := range exercisesFor(s.cfg, group, weekday, week) {
			key := ExerciseKey{MuscleGroup: group, Exercise: ex.Name, Weekday: weekday, Week: week}
			done := s.IsCompleted(date, key)

			stats.Exercises = append(stats.Exercises, ExerciseStatus{
				Name:        ex.Name,
				MuscleGroup: group,
				Completed:   done,
			})
			stats.Total++
			if done {
				stats.Completed++
			}
		}
	}

	if stats.Total == 0 {
		// Nothing prescribed counts as vacuously satisfied.
		stats.Percentage = 100
	} else {
		stats.Percentage = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats, nil
}
