package program

import (
	"testing"
	"time"
)

// twoDayConfig trains chest on Monday and Wednesday with a single exercise
// and rests every other day.
func twoDayConfig() *Config {
	plan := WeekPlan{
		Monday:    {"chest"},
		Tuesday:   {},
		Wednesday: {"chest"},
		Thursday:  {},
		Friday:    {},
		Saturday:  {},
		Sunday:    {},
	}
	return &Config{
		Exercises: map[string][]Exercise{
			"chest": {{Name: "Push-Ups", Sets: 3, Reps: "15-20", DifficultyLevel: 1}},
		},
		WeeklySchedule: map[string]WeekPlan{
			"week1": plan,
			"week2": plan,
			"week3": plan,
			"week4": plan,
		},
	}
}

func TestStreak_skipsRestDays(t *testing.T) {
	svc := newTestService(t, twoDayConfig())
	fixClock(svc, "2026-01-07")

	// Trained Monday, rest Tuesday, trained Wednesday.
	if err := svc.SetCompleted("2026-01-05", chestKey("Push-Ups", 1), true); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetCompleted("2026-01-07", ExerciseKey{
		MuscleGroup: "chest", Exercise: "Push-Ups", Weekday: Wednesday, Week: 1,
	}, true); err != nil {
		t.Fatal(err)
	}

	streak, err := svc.Streak("2026-01-07")
	if err != nil {
		t.Fatal(err)
	}
	if streak != 2 {
		t.Errorf("Streak = %d, want 2 (rest Tuesday must not break it)", streak)
	}
}

func TestStreak_unstartedTodayDoesNotBreak(t *testing.T) {
	svc := newTestService(t, twoDayConfig())
	fixClock(svc, "2026-01-07")

	// Monday trained; Wednesday (today) not logged yet.
	if err := svc.SetCompleted("2026-01-05", chestKey("Push-Ups", 1), true); err != nil {
		t.Fatal(err)
	}

	streak, err := svc.Streak("2026-01-07")
	if err != nil {
		t.Fatal(err)
	}
	if streak != 1 {
		t.Errorf("Streak = %d, want 1 (unfinished today must not zero it)", streak)
	}
}

func TestStreak_missedPastDayBreaks(t *testing.T) {
	svc := newTestService(t, twoDayConfig())
	fixClock(svc, "2026-01-07")

	// Wednesday trained, but Monday was missed entirely.
	if err := svc.SetCompleted("2026-01-07", ExerciseKey{
		MuscleGroup: "chest", Exercise: "Push-Ups", Weekday: Wednesday, Week: 1,
	}, true); err != nil {
		t.Fatal(err)
	}

	streak, err := svc.Streak("2026-01-07")
	if err != nil {
		t.Fatal(err)
	}
	if streak != 1 {
		t.Errorf("Streak = %d, want 1 (missed Monday breaks the walk)", streak)
	}
}

func TestAutoDetectCurrentWeek(t *testing.T) {
	t.Run("empty log starts at week 1", func(t *testing.T) {
		svc := newTestService(t, twoDayConfig())
		if got := svc.AutoDetectCurrentWeek(); got != 1 {
			t.Errorf("AutoDetectCurrentWeek = %d, want 1", got)
		}
	})

	t.Run("advances past a completed week", func(t *testing.T) {
		svc := newTestService(t, twoDayConfig())
		fixClock(svc, "2026-01-07")
		if err := svc.SetProgramStartDate("05/01/2026"); err != nil {
			t.Fatal(err)
		}

		// Complete everything week 1 prescribes on its mapped dates.
		if err := svc.SetCompleted("2026-01-05", chestKey("Push-Ups", 1), true); err != nil {
			t.Fatal(err)
		}
		if err := svc.SetCompleted("2026-01-07", ExerciseKey{
			MuscleGroup: "chest", Exercise: "Push-Ups", Weekday: Wednesday, Week: 1,
		}, true); err != nil {
			t.Fatal(err)
		}

		if got := svc.AutoDetectCurrentWeek(); got != 2 {
			t.Errorf("AutoDetectCurrentWeek = %d, want 2", got)
		}
	})

	t.Run("stays on an unfinished week", func(t *testing.T) {
		svc := newTestService(t, twoDayConfig())
		fixClock(svc, "2026-01-07")
		if err := svc.SetProgramStartDate("05/01/2026"); err != nil {
			t.Fatal(err)
		}

		// Only half of week 1 is done.
		if err := svc.SetCompleted("2026-01-05", chestKey("Push-Ups", 1), true); err != nil {
			t.Fatal(err)
		}

		if got := svc.AutoDetectCurrentWeek(); got != 1 {
			t.Errorf("AutoDetectCurrentWeek = %d, want 1", got)
		}
	})

	t.Run("caps at the last supported week", func(t *testing.T) {
		svc := newTestService(t, twoDayConfig())
		fixClock(svc, "2026-05-20")
		if err := svc.SetProgramStartDate("05/01/2026"); err != nil {
			t.Fatal(err)
		}

		r, err := svc.WeekDates(MaxWeek)
		if err != nil {
			t.Fatal(err)
		}
		for _, date := range r.Dates {
			day, parseErr := time.Parse(dateFormat, date)
			if parseErr != nil {
				t.Fatal(parseErr)
			}
			weekday := weekdayOf(day)
			if weekday != Monday && weekday != Wednesday {
				continue
			}
			key := ExerciseKey{MuscleGroup: "chest", Exercise: "Push-Ups", Weekday: weekday, Week: MaxWeek}
			if err = svc.SetCompleted(date, key, true); err != nil {
				t.Fatal(err)
			}
		}

		if got := svc.AutoDetectCurrentWeek(); got != MaxWeek {
			t.Errorf("AutoDetectCurrentWeek = %d, want cap %d", got, MaxWeek)
		}
	})
}

func TestMonthStatsFor(t *testing.T) {
	svc := newTestService(t, twoDayConfig())
	fixClock(svc, "2026-01-07")

	if err := svc.SetCompleted("2026-01-05", chestKey("Push-Ups", 1), true); err != nil {
		t.Fatal(err)
	}

	stats := svc.MonthStatsFor(2026, time.January)
	if stats.TotalDays != 31 {
		t.Errorf("TotalDays = %d, want 31", stats.TotalDays)
	}
	// The trained Monday plus every rest day inside the trailing window.
	if stats.CompletedDays == 0 {
		t.Error("expected completed days in January")
	}

	empty := svc.MonthStatsFor(2027, time.February)
	if empty.CompletedDays != 0 || empty.TotalDays != 28 {
		t.Errorf("empty month stats = %+v", empty)
	}
}

func TestWeekStatsFor_withoutStartDate(t *testing.T) {
	svc := newTestService(t, twoDayConfig())
	fixClock(svc, "2026-01-07")

	// With no calendar mapping the week's dates come from the assignments.
	if err := svc.SetCompleted("2026-01-05", chestKey("Push-Ups", 1), true); err != nil {
		t.Fatal(err)
	}

	stats := svc.WeekStatsFor(1)
	if stats.Completed != 1 || stats.Total != 1 {
		t.Errorf("week stats = %d/%d, want 1/1", stats.Completed, stats.Total)
	}
	if stats.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", stats.Percentage)
	}
}

func TestGroupStats(t *testing.T) {
	svc := newTestService(t, twoDayConfig())
	fixClock(svc, "2026-01-07")

	if err := svc.SetCompleted("2026-01-05", chestKey("Push-Ups", 1), true); err != nil {
		t.Fatal(err)
	}

	stats := svc.GroupStats()
	if len(stats) != 1 {
		t.Fatalf("got %d groups, want 1", len(stats))
	}
	if stats[0].MuscleGroup != "chest" || stats[0].Completed != 1 {
		t.Errorf("group stats = %+v", stats[0])
	}
	if stats[0].Available != 1*MaxWeek {
		t.Errorf("Available = %d, want %d", stats[0].Available, MaxWeek)
	}
}
