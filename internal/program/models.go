package program

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is the schedule key for a day of the week. The values match the
// keys used in the configuration and progress documents.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists all days Monday-first, matching the schedule documents.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// weekdayIndex returns the Monday-first index of d, or -1 for an unknown day.
func weekdayIndex(d Weekday) int {
	for i, wd := range Weekdays {
		if wd == d {
			return i
		}
	}
	return -1
}

// weekdayOf maps a calendar date to its Monday-first schedule key.
func weekdayOf(t time.Time) Weekday {
	// time.Weekday is Sunday-first.
	idx := (int(t.Weekday()) + 6) % 7
	return Weekdays[idx]
}

// CategoryForearm marks accessory exercises that rotate instead of all being
// prescribed at once.
const CategoryForearm = "forearm"

// Exercise is a single exercise definition from the configuration document.
type Exercise struct {
	Name            string `json:"name"`
	MuscleGroup     string `json:"-"`
	Sets            int    `json:"sets"`
	Reps            string `json:"reps"`
	DifficultyLevel int    `json:"difficulty_level"`
	Category        string `json:"category,omitempty"`
	Description     string `json:"description,omitempty"`
	VideoURL        string `json:"youtube_url,omitempty"`
}

// WeekPlan maps a weekday to the muscle groups scheduled for it. A missing or
// empty entry means rest day.
type WeekPlan map[Weekday][]string

// Config is the static exercise and schedule configuration document.
type Config struct {
	// Exercises groups exercise definitions by muscle group name.
	Exercises map[string][]Exercise `json:"exercises"`
	// WeeklySchedule holds the hand-authored base cycle, keyed "week1".."week4".
	WeeklySchedule map[string]WeekPlan `json:"weekly_schedule"`
}

// ExerciseKey identifies one exercise, on one weekday, under one program
// week's assumptions. It is the unit of completion tracking.
type ExerciseKey struct {
	MuscleGroup string
	Exercise    string
	Weekday     Weekday
	Week        int
}

// String renders the key in its persisted form,
// "{group}_{exercise}_{weekday}_week{N}".
func (k ExerciseKey) String() string {
	return fmt.Sprintf("%s_%s_%s_week%d", k.MuscleGroup, k.Exercise, k.Weekday, k.Week)
}

// legacyString renders the key without the week suffix, the form used before
// completion entries became week-scoped.
func (k ExerciseKey) legacyString() string {
	return fmt.Sprintf("%s_%s_%s", k.MuscleGroup, k.Exercise, k.Weekday)
}

// ParseExerciseKey parses a persisted exercise identifier. Exercise names may
// contain underscores, so the weekday token and the "_week" suffix anchor the
// parse. A missing week suffix yields Week == 0 (legacy identifier).
func ParseExerciseKey(id string) (ExerciseKey, error) {
	var key ExerciseKey

	rest := id
	if i := strings.LastIndex(rest, "_week"); i >= 0 {
		suffix := rest[i+len("_week"):]
		if n, err := strconv.Atoi(suffix); err == nil && n > 0 {
			key.Week = n
			rest = rest[:i]
		}
	}

	i := strings.LastIndex(rest, "_")
	if i < 0 {
		return ExerciseKey{}, fmt.Errorf("exercise id %q: missing weekday", id)
	}
	day := Weekday(rest[i+1:])
	if weekdayIndex(day) < 0 {
		return ExerciseKey{}, fmt.Errorf("exercise id %q: unknown weekday %q", id, day)
	}
	key.Weekday = day
	rest = rest[:i]

	i = strings.Index(rest, "_")
	if i <= 0 || i == len(rest)-1 {
		return ExerciseKey{}, fmt.Errorf("exercise id %q: missing muscle group or exercise name", id)
	}
	key.MuscleGroup = rest[:i]
	key.Exercise = rest[i+1:]

	return key, nil
}

// WeekInfo describes the difficulty level derived from a program week number.
type WeekInfo struct {
	Week             int
	Level            int
	LevelName        string
	LevelDescription string
	WeekInCycle      int
	WeeksCompleted   int
}

// ExerciseStatus is one exercise row in a day's completion stats.
type ExerciseStatus struct {
	Name        string
	MuscleGroup string
	Completed   bool
}

// DayStats summarises the completion state of a single calendar date.
type DayStats struct {
	Completed    int
	Total        int
	Percentage   float64
	Exercises    []ExerciseStatus
	MuscleGroups []string
	IsRestDay    bool
}

// trainedThreshold is the completion percentage at which a day counts as a
// full training day.
const trainedThreshold = 80

// Trained reports whether the day counts as trained: rest days count
// vacuously, otherwise the completion percentage must reach the threshold.
func (s DayStats) Trained() bool {
	return s.IsRestDay || s.Percentage >= trainedThreshold
}

// WeekStats rolls the days of one program week into a single completion
// figure.
type WeekStats struct {
	Week       int
	Completed  int
	Total      int
	Percentage float64
}

// MonthStats summarises trained days over a calendar month.
type MonthStats struct {
	CompletedDays  int
	TotalDays      int
	CompletionRate float64
}

// WeekRange is the calendar span of a program week, derived from the program
// start date.
type WeekRange struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Dates     []string `json:"dates"`
}

// GroupStats counts completed exercise instances per muscle group.
type GroupStats struct {
	MuscleGroup string
	Completed   int
	Available   int
	Rate        float64
}

// Mode selects how the schedule generator intensifies a base-cycle week.
type Mode string

const (
	ModeFrequency Mode = "frequency"
	ModeVolume    Mode = "volume"
	ModeAdvanced  Mode = "advanced"
)

// modeForLevel returns the intensification mode for a difficulty level.
// Level 1 uses the base cycle verbatim and has no mode.
func modeForLevel(level int) (Mode, bool) {
	switch {
	case level <= 1:
		return "", false
	case level == 2: //nolint:mnd // level 2 adds a training day
		return ModeFrequency, true
	case level == 3: //nolint:mnd // level 3 adds volume on top
		return ModeVolume, true
	default:
		return ModeAdvanced, true
	}
}
