package program

import (
	"regexp"
	"sort"
	"strconv"
)

// exercisesFor returns the concrete exercise list for a muscle group on a
// given weekday and program week. Exercises unlock at their difficulty level
// and stay available afterwards. Forearm-category exercises are an
// exception: exactly one is prescribed per day, rotating deterministically
// across the program so volume stays low while variety cycles.
func exercisesFor(cfg *Config, group string, day Weekday, week int) []Exercise {
	level := levelFor(week)

	var unlocked, forearm []Exercise
	for _, ex := range cfg.Exercises[group] {
		if ex.DifficultyLevel > level {
			continue
		}
		ex.MuscleGroup = group
		if ex.Category == CategoryForearm {
			forearm = append(forearm, ex)
			continue
		}
		unlocked = append(unlocked, ex)
	}

	if len(forearm) == 0 {
		return unlocked
	}

	sort.SliceStable(forearm, func(i, j int) bool {
		return forearm[i].DifficultyLevel < forearm[j].DifficultyLevel
	})
	dayIdx := weekdayIndex(day)
	if dayIdx < 0 {
		dayIdx = 0
	}
	idx := ((week-1)*len(Weekdays) + dayIdx) % len(forearm)
	return append(unlocked, forearm[idx])
}

// forearm sets and reps progress through a fixed per-level table instead of
// the generic reps scaling.
func forearmSetsReps(level int) (int, string) {
	switch {
	case level <= 1:
		return 1, "8-10"
	case level == 2: //nolint:mnd // second tier of the forearm table
		return 1, "10-12"
	case level == 3: //nolint:mnd // third tier of the forearm table
		return 2, "10-12"
	default:
		return 2, "12-15"
	}
}

// DisplaySetsReps computes the sets and reps to show for an exercise at a
// given program week. Forearm-category exercises follow a fixed per-level
// table; everything else scales its numeric rep bounds by the level.
func DisplaySetsReps(ex Exercise, week int) (int, string) {
	level := levelFor(week)
	if ex.Category == CategoryForearm {
		return forearmSetsReps(level)
	}
	return ex.Sets, scaleReps(ex.Reps, level)
}

// repsPattern matches a single rep count or a min-max range, with an
// optional trailing suffix such as " per leg".
var repsPattern = regexp.MustCompile(`^(\d+)(?:-(\d+))?(.*)$`)

// scaleReps adds (level-1)*2 to each numeric bound of a reps string.
// Unit-bearing values like "20km" or "30 sec" and anything that does not
// parse pass through unchanged.
func scaleReps(reps string, level int) string {
	increase := (level - 1) * 2
	if increase <= 0 {
		return reps
	}

	m := repsPattern.FindStringSubmatch(reps)
	if m == nil {
		return reps
	}
	low, err := strconv.Atoi(m[1])
	if err != nil {
		return reps
	}
	suffix := m[3]

	if m[2] == "" {
		// A bare number scales; a number glued to a unit is a distance or
		// duration and passes through.
		if suffix != "" {
			return reps
		}
		return strconv.Itoa(low + increase)
	}

	high, err := strconv.Atoi(m[2])
	if err != nil {
		return reps
	}
	return strconv.Itoa(low+increase) + "-" + strconv.Itoa(high+increase) + suffix
}
