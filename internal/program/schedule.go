package program

import "fmt"

// maxGroupsPerDay caps how many muscle groups the volume mode stacks on a
// single training day.
const maxGroupsPerDay = 3

// advancedPlan is the fixed 6-day plan used from level 4 on. Sunday is the
// only rest day.
var advancedPlan = WeekPlan{
	Monday:    {"chest", "shoulders", "abs"},
	Tuesday:   {"back", "arms"},
	Wednesday: {"legs", "abs"},
	Thursday:  {"chest", "arms"},
	Friday:    {"back", "shoulders", "abs"},
	Saturday:  {"legs", "cardio"},
	Sunday:    {},
}

// baseWeekPlan returns the hand-authored plan for a base cycle week (1..4).
// A missing schedule entry yields an empty plan, which downstream treats as
// all rest days.
func baseWeekPlan(cfg *Config, cycle int) WeekPlan {
	plan, ok := cfg.WeeklySchedule[fmt.Sprintf("week%d", cycle)]
	if !ok {
		return WeekPlan{}
	}
	return plan
}

// weekPlanFor produces the day-to-muscle-groups plan for a program week.
// Weeks 1-4 are the base cycle verbatim; later weeks intensify the matching
// cycle week according to the level's mode.
func weekPlanFor(cfg *Config, week int) WeekPlan {
	base := baseWeekPlan(cfg, cycleWeek(week))

	mode, ok := modeForLevel(levelFor(week))
	if !ok {
		return base
	}
	return intensify(base, mode)
}

// intensify applies one of the fixed transformation modes to a base-cycle
// plan. Days not touched by the mode keep their original muscle-group lists.
func intensify(base WeekPlan, mode Mode) WeekPlan {
	if mode == ModeAdvanced {
		return advancedPlan
	}

	plan := make(WeekPlan, len(Weekdays))
	for _, day := range Weekdays {
		groups := base[day]

		switch mode {
		case ModeFrequency:
			// The base cycle rests on Tuesday; convert it into a training day.
			if day == Tuesday && len(groups) == 0 {
				plan[day] = []string{"shoulders", "abs"}
				continue
			}
			plan[day] = groups

		case ModeVolume:
			if day == Tuesday && len(groups) == 0 {
				plan[day] = []string{"shoulders", "abs", "cardio"}
				continue
			}
			if len(groups) > 0 && len(groups) < maxGroupsPerDay && !containsGroup(groups, "abs") {
				plan[day] = append(append([]string{}, groups...), "abs")
				continue
			}
			plan[day] = groups

		case ModeAdvanced:
			// Handled above.
		}
	}
	return plan
}

func containsGroup(groups []string, name string) bool {
	for _, g := range groups {
		if g == name {
			return true
		}
	}
	return false
}
