package program

import "fmt"

const (
	// weeksPerCycle is the length of the hand-authored base cycle.
	weeksPerCycle = 4
	// MaxWeek is the last program week the plan covers.
	MaxWeek = 20
)

var levelNames = map[int]string{
	1: "Beginner",
	2: "Intermediate",
	3: "Advanced",
	4: "Expert",
}

var levelDescriptions = map[int]string{
	1: "Base plan - 4 training days, 3 rest days",
	2: "Increased frequency - 5 training days, 2 rest days",
	3: "Increased volume - 5 intensified training days, 2 rest days",
	4: "Full advanced plan - 6 training days, 1 rest day",
}

// levelFor derives the difficulty level from a program week number.
func levelFor(week int) int {
	return (week-1)/weeksPerCycle + 1
}

// cycleWeek reduces a program week into the 1..4 base cycle.
func cycleWeek(week int) int {
	return (week-1)%weeksPerCycle + 1
}

// WeekInfoFor describes the level a program week belongs to. It is pure
// arithmetic and defined for every week >= 1; callers clamp to the supported
// range themselves.
func WeekInfoFor(week int) WeekInfo {
	level := levelFor(week)

	name, ok := levelNames[level]
	if !ok {
		name = fmt.Sprintf("Master %d", level-3)
	}
	description, ok := levelDescriptions[level]
	if !ok {
		description = "Personalized elite plan"
	}

	return WeekInfo{
		Week:             week,
		Level:            level,
		LevelName:        name,
		LevelDescription: description,
		WeekInCycle:      cycleWeek(week),
		WeeksCompleted:   week - 1,
	}
}
