// Package nutrition implements the calorie and macro calculator and the
// daily meal log, persisted as one JSON document.
package nutrition

import "math"

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ActivityLevel scales the basal rate into total daily expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal shifts the calorie target and the macro split.
type Goal string

const (
	GoalMaintain Goal = "maintain"
	GoalBulk     Goal = "bulk"
	GoalCut      Goal = "cut"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// macroSplit is the calorie share per macronutrient.
type macroSplit struct {
	protein float64
	carbs   float64
	fat     float64
}

var macroSplits = map[Goal]macroSplit{
	GoalMaintain: {protein: 0.30, carbs: 0.40, fat: 0.30},
	GoalBulk:     {protein: 0.30, carbs: 0.50, fat: 0.20},
	GoalCut:      {protein: 0.40, carbs: 0.30, fat: 0.30},
}

// Macros is a macronutrient target in grams.
type Macros struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// BMR computes the basal metabolic rate with the Mifflin-St Jeor formula.
func BMR(weightKg, heightCm float64, age int, sex Sex) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == SexFemale {
		return bmr - 161
	}
	return bmr + 5
}

// TDEE scales a basal rate by the activity multiplier. Unknown levels use
// the moderate multiplier.
func TDEE(bmr float64, level ActivityLevel) float64 {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		multiplier = activityMultipliers[ActivityModerate]
	}
	return bmr * multiplier
}

// TargetCalories adjusts the daily expenditure for the goal: a 300 kcal
// surplus for bulking, a 500 kcal deficit for cutting.
func TargetCalories(tdee float64, goal Goal) float64 {
	switch goal {
	case GoalBulk:
		return tdee + 300
	case GoalCut:
		return tdee - 500
	default:
		return tdee
	}
}

// MacrosFor splits a calorie target into grams of protein, carbs and fat
// (4 kcal per gram of protein and carbs, 9 per gram of fat).
func MacrosFor(calories float64, goal Goal) Macros {
	split, ok := macroSplits[goal]
	if !ok {
		split = macroSplits[GoalMaintain]
	}
	return Macros{
		ProteinG: round1(calories * split.protein / 4),
		CarbsG:   round1(calories * split.carbs / 4),
		FatG:     round1(calories * split.fat / 9),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
