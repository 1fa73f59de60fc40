package nutrition

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBMR(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		sex      Sex
		want     float64
	}{
		{name: "male", weightKg: 80, heightCm: 180, age: 30, sex: SexMale, want: 1780},
		{name: "female", weightKg: 60, heightCm: 165, age: 25, sex: SexFemale, want: 1345.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BMR(tt.weightKg, tt.heightCm, tt.age, tt.sex); got != tt.want {
				t.Errorf("BMR = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTDEE(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{level: ActivitySedentary, want: 1200},
		{level: ActivityLight, want: 1375},
		{level: ActivityModerate, want: 1550},
		{level: ActivityActive, want: 1725},
		{level: ActivityVeryActive, want: 1900},
		{level: "couch", want: 1550}, // unknown levels fall back to moderate
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := TDEE(1000, tt.level); got != tt.want {
				t.Errorf("TDEE(1000, %s) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestTargetCalories(t *testing.T) {
	tests := []struct {
		goal Goal
		want float64
	}{
		{goal: GoalMaintain, want: 2500},
		{goal: GoalBulk, want: 2800},
		{goal: GoalCut, want: 2000},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			if got := TargetCalories(2500, tt.goal); got != tt.want {
				t.Errorf("TargetCalories(2500, %s) = %v, want %v", tt.goal, got, tt.want)
			}
		})
	}
}

func TestMacrosFor(t *testing.T) {
	tests := []struct {
		goal Goal
		want Macros
	}{
		{goal: GoalMaintain, want: Macros{ProteinG: 150, CarbsG: 200, FatG: 66.7}},
		{goal: GoalBulk, want: Macros{ProteinG: 150, CarbsG: 250, FatG: 44.4}},
		{goal: GoalCut, want: Macros{ProteinG: 200, CarbsG: 150, FatG: 66.7}},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			got := MacrosFor(2000, tt.goal)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MacrosFor(2000, %s) mismatch (-want +got):\n%s", tt.goal, diff)
			}
		})
	}
}

func TestComputeTargets(t *testing.T) {
	got := ComputeTargets(Profile{
		Age:           30,
		WeightKg:      80,
		HeightCm:      180,
		Sex:           SexMale,
		ActivityLevel: ActivityModerate,
		Goal:          GoalMaintain,
	})

	// BMR 1780 at the moderate multiplier.
	if got.Calories != 2759 {
		t.Fatalf("Calories = %v, want 2759", got.Calories)
	}
	want := Macros{ProteinG: 206.9, CarbsG: 275.9, FatG: 92}
	if diff := cmp.Diff(want, got.Macros); diff != "" {
		t.Errorf("macros mismatch (-want +got):\n%s", diff)
	}
}
