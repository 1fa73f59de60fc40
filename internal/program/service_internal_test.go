package program

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkoskela/gymlog/internal/testhelpers"
)

// newTestService builds a service on a temp directory. A nil cfg leaves the
// configuration file absent so the embedded default applies.
func newTestService(t *testing.T, cfg *Config) *Service {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	if cfg != nil {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			t.Fatalf("marshal config: %v", err)
		}
		if err = os.WriteFile(configPath, data, 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	svc, err := NewService(configPath, filepath.Join(dir, "progress_data.json"), logger)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

// fixClock pins the service clock so trailing-window recomputation is
// deterministic in tests.
func fixClock(svc *Service, date string) {
	day, err := time.Parse(dateFormat, date)
	if err != nil {
		panic(err)
	}
	svc.now = func() time.Time { return day }
}

// singleGroupConfig schedules one muscle group on Monday of every base cycle
// week and rests the other days.
func singleGroupConfig(exercises ...Exercise) *Config {
	plan := WeekPlan{
		Monday:    {"chest"},
		Tuesday:   {},
		Wednesday: {},
		Thursday:  {},
		Friday:    {},
		Saturday:  {},
		Sunday:    {},
	}
	return &Config{
		Exercises: map[string][]Exercise{"chest": exercises},
		WeeklySchedule: map[string]WeekPlan{
			"week1": plan,
			"week2": plan,
			"week3": plan,
			"week4": plan,
		},
	}
}

func TestNewService_embeddedDefaultConfig(t *testing.T) {
	svc := newTestService(t, nil)

	groups := svc.MuscleGroups()
	if len(groups) == 0 {
		t.Fatal("expected muscle groups from the embedded default configuration")
	}
	for _, group := range []string{"chest", "back", "shoulders", "arms", "legs", "calves", "abs", "cardio"} {
		if _, ok := svc.cfg.Exercises[group]; !ok {
			t.Errorf("embedded default configuration missing group %q", group)
		}
	}
	for _, weekKey := range []string{"week1", "week2", "week3", "week4"} {
		if _, ok := svc.cfg.WeeklySchedule[weekKey]; !ok {
			t.Errorf("embedded default configuration missing schedule %q", weekKey)
		}
	}
}

func TestService_UpdateExerciseVideoURL(t *testing.T) {
	svc := newTestService(t, singleGroupConfig(
		Exercise{Name: "Bench Press", Sets: 4, Reps: "8-10", DifficultyLevel: 1},
	))

	if err := svc.UpdateExerciseVideoURL("chest", "Bench Press", "https://www.youtube.com/watch?v=dGpVNgzqMjY"); err != nil {
		t.Fatalf("update video URL: %v", err)
	}

	ex, err := svc.Exercise("chest", "Bench Press")
	if err != nil {
		t.Fatalf("get exercise: %v", err)
	}
	if ex.VideoURL != "https://www.youtube.com/watch?v=dGpVNgzqMjY" {
		t.Errorf("VideoURL = %q, want the updated URL", ex.VideoURL)
	}

	// The write-back rewrites the whole document; a reload must see it.
	cfg, err := svc.repo.config.Load()
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if cfg.Exercises["chest"][0].VideoURL == "" {
		t.Error("video URL not persisted to the configuration document")
	}
}

func TestService_UpdateExerciseVideoURL_notFound(t *testing.T) {
	svc := newTestService(t, singleGroupConfig(
		Exercise{Name: "Bench Press", Sets: 4, Reps: "8-10", DifficultyLevel: 1},
	))

	if err := svc.UpdateExerciseVideoURL("chest", "No Such Exercise", "https://youtu.be/dGpVNgzqMjY"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := svc.UpdateExerciseVideoURL("quads", "Bench Press", "https://youtu.be/dGpVNgzqMjY"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown group, got %v", err)
	}
}

func TestService_FilterExercises(t *testing.T) {
	svc := newTestService(t, nil)

	tests := []struct {
		name      string
		level     int
		query     string
		wantGroup string
		wantAny   bool
	}{
		{name: "all", level: 0, query: "", wantGroup: "chest", wantAny: true},
		{name: "level filters", level: 3, query: "", wantGroup: "chest", wantAny: false},
		{name: "query matches", level: 0, query: "curl", wantGroup: "arms", wantAny: true},
		{name: "query misses", level: 0, query: "zzz", wantGroup: "arms", wantAny: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.FilterExercises(tt.level, tt.query)
			if _, ok := got[tt.wantGroup]; ok != tt.wantAny {
				t.Errorf("FilterExercises(%d, %q)[%s] present = %v, want %v",
					tt.level, tt.query, tt.wantGroup, ok, tt.wantAny)
			}
		})
	}
}

func TestService_ResetProgress(t *testing.T) {
	svc := newTestService(t, singleGroupConfig(
		Exercise{Name: "Bench Press", Sets: 4, Reps: "8-10", DifficultyLevel: 1},
	))
	fixClock(svc, "2026-01-05")

	key := ExerciseKey{MuscleGroup: "chest", Exercise: "Bench Press", Weekday: Monday, Week: 1}
	if err := svc.SetCompleted("2026-01-05", key, true); err != nil {
		t.Fatalf("set completed: %v", err)
	}

	if err := svc.ResetProgress(); err != nil {
		t.Fatalf("reset progress: %v", err)
	}
	if svc.IsCompleted("2026-01-05", key) {
		t.Error("completion survived a reset")
	}
	if svc.TotalWorkouts() != 0 {
		t.Errorf("TotalWorkouts = %d after reset, want 0", svc.TotalWorkouts())
	}
}
