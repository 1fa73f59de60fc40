package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// newTestLookupEnv points every data file at a fresh temp directory so tests
// cannot pollute each other. The server picks a free port and keeps its
// session store in memory.
func newTestLookupEnv(t *testing.T) func(string) (string, bool) {
	t.Helper()
	dir := t.TempDir()
	return func(key string) (string, bool) {
		switch key {
		case "GYMLOG_ADDR":
			return "localhost:0", true
		case "GYMLOG_SESSIONS_SQLITE_URL":
			return ":memory:", true
		case "GYMLOG_CONFIG_PATH":
			return filepath.Join(dir, "config.json"), true
		case "GYMLOG_PROGRESS_PATH":
			return filepath.Join(dir, "progress_data.json"), true
		case "GYMLOG_NUTRITION_PATH":
			return filepath.Join(dir, "nutrition_data.json"), true
		default:
			return "", false
		}
	}
}

// writeTestConfig writes a minimal exercise configuration to the path the
// lookupEnv resolves for GYMLOG_CONFIG_PATH.
func writeTestConfig(t *testing.T, lookupEnv func(string) (string, bool), cfg map[string]any) {
	t.Helper()
	path, ok := lookupEnv("GYMLOG_CONFIG_PATH")
	if !ok {
		t.Fatal("GYMLOG_CONFIG_PATH not resolvable")
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
}

// singleExerciseConfig schedules one chest exercise on Mondays and rests the
// other six days, for every week of the cycle.
func singleExerciseConfig() map[string]any {
	plan := map[string][]string{
		"monday":    {"chest"},
		"tuesday":   {},
		"wednesday": {},
		"thursday":  {},
		"friday":    {},
		"saturday":  {},
		"sunday":    {},
	}
	return map[string]any{
		"exercises": map[string]any{
			"chest": []map[string]any{
				{"name": "Push-Ups", "sets": 3, "reps": "15-20", "difficulty_level": 1},
			},
		},
		"weekly_schedule": map[string]any{
			"week1": plan,
			"week2": plan,
			"week3": plan,
			"week4": plan,
		},
	}
}
