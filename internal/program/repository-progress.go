package program

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/mkoskela/gymlog/internal/errors"
)

// progressDocument is the persisted form of the progress log. Absence of a
// completion entry means "not completed"; the model has no tri-state.
type progressDocument struct {
	CompletedExercises map[string]map[string]bool `json:"completed_exercises"`
	ExerciseWeeks      map[string]int             `json:"exercise_weeks"`
	CompletedWorkouts  map[string][]string        `json:"completed_workouts"`
	TotalWorkouts      int                        `json:"total_workouts"`
	ProgramStartDate   string                     `json:"program_start_date,omitempty"`
	CalendarMapping    map[string]WeekRange       `json:"calendar_mapping,omitempty"`
}

func newProgressDocument() *progressDocument {
	return &progressDocument{
		CompletedExercises: map[string]map[string]bool{},
		ExerciseWeeks:      map[string]int{},
		CompletedWorkouts:  map[string][]string{},
	}
}

// normalize fills in maps an older or hand-edited document may lack.
func (d *progressDocument) normalize() {
	if d.CompletedExercises == nil {
		d.CompletedExercises = map[string]map[string]bool{}
	}
	if d.ExerciseWeeks == nil {
		d.ExerciseWeeks = map[string]int{}
	}
	if d.CompletedWorkouts == nil {
		d.CompletedWorkouts = map[string][]string{}
	}
}

// progressRepository persists the progress log as one JSON document,
// rewritten wholesale on every mutation.
type progressRepository struct {
	path   string
	logger *slog.Logger
}

// Load reads the progress log. It never fails: a missing file yields fresh
// defaults, and an unreadable one is backed up aside before the empty
// document takes its place.
func (r *progressRepository) Load() *progressDocument {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return newProgressDocument()
	}
	if err != nil {
		r.logger.LogAttrs(context.Background(), slog.LevelWarn, "read progress log, starting fresh",
			slog.String("path", r.path), errors.SlogError(err))
		return newProgressDocument()
	}

	doc := newProgressDocument()
	if err = json.Unmarshal(data, doc); err != nil {
		r.backupCorrupt(data)
		r.logger.LogAttrs(context.Background(), slog.LevelWarn, "progress log malformed, starting fresh",
			slog.String("path", r.path), errors.SlogError(err))
		return newProgressDocument()
	}
	doc.normalize()
	return doc
}

// backupCorrupt copies an unreadable progress log aside so a later overwrite
// does not destroy the only copy of the user's history.
func (r *progressRepository) backupCorrupt(data []byte) {
	backupPath := fmt.Sprintf("%s.corrupt-%s", r.path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, data, 0o600); err != nil {
		r.logger.LogAttrs(context.Background(), slog.LevelError, "back up corrupt progress log",
			slog.String("path", backupPath), errors.SlogError(err))
		return
	}
	r.logger.LogAttrs(context.Background(), slog.LevelInfo, "backed up corrupt progress log",
		slog.String("path", backupPath))
}

// Save rewrites the whole progress log document.
func (r *progressRepository) Save(doc *progressDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress log: %w", err)
	}
	if err = writeFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("write progress log %s: %w", r.path, err)
	}
	return nil
}
