// Package program implements the training program core: week/date
// reconciliation, schedule generation, exercise selection and progression,
// the completion ledger, and the aggregation and streak engine. State lives
// in two JSON documents, a read-mostly configuration store and a mutable
// progress log.
package program

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mkoskela/gymlog/internal/errors"
)

// ErrNotFound is returned when a requested entity is not found.
var ErrNotFound = errors.NewSentinel("not found")

// Service handles the business logic for training program management. It is
// single-user and single-process: the in-memory documents are the source of
// truth for the lifetime of the process.
type Service struct {
	cfg    *Config
	doc    *progressDocument
	repo   *repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService loads both documents and returns a ready service. A missing or
// corrupt progress log is recovered with empty defaults; a malformed
// configuration is an error.
func NewService(configPath, progressPath string, logger *slog.Logger) (*Service, error) {
	repo := newRepository(configPath, progressPath, logger)

	cfg, err := repo.config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return &Service{
		cfg:    cfg,
		doc:    repo.progress.Load(),
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}, nil
}

// WeekPlanFor returns the day-to-muscle-groups plan for a program week.
func (s *Service) WeekPlanFor(week int) WeekPlan {
	return weekPlanFor(s.cfg, week)
}

// ExercisesFor returns the exercises prescribed for a muscle group on a
// weekday under a program week.
func (s *Service) ExercisesFor(group string, day Weekday, week int) []Exercise {
	return exercisesFor(s.cfg, group, day, week)
}

// MuscleGroups lists the configured muscle group names, sorted.
func (s *Service) MuscleGroups() []string {
	groups := make([]string, 0, len(s.cfg.Exercises))
	for group := range s.cfg.Exercises {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups
}

// Exercise looks up a single exercise definition by muscle group and name.
func (s *Service) Exercise(group, name string) (Exercise, error) {
	for _, ex := range s.cfg.Exercises[group] {
		if ex.Name == name {
			ex.MuscleGroup = group
			return ex, nil
		}
	}
	return Exercise{}, fmt.Errorf("exercise %s/%s: %w", group, name, ErrNotFound)
}

// UpdateExerciseVideoURL attaches a tutorial video URL to one exercise and
// rewrites the whole configuration document.
func (s *Service) UpdateExerciseVideoURL(group, name, url string) error {
	exercises, ok := s.cfg.Exercises[group]
	if !ok {
		return fmt.Errorf("muscle group %s: %w", group, ErrNotFound)
	}
	for i := range exercises {
		if exercises[i].Name != name {
			continue
		}
		exercises[i].VideoURL = url
		if err := s.repo.config.Save(s.cfg); err != nil {
			return fmt.Errorf("save configuration: %w", err)
		}
		return nil
	}
	return fmt.Errorf("exercise %s/%s: %w", group, name, ErrNotFound)
}

// FilterExercises returns the exercise library filtered by difficulty level
// and a case-insensitive name query. Level 0 matches every level.
func (s *Service) FilterExercises(level int, query string) map[string][]Exercise {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make(map[string][]Exercise)
	for group, exercises := range s.cfg.Exercises {
		var matched []Exercise
		for _, ex := range exercises {
			if level > 0 && ex.DifficultyLevel != level {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(ex.Name), query) {
				continue
			}
			ex.MuscleGroup = group
			matched = append(matched, ex)
		}
		if len(matched) > 0 {
			filtered[group] = matched
		}
	}
	return filtered
}

// TotalWorkouts returns the lifetime trained-day counter.
func (s *Service) TotalWorkouts() int {
	return s.doc.TotalWorkouts
}

// ResetProgress replaces the progress log with fresh defaults and persists
// the empty document.
func (s *Service) ResetProgress() error {
	doc := newProgressDocument()
	if err := s.repo.progress.Save(doc); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	s.doc = doc
	return nil
}
