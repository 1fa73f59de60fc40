package nutrition

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mkoskela/gymlog/internal/errors"
)

const dateFormat = time.DateOnly

// ErrNoProfile is returned when an operation needs a profile that has not
// been saved yet.
var ErrNoProfile = errors.NewSentinel("nutrition profile not set")

// ErrMealNotFound is returned when a meal index does not exist in a day's log.
var ErrMealNotFound = errors.NewSentinel("meal not found")

// Profile describes the person the targets are computed for.
type Profile struct {
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weight"`
	HeightCm      float64       `json:"height"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

func (p Profile) validate() error {
	if p.Age <= 0 || p.WeightKg <= 0 || p.HeightCm <= 0 {
		return errors.New("age, weight and height must be positive")
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		return fmt.Errorf("unknown sex %q", p.Sex)
	}
	return nil
}

// Targets is the computed daily calorie and macro budget.
type Targets struct {
	Calories float64 `json:"calories"`
	Macros
}

// Meal is one logged meal.
type Meal struct {
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	CarbsG    float64 `json:"carbs_g"`
	FatG      float64 `json:"fat_g"`
	Timestamp string  `json:"timestamp"`
}

// DayLog is one day's meals with a running total.
type DayLog struct {
	Meals []Meal  `json:"meals"`
	Total Targets `json:"total"`
}

// Service owns the nutrition document and persists every mutation.
type Service struct {
	doc    *document
	repo   *repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(path string, logger *slog.Logger) *Service {
	repo := &repository{path: path, logger: logger}
	return &Service{
		doc:    repo.Load(),
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Profile returns the saved profile, or ErrNoProfile when none exists.
func (s *Service) Profile() (Profile, error) {
	if s.doc.Profile == nil {
		return Profile{}, ErrNoProfile
	}
	return *s.doc.Profile, nil
}

// Targets returns the saved calorie and macro targets.
func (s *Service) Targets() (Targets, error) {
	if s.doc.Targets == nil {
		return Targets{}, ErrNoProfile
	}
	return *s.doc.Targets, nil
}

// ComputeTargets derives the daily budget for a profile without saving it.
func ComputeTargets(p Profile) Targets {
	calories := round1(TargetCalories(TDEE(BMR(p.WeightKg, p.HeightCm, p.Age, p.Sex), p.ActivityLevel), p.Goal))
	return Targets{
		Calories: calories,
		Macros:   MacrosFor(calories, p.Goal),
	}
}

// SaveProfile validates the profile, recomputes the targets and persists both.
func (s *Service) SaveProfile(p Profile) (Targets, error) {
	if err := p.validate(); err != nil {
		return Targets{}, fmt.Errorf("validate profile: %w", err)
	}
	targets := ComputeTargets(p)
	s.doc.Profile = &p
	s.doc.Targets = &targets
	if err := s.repo.Save(s.doc); err != nil {
		return Targets{}, fmt.Errorf("save nutrition document: %w", err)
	}
	return targets, nil
}

// DayLogFor returns the meals logged for an ISO date. A day with no meals
// yields an empty log.
func (s *Service) DayLogFor(date string) (DayLog, error) {
	if _, err := time.Parse(dateFormat, date); err != nil {
		return DayLog{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	log, ok := s.doc.DailyLogs[date]
	if !ok {
		return DayLog{Meals: []Meal{}}, nil
	}
	return log, nil
}

// AddMeal appends a meal to a day's log, stamps it with the current time and
// updates the running total.
func (s *Service) AddMeal(date string, meal Meal) error {
	if _, err := time.Parse(dateFormat, date); err != nil {
		return fmt.Errorf("parse date %q: %w", date, err)
	}
	if meal.Name == "" {
		return errors.New("meal name is required")
	}

	meal.Timestamp = s.now().Format(time.RFC3339)
	log := s.doc.DailyLogs[date]
	log.Meals = append(log.Meals, meal)
	log.Total = sumMeals(log.Meals)
	s.doc.DailyLogs[date] = log

	if err := s.repo.Save(s.doc); err != nil {
		return fmt.Errorf("save nutrition document: %w", err)
	}
	return nil
}

// RemoveMeal deletes the meal at index from a day's log. Emptied days are
// dropped from the document.
func (s *Service) RemoveMeal(date string, index int) error {
	log, ok := s.doc.DailyLogs[date]
	if !ok || index < 0 || index >= len(log.Meals) {
		return ErrMealNotFound
	}

	log.Meals = append(log.Meals[:index], log.Meals[index+1:]...)
	if len(log.Meals) == 0 {
		delete(s.doc.DailyLogs, date)
	} else {
		log.Total = sumMeals(log.Meals)
		s.doc.DailyLogs[date] = log
	}

	if err := s.repo.Save(s.doc); err != nil {
		return fmt.Errorf("save nutrition document: %w", err)
	}
	return nil
}

// LoggedDates returns the dates with at least one meal, most recent first.
func (s *Service) LoggedDates() []string {
	dates := make([]string, 0, len(s.doc.DailyLogs))
	for date := range s.doc.DailyLogs {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

func sumMeals(meals []Meal) Targets {
	var total Targets
	for _, m := range meals {
		total.Calories += m.Calories
		total.ProteinG += m.ProteinG
		total.CarbsG += m.CarbsG
		total.FatG += m.FatG
	}
	total.Calories = round1(total.Calories)
	total.ProteinG = round1(total.ProteinG)
	total.CarbsG = round1(total.CarbsG)
	total.FatG = round1(total.FatG)
	return total
}
