package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mkoskela/gymlog/internal/errors"
	"github.com/mkoskela/gymlog/internal/nutrition"
)

type nutritionTemplateData struct {
	BaseTemplateData
	HasProfile  bool
	Profile     nutrition.Profile
	Targets     nutrition.Targets
	Today       string
	LoggedDates []string
	Error       string
}

func (app *application) nutritionData(r *http.Request, errorMessage string) (nutritionTemplateData, error) {
	data := nutritionTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Today:            time.Now().Format(time.DateOnly),
		LoggedDates:      app.nutritionService.LoggedDates(),
		Error:            errorMessage,
	}

	profile, err := app.nutritionService.Profile()
	if err != nil {
		if errors.Is(err, nutrition.ErrNoProfile) {
			return data, nil
		}
		return data, err
	}
	targets, err := app.nutritionService.Targets()
	if err != nil {
		return data, err
	}

	data.HasProfile = true
	data.Profile = profile
	data.Targets = targets
	return data, nil
}

// nutritionGET shows the profile form, the computed daily targets and the
// logged days.
func (app *application) nutritionGET(w http.ResponseWriter, r *http.Request) {
	data, err := app.nutritionData(r, "")
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.render(w, r, http.StatusOK, "nutrition", data)
}

// nutritionProfilePOST saves the profile and recomputes the calorie and
// macro targets.
func (app *application) nutritionProfilePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	age, ageErr := strconv.Atoi(r.PostForm.Get("age"))
	weight, weightErr := strconv.ParseFloat(r.PostForm.Get("weight"), 64)
	height, heightErr := strconv.ParseFloat(r.PostForm.Get("height"), 64)
	if ageErr != nil || weightErr != nil || heightErr != nil {
		app.renderNutritionError(w, r, "Age, weight and height must be numbers.")
		return
	}

	profile := nutrition.Profile{
		Age:           age,
		WeightKg:      weight,
		HeightCm:      height,
		Sex:           nutrition.Sex(r.PostForm.Get("sex")),
		ActivityLevel: nutrition.ActivityLevel(r.PostForm.Get("activity_level")),
		Goal:          nutrition.Goal(r.PostForm.Get("goal")),
	}

	if _, err := app.nutritionService.SaveProfile(profile); err != nil {
		app.renderNutritionError(w, r, "The profile values are not valid.")
		return
	}

	redirect(w, r, "/nutrition")
}

func (app *application) renderNutritionError(w http.ResponseWriter, r *http.Request, message string) {
	data, err := app.nutritionData(r, message)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.render(w, r, http.StatusUnprocessableEntity, "nutrition", data)
}

type mealView struct {
	Index int
	Meal  nutrition.Meal
}

type nutritionDayTemplateData struct {
	BaseTemplateData
	Date       string
	Meals      []mealView
	Total      nutrition.Targets
	HasTargets bool
	Targets    nutrition.Targets
	Remaining  float64
}

// nutritionDayGET shows one day's meal log against the daily targets.
func (app *application) nutritionDayGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	log, err := app.nutritionService.DayLogFor(date)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	meals := make([]mealView, len(log.Meals))
	for i, meal := range log.Meals {
		meals[i] = mealView{Index: i, Meal: meal}
	}

	data := nutritionDayTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Date:             date,
		Meals:            meals,
		Total:            log.Total,
	}
	if targets, targetsErr := app.nutritionService.Targets(); targetsErr == nil {
		data.HasTargets = true
		data.Targets = targets
		data.Remaining = targets.Calories - log.Total.Calories
	}

	app.render(w, r, http.StatusOK, "nutrition-day", data)
}

// nutritionMealPOST logs a meal for the date.
func (app *application) nutritionMealPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	// Macro fields are optional; absent values log as zero.
	calories, _ := strconv.ParseFloat(r.PostForm.Get("calories"), 64)
	protein, _ := strconv.ParseFloat(r.PostForm.Get("protein"), 64)
	carbs, _ := strconv.ParseFloat(r.PostForm.Get("carbs"), 64)
	fat, _ := strconv.ParseFloat(r.PostForm.Get("fat"), 64)

	meal := nutrition.Meal{
		Name:     r.PostForm.Get("name"),
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
	}
	if err := app.nutritionService.AddMeal(date, meal); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	redirect(w, r, "/nutrition/days/"+date)
}

// nutritionMealDeletePOST removes one meal from the date's log.
func (app *application) nutritionMealDeletePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err = app.nutritionService.RemoveMeal(date, index); err != nil {
		if errors.Is(err, nutrition.ErrMealNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	redirect(w, r, "/nutrition/days/"+date)
}
