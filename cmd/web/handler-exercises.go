package main

import (
	"net/http"
	neturl "net/url"
	"sort"
	"strconv"

	"github.com/mkoskela/gymlog/internal/errors"
	"github.com/mkoskela/gymlog/internal/program"
	"github.com/mkoskela/gymlog/internal/video"
)

type exerciseGroupView struct {
	Name      string
	Exercises []program.Exercise
}

type exercisesTemplateData struct {
	BaseTemplateData
	Groups []exerciseGroupView
	Level  int
	Query  string
}

// exercisesGET renders the exercise library with optional difficulty and
// name filters.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	level, _ := strconv.Atoi(r.URL.Query().Get("level"))
	query := r.URL.Query().Get("q")

	filtered := app.programService.FilterExercises(level, query)
	groups := make([]exerciseGroupView, 0, len(filtered))
	for name, exercises := range filtered {
		groups = append(groups, exerciseGroupView{Name: name, Exercises: exercises})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })

	data := exercisesTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Groups:           groups,
		Level:            level,
		Query:            query,
	}

	app.render(w, r, http.StatusOK, "exercises", data)
}

type exerciseInfoTemplateData struct {
	BaseTemplateData
	Exercise program.Exercise
	EmbedURL string
	Error    string
}

func (app *application) exerciseInfoData(r *http.Request, errorMessage string) (exerciseInfoTemplateData, error) {
	group := r.PathValue("group")
	name := r.PathValue("name")

	exercise, err := app.programService.Exercise(group, name)
	if err != nil {
		return exerciseInfoTemplateData{}, err
	}

	embedURL := ""
	if exercise.VideoURL != "" {
		// A stored URL that no longer parses simply renders without a player.
		if embed, embedErr := video.EmbedURL(exercise.VideoURL); embedErr == nil {
			embedURL = embed
		}
	}

	return exerciseInfoTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Exercise:         exercise,
		EmbedURL:         embedURL,
		Error:            errorMessage,
	}, nil
}

// exerciseInfoGET shows one exercise with its description and tutorial video.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	data, err := app.exerciseInfoData(r, "")
	if err != nil {
		if errors.Is(err, program.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "exercise-info", data)
}

// exerciseVideoPOST attaches a YouTube tutorial link to an exercise. An empty
// URL clears the link.
func (app *application) exerciseVideoPOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	url := r.PostForm.Get("video_url")

	if err := video.Validate(url); err != nil {
		data, dataErr := app.exerciseInfoData(r, "The link must be a YouTube video URL.")
		if dataErr != nil {
			app.serverError(w, r, dataErr)
			return
		}
		app.render(w, r, http.StatusUnprocessableEntity, "exercise-info", data)
		return
	}

	group := r.PathValue("group")
	name := r.PathValue("name")
	if err := app.programService.UpdateExerciseVideoURL(group, name, url); err != nil {
		if errors.Is(err, program.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	redirect(w, r, "/exercises/"+neturl.PathEscape(group)+"/"+neturl.PathEscape(name))
}
