package main

import (
	"strings"
	"testing"

	"github.com/mkoskela/gymlog/internal/e2etest"
	"github.com/mkoskela/gymlog/internal/testhelpers"
)

func Test_application_nutritionProfile(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/nutrition")
	if err != nil {
		t.Fatalf("Failed to get nutrition page: %v", err)
	}
	if doc.Find("section.targets").Length() != 0 {
		t.Fatalf("targets shown before a profile is saved")
	}

	doc, err = client.SubmitForm(ctx, doc, "/nutrition/profile", map[string]string{
		"Age":      "30",
		"Weight":   "80",
		"Height":   "180",
		"Sex":      "M",
		"Activity": "moderate",
		"Goal":     "maintain",
	})
	if err != nil {
		t.Fatalf("Failed to submit profile form: %v", err)
	}

	// Mifflin-St Jeor for this profile lands on 2759 kcal at maintenance.
	targets := doc.Find("section.targets").Text()
	for _, want := range []string{"2759 kcal", "206.9 g", "275.9 g", "92 g"} {
		if !strings.Contains(targets, want) {
			t.Errorf("targets %q missing %q", targets, want)
		}
	}
}

func Test_application_nutritionProfileInvalid(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/nutrition")
	if err != nil {
		t.Fatalf("Failed to get nutrition page: %v", err)
	}

	_, err = client.SubmitForm(ctx, doc, "/nutrition/profile", map[string]string{
		"Age":      "thirty",
		"Weight":   "80",
		"Height":   "180",
		"Sex":      "M",
		"Activity": "moderate",
		"Goal":     "maintain",
	})
	if err == nil || !strings.Contains(err.Error(), "422") {
		t.Errorf("err = %v, want a 422 rejection for a non-numeric age", err)
	}
}

func Test_application_nutritionMeals(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	const dayPath = "/nutrition/days/2026-01-05"

	doc, err := client.GetDoc(ctx, dayPath)
	if err != nil {
		t.Fatalf("Failed to get meal log: %v", err)
	}
	if text := doc.Text(); !strings.Contains(text, "No meals logged yet.") {
		t.Fatalf("fresh day is not empty")
	}

	doc, err = client.SubmitForm(ctx, doc, dayPath+"/meals", map[string]string{
		"Meal":     "Lunch",
		"Calories": "600",
		"Protein":  "40",
		"Carbs":    "60",
		"Fat":      "20",
	})
	if err != nil {
		t.Fatalf("Failed to log meal: %v", err)
	}

	if meals := doc.Find("ul.meals li"); meals.Length() != 1 {
		t.Fatalf("got %d meals, want 1", meals.Length())
	}
	summary := doc.Find("p.summary").Text()
	for _, want := range []string{"600 kcal", "P 40 g", "C 60 g", "F 20 g"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary %q missing %q", summary, want)
		}
	}

	// The logged day now shows up on the nutrition overview.
	overview, err := client.GetDoc(ctx, "/nutrition")
	if err != nil {
		t.Fatalf("Failed to get nutrition page: %v", err)
	}
	if days := overview.Find("ul.logged-days li").Length(); days != 1 {
		t.Errorf("got %d logged days, want 1", days)
	}

	// Removing the only meal empties the day and the overview list.
	doc, err = client.SubmitForm(ctx, doc, dayPath+"/meals/0/delete", nil)
	if err != nil {
		t.Fatalf("Failed to remove meal: %v", err)
	}
	if text := doc.Text(); !strings.Contains(text, "No meals logged yet.") {
		t.Errorf("meal survived removal")
	}

	if overview, err = client.GetDoc(ctx, "/nutrition"); err != nil {
		t.Fatalf("Failed to get nutrition page: %v", err)
	}
	if days := overview.Find("ul.logged-days li").Length(); days != 0 {
		t.Errorf("emptied day still listed on the overview")
	}
}

func Test_application_nutritionRemaining(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/nutrition")
	if err != nil {
		t.Fatalf("Failed to get nutrition page: %v", err)
	}
	if doc, err = client.SubmitForm(ctx, doc, "/nutrition/profile", map[string]string{
		"Age":      "30",
		"Weight":   "80",
		"Height":   "180",
		"Sex":      "M",
		"Activity": "moderate",
		"Goal":     "maintain",
	}); err != nil {
		t.Fatalf("Failed to submit profile form: %v", err)
	}

	const dayPath = "/nutrition/days/2026-01-05"

	if doc, err = client.GetDoc(ctx, dayPath); err != nil {
		t.Fatalf("Failed to get meal log: %v", err)
	}
	if doc, err = client.SubmitForm(ctx, doc, dayPath+"/meals", map[string]string{
		"Meal":     "Breakfast",
		"Calories": "600",
	}); err != nil {
		t.Fatalf("Failed to log meal: %v", err)
	}

	if summary := doc.Find("p.summary").Text(); !strings.Contains(summary, "Remaining: 2159 kcal of 2759") {
		t.Errorf("summary %q missing the remaining budget", summary)
	}
}
