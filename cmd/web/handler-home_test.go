package main

import (
	"strings"
	"testing"

	"github.com/mkoskela/gymlog/internal/e2etest"
	"github.com/mkoskela/gymlog/internal/testhelpers"
)

func Test_application_home(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	doc, err := server.Client().GetDoc(ctx, "/")
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	heading := doc.Find("h1").Text()
	if !strings.Contains(heading, "Week 1") || !strings.Contains(heading, "Beginner") {
		t.Errorf("heading = %q, want week 1 at the beginner level", heading)
	}

	if days := doc.Find("ul.days li").Length(); days != 7 {
		t.Errorf("got %d day entries, want 7", days)
	}

	// The default configuration rests on Tuesdays, Wednesdays and Sundays.
	if rests := doc.Find("ul.days li.rest").Length(); rests != 3 {
		t.Errorf("got %d rest days, want 3", rests)
	}
}

func Test_application_weekSelection(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), newTestLookupEnv(t), run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	// Selecting week 13 switches the plan to the expert split.
	doc, err = client.SubmitForm(ctx, doc, "/settings/week", map[string]string{"Viewed": "13"})
	if err != nil {
		t.Fatalf("Failed to submit week form: %v", err)
	}

	heading := doc.Find("h1").Text()
	if !strings.Contains(heading, "Week 13") || !strings.Contains(heading, "Expert") {
		t.Errorf("heading = %q, want week 13 at the expert level", heading)
	}

	// The expert split trains six days and rests only on Sunday.
	if rests := doc.Find("ul.days li.rest").Length(); rests != 1 {
		t.Errorf("got %d rest days, want 1 on the expert split", rests)
	}
}
