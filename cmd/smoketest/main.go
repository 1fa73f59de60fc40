package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mkoskela/gymlog/internal/e2etest"
	"github.com/mkoskela/gymlog/internal/logging"
	"github.com/mkoskela/gymlog/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	pageTimeout       = 10 * time.Second
	expectedArgsCount = 2
	maxConcurrency    = 4
)

// smokePages are fetched concurrently. Every one of them must render with
// its expected heading for the deployment to count as healthy.
var smokePages = map[string]string{
	"/":          "Week",
	"/calendar":  "",
	"/stats":     "Progress",
	"/exercises": "Exercise library",
	"/nutrition": "Nutrition",
	"/settings":  "Settings",
}

func testPage(ctx context.Context, client *e2etest.Client, path, wantHeading string) error {
	ctx, cancel := context.WithTimeout(ctx, pageTimeout)
	defer cancel()

	doc, err := client.GetDoc(ctx, path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if heading := doc.Find("h1").Text(); !strings.Contains(heading, wantHeading) {
		return fmt.Errorf("page %s heading %q does not contain %q", path, heading, wantHeading)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)
	for path, heading := range smokePages {
		g.Go(func() error {
			return testPage(groupCtx, client, path, heading)
		})
	}
	if err = g.Wait(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing pages", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
