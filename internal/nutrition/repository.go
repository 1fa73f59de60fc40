package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// document is the on-disk shape of nutrition_data.json.
type document struct {
	Profile   *Profile          `json:"profile,omitempty"`
	Targets   *Targets          `json:"targets,omitempty"`
	DailyLogs map[string]DayLog `json:"daily_logs"`
}

func newDocument() *document {
	return &document{DailyLogs: map[string]DayLog{}}
}

func (d *document) normalize() {
	if d.DailyLogs == nil {
		d.DailyLogs = map[string]DayLog{}
	}
}

// repository persists the nutrition document as a single JSON file.
type repository struct {
	path   string
	logger *slog.Logger
}

// Load reads the document from disk. It never fails: a missing file yields a
// fresh document, and an unreadable one is backed up and replaced so a bad
// byte cannot brick the tracker.
func (r *repository) Load() *document {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.LogAttrs(context.Background(), slog.LevelWarn, "read nutrition document",
				slog.String("path", r.path), slog.Any("error", err))
		}
		return newDocument()
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		backup := r.path + ".corrupt-" + time.Now().Format("20060102-150405")
		if writeErr := os.WriteFile(backup, data, 0o600); writeErr != nil {
			r.logger.LogAttrs(context.Background(), slog.LevelWarn, "back up corrupt nutrition document",
				slog.String("path", backup), slog.Any("error", writeErr))
		}
		r.logger.LogAttrs(context.Background(), slog.LevelWarn, "corrupt nutrition document replaced",
			slog.String("path", r.path), slog.String("backup", backup), slog.Any("error", err))
		return newDocument()
	}

	doc.normalize()
	return &doc
}

// Save writes the document atomically via a temp file and rename.
func (r *repository) Save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal nutrition document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
