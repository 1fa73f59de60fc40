package program

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// repository bundles the two document stores the service works against.
type repository struct {
	config   *configRepository
	progress *progressRepository
}

func newRepository(configPath, progressPath string, logger *slog.Logger) *repository {
	return &repository{
		config:   &configRepository{path: configPath},
		progress: &progressRepository{path: progressPath, logger: logger},
	}
}

// writeFileAtomic writes data through a temp file in the target directory so
// a crash mid-write never leaves a truncated document behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
