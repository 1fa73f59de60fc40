package program

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/mkoskela/gymlog/internal/errors"
)

//go:embed config.json
var defaultConfigJSON []byte

// configRepository reads the static exercise/schedule configuration and
// handles the one narrow write path, attaching a video URL to an exercise.
type configRepository struct {
	path string
}

// Load reads the configuration document. A missing file falls back to the
// embedded default so a fresh install works out of the box; a malformed file
// is an error because the configuration is hand-maintained.
func (r *configRepository) Load() (*Config, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		data = defaultConfigJSON
	} else if err != nil {
		return nil, fmt.Errorf("read configuration %s: %w", r.path, err)
	}

	var cfg Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode configuration %s: %w", r.path, err)
	}
	return &cfg, nil
}

// Save rewrites the whole configuration document.
func (r *configRepository) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	if err = writeFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("write configuration %s: %w", r.path, err)
	}
	return nil
}
