package config

import (
	"encoding/json" // components.json is plain JSON so other tooling can read it
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"nocta-ui/internal/logger"
)

// Path returns the location of the configuration record inside root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Read loads the configuration record from root.
// A missing file is not an error: Read returns (nil, nil) so callers can tell
// "not initialized" apart from a broken record. Permission problems and
// malformed JSON are returned as errors.
func Read(root string) (*Config, error) {
	p := Path(root)

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("[DEBUG] No %s found at %s\n", FileName, p)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Write validates cfg and persists it at root as 2-space indented JSON.
// It overwrites an existing file; the "already initialized" guard belongs to the caller.
func Write(root string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", FileName, err)
	}
	data = append(data, '\n')

	p := Path(root)
	logger.Debug("[DEBUG] Writing %s:\n%s", p, data)

	if err := os.WriteFile(p, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	return nil
}

// Load reads the record and fails when the project has not been initialized.
// Commands that only make sense after init use it.
func Load(root string) (*Config, error) {
	cfg, err := Read(root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%s not found in %s, run `nocta-ui init` first", FileName, root)
	}
	return cfg, nil
}
