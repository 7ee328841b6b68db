// Package scaffold writes the helper sources generated components import.
package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"nocta-ui/internal/config"
	"nocta-ui/internal/logger"
)

//go:embed templates/utils.ts templates/utils.js
var templates embed.FS

// Result reports what WriteUtils did.
type Result struct {
	Created bool   // False when the file already existed and was kept
	Path    string // Project-relative path of the utility module
}

// UtilsPath returns the project-relative file for the utils alias.
func UtilsPath(cfg *config.Config) string {
	if cfg.TSX {
		return cfg.Aliases.Utils + ".ts"
	}
	return cfg.Aliases.Utils + ".js"
}

// WriteUtils creates the cn() helper module under root. An existing file is
// never overwritten: it may carry user edits.
func WriteUtils(root string, cfg *config.Config) (Result, error) {
	rel := UtilsPath(cfg)
	res := Result{Path: rel}

	p, err := config.ResolvePath(root, rel)
	if err != nil {
		return res, err
	}

	_, err = os.Stat(p)
	if err == nil {
		logger.Debug("[DEBUG] %s exists, leaving it untouched\n", rel)
		return res, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return res, fmt.Errorf("failed to check %s: %w", rel, err)
	}

	content, err := templates.ReadFile("templates/utils" + filepath.Ext(rel))
	if err != nil {
		return res, fmt.Errorf("missing utils template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return res, fmt.Errorf("mkdir failed: %w", err)
	}
	if err := os.WriteFile(p, content, 0644); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", rel, err)
	}

	logger.Debug("[DEBUG] Wrote %s\n", p)
	res.Created = true
	return res, nil
}
