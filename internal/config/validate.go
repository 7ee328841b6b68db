package config

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalid is returned when a configuration record breaks its invariants.
	ErrInvalid = errors.New("invalid " + FileName)

	// ErrOutsideProject is returned when a configured path would leave the project root.
	ErrOutsideProject = errors.New("path escapes the project root")
)

// Validate checks the record invariants: the CSS entry point is set and every
// configured path is project-relative and slash-separated.
func (c *Config) Validate() error {
	if c.Tailwind.CSS == "" {
		return fmt.Errorf("%w: tailwind.css is required", ErrInvalid)
	}

	checks := []struct {
		field    string
		value    string
		optional bool
	}{
		{"tailwind.config", c.Tailwind.Config, true},
		{"tailwind.css", c.Tailwind.CSS, false},
		{"aliases.components", c.Aliases.Components, false},
		{"aliases.utils", c.Aliases.Utils, false},
	}
	for _, check := range checks {
		if check.value == "" {
			if check.optional {
				continue
			}
			return fmt.Errorf("%w: %s is required", ErrInvalid, check.field)
		}
		if err := checkRelative(check.value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, check.field, err)
		}
	}
	return nil
}

// ResolvePath turns a project-relative slash path into an OS path under root.
// Paths that are absolute or climb above root are rejected.
func ResolvePath(root, rel string) (string, error) {
	if err := checkRelative(rel); err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(rel)), nil
}

func checkRelative(p string) error {
	if strings.Contains(p, `\`) {
		return fmt.Errorf("%q must use forward slashes", p)
	}
	if path.IsAbs(p) || filepath.IsAbs(p) {
		return fmt.Errorf("%q: %w", p, ErrOutsideProject)
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%q: %w", p, ErrOutsideProject)
	}
	return nil
}
