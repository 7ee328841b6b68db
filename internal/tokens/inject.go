package tokens

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"nocta-ui/internal/config"
	"nocta-ui/internal/logger"
)

// ErrTargetMissing is returned when the artifact to inject into does not exist.
var ErrTargetMissing = errors.New("token target not found")

// configVariants are tried, in order, when the configured tailwind config is absent.
var configVariants = []string{".js", ".ts", ".cjs", ".mjs"}

// Result reports what an injection did.
type Result struct {
	Added bool   // Palette was written; false when it was already present
	Path  string // Project-relative artifact that was inspected
}

// Injector adds a palette to the styling artifacts of the project at Root.
type Injector struct {
	Root    string
	Palette Palette
}

// New returns an Injector for root using the default palette.
func New(root string) *Injector {
	return &Injector{Root: root, Palette: Default}
}

// Inject picks the target from the Tailwind major: the CSS entry point for v4,
// the build-tool config otherwise. A legacy record without a config path is a no-op.
func (i *Injector) Inject(cfg *config.Config, tailwindV4 bool) (Result, error) {
	if tailwindV4 {
		return i.InjectStylesheet(cfg.Tailwind.CSS)
	}
	if cfg.Tailwind.Config == "" {
		logger.Debug("[DEBUG] No tailwind config designated, skipping tokens\n")
		return Result{}, nil
	}
	return i.InjectConfig(cfg.Tailwind.Config)
}

// InjectStylesheet adds the palette as custom properties to the stylesheet rel.
func (i *Injector) InjectStylesheet(rel string) (Result, error) {
	return i.rewrite(rel, func(src string) (string, bool, error) {
		out, added := InjectCSS(src, i.Palette)
		return out, added, nil
	})
}

// InjectConfig adds the palette to theme.extend.colors of the tailwind config rel.
// When rel is missing, siblings with another JS/TS extension are used instead.
func (i *Injector) InjectConfig(rel string) (Result, error) {
	target, err := i.locateConfig(rel)
	if err != nil {
		return Result{Path: rel}, err
	}
	return i.rewrite(target, func(src string) (string, bool, error) {
		return InjectTailwindConfig(src, i.Palette)
	})
}

func (i *Injector) locateConfig(rel string) (string, error) {
	stem := strings.TrimSuffix(rel, path.Ext(rel))
	candidates := []string{rel}
	for _, ext := range configVariants {
		if c := stem + ext; c != rel {
			candidates = append(candidates, c)
		}
	}

	for _, c := range candidates {
		p, err := config.ResolvePath(i.Root, c)
		if err != nil {
			return "", err
		}
		_, err = os.Stat(p)
		if err == nil {
			if c != rel {
				logger.Debug("[DEBUG] %s not found, using %s\n", rel, c)
			}
			return c, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to check %s: %w", c, err)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrTargetMissing, rel)
}

// rewrite applies edit to the file rel and writes it back only when it changed.
func (i *Injector) rewrite(rel string, edit func(string) (string, bool, error)) (Result, error) {
	res := Result{Path: rel}

	p, err := config.ResolvePath(i.Root, rel)
	if err != nil {
		return res, err
	}

	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return res, fmt.Errorf("%w: %s", ErrTargetMissing, rel)
	}
	if err != nil {
		return res, fmt.Errorf("failed to stat %s: %w", rel, err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return res, fmt.Errorf("failed to read %s: %w", rel, err)
	}

	out, added, err := edit(string(data))
	if err != nil {
		return res, fmt.Errorf("failed to add tokens to %s: %w", rel, err)
	}
	if !added {
		logger.Debug("[DEBUG] %s already contains the %s palette\n", rel, i.Palette.Name)
		return res, nil
	}

	if err := os.WriteFile(p, []byte(out), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", rel, err)
	}
	res.Added = true
	return res, nil
}
