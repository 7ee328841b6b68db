// Package detect classifies a host project from the files at its root.
package detect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"nocta-ui/internal/logger"
)

// Environment is the framework convention a project follows.
type Environment string

const (
	NextJS  Environment = "nextjs"
	Vite    Environment = "vite"
	Generic Environment = "generic"
)

// String returns a display name for summaries.
func (e Environment) String() string {
	switch e {
	case NextJS:
		return "Next.js"
	case Vite:
		return "Vite"
	default:
		return "generic"
	}
}

// markers lists, in priority order, the files whose presence identifies an environment.
var markers = []struct {
	env   Environment
	files []string
}{
	{NextJS, []string{"next.config.js", "next.config.mjs", "next.config.ts"}},
	{Vite, []string{"vite.config.js", "vite.config.ts", "vite.config.mjs"}},
}

// Classify inspects root for framework marker files. The first environment
// with a marker present wins; a project with none is Generic.
// Missing files are expected, any other stat failure is returned.
func Classify(root string) (Environment, error) {
	for _, m := range markers {
		for _, name := range m.files {
			ok, err := exists(filepath.Join(root, name))
			if err != nil {
				return "", fmt.Errorf("failed to check %s: %w", name, err)
			}
			if ok {
				logger.Debug("[DEBUG] Found %s, project is %s\n", name, m.env)
				return m.env, nil
			}
		}
	}
	logger.Debug("[DEBUG] No framework marker in %s, using generic preset\n", root)
	return Generic, nil
}

func exists(p string) (bool, error) {
	_, err := os.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
