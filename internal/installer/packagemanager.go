package installer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"nocta-ui/internal/logger"
)

// PackageManager identifies the tool that owns a project's node_modules.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// lockfiles maps lock artifacts to their manager, in precedence order.
// npm is the fallback when none is present.
var lockfiles = []struct {
	file string
	pm   PackageManager
}{
	{"yarn.lock", Yarn},
	{"pnpm-lock.yaml", PNPM},
}

// DetectPackageManager picks the manager governing root from the lock files
// present there. Only presence is checked, contents are never read.
func DetectPackageManager(root string) (PackageManager, error) {
	for _, l := range lockfiles {
		_, err := os.Stat(filepath.Join(root, l.file))
		if err == nil {
			logger.Debug("[DEBUG] Found %s, using %s\n", l.file, l.pm)
			return l.pm, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to check %s: %w", l.file, err)
		}
	}
	return NPM, nil
}

// InstallArgs returns the command and arguments that add names to the project.
// Version ranges are left to the manager to resolve.
func (pm PackageManager) InstallArgs(names []string) (string, []string) {
	verb := "add"
	if pm == NPM || pm == "" {
		pm, verb = NPM, "install"
	}
	return string(pm), append([]string{verb}, names...)
}

// CommandLine renders the install invocation for display.
func (pm PackageManager) CommandLine(names []string) string {
	name, args := pm.InstallArgs(names)
	return name + " " + strings.Join(args, " ")
}
