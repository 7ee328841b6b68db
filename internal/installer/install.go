package installer

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"nocta-ui/internal/logger"
)

// Dependency is a package the component library needs at runtime.
type Dependency struct {
	Name    string
	Version string // Informational; the manager resolves the version it installs
}

// RequiredDependencies are installed by init for the cn() helper.
var RequiredDependencies = []Dependency{
	{Name: "clsx", Version: "^2.1.1"},
	{Name: "tailwind-merge", Version: "^3.3.1"},
}

// Names returns the package names of deps in order.
func Names(deps []Dependency) []string {
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, d.Name)
	}
	return names
}

// Runner executes an external command in dir and waits for it.
type Runner interface {
	Run(dir, name string, args ...string) error
}

// ExecRunner runs commands as child processes sharing the given streams.
// Zero-value streams fall back to the parent's stdin, stdout and stderr.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts name with args in dir and blocks until it exits.
func (r ExecRunner) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", strings.Join(cmd.Args, " "), err)
	}
	return nil
}

// Installer adds dependencies to the project at Root.
type Installer struct {
	Root   string
	Runner Runner
}

// New returns an Installer for root that spawns real processes.
func New(root string) *Installer {
	return &Installer{Root: root, Runner: ExecRunner{}}
}

// Install detects the package manager and runs its install command for deps.
// It returns the manager it chose, even on failure, so callers can print a
// manual fallback command.
func (i *Installer) Install(deps []Dependency) (PackageManager, error) {
	pm, err := DetectPackageManager(i.Root)
	if err != nil {
		return NPM, err
	}
	if len(deps) == 0 {
		return pm, nil
	}

	names := Names(deps)
	logger.Info("[INFO] Installing dependencies with %s...\n", pm)

	name, args := pm.InstallArgs(names)
	if err := i.Runner.Run(i.Root, name, args...); err != nil {
		return pm, err
	}
	return pm, nil
}
