// Package setup runs `init`: it detects the host project, persists
// components.json and then performs the fail-soft follow-up steps.
package setup

import (
	"errors"

	"nocta-ui/internal/config"
	"nocta-ui/internal/detect"
	"nocta-ui/internal/installer"
	"nocta-ui/internal/logger"
	"nocta-ui/internal/scaffold"
	"nocta-ui/internal/tokens"
)

// Initializer prepares the project at Root to consume the component library.
type Initializer struct {
	Root         string
	Runner       installer.Runner
	Dependencies []installer.Dependency
	Palette      tokens.Palette
}

// New returns an Initializer for root with the shipped dependency set and palette.
func New(root string) *Initializer {
	return &Initializer{
		Root:         root,
		Runner:       installer.ExecRunner{},
		Dependencies: installer.RequiredDependencies,
		Palette:      tokens.Default,
	}
}

// Run performs init. Steps run strictly in order:
//  1. refuse to continue if components.json exists (AlreadyInitialized, no error)
//  2. classify the framework and the Tailwind major
//  3. build and write components.json
//  4. install dependencies, write the utils module, inject tokens
//
// Errors from 1-3 are returned. Failures in 4 are recorded in the result and
// the run carries on.
func (i *Initializer) Run() (*Result, error) {
	existing, err := config.Read(i.Root)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Debug("[DEBUG] %s already present, not initializing\n", config.FileName)
		return &Result{Outcome: AlreadyInitialized, Config: existing}, nil
	}

	env, err := detect.Classify(i.Root)
	if err != nil {
		return nil, err
	}
	v4 := detect.IsTailwindV4(i.Root)
	logger.Debug("[DEBUG] Environment %s, Tailwind v4: %t\n", env, v4)

	cfg := config.Build(env, v4)
	if err := config.Write(i.Root, &cfg); err != nil {
		return nil, err
	}

	res := &Result{
		Outcome:     Initialized,
		Config:      &cfg,
		Environment: env,
		TailwindV4:  v4,
	}

	deps, pm := i.InstallDependencies()
	res.PackageManager = pm
	res.Steps = append(res.Steps, deps, i.CreateUtils(&cfg), i.AddTokens(&cfg))
	return res, nil
}

// InstallDependencies installs the dependency set with the project's package manager.
func (i *Initializer) InstallDependencies() (StepResult, installer.PackageManager) {
	step := StepResult{Name: StepDependencies}
	names := installer.Names(i.Dependencies)
	if len(names) == 0 {
		step.Status, step.Detail = StatusSkipped, "nothing to install"
		return step, installer.NPM
	}

	inst := installer.New(i.Root)
	if i.Runner != nil {
		inst.Runner = i.Runner
	}
	pm, err := inst.Install(i.Dependencies)
	if err != nil {
		logger.Warn("[WARN] Dependencies installation failed, but you can install them manually\n")
		logger.Hint("       Run: %s\n", pm.CommandLine(names))
		step.Status, step.Err = StatusFailed, err
		step.Detail = pm.CommandLine(names)
		return step, pm
	}

	step.Status, step.Detail = StatusDone, pm.CommandLine(names)
	return step, pm
}

// CreateUtils writes the cn() helper unless it already exists.
func (i *Initializer) CreateUtils(cfg *config.Config) StepResult {
	step := StepResult{Name: StepUtils}

	res, err := scaffold.WriteUtils(i.Root, cfg)
	step.Path = res.Path
	switch {
	case err != nil:
		logger.Warn("[WARN] Failed to create %s: %v\n", res.Path, err)
		step.Status, step.Err = StatusFailed, err
	case !res.Created:
		logger.Warn("[WARN] %s already exists - skipping creation\n", res.Path)
		step.Status, step.Detail = StatusSkipped, "already exists"
	default:
		step.Status, step.Detail = StatusDone, "cn() function for className merging"
	}
	return step
}

// AddTokens injects the palette into the artifact matching cfg's Tailwind major.
func (i *Initializer) AddTokens(cfg *config.Config) StepResult {
	step := StepResult{Name: StepTokens}

	inj := &tokens.Injector{Root: i.Root, Palette: i.Palette}
	res, err := inj.Inject(cfg, cfg.UsesTailwindV4())
	step.Path = res.Path
	switch {
	case err != nil:
		logger.Warn("[WARN] Design tokens installation failed, but you can add them manually\n")
		if errors.Is(err, tokens.ErrTargetMissing) {
			logger.Hint("       Create %s and run `nocta-ui init tokens`\n", res.Path)
		}
		step.Status, step.Err = StatusFailed, err
	case res.Path == "":
		step.Status, step.Detail = StatusSkipped, "no tailwind config designated"
	case !res.Added:
		step.Status, step.Detail = StatusSkipped, "already present"
	default:
		step.Status, step.Detail = StatusDone, i.Palette.Range()
	}
	return step
}
