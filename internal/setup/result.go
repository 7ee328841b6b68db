package setup

import (
	"nocta-ui/internal/config"
	"nocta-ui/internal/detect"
	"nocta-ui/internal/installer"
)

// Outcome is how an init run ended when it did not return an error.
type Outcome int

const (
	// Initialized means components.json was written by this run.
	Initialized Outcome = iota
	// AlreadyInitialized means a record existed and nothing was touched.
	AlreadyInitialized
)

// Status of a single sub-step after the record is persisted.
type Status string

const (
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Step names, in execution order.
const (
	StepDependencies = "dependencies"
	StepUtils        = "utils"
	StepTokens       = "tokens"
)

// StepResult records one fail-soft sub-step.
type StepResult struct {
	Name   string
	Status Status
	Path   string // File created or modified, when there is one
	Detail string // Short human-readable explanation
	Err    error  // Set when Status is StatusFailed
}

// Result aggregates everything an init run decided and did.
type Result struct {
	Outcome        Outcome
	Config         *config.Config
	Environment    detect.Environment
	TailwindV4     bool
	PackageManager installer.PackageManager
	Steps          []StepResult
}

// Degraded reports whether any sub-step failed.
func (r *Result) Degraded() bool {
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Step returns the result of the named sub-step.
func (r *Result) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}
