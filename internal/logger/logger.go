package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colorized printing functions for the different log levels.
// Each behaves like fmt.Printf, writing to color.Output.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Success logs completed steps in bold green, used by the init summary.
var Success = color.New(color.FgGreen, color.Bold).PrintfFunc()

// Warn logs warning messages in bright magenta.
// Degraded init steps (failed install, skipped tokens) are reported through it.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Hint logs secondary detail lines (paths, manual commands) in faint gray.
var Hint = color.New(color.FgHiBlack).PrintfFunc()

// Debug logs debug messages in cyan once enabled through Init.
// It starts as a no-op so packages can log before the CLI has parsed its flags.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints cyan messages; otherwise it silently drops them.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
