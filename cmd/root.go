package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"nocta-ui/internal/logger"
)

// debug enables verbose logging via the `--debug` flag.
var debug bool

// projectDir is the host project root, set with `--cwd`. Empty means the working directory.
var projectDir string

// rootCmd is the base command for the `nocta-ui` CLI.
var rootCmd = &cobra.Command{
	Use:   "nocta-ui",
	Short: "CLI for Nocta UI Components Library",

	// Errors are printed by Execute in the CLI's own colors.
	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute runs the selected subcommand.
// A returned error is fatal: it is printed and the process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Error: %v\n", err)
		os.Exit(1)
	}
}

// projectRoot resolves the directory the engine works on.
func projectRoot() (string, error) {
	if projectDir != "" {
		return projectDir, nil
	}
	return os.Getwd()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&projectDir, "cwd", "", "Project root (defaults to the current directory)")
}
