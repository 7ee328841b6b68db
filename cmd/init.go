package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nocta-ui/internal/config"
	"nocta-ui/internal/installer"
	"nocta-ui/internal/logger"
	"nocta-ui/internal/setup"
)

// initCmd detects the project and writes components.json, then installs
// dependencies, the utils module and the design tokens.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize your project with components config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectRoot()
		if err != nil {
			return err
		}

		logger.Info("Initializing nocta-ui...\n")
		res, err := setup.New(root).Run()
		if err != nil {
			logger.Error("Failed to initialize nocta-ui\n")
			return err
		}
		printSummary(res)
		return nil
	},
}

// The subcommands below rerun a single step against an existing components.json.
// init itself refuses to run twice, so they are the way to finish a partial run.

var initDepsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Install the required dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _, err := loadInitializer()
		if err != nil {
			return err
		}
		step, _ := in.InstallDependencies()
		return reportStep(step)
	},
}

var initUtilsCmd = &cobra.Command{
	Use:   "utils",
	Short: "Create the cn() utility module",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, cfg, err := loadInitializer()
		if err != nil {
			return err
		}
		return reportStep(in.CreateUtils(cfg))
	},
}

var initTokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Add the Nocta design tokens to your Tailwind setup",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, cfg, err := loadInitializer()
		if err != nil {
			return err
		}
		return reportStep(in.AddTokens(cfg))
	},
}

func loadInitializer() (*setup.Initializer, *config.Config, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, nil, err
	}
	return setup.New(root), cfg, nil
}

// reportStep prints a single step outcome. A failed step is an error here:
// the user asked for exactly this step.
func reportStep(step setup.StepResult) error {
	switch step.Status {
	case setup.StatusDone:
		logger.Success("✅ %s: %s\n", step.Name, step.Detail)
		if step.Path != "" {
			logger.Hint("   %s\n", step.Path)
		}
	case setup.StatusSkipped:
		logger.Warn("⚠️  %s skipped: %s\n", step.Name, step.Detail)
	case setup.StatusFailed:
		return fmt.Errorf("%s: %w", step.Name, step.Err)
	}
	return nil
}

func printSummary(res *setup.Result) {
	if res.Outcome == setup.AlreadyInitialized {
		logger.Warn("⚠️  %s already exists!\n", config.FileName)
		logger.Hint("Your project is already initialized.\n")
		return
	}

	if res.Degraded() {
		logger.Warn("nocta-ui initialized with warnings\n")
	} else {
		logger.Success("nocta-ui initialized successfully!\n")
	}

	logger.Success("\n✅ Configuration created:\n")
	logger.Hint("   %s (%s preset)\n", config.FileName, res.Environment)

	if deps, ok := res.Step(setup.StepDependencies); ok {
		if deps.Status == setup.StatusFailed {
			logger.Warn("\n⚠️  Dependencies not installed:\n")
			logger.Hint("   Run: %s\n", deps.Detail)
		} else {
			logger.Info("\n📦 Dependencies installed with %s:\n", res.PackageManager)
			for _, d := range installer.RequiredDependencies {
				logger.Hint("   %s@%s\n", d.Name, d.Version)
			}
		}
	}

	if utils, ok := res.Step(setup.StepUtils); ok && utils.Status == setup.StatusDone {
		logger.Success("\n🔧 Utility functions created:\n")
		logger.Hint("   %s\n", utils.Path)
		logger.Hint("   • %s\n", utils.Detail)
	}

	if tok, ok := res.Step(setup.StepTokens); ok {
		if tok.Status == setup.StatusDone {
			logger.Success("\n🎨 Design tokens added:\n")
			logger.Hint("   %s\n", tok.Path)
			logger.Hint("   • Nocta color palette (%s)\n", tok.Detail)
			logger.Hint("   • Use: text-nocta-500, bg-nocta-100, etc.\n")
		} else {
			logger.Warn("\n⚠️  Design tokens skipped (already exist or error occurred)\n")
		}
	}

	if res.TailwindV4 {
		logger.Info("\n🎨 Tailwind v4 detected!\n")
		logger.Hint("   Make sure your CSS file includes @import \"tailwindcss\";\n")
	}

	logger.Info("\n🚀 You can now add components:\n")
	logger.Hint("   npx nocta-ui add button\n")
}

func init() {
	initCmd.AddCommand(initDepsCmd)
	initCmd.AddCommand(initUtilsCmd)
	initCmd.AddCommand(initTokensCmd)
	rootCmd.AddCommand(initCmd)
}
