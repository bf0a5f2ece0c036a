// Package cli provides the Cobra command structure for eslint-doc-generator.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/logging"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// ErrUsage marks command-line usage errors (unknown flags, bad arguments).
var ErrUsage = errors.New("invalid usage")

// NewRootCommand creates the root eslint-doc-generator command. The root
// command itself runs generation; subcommands cover everything else.
func NewRootCommand(info BuildInfo) *cobra.Command {
	// The CLI layer starts zero-valued so only flags the user actually set
	// survive the config merge.
	cliCfg := &config.Config{}
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "eslint-doc-generator [path]",
		Short: "Generate documentation for a lint plugin's rules",
		Long: `eslint-doc-generator keeps a lint plugin's Markdown documentation in sync
with the plugin's rule metadata.

For every rule it synthesizes the doc's title and notice header (deprecation,
enabling configs, fixability, suggestions, type-checking requirements) and
merges it over the previous header, leaving the hand-written body untouched.
It also regenerates the rules table in the README and validates doc contents
against the rule metadata.`,
		Example: `  eslint-doc-generator                  # Generate docs for the plugin in .
  eslint-doc-generator ./plugin         # Generate docs for another directory
  eslint-doc-generator --check          # Fail instead of writing (for CI)
  eslint-doc-generator --init-rule-docs # Scaffold missing rule docs`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("%w: expected at most one path argument, got %d", ErrUsage, len(args))
			}
			return nil
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, cliCfg, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	addGenerateFlags(rootCmd, cliCfg, flags)

	// Flag parse failures are usage errors, not config errors.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newRulesCommand(flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
