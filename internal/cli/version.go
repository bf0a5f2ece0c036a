package cli

import (
	"github.com/spf13/cobra"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of eslint-doc-generator.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			logger := logging.NewInteractive()

			logger.Info("eslint-doc-generator",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}

	return cmd
}
