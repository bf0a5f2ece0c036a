package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/logging"
	"github.com/MichaelDeBoey/eslint-doc-generator/internal/ui/pretty"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	URL                  string   `json:"url,omitempty"`
	Type                 string   `json:"type,omitempty"`
	Fixable              bool     `json:"fixable"`
	HasSuggestions       bool     `json:"hasSuggestions"`
	RequiresTypeChecking bool     `json:"requiresTypeChecking"`
	Deprecated           bool     `json:"deprecated"`
	ReplacedBy           []string `json:"replacedBy,omitempty"`
	Configs              []string `json:"configs,omitempty"`
}

func newRulesCommand(flags *generateFlags) *cobra.Command {
	rulesOpts := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules [path]",
		Short: "List the plugin's rules",
		Long: `List every rule in the plugin manifest with its description, type,
and metadata flags (fixable, deprecated).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			p, err := plugin.Load(ctx, path)
			if err != nil {
				return fmt.Errorf("load plugin: %w", err)
			}

			if rulesOpts.format == formatJSON {
				return outputRulesJSON(cmd, p)
			}

			return outputRulesTable(cmd, p, flags.color)
		},
	}

	cmd.Flags().StringVar(&rulesOpts.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesTable renders the rules as a width-constrained text table.
func outputRulesTable(cmd *cobra.Command, p *plugin.Plugin, colorMode string) error {
	out := cmd.OutOrStdout()

	if len(p.RuleNames()) == 0 {
		logger := logging.NewInteractive()
		logger.Info("plugin has no rules", logging.FieldPlugin, p.Name)
		return nil
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	formatter := pretty.NewTableFormatter(styles, terminalWidth(out))

	fmt.Fprint(out, formatter.FormatRules(p))
	return nil
}

// terminalWidth probes the output's terminal width, zero when not a TTY
// (the formatter falls back to its default).
func terminalWidth(out any) int {
	file, ok := out.(*os.File)
	if !ok {
		return 0
	}
	if !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(cmd *cobra.Command, p *plugin.Plugin) error {
	configs, err := plugin.ResolveConfigs(p)
	if err != nil {
		return fmt.Errorf("resolve configs: %w", err)
	}

	names := p.RuleNames()
	infos := make([]ruleInfo, 0, len(names))
	for _, name := range names {
		rule, ok := p.Rule(name)
		if !ok {
			continue
		}
		infos = append(infos, ruleInfo{
			Name:                 rule.Name,
			Description:          rule.Description,
			URL:                  rule.URL,
			Type:                 rule.Type,
			Fixable:              rule.Fixable,
			HasSuggestions:       rule.HasSuggestions,
			RequiresTypeChecking: rule.RequiresTypeChecking,
			Deprecated:           rule.Deprecated,
			ReplacedBy:           rule.ReplacedBy,
			Configs:              configs.ConfigsEnabling(name),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
