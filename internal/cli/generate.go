package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/configloader"
	"github.com/MichaelDeBoey/eslint-doc-generator/internal/logging"
	"github.com/MichaelDeBoey/eslint-doc-generator/internal/ui/pretty"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/config"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docgen"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/listing"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/mdformat"
)

// ErrIssuesFound is returned when validation diagnostics were reported or
// check mode found stale documents.
var ErrIssuesFound = errors.New("documentation issues found")

// generateFlags holds flag state that cannot bind straight into the config.
type generateFlags struct {
	debug          bool
	configPath     string
	color          string
	sectionOptions bool
}

func addGenerateFlags(cmd *cobra.Command, cfg *config.Config, flags *generateFlags) {
	cmd.Flags().BoolVar(&cfg.Check, "check", false,
		"report out-of-date docs as diffs instead of writing")
	cmd.Flags().BoolVar(&cfg.InitRuleDocs, "init-rule-docs", false,
		"scaffold missing rule docs instead of failing")
	cmd.Flags().StringVar(&cfg.PathRuleDoc, "path-rule-doc", "",
		"path template for rule docs, {name} expands to the rule name (default docs/rules/{name}.md)")
	cmd.Flags().StringVar(&cfg.PathRuleList, "path-rule-list", "",
		"document carrying the rules table (default README.md)")
	cmd.Flags().StringVar(&cfg.TitleFormat, "rule-doc-title-format", "",
		"title style: name, prefix-name, desc, desc-parens-name, desc-parens-prefix-name")
	cmd.Flags().StringSliceVar(&cfg.Notices, "rule-doc-notices", nil,
		"header notices to emit, in order: configs, config-recommended, deprecated, fixable, has-suggestions, requires-type-checking")
	cmd.Flags().StringSliceVar(&cfg.SectionInclude, "rule-doc-section-include", nil,
		"section headings every rule doc must contain")
	cmd.Flags().StringSliceVar(&cfg.SectionExclude, "rule-doc-section-exclude", nil,
		"section headings no rule doc may contain")
	cmd.Flags().BoolVar(&flags.sectionOptions, "rule-doc-section-options", true,
		"require an Options section exactly when the rule declares options")
	cmd.Flags().BoolVar(&cfg.CheckCodeSamples, "check-code-samples", false,
		"report fenced code blocks without a language tag")
	cmd.Flags().StringSliceVar(&cfg.IgnoreConfigs, "ignore-config", nil,
		"configs to hide from notices, badges, and legend")
	cmd.Flags().StringSliceVar(&cfg.ConfigEmojis, "config-emoji", nil,
		"config badge overrides as name=emoji pairs")
	cmd.Flags().StringSliceVar(&cfg.RuleListColumns, "rule-list-columns", nil,
		"rules table columns: configs, fixable, has-suggestions, requires-type-checking, deprecated")
	cmd.Flags().StringVar(&cfg.RuleListSplit, "rule-list-split", "",
		"partition the rules table by: type, deprecated")
	cmd.Flags().BoolVar(&cfg.IgnoreDeprecatedRules, "ignore-deprecated-rules", false,
		"exclude deprecated rules from the rules table")
	cmd.Flags().BoolVar(&cfg.RequireDeprecatedDoc, "require-deprecated-doc", false,
		"treat a missing doc as fatal even for deprecated rules")
	cmd.Flags().StringVar(&cfg.URLConfigs, "url-configs", "",
		"URL linked from config mentions in notices and legend")
	cmd.Flags().StringVar(&cfg.URLRuleDoc, "url-rule-doc", "",
		"URL template for rule doc links, {name} expands to the rule name")
	cmd.Flags().StringVar(&cfg.Formatter, "formatter", "",
		"Markdown post-processing: default, none")
}

func runGenerate(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *generateFlags) error {
	logger := logging.Default()

	if len(args) == 1 {
		cliCfg.Path = args[0]
	}

	// A bool flag cannot distinguish unset from false, so the tri-state
	// options check only moves into the config when the flag was given.
	if cmd.Flags().Changed("rule-doc-section-options") {
		enabled := flags.sectionOptions
		cliCfg.SectionOptions = &enabled
	}
	cliCfg.Debug = flags.debug
	cliCfg.ConfigFile = flags.configPath
	cliCfg.Color = flags.color

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Config discovery starts at the plugin, not the invocation directory.
	workDir, err := resolveWorkDir(cliCfg.Path)
	if err != nil {
		return err
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig:    cliCfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	logger.Debug("configuration resolved",
		logging.FieldPath, finalCfg.Path,
		"check", finalCfg.Check,
		"path_rule_doc", finalCfg.PathRuleDoc,
		"path_rule_list", finalCfg.PathRuleList,
	)

	runOpts, err := buildRunOptions(finalCfg)
	if err != nil {
		return err
	}

	result, err := docgen.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("generation run failed"), err)
	}

	renderResult(cmd, result, finalCfg.Color, flags.debug)

	if result.Failed() {
		return ErrIssuesFound
	}

	return nil
}

// resolveWorkDir maps the positional path argument to the directory config
// discovery starts from. A manifest file path anchors at its directory.
func resolveWorkDir(path string) (string, error) {
	if path == "" {
		workDir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return workDir, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return path, nil
	}
	return filepath.Dir(path), nil
}

// buildRunOptions translates the merged configuration into generation
// options. The enum values were already validated during loading, so parse
// failures here are wiring bugs, not user errors.
func buildRunOptions(cfg *config.Config) (docgen.Options, error) {
	opts := docgen.Options{
		PluginPath:           cfg.Path,
		Check:                cfg.Check,
		InitRuleDocs:         cfg.InitRuleDocs,
		RequireDeprecatedDoc: cfg.RequireDeprecatedDoc,
		CheckCodeSamples:     cfg.CheckCodeSamples,
		PathRuleDoc:          cfg.PathRuleDoc,
		PathRuleList:         cfg.PathRuleList,
		URLConfigs:           cfg.URLConfigs,
		URLRuleDoc:           cfg.URLRuleDoc,
		IgnoreConfigs:        cfg.IgnoreConfigs,
		IgnoreDeprecated:     cfg.IgnoreDeprecatedRules,
		Policy: docs.ValidatePolicy{
			RequiredSections:  cfg.SectionInclude,
			ForbiddenSections: cfg.SectionExclude,
			OptionsSection:    cfg.SectionOptionsEnabled(),
		},
	}

	if cfg.TitleFormat != "" {
		titleFormat, err := docs.ParseTitleFormat(cfg.TitleFormat)
		if err != nil {
			return docgen.Options{}, err
		}
		opts.TitleFormat = titleFormat
	}

	for _, name := range cfg.Notices {
		kind, err := docs.ParseNoticeKind(name)
		if err != nil {
			return docgen.Options{}, err
		}
		opts.NoticeOrder = append(opts.NoticeOrder, kind)
	}

	for _, name := range cfg.RuleListColumns {
		column, err := listing.ParseColumn(name)
		if err != nil {
			return docgen.Options{}, err
		}
		opts.ListColumns = append(opts.ListColumns, column)
	}

	if cfg.RuleListSplit != "" {
		split, err := listing.ParseSplitKind(cfg.RuleListSplit)
		if err != nil {
			return docgen.Options{}, err
		}
		opts.Split = split
	}

	if cfg.Formatter != "" {
		formatter, err := mdformat.New(mdformat.Kind(cfg.Formatter))
		if err != nil {
			return docgen.Options{}, err
		}
		opts.Formatter = formatter
	}

	emojis, err := cfg.EmojiOverrides()
	if err != nil {
		return docgen.Options{}, err
	}
	opts.ConfigEmojis = emojis

	return opts, nil
}

// renderResult writes diagnostics, pending diffs, and the run summary.
func renderResult(cmd *cobra.Command, result *docgen.Result, colorMode string, debug bool) {
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	// Validation findings, grouped per document.
	for _, outcome := range result.Outcomes {
		if len(outcome.Diagnostics) == 0 {
			continue
		}
		fmt.Fprintln(out, styles.FormatFileHeader(outcome.Path, len(outcome.Diagnostics)))
		for _, diag := range outcome.Diagnostics {
			fmt.Fprint(out, styles.FormatDiagnostic(diag))
		}
		fmt.Fprintln(out)
	}

	// Pending changes, check mode only.
	diffWriter := pretty.NewDiffWriter(out, styles)
	diffWriter.WriteAll(result.Diffs())

	if debug {
		fmt.Fprint(out, styles.FormatSummary(result))
	}
	fmt.Fprint(out, styles.FormatSummaryOneLine(result))
}
