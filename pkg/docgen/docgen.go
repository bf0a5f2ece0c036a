package docgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/fsutil"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/listing"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/markdown"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/mdformat"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

// ErrMissingDoc indicates a rule has no documentation file.
var ErrMissingDoc = errors.New("missing rule doc")

// Run executes one generation pass. Rules are processed strictly in
// registry order, then the rules list document is regenerated, so two runs
// over the same tree produce identical results.
//
// Fatal conditions (unreadable manifest, missing rule doc, missing list
// markers) abort with an error. Per-doc validation findings are not fatal:
// they land on the Result and the caller decides how to report them.
func Run(ctx context.Context, opts Options) (*Result, error) {
	p, err := plugin.Load(ctx, opts.effectivePluginPath())
	if err != nil {
		return nil, err
	}
	configs, err := plugin.ResolveConfigs(p)
	if err != nil {
		return nil, err
	}

	g := &generator{
		plugin:    p,
		configs:   configs,
		opts:      opts,
		formatter: opts.effectiveFormatter(),
		root:      projectRoot(opts),
	}

	result := &Result{Plugin: p.Name, Prefix: p.Prefix}
	for _, name := range p.RuleNames() {
		rule, _ := p.Rule(name)
		outcome, err := g.processRule(ctx, rule)
		if err != nil {
			return nil, err
		}
		result.accumulate(outcome)
	}

	if err := g.processList(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

type generator struct {
	plugin    *plugin.Plugin
	configs   plugin.ConfigsToRules
	opts      Options
	formatter mdformat.Formatter
	root      string
}

// projectRoot resolves the directory relative document paths anchor to.
func projectRoot(opts Options) string {
	if opts.ProjectDir != "" {
		return opts.ProjectDir
	}
	path := opts.effectivePluginPath()
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}

func (g *generator) docPath(template string) string {
	return filepath.Join(g.root, filepath.FromSlash(template))
}

func (g *generator) processRule(ctx context.Context, rule plugin.Rule) (RuleOutcome, error) {
	path := g.docPath(docs.ExpandNameTemplate(g.opts.effectivePathRuleDoc(), rule.Name))
	outcome := RuleOutcome{Rule: rule.Name, Path: path}

	content, err := fsutil.ReadFile(ctx, path)
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		if g.opts.InitRuleDocs {
			content = nil
			outcome.Created = true
		} else if rule.Deprecated && !g.opts.RequireDeprecatedDoc {
			outcome.Skipped = true
			return outcome, nil
		} else {
			return outcome, fmt.Errorf("%w: rule %q expects %s", ErrMissingDoc, rule.Name, path)
		}
	case err != nil:
		return outcome, err
	}

	body := string(content)
	lines := markdown.SplitLines(body)
	if outcome.Created {
		lines = scaffoldBody(g.opts.Policy.RequiredSections)
	}

	enabled := g.configs.ConfigsEnabling(rule.Name)
	header := docs.BuildHeader(rule, g.plugin.Prefix, enabled, g.opts.effectiveTitleFormat(), g.opts.noticeOptions())
	merged := docs.MergeHeader(lines, header, docs.EndRuleHeaderMarker)

	formatted, err := g.formatter.Format(path, []byte(markdown.JoinLines(merged)))
	if err != nil {
		return outcome, fmt.Errorf("format %s: %w", path, err)
	}

	if g.opts.Check {
		outcome.Diff = docs.Unified(path, content, formatted)
	} else {
		written, err := fsutil.WriteAtomicIfChanged(ctx, path, formatted, 0)
		if err != nil {
			return outcome, err
		}
		outcome.Written = written
	}

	// Validation reads the document as the author last saved it, not the
	// merged output: findings should point at prose the author can edit.
	if !outcome.Created {
		outcome.Diagnostics = docs.Validate(rule, body, g.opts.Policy)
		if g.opts.CheckCodeSamples {
			outcome.Diagnostics = append(outcome.Diagnostics, docs.CheckCodeSamples(rule.Name, body)...)
		}
	}

	return outcome, nil
}

func (g *generator) processList(ctx context.Context, result *Result) error {
	path := g.docPath(g.opts.effectivePathRuleList())
	result.ListPath = path

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("rules list: %w", err)
	}

	generated := listing.Generate(g.plugin, g.configs, g.opts.listingOptions())
	updated, err := listing.UpdateDocument(string(content), generated)
	if err != nil {
		return fmt.Errorf("rules list %s: %w", path, err)
	}

	formatted, err := g.formatter.Format(path, []byte(updated))
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}

	if g.opts.Check {
		result.ListDiff = docs.Unified(path, content, formatted)
		return nil
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, formatted, 0)
	if err != nil {
		return err
	}
	result.ListWritten = written
	return nil
}

// scaffoldBody is the document body a scaffolded rule doc starts with. The
// generated header is merged in above it afterwards.
func scaffoldBody(sections []string) []string {
	if len(sections) == 0 {
		sections = []string{"Rule details"}
	}
	lines := make([]string, 0, 2*len(sections)+1)
	for _, section := range sections {
		lines = append(lines, "", "## "+section)
	}
	return append(lines, "")
}
