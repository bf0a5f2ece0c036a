package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/cli"
	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/docs"
)

const fixtureManifest = `{
	"name": "eslint-plugin-test",
	"rules": {
		"no-foo": {
			"meta": {
				"docs": {"description": "Disallow foo."},
				"type": "problem",
				"fixable": "code"
			}
		},
		"no-bar": {
			"meta": {
				"docs": {"description": "Disallow bar."},
				"deprecated": true,
				"replacedBy": ["no-foo"]
			}
		}
	},
	"configs": {
		"recommended": {"rules": {"test/no-foo": "error"}}
	}
}`

const fixtureReadme = `# eslint-plugin-test

## Rules

<!-- begin auto-generated rules list -->
<!-- end auto-generated rules list -->
`

// writePluginFixture creates a plugin directory with a manifest, a README
// carrying the rules list markers, and stub docs for both rules.
func writePluginFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "eslint-plugin.json"), []byte(fixtureManifest), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(fixtureReadme), 0644))

	docsDir := filepath.Join(dir, "docs", "rules")
	require.NoError(t, os.MkdirAll(docsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "no-foo.md"),
		[]byte("# Old title\n\nExplains why foo is disallowed.\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "no-bar.md"),
		[]byte("# Old bar\n\nExplains why bar is disallowed.\n"), 0644))

	return dir
}

// runCommand executes the root command with the given arguments and returns
// the combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func readFixtureFile(t *testing.T, dir string, parts ...string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(append([]string{dir}, parts...)...))
	require.NoError(t, err)
	return string(content)
}

func TestIntegration_GenerateWritesDocs(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	out, err := runCommand(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out, "docs updated")
	assert.Contains(t, out, "2 rules checked")

	noFoo := readFixtureFile(t, dir, "docs", "rules", "no-foo.md")
	assert.Contains(t, noFoo, docs.EndRuleHeaderMarker)
	assert.Contains(t, noFoo, "test/no-foo")
	assert.Contains(t, noFoo, "Explains why foo is disallowed.")
	assert.NotContains(t, noFoo, "# Old title")

	noBar := readFixtureFile(t, dir, "docs", "rules", "no-bar.md")
	assert.Contains(t, noBar, "deprecated")

	readme := readFixtureFile(t, dir, "README.md")
	assert.Contains(t, readme, "no-foo")
	assert.Contains(t, readme, "no-bar")
}

func TestIntegration_GenerateIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	_, err := runCommand(t, dir)
	require.NoError(t, err)

	out, err := runCommand(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "docs up to date")
}

func TestIntegration_CheckModeReportsStale(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	out, err := runCommand(t, dir, "--check")
	require.Error(t, err)
	assert.Equal(t, cli.ExitIssuesFound, cli.ExitCode(err))

	assert.Contains(t, out, "diff --git")
	assert.Contains(t, out, "out of date")

	// Check mode must not touch the files.
	noFoo := readFixtureFile(t, dir, "docs", "rules", "no-foo.md")
	assert.Equal(t, "# Old title\n\nExplains why foo is disallowed.\n", noFoo)
}

func TestIntegration_CheckModeAfterGenerate(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	_, err := runCommand(t, dir)
	require.NoError(t, err)

	out, err := runCommand(t, dir, "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "docs up to date")
}

func TestIntegration_InitRuleDocs(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "docs", "rules", "no-foo.md")))

	out, err := runCommand(t, dir, "--init-rule-docs")
	require.NoError(t, err)
	assert.Contains(t, out, "created")

	noFoo := readFixtureFile(t, dir, "docs", "rules", "no-foo.md")
	assert.Contains(t, noFoo, docs.EndRuleHeaderMarker)
}

func TestIntegration_MissingDocFails(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "docs", "rules", "no-foo.md")))

	_, err := runCommand(t, dir)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "no-foo")
}

func TestIntegration_MissingDeprecatedDocSkipped(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "docs", "rules", "no-bar.md")))

	out, err := runCommand(t, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 skipped")
}

func TestIntegration_ForbiddenSectionDiagnostics(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)
	doc := "# Old title\n\nExplains why foo is disallowed.\n\n## Limitations\n\nNone.\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "rules", "no-foo.md"), []byte(doc), 0644))

	out, err := runCommand(t, dir, "--rule-doc-section-exclude", "Limitations")
	require.Error(t, err)
	assert.Equal(t, cli.ExitIssuesFound, cli.ExitCode(err))

	assert.Contains(t, out, "no-foo")
	assert.Contains(t, out, "forbidden section")
	assert.Contains(t, out, "1 issue")
}

func TestIntegration_ProjectConfigDiscovered(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	// Point the rules list somewhere else via the project config.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".eslint-doc-generatorrc.yml"),
		[]byte("path_rule_list: RULES.md\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "RULES.md"), []byte(fixtureReadme), 0644))

	_, err := runCommand(t, dir)
	require.NoError(t, err)

	rules := readFixtureFile(t, dir, "RULES.md")
	assert.Contains(t, rules, "no-foo")

	// README keeps its empty markers.
	readme := readFixtureFile(t, dir, "README.md")
	assert.Equal(t, fixtureReadme, readme)
}

func TestIntegration_ExplicitConfigEnablesCheck(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	cfgPath := filepath.Join(dir, "ci-config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("check: true\n"), 0644))

	_, err := runCommand(t, dir, "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIssuesFound, cli.ExitCode(err))

	noFoo := readFixtureFile(t, dir, "docs", "rules", "no-foo.md")
	assert.NotContains(t, noFoo, docs.EndRuleHeaderMarker)
}

func TestIntegration_PluginNotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCommand(t, dir)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestIntegration_InvalidFlagValue(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	_, err := runCommand(t, dir, "--rule-doc-title-format", "sideways")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "rule_doc_title_format")
}

func TestIntegration_InitCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, ".eslint-doc-generatorrc.yml")

	_, err := runCommand(t, "init", "--output", target)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "path_rule_doc")

	// Refuses to overwrite without --force.
	_, err = runCommand(t, "init", "--output", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCommand(t, "init", "--output", target, "--force")
	require.NoError(t, err)
}

func TestIntegration_InitCommandJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, ".eslint-doc-generatorrc.json")

	_, err := runCommand(t, "init", "--format", "json", "--full", "--output", target)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, json.Valid(content), "expected valid JSON, got: %s", content)
}

func TestIntegration_RulesJSON(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	out, err := runCommand(t, "rules", dir, "--format", "json")
	require.NoError(t, err)

	var rules []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	require.Len(t, rules, 2)

	byName := map[string]map[string]any{}
	for _, rule := range rules {
		name, _ := rule["name"].(string)
		byName[name] = rule
	}

	require.Contains(t, byName, "no-foo")
	assert.Equal(t, true, byName["no-foo"]["fixable"])
	configs, _ := byName["no-foo"]["configs"].([]any)
	assert.Contains(t, configs, "recommended")

	require.Contains(t, byName, "no-bar")
	assert.Equal(t, true, byName["no-bar"]["deprecated"])
}

func TestIntegration_RulesText(t *testing.T) {
	t.Parallel()

	dir := writePluginFixture(t)

	out, err := runCommand(t, "rules", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "no-foo")
	assert.Contains(t, out, "no-bar")
	assert.True(t, strings.Contains(out, "2 rules"), "expected rule count footer, got: %s", out)
}
