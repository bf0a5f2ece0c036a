package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MichaelDeBoey/eslint-doc-generator/pkg/plugin"
)

func testPlugin() (*plugin.Plugin, plugin.ConfigsToRules) {
	p := &plugin.Plugin{
		Name:   "eslint-plugin-example",
		Prefix: "example",
		Rules: map[string]plugin.Rule{
			"no-foo": {Name: "no-foo", Description: "disallow foo", Fixable: true, Type: "problem"},
			"no-bar": {Name: "no-bar", Description: "disallow bar", Deprecated: true, Type: "suggestion"},
			"no-baz": {Name: "no-baz", Description: "disallow baz", HasSuggestions: true},
		},
	}
	configs := plugin.ConfigsToRules{
		"recommended": {"no-foo": true},
		"strict":      {"no-foo": true, "no-baz": true},
	}
	return p, configs
}

func TestGenerate_TableShape(t *testing.T) {
	p, configs := testPlugin()

	got := Generate(p, configs, Options{PathRuleList: "README.md"})
	lines := strings.Split(got, "\n")

	// No rule requires type checking, so the 💭 column must not render.
	assert.Contains(t, lines, "| Name | Description | 💼 | 🔧 | 💡 | ❌ |")
	assert.Contains(t, lines, "|"+strings.Repeat(" :-- |", 6))
	assert.Contains(t, lines, "| [no-bar](docs/rules/no-bar.md) | disallow bar |  |  |  | ❌ |")
	assert.Contains(t, lines, "| [no-baz](docs/rules/no-baz.md) | disallow baz | 1️⃣ |  | 💡 |  |")
	assert.Contains(t, lines, "| [no-foo](docs/rules/no-foo.md) | disallow foo | ✅ 1️⃣ | 🔧 |  |  |")
	assert.NotContains(t, got, "💭")
}

func TestGenerate_RowsInRegistryOrder(t *testing.T) {
	p, configs := testPlugin()

	got := Generate(p, configs, Options{})

	bar := strings.Index(got, "[no-bar]")
	baz := strings.Index(got, "[no-baz]")
	foo := strings.Index(got, "[no-foo]")
	require.True(t, bar >= 0 && baz >= 0 && foo >= 0)
	assert.Less(t, bar, baz)
	assert.Less(t, baz, foo)
}

func TestGenerate_Legend(t *testing.T) {
	p, configs := testPlugin()

	got := Generate(p, configs, Options{})
	lines := strings.Split(got, "\n")

	assert.Contains(t, lines, "✅ Enabled in the `recommended` config.\\")
	assert.Contains(t, lines, "1️⃣ Enabled in the `strict` config.\\")
	assert.Contains(t, lines, "❌ Deprecated.")
	// The legend block sits above the table, separated by one blank line.
	assert.Contains(t, got, "❌ Deprecated.\n\n| Name |")
}

func TestGenerate_LegendLinksConfigWord(t *testing.T) {
	p, configs := testPlugin()
	opts := Options{URLConfigs: "https://example.com/#configs"}

	got := Generate(p, configs, opts)

	assert.Contains(t, got, "✅ Enabled in the `recommended` [config](https://example.com/#configs).")
}

func TestGenerate_IgnoreDeprecated(t *testing.T) {
	p, configs := testPlugin()

	got := Generate(p, configs, Options{IgnoreDeprecated: true})

	assert.NotContains(t, got, "no-bar")
	// With the only deprecated rule gone the ❌ column disappears too.
	assert.NotContains(t, got, "❌")
}

func TestGenerate_IgnoreConfigs(t *testing.T) {
	p, configs := testPlugin()

	got := Generate(p, configs, Options{IgnoreConfigs: []string{"strict"}})

	assert.NotContains(t, got, "strict")
	assert.NotContains(t, got, "1️⃣")
	assert.Contains(t, got, "✅ Enabled in the `recommended` config.")
}

func TestGenerate_ConfigEmojiOverride(t *testing.T) {
	p, configs := testPlugin()
	opts := Options{ConfigEmojis: map[string]string{"strict": "🔒"}}

	got := Generate(p, configs, opts)

	assert.Contains(t, got, "🔒 Enabled in the `strict` config.")
	assert.NotContains(t, got, "1️⃣")
}

func TestGenerate_URLRuleDoc(t *testing.T) {
	p, configs := testPlugin()
	opts := Options{URLRuleDoc: "https://example.com/rules/{name}.html"}

	got := Generate(p, configs, opts)

	assert.Contains(t, got, "[no-foo](https://example.com/rules/no-foo.html)")
}

func TestGenerate_NestedRuleListPathUsesRelativeLinks(t *testing.T) {
	p, configs := testPlugin()
	opts := Options{PathRuleList: "docs/rules/README.md"}

	got := Generate(p, configs, opts)

	assert.Contains(t, got, "[no-foo](no-foo.md)")
}

func TestGenerate_ColumnSelection(t *testing.T) {
	p, configs := testPlugin()
	opts := Options{Columns: []Column{ColumnDeprecated}}

	got := Generate(p, configs, opts)

	assert.Contains(t, got, "| Name | Description | ❌ |")
	assert.NotContains(t, got, "💼")
	assert.NotContains(t, got, "🔧")
}

func TestGenerate_SplitByType(t *testing.T) {
	p, configs := testPlugin()

	got := Generate(p, configs, Options{Split: SplitType})

	// no-baz has no type and leads without a heading; typed groups follow
	// in sorted order.
	problem := strings.Index(got, "### Problem")
	suggestion := strings.Index(got, "### Suggestion")
	baz := strings.Index(got, "[no-baz]")
	require.True(t, problem >= 0 && suggestion >= 0 && baz >= 0)
	assert.Less(t, baz, problem)
	assert.Less(t, problem, suggestion)
}

func TestGenerate_SplitByDeprecated(t *testing.T) {
	p, configs := testPlugin()

	got := Generate(p, configs, Options{Split: SplitDeprecated})

	require.Contains(t, got, "### Deprecated")
	deprecated := strings.Index(got, "### Deprecated")
	assert.Less(t, strings.Index(got, "[no-foo]"), deprecated)
	assert.Greater(t, strings.Index(got, "[no-bar]"), deprecated)
}

func TestUpdateDocument(t *testing.T) {
	content := "# Plugin\n\nIntro.\n\n" +
		BeginRulesListMarker + "\nstale\n" + EndRulesListMarker + "\n\nFooter.\n"

	got, err := UpdateDocument(content, "TABLE")
	require.NoError(t, err)

	want := "# Plugin\n\nIntro.\n\n" +
		BeginRulesListMarker + "\n\nTABLE\n\n" + EndRulesListMarker + "\n\nFooter.\n"
	assert.Equal(t, want, got)

	again, err := UpdateDocument(got, "TABLE")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestUpdateDocument_MissingMarkers(t *testing.T) {
	_, err := UpdateDocument("# Plugin\n\nNo markers here.\n", "TABLE")
	assert.ErrorIs(t, err, ErrMarkersNotFound)

	_, err = UpdateDocument(BeginRulesListMarker+"\n", "TABLE")
	assert.ErrorIs(t, err, ErrMarkersNotFound)

	_, err = UpdateDocument(EndRulesListMarker+"\n"+BeginRulesListMarker+"\n", "TABLE")
	assert.ErrorIs(t, err, ErrMarkersNotFound)
}

func TestConfigBadges(t *testing.T) {
	badges := ConfigBadges([]string{"strict", "recommended", "style", "all"}, nil)

	assert.Equal(t, "✅", badges["recommended"])
	assert.Equal(t, "🎨", badges["style"])
	// Numbers go out in sorted name order.
	assert.Equal(t, "1️⃣", badges["all"])
	assert.Equal(t, "2️⃣", badges["strict"])
}

func TestConfigBadges_Overrides(t *testing.T) {
	badges := ConfigBadges([]string{"recommended", "extra"}, map[string]string{"recommended": "🌟"})

	assert.Equal(t, "🌟", badges["recommended"])
	assert.Equal(t, "1️⃣", badges["extra"])
}

func TestConfigBadges_FallbackAfterNumbersRunOut(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = string(rune('a'+i)) + "-config"
	}

	badges := ConfigBadges(names, nil)

	assert.Equal(t, "1️⃣", badges["a-config"])
	assert.Equal(t, "🔟", badges["j-config"])
	assert.Equal(t, BadgeFallback, badges["k-config"])
	assert.Equal(t, BadgeFallback, badges["l-config"])
}

func TestParseSplitKind(t *testing.T) {
	for _, valid := range []string{"", "type", "deprecated"} {
		kind, err := ParseSplitKind(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(kind))
	}

	_, err := ParseSplitKind("severity")
	assert.Error(t, err)
}

func TestParseColumn(t *testing.T) {
	col, err := ParseColumn("has-suggestions")
	require.NoError(t, err)
	assert.Equal(t, ColumnHasSuggestions, col)

	_, err = ParseColumn("shiny")
	assert.Error(t, err)
}

func TestGenerate_EscapesPipesInDescriptions(t *testing.T) {
	p := &plugin.Plugin{
		Name:   "eslint-plugin-example",
		Prefix: "example",
		Rules: map[string]plugin.Rule{
			"no-pipe": {Name: "no-pipe", Description: "disallow a | b"},
		},
	}

	got := Generate(p, plugin.ConfigsToRules{}, Options{})

	assert.Contains(t, got, `disallow a \| b`)
}
