package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MichaelDeBoey/eslint-doc-generator/internal/ui/pretty"
)

// helpPalette holds the Lipgloss styles used by the help templates.
type helpPalette struct {
	command    lipgloss.Style
	heading    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	example    lipgloss.Style
	dim        lipgloss.Style
}

func newHelpPalette(colorEnabled bool) *helpPalette {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &helpPalette{
			command:    plain,
			heading:    plain,
			subcommand: plain,
			flag:       plain,
			example:    plain,
			dim:        plain,
		}
	}

	return &helpPalette{
		command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		example:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trim }}

{{end}}` + usageTemplate

// HelpFormatter renders styled help output for Cobra commands.
type HelpFormatter struct {
	palette *helpPalette
}

// NewHelpFormatter creates a help formatter honoring the color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		palette: newHelpPalette(pretty.IsColorEnabled(colorMode, writer)),
	}
}

// ApplyToCommand installs the styled templates on a command and all of its
// subcommands. A template parse failure leaves the default renderer in place.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	if usageTmpl, err := template.New("usage").Funcs(funcs).Parse(usageTemplate); err == nil {
		cmd.SetUsageFunc(func(command *cobra.Command) error {
			return usageTmpl.Execute(command.OutOrStdout(), command)
		})
	}

	if helpTmpl, err := template.New("help").Funcs(funcs).Parse(helpTemplate); err == nil {
		cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
			if err := helpTmpl.Execute(command.OutOrStdout(), command); err != nil {
				command.PrintErrln(err)
			}
		})
	}
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"heading":    h.palette.heading.Render,
		"command":    h.palette.command.Render,
		"subcommand": h.palette.subcommand.Render,
		"example":    h.palette.example.Render,
		"dim":        h.palette.dim.Render,
		"flags":      h.styleFlagsUsage,
		"join":       strings.Join,
		"rpad":       rpad,
		"trim":       trimTrailingWhitespace,
	}
}

// styleFlagsUsage colors a pflag usage block line by line.
func (h *HelpFormatter) styleFlagsUsage(flags any) string {
	usable, ok := flags.(interface{ FlagUsages() string })
	if !ok {
		return ""
	}

	lines := strings.Split(strings.TrimSuffix(usable.FlagUsages(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine colors the flag column of one usage line, leaving the
// description column untouched. pflag separates the two columns with a run
// of at least two spaces.
func (h *HelpFormatter) styleFlagLine(line string) string {
	end := flagColumnEnd(line)
	if end <= 0 {
		return line
	}
	return h.styleFlagTokens(line[:end]) + line[end:]
}

// flagColumnEnd returns the index where the flag column ends: the first run
// of two or more spaces after a non-space character. Returns -1 when the
// line has no description column.
func flagColumnEnd(line string) int {
	started := false
	gap := 0
	for i, r := range line {
		if r != ' ' {
			if started && gap >= 2 {
				return i - gap
			}
			started = true
			gap = 0
			continue
		}
		if started {
			gap++
		}
	}
	return -1
}

// styleFlagTokens colors flag names and dims type indicators within the
// flag column, preserving the leading indent.
func (h *HelpFormatter) styleFlagTokens(column string) string {
	trimmed := strings.TrimLeft(column, " ")
	indent := column[:len(column)-len(trimmed)]

	tokens := strings.Fields(trimmed)
	for i, token := range tokens {
		name, hadComma := strings.CutSuffix(token, ",")
		if strings.HasPrefix(name, "-") {
			name = h.palette.flag.Render(name)
		} else {
			name = h.palette.dim.Render(name)
		}
		if hadComma {
			name += ","
		}
		tokens[i] = name
	}

	return indent + strings.Join(tokens, " ")
}

// rpad pads a string to the right with spaces.
func rpad(s string, padding int) string {
	if len(s) >= padding {
		return s
	}
	return s + strings.Repeat(" ", padding-len(s))
}

// trimTrailingWhitespace trims trailing spaces and tabs from every line.
func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.Join(lines, "\n")
}
