package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lumberlabs/pep8/internal/ui/pretty"
)

// helpStyles holds the lipgloss styles the help renderer uses. With
// color off every style is the zero style, which renders text as-is.
type helpStyles struct {
	heading    lipgloss.Style
	command    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	example    lipgloss.Style
	dim        lipgloss.Style
}

func newHelpStyles(colorEnabled bool) *helpStyles {
	s := &helpStyles{}
	if !colorEnabled {
		return s
	}
	s.heading = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	s.command = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	s.subcommand = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	s.flag = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	s.example = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return s
}

// HelpFormatter renders styled usage and help text for the command
// tree.
type HelpFormatter struct {
	styles *helpStyles
}

// NewHelpFormatter creates a help formatter honoring the color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

const helpUsageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

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

const helpTopTemplate = `{{if or .Runnable .HasSubCommands}}{{ command .CommandPath }}{{if .Version}} {{ dim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trim }}

{{end}}` + helpUsageTemplate

// ApplyToCommand installs the styled usage and help renderers on cmd;
// cobra propagates them to subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return h.render(command.OutOrStdout(), "usage", helpUsageTemplate, command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.render(command.OutOrStdout(), "help", helpTopTemplate, command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) render(w io.Writer, name, text string, cmd *cobra.Command) error {
	tmpl, err := template.New(name).Funcs(h.templateFuncs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl.Execute(w, cmd)
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"heading":    h.styles.heading.Render,
		"command":    h.styles.command.Render,
		"subcommand": h.styles.subcommand.Render,
		"example":    h.styles.example.Render,
		"dim":        h.styles.dim.Render,
		"flags":      h.flagUsages,
		"rpad":       rpad,
		"trim":       trimTrailingSpace,
	}
}

// flagEntry is one flag's rendered pieces: the plain-text head used
// for column alignment and its usage string.
type flagEntry struct {
	head    string
	varname string
	usage   string
	def     string
}

// flagUsages renders a flag set as aligned, styled lines. It walks the
// flags directly instead of re-parsing pflag's preformatted output, so
// styling cannot drift from the real flag definitions.
func (h *HelpFormatter) flagUsages(fs *pflag.FlagSet) string {
	var entries []flagEntry
	width := 0

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		e := flagEntry{head: "    --" + f.Name}
		if f.Shorthand != "" {
			e.head = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
		}
		e.varname, e.usage = pflag.UnquoteUsage(f)
		if f.DefValue != "" && !isZeroDefault(f) {
			e.def = fmt.Sprintf(" (default %s)", f.DefValue)
		}

		if n := len(e.head) + 1 + len(e.varname); n > width {
			width = n
		}
		entries = append(entries, e)
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		pad := strings.Repeat(" ", width-len(e.head)-len(e.varname))
		line := "  " + h.styles.flag.Render(e.head)
		if e.varname != "" {
			line += " " + h.styles.dim.Render(e.varname)
		} else {
			line += " "
		}
		line += pad + " " + e.usage + h.styles.dim.Render(e.def)
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.Join(lines, "\n")
}

// isZeroDefault reports whether a flag's default adds no information
// to the help line.
func isZeroDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "false", "0", "", "[]":
		return true
	}
	return false
}

// rpad pads s on the right to the given width.
func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// trimTrailingSpace trims trailing whitespace from every line.
func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
