package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

type templatesOptions struct {
	jsonOutput bool
}

func newTemplatesCmd() *cobra.Command {
	opts := &templatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List element templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return renderTemplatesJSON(cmd.OutOrStdout())
			}
			return renderTemplatesTable(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type templateJSON struct {
	Name    string `json:"name"`
	Element string `json:"element"`
	Steps   int    `json:"steps"`
	Example string `json:"example"`
}

func renderTemplatesJSON(w io.Writer) error {
	payload := make([]templateJSON, 0)
	for _, tmpl := range style.Templates() {
		payload = append(payload, templateJSON{
			Name:    tmpl.Name,
			Element: tmpl.Element,
			Steps:   len(tmpl.Steps),
			Example: string(tmpl.Resolve(style.Flags{})),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderTemplatesTable(w io.Writer) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, header(w, "NAME\tELEMENT\tSTEPS"))
	for _, tmpl := range style.Templates() {
		fmt.Fprintf(writer, "%s\t%s\t%d\n", tmpl.Name, tmpl.Element, len(tmpl.Steps))
	}
	return writer.Flush()
}

func newFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List recognized style flags with their types and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, header(w, "FLAG\tTYPE\tOPTIONS\tDEFAULT"))
			for _, spec := range style.FlagSpecs() {
				options := strings.Join(spec.Options, "|")
				if options == "" {
					options = "-"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", spec.Name, spec.Kind, options, spec.Default)
			}
			return writer.Flush()
		},
	}
}

// header styles a table header on terminals only, so tabwriter alignment and
// piped output stay plain.
func header(w io.Writer, text string) string {
	if !isTerminal(w) {
		return text
	}
	return headerStyle.Render(text)
}
