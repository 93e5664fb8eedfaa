package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/tui/preview"
)

var runPreviewProgram = func(cmd *cobra.Command, m preview.Model) error {
	_, err := tea.NewProgram(m,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	).Run()
	return err
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	var (
		set      []string
		selector string
	)

	cmd := &cobra.Command{
		Use:   "preview <template>",
		Short: "Toggle flags interactively and watch the resolved CSS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := commandLogger(cmd, root)
			if err != nil {
				return err
			}

			tmpl, ok := style.Lookup(args[0])
			if !ok {
				return newCommandError("preview", fmt.Sprintf("looking up template %q", args[0]),
					fmt.Errorf("unknown template"), "Known templates: "+strings.Join(style.TemplateNames(), ", "))
			}

			flags, unknown, err := style.ParseFlags(set)
			if err != nil {
				return newCommandError("preview", "parsing --set values", err, "Boolean flags take true or false.")
			}
			if len(unknown) > 0 {
				log.WithFields(map[string]any{"flags": unknown}).Warn("ignoring unrecognized flags")
			}

			if err := config.ValidateElement(config.Element{Selector: selector, Template: tmpl.Name, Flags: flags}); err != nil {
				return newCommandError("preview", "checking flags for "+tmpl.Name, err, "Sizes take CSS lengths such as 24px, 50% or auto.")
			}

			return runPreviewProgram(cmd, preview.NewModel(tmpl, selector, flags))
		},
	}

	cmd.Flags().StringArrayVar(&set, "set", nil, "Initial flag as key=value")
	cmd.Flags().StringVar(&selector, "selector", preview.DefaultSelector, "Selector shown in the preview")

	return cmd
}
