package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

type resolveOptions struct {
	Set      []string
	Selector string
	Raw      bool
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <template>",
		Short: "Print one template's CSS for a set of flags",
		Example: `  stylekit resolve p --set center --set fontsize=lead
  stylekit resolve wrapper --set spacechildren --selector .row --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Set, "set", nil, "Set a flag as key=value; a bare key sets a boolean flag")
	cmd.Flags().StringVar(&opts.Selector, "selector", "", "Scope the block under this selector (default: the template's element)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Print the unscoped block with nested rules inline")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, name string, opts resolveOptions) error {
	log, err := commandLogger(cmd, root)
	if err != nil {
		return err
	}

	tmpl, ok := style.Lookup(name)
	if !ok {
		return newCommandError("resolve", fmt.Sprintf("looking up template %q", name),
			fmt.Errorf("unknown template"), "Known templates: "+strings.Join(style.TemplateNames(), ", "))
	}

	flags, unknown, err := style.ParseFlags(opts.Set)
	if err != nil {
		return newCommandError("resolve", "parsing --set values", err, "Boolean flags take true or false.")
	}
	if len(unknown) > 0 {
		log.WithFields(map[string]any{"flags": unknown}).Warn("ignoring unrecognized flags")
	}

	selector := opts.Selector
	if selector == "" {
		selector = tmpl.Element
	}
	if err := config.ValidateElement(config.Element{Selector: selector, Template: tmpl.Name, Flags: flags}); err != nil {
		return newCommandError("resolve", "checking flags for "+tmpl.Name, err, "Sizes take CSS lengths such as 24px, 50% or auto.")
	}

	if opts.Raw {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tmpl.Resolve(flags))
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), style.Scope(selector, tmpl.Sections(flags)))
	return err
}
