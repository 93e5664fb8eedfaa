package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "stylekit resolves style flags into CSS for the site's element templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logFormatAuto, "Log format: auto, json or console")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newFlagsCmd())
	cmd.AddCommand(newGlobalsCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
