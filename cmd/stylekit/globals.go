package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
)

// initializeGlobals is swapped in tests so each run gets a fresh injector.
var initializeGlobals = style.InitializeGlobalStyles

func newGlobalsCmd(root *rootFlags) *cobra.Command {
	var fontURL string

	cmd := &cobra.Command{
		Use:   "globals",
		Short: "Print the global rules: resets, @font-face and the flash keyframes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := commandLogger(cmd, root)
			if err != nil {
				return err
			}

			sheet := &style.Sheet{}
			if !initializeGlobals(sheet, fontURL) {
				log.Warn("global rules were already injected by this process")
				return nil
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), sheet.String())
			return err
		},
	}

	cmd.Flags().StringVar(&fontURL, "font-url", "/fonts/Font.ttf", "URL embedded in the @font-face rule")

	return cmd
}
