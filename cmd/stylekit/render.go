package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/render"
	"github.com/alexisbeaulieu97/stylekit/pkg/diff"
)

type renderOptions struct {
	ConfigPath string
	OutputPath string
	FontURL    string
	NoGlobals  bool
	NoLint     bool
	Check      bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a sheet document into a stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRenderOptions(opts); err != nil {
				return err
			}
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the sheet document")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write the stylesheet here instead of stdout")
	cmd.Flags().StringVar(&opts.FontURL, "font-url", "", "Override the sheet's font_url")
	cmd.Flags().BoolVar(&opts.NoGlobals, "no-globals", false, "Leave out resets, @font-face and keyframes")
	cmd.Flags().BoolVar(&opts.NoLint, "no-lint", false, "Skip the CSS grammar check")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Compare with --output instead of writing it; fail when they differ")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	log, err := commandLogger(cmd, root)
	if err != nil {
		return err
	}

	cfg, err := config.ParseConfig(opts.ConfigPath)
	if err != nil {
		return newCommandError("render", "loading "+opts.ConfigPath, err, "Fix the sheet document and try again.")
	}

	if opts.FontURL != "" {
		cfg.FontURL = opts.FontURL
	}
	if opts.NoGlobals {
		cfg.Settings.SkipGlobals = true
	}
	if opts.NoLint {
		cfg.Settings.SkipLint = true
	}

	svc := render.NewService(render.WithLogger(log))
	result, err := svc.Render(cmd.Context(), cfg)
	if err != nil {
		return newCommandError("render", "building stylesheet for "+cfg.Name, err, "Run with --no-lint to inspect the raw output.")
	}

	if opts.Check {
		return checkStylesheet(cmd, log, opts.OutputPath, result.CSS)
	}

	if opts.OutputPath == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), result.CSS)
		return err
	}

	if err := writeStylesheet(opts.OutputPath, result.CSS); err != nil {
		return newCommandError("render", "writing "+opts.OutputPath, err, "Check that the output directory exists and is writable.")
	}

	log.WithFields(map[string]any{"path": opts.OutputPath, "bytes": len(result.CSS)}).Info("stylesheet written")
	return nil
}

func checkStylesheet(cmd *cobra.Command, log *logger.Logger, path, css string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return newCommandError("render", "reading "+path, err, "")
	}

	out, summary := diff.Lines(string(existing), css, path, "rendered")
	if summary.Empty() {
		log.WithFields(map[string]any{"path": path}).Info("stylesheet up to date")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return newCommandError(
		"render",
		"checking "+path,
		fmt.Errorf("stylesheet is stale: %d added, %d removed", summary.Added, summary.Removed),
		"Run render without --check to rewrite it.",
	)
}

func writeStylesheet(path, css string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return os.WriteFile(abs, []byte(css), 0o644)
}
