package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateRenderOptions(opts renderOptions) error {
	if strings.TrimSpace(opts.ConfigPath) == "" {
		return fmt.Errorf("sheet document is required")
	}

	abs, err := filepath.Abs(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("resolve sheet path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("sheet document does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("sheet path %s is a directory", abs)
	}

	if opts.Check && strings.TrimSpace(opts.OutputPath) == "" {
		return fmt.Errorf("--check needs --output to compare against")
	}

	if opts.OutputPath != "" {
		outAbs, err := filepath.Abs(opts.OutputPath)
		if err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		if outAbs == abs {
			return fmt.Errorf("output path %s would overwrite the sheet document", outAbs)
		}
	}

	return nil
}
