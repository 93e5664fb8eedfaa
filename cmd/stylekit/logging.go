package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

const (
	logFormatAuto    = "auto"
	logFormatJSON    = "json"
	logFormatConsole = "console"
)

// commandLogger builds the logger for a command. Logs go to the command's
// stderr; auto format picks console output only on a terminal.
func commandLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}

	w := cmd.ErrOrStderr()

	var human bool
	switch flags.logFormat {
	case logFormatJSON:
		human = false
	case logFormatConsole:
		human = true
	case logFormatAuto, "":
		human = isTerminal(w)
	default:
		return nil, fmt.Errorf("unknown log format %q (want auto, json or console)", flags.logFormat)
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: human, Writer: w})
	if err != nil {
		return nil, err
	}
	return log.WithFields(map[string]any{"command": cmd.Name()}), nil
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
