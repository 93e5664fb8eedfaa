package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/tui/preview"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestPreviewCommandBuildsModel(t *testing.T) {
	original := runPreviewProgram
	t.Cleanup(func() { runPreviewProgram = original })

	var got preview.Model
	runPreviewProgram = func(cmd *cobra.Command, m preview.Model) error {
		got = m
		return nil
	}

	_, _, err := executeCommand(t, "preview", "container", "--set", "flex", "--set", "bgc=slate")
	require.NoError(t, err)
	require.Equal(t, style.Flags{Flex: true, BGC: style.BackgroundSlate}, got.Flags())
	require.Contains(t, got.CSS(), ".preview {")
}

func TestPreviewCommandUnknownTemplate(t *testing.T) {
	_, _, err := executeCommand(t, "preview", "footer")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown template")
}

func TestPreviewCommandValidatesInput(t *testing.T) {
	original := runPreviewProgram
	t.Cleanup(func() { runPreviewProgram = original })

	started := false
	runPreviewProgram = func(cmd *cobra.Command, m preview.Model) error {
		started = true
		return nil
	}

	_, _, err := executeCommand(t, "preview", "wrapper", "--set", "width=tall")
	require.Error(t, err)
	var validationErr *stylekiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "flags.width", validationErr.Field)

	_, _, err = executeCommand(t, "preview", "wrapper", "--selector", ".a { color: red")
	require.Error(t, err)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "selector", validationErr.Field)

	require.False(t, started)
}
