package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestResolveCommandScopesToElement(t *testing.T) {
	stdout, _, err := executeCommand(t, "resolve", "text", "--set", "fontweight=bold", "--set", "colour=red")
	require.NoError(t, err)
	require.Equal(t, "span {\n  font-family: TimesNewRoman;\n  font-size: 16px;\n  font-weight: bold;\n  color: red;\n}\n", stdout)
}

func TestResolveCommandRaw(t *testing.T) {
	stdout, _, err := executeCommand(t, "resolve", "p", "--set", "center", "--raw")
	require.NoError(t, err)
	require.Contains(t, stdout, "@media (max-width: 640px) { text-align: center; } text-align: center;")
}

func TestResolveCommandSelector(t *testing.T) {
	stdout, _, err := executeCommand(t, "resolve", "wrapper", "--set", "spacechildren", "--selector", ".row")
	require.NoError(t, err)
	require.Contains(t, stdout, ".row *:first-child {\n  margin-left: 0px;\n}\n")
}

func TestResolveCommandWarnsOnUnknownFlags(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "resolve", "title", "--set", "sparkle", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, "h1 {")
	require.Contains(t, stderr, "ignoring unrecognized flags")
	require.Contains(t, stderr, "sparkle")
}

func TestResolveCommandErrors(t *testing.T) {
	_, _, err := executeCommand(t, "resolve", "footer")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Known templates: container, p, subtitle, text, title, wrapper")

	_, _, err = executeCommand(t, "resolve", "p", "--set", "center=perhaps")
	require.Error(t, err)
	require.Contains(t, err.Error(), "center")
}

func TestResolveCommandRejectsBadLength(t *testing.T) {
	_, _, err := executeCommand(t, "resolve", "wrapper", "--set", "width=wide")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Suggestion: Sizes take CSS lengths")

	var validationErr *stylekiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "flags.width", validationErr.Field)
}
