package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestRenderCommandWritesStdout(t *testing.T) {
	path := writeSheet(t, sampleSheet)

	stdout, stderr, err := executeCommand(t, "render", "--config", path, "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stdout, "@font-face {")
	require.Contains(t, stdout, "src: url('/fonts/Font.ttf') format('opentype');")
	require.Contains(t, stdout, ".hero {\n  display: flex;\n")
	require.Contains(t, stdout, "@media (max-width: 640px) {\n  .intro {\n    text-align: center;\n  }\n}\n")
	require.Contains(t, stderr, `"message":"stylesheet rendered"`)
}

func TestRenderCommandWritesFile(t *testing.T) {
	path := writeSheet(t, sampleSheet)
	out := filepath.Join(t.TempDir(), "site.css")

	stdout, _, err := executeCommand(t, "render", "-c", path, "-o", out, "--no-globals", "--font-url", "/other.ttf")
	require.NoError(t, err)
	require.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	css := string(data)
	require.True(t, strings.HasPrefix(css, ".hero {"))
	require.NotContains(t, css, "@keyframes")
}

func TestRenderCommandFontOverride(t *testing.T) {
	path := writeSheet(t, sampleSheet)

	stdout, _, err := executeCommand(t, "render", "-c", path, "--font-url", "/other.ttf")
	require.NoError(t, err)
	require.Contains(t, stdout, "url('/other.ttf')")
}

func TestRenderCommandReportsValidationErrors(t *testing.T) {
	path := writeSheet(t, `version: "1.0"
name: site
elements:
  - selector: .hero
    template: footer
`)

	_, _, err := executeCommand(t, "render", "-c", path)
	require.Error(t, err)

	var validationErr *stylekiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "elements[0].template", validationErr.Field)
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestRenderCommandRequiresConfig(t *testing.T) {
	_, _, err := executeCommand(t, "render")
	require.Error(t, err)
	require.Contains(t, err.Error(), "config")
}

func TestRenderCommandRejectsBadLogFormat(t *testing.T) {
	path := writeSheet(t, sampleSheet)

	_, _, err := executeCommand(t, "render", "-c", path, "--log-format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown log format")
}

func TestValidateRenderOptions(t *testing.T) {
	path := writeSheet(t, sampleSheet)

	require.NoError(t, validateRenderOptions(renderOptions{ConfigPath: path}))
	require.Error(t, validateRenderOptions(renderOptions{ConfigPath: "  "}))
	require.Error(t, validateRenderOptions(renderOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}))
	require.Error(t, validateRenderOptions(renderOptions{ConfigPath: t.TempDir()}))

	err := validateRenderOptions(renderOptions{ConfigPath: path, OutputPath: path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "overwrite")
}

func TestRenderCommandCheck(t *testing.T) {
	path := writeSheet(t, sampleSheet)
	out := filepath.Join(t.TempDir(), "site.css")

	_, _, err := executeCommand(t, "render", "-c", path, "-o", out)
	require.NoError(t, err)

	stdout, stderr, err := executeCommand(t, "render", "-c", path, "-o", out, "--check", "--log-format", "json")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "stylesheet up to date")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	stale := strings.Replace(string(data), "display: flex;", "display: block;", 1)
	require.NoError(t, os.WriteFile(out, []byte(stale), 0o600))

	stdout, _, err = executeCommand(t, "render", "-c", path, "-o", out, "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "stylesheet is stale: 1 added, 1 removed")
	require.Contains(t, stdout, "-  display: block;\n")
	require.Contains(t, stdout, "+  display: flex;\n")

	after, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, stale, string(after))
}

func TestRenderCommandCheckNeedsOutput(t *testing.T) {
	path := writeSheet(t, sampleSheet)

	_, _, err := executeCommand(t, "render", "-c", path, "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--check needs --output")
}
