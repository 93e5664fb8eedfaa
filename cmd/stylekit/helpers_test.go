package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSheet(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

const sampleSheet = `version: "1.0"
name: site
font_url: /fonts/Font.ttf
elements:
  - selector: .hero
    template: container
    flags: {flex: true, centerboth: true}
  - selector: .intro
    template: p
    flags: {center: true}
`
