package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command against an isolated settings file and
// returns stdout and stderr separately.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	settings := filepath.Join(t.TempDir(), "config.yaml")
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", settings}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writePaletteFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

const brandPalette = `alpha: 0.5
light:
  primary: "#0A84FF"
  secondary: "#5E5CE6"
  background: "#FFFFFF"
  surface: "#F2F2F7"
  success: "#30D158"
  warning: "#FF9F0A"
  error: "#FF453A"
  highlight: "#0A84FF80"
`

func writeSettings(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o600)
}
