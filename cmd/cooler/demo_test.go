package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

func newPaletteCmd(t *testing.T, flags *rootFlags, args ...string) (*cobra.Command, *paletteFlags, *bytes.Buffer) {
	t.Helper()

	opts := &paletteFlags{}
	cmd := &cobra.Command{Use: "demo"}
	opts.register(cmd)
	stderr := &bytes.Buffer{}
	cmd.SetErr(stderr)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts, stderr
}

func TestPrepareDemoBindsRequestedAppearance(t *testing.T) {
	flags := &rootFlags{configPath: filepath.Join(t.TempDir(), "config.yaml"), verbose: true}
	cmd, opts, stderr := newPaletteCmd(t, flags, "--appearance", "dark", "--alpha", "0.4")

	demoOpts, err := prepareDemo(cmd, flags, opts)
	require.NoError(t, err)
	require.NotNil(t, demoOpts.Binding)
	require.Equal(t, theme.AppearanceDark, demoOpts.Binding.Appearance())

	active := demoOpts.Binding.Slot().Load()
	require.Same(t, palette.Dark(), active.Base())
	require.Equal(t, 0.4, active.Alpha())
	require.Contains(t, stderr.String(), "launching demo")
}

func TestPrepareDemoUsesPaletteDocument(t *testing.T) {
	flags := &rootFlags{configPath: filepath.Join(t.TempDir(), "config.yaml")}
	cmd, opts, _ := newPaletteCmd(t, flags, "--appearance", "light", "--palette", writePaletteFile(t, brandPalette))

	demoOpts, err := prepareDemo(cmd, flags, opts)
	require.NoError(t, err)

	active := demoOpts.Binding.Slot().Load()
	require.Equal(t, "#0a84ff", active.Base().Primary().Hex())
	require.Equal(t, 0.5, active.Alpha())

	demoOpts.Binding.Toggle()
	require.Same(t, palette.Dark(), demoOpts.Binding.Slot().Load().Base())
}

func TestPrepareDemoReadsSettingsFile(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "config.yaml")
	require.NoError(t, writeSettings(settings, "appearance: dark\nalpha: 0.2\n"))

	flags := &rootFlags{configPath: settings}
	cmd, opts, _ := newPaletteCmd(t, flags)

	demoOpts, err := prepareDemo(cmd, flags, opts)
	require.NoError(t, err)
	require.Equal(t, theme.AppearanceDark, demoOpts.Binding.Appearance())
	require.Equal(t, 0.2, demoOpts.Binding.Slot().Load().Alpha())
}

func TestPaletteFlagsOnlyOverrideChangedValues(t *testing.T) {
	flags := &rootFlags{}
	cmd, opts, _ := newPaletteCmd(t, flags, "--alpha", "0.3")

	overrides := opts.overrides(cmd)
	require.Equal(t, map[string]any{"alpha": 0.3}, overrides)
}
