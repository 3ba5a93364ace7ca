package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	coolererrors "github.com/alexisbeaulieu97/cooler/pkg/errors"

	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	userCfg := filepath.Join(t.TempDir(), "missing.yaml")

	s, err := Load(WithUserConfig(userCfg))
	require.NoError(t, err)
	require.Equal(t, AppearanceAuto, s.Appearance)
	require.Equal(t, 0.7, s.Alpha)
	require.Empty(t, s.Palette)
	require.Equal(t, "warn", s.Log.Level)
	require.True(t, s.Log.Human)
}

func TestLoadPrecedence(t *testing.T) {
	userCfg := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, userCfg, `
appearance: dark
alpha: 0.4
palette: /tmp/brand.yaml
log:
  level: info
  human: false
`)

	s, err := Load(WithUserConfig(userCfg))
	require.NoError(t, err)
	require.Equal(t, "dark", s.Appearance)
	require.Equal(t, 0.4, s.Alpha)
	require.Equal(t, "/tmp/brand.yaml", s.Palette)
	require.Equal(t, "info", s.Log.Level)
	require.False(t, s.Log.Human)

	t.Setenv("COOLER_ALPHA", "0.5")
	t.Setenv("COOLER_LOG_LEVEL", "debug")

	s, err = Load(WithUserConfig(userCfg))
	require.NoError(t, err)
	require.Equal(t, 0.5, s.Alpha)
	require.Equal(t, "debug", s.Log.Level)

	s, err = Load(
		WithUserConfig(userCfg),
		WithOverrides(map[string]any{KeyAlpha: 0.9, KeyAppearance: nil}),
	)
	require.NoError(t, err)
	require.Equal(t, 0.9, s.Alpha)
	require.Equal(t, "dark", s.Appearance)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	userCfg := filepath.Join(t.TempDir(), "missing.yaml")

	cases := []struct {
		name      string
		overrides map[string]any
		field     string
	}{
		{"alpha above one", map[string]any{KeyAlpha: 1.5}, "alpha"},
		{"negative alpha", map[string]any{KeyAlpha: -0.1}, "alpha"},
		{"unknown appearance", map[string]any{KeyAppearance: "purple"}, "appearance"},
		{"unknown log level", map[string]any{KeyLogLevel: "chatty"}, "log.level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(WithUserConfig(userCfg), WithOverrides(tc.overrides))
			var validationErr *coolererrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestLoadRejectsBrokenUserConfig(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(WithUserConfig(dir))
	require.ErrorContains(t, err, "is a directory")

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "appearance: [dark\n")
	_, err = Load(WithUserConfig(broken))
	require.ErrorContains(t, err, "load user config")

	empty := filepath.Join(dir, "empty.yaml")
	writeFile(t, empty, "  \n")
	_, err = Load(WithUserConfig(empty))
	require.NoError(t, err)
}

func TestResolveAppearance(t *testing.T) {
	dark := func() bool { return true }

	a, err := (&Settings{Appearance: AppearanceAuto}).ResolveAppearance(dark)
	require.NoError(t, err)
	require.Equal(t, theme.AppearanceDark, a)

	a, err = (&Settings{Appearance: "light"}).ResolveAppearance(dark)
	require.NoError(t, err)
	require.Equal(t, theme.AppearanceLight, a)

	var nilSettings *Settings
	a, err = nilSettings.ResolveAppearance(nil)
	require.NoError(t, err)
	require.Equal(t, theme.AppearanceLight, a)

	_, err = (&Settings{Appearance: "sepia"}).ResolveAppearance(dark)
	require.Error(t, err)
}
