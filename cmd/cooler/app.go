package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cooler/internal/config"
	"github.com/alexisbeaulieu97/cooler/internal/logger"
	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

// paletteFlags are the palette selection flags shared by several commands.
type paletteFlags struct {
	appearance string
	alpha      float64
	palette    string
}

func (f *paletteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.appearance, "appearance", config.AppearanceAuto, "Appearance to start in: auto, light or dark")
	cmd.Flags().Float64Var(&f.alpha, "alpha", palette.DefaultAlpha, "Opacity of the translucent palette, 0 to 1")
	cmd.Flags().StringVar(&f.palette, "palette", "", "Palette document replacing the presets")
}

// overrides returns only the flags the user actually set, so that unset flags
// do not mask the settings file or the environment.
func (f *paletteFlags) overrides(cmd *cobra.Command) map[string]any {
	overrides := map[string]any{}
	if cmd.Flags().Changed("appearance") {
		overrides[config.KeyAppearance] = f.appearance
	}
	if cmd.Flags().Changed("alpha") {
		overrides[config.KeyAlpha] = f.alpha
	}
	if cmd.Flags().Changed("palette") {
		overrides[config.KeyPalette] = f.palette
	}
	return overrides
}

// appContext bundles the settings and logger a command runs with.
type appContext struct {
	settings *config.Settings
	log      *logger.Logger
	probe    theme.DarkBackgroundFunc
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, overrides map[string]any) (*appContext, error) {
	settings, err := config.Load(config.WithUserConfig(flags.configPath), config.WithOverrides(overrides))
	if err != nil {
		return nil, newCommandError("load settings", "reading configuration", err,
			"Check ~/.config/cooler/config.yaml and any COOLER_* environment variables.")
	}

	level := settings.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &appContext{
		settings: settings,
		log:      log.WithComponent("cli"),
		probe:    lipgloss.HasDarkBackground,
	}, nil
}

// pair loads the configured palette document, or the presets when none is set.
func (a *appContext) pair() (theme.Pair, error) {
	if a.settings.Palette == "" {
		return theme.PresetPair(palette.WithAlpha(a.settings.Alpha)), nil
	}

	doc, err := config.ParsePalette(a.settings.Palette)
	if err != nil {
		return theme.Pair{}, newCommandError("load palette", a.settings.Palette, err,
			"Fix the palette document or drop --palette to use the presets.")
	}
	pair, err := doc.Pair(a.settings.Alpha)
	if err != nil {
		return theme.Pair{}, newCommandError("load palette", a.settings.Palette, err,
			"Colors must be #RGB, #RRGGBB or #RRGGBBAA.")
	}
	a.log.WithFields(map[string]any{"path": a.settings.Palette}).Debug("palette document loaded")
	return pair, nil
}

// appearance resolves explicit (when non-empty) or the configured appearance.
func (a *appContext) appearance(explicit string) (theme.Appearance, error) {
	if explicit != "" {
		return theme.ParseAppearance(explicit)
	}
	return a.settings.ResolveAppearance(a.probe)
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func terminalWidth(w io.Writer, fallback int) int {
	file, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
