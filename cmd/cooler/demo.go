package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cooler/internal/demo"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	opts := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive palette demo",
		Long: `Launch the interactive demo showing the base, gradient, translucent and
semantic palettes. Press t to switch between light and dark.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags, opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func runDemo(cmd *cobra.Command, flags *rootFlags, opts *paletteFlags) error {
	demoOpts, err := prepareDemo(cmd, flags, opts)
	if err != nil {
		return err
	}
	return demo.Run(cmd.Context(), demoOpts)
}

func prepareDemo(cmd *cobra.Command, flags *rootFlags, opts *paletteFlags) (demo.Options, error) {
	app, err := newAppContext(cmd, flags, opts.overrides(cmd))
	if err != nil {
		return demo.Options{}, err
	}

	pair, err := app.pair()
	if err != nil {
		return demo.Options{}, err
	}
	appearance, err := app.appearance("")
	if err != nil {
		return demo.Options{}, err
	}

	binding := theme.Bind(theme.NewSlot(nil), pair, appearance)
	app.log.WithFields(map[string]any{
		"appearance": appearance.String(),
		"alpha":      app.settings.Alpha,
	}).Info("launching demo")

	return demo.Options{Binding: binding, Logger: app.log}, nil
}
