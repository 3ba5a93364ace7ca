package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	palette := &paletteFlags{}

	cmd := &cobra.Command{
		Use:           "cooler",
		Short:         "Cooler previews light and dark color palettes in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the demo.
			return runDemo(cmd, flags, palette)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Settings file (default ~/.config/cooler/config.yaml)")
	palette.register(cmd)

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newExplainCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
