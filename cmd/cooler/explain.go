package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
)

const defaultExplainWidth = 80

type explainOptions struct {
	paletteFlags
	style string
	width int
}

func newExplainCmd(flags *rootFlags) *cobra.Command {
	opts := &explainOptions{}

	cmd := &cobra.Command{
		Use:       "explain <role>",
		Short:     "Describe where a base color should and should not be used",
		Args:      cobra.ExactArgs(1),
		ValidArgs: roleNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, flags, opts, args[0])
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.style, "style", "auto", "Markdown style: auto, dark, light, notty or plain")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Wrap width (default terminal width or 80)")

	return cmd
}

func runExplain(cmd *cobra.Command, flags *rootFlags, opts *explainOptions, name string) error {
	role, err := palette.ParseRole(name)
	if err != nil {
		return newCommandError("explain", fmt.Sprintf("looking up role %q", name), err,
			"Use one of: "+strings.Join(roleNames(), ", ")+".")
	}
	guidance, _ := palette.GuidanceFor(role)

	app, err := newAppContext(cmd, flags, opts.overrides(cmd))
	if err != nil {
		return err
	}
	appearance, err := app.appearance("")
	if err != nil {
		return err
	}
	pair, err := app.pair()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := opts.width
	if width <= 0 {
		width = min(terminalWidth(out, defaultExplainWidth), defaultExplainWidth)
	}

	style := strings.ToLower(strings.TrimSpace(opts.style))
	if style == "" || style == "auto" {
		style = "notty"
		if isTerminal(out) {
			style = appearance.String()
		}
	}

	render := buildMarkdownRenderer(style, width)
	fmt.Fprintln(out, render(guidance.Markdown(pair.Resolve(appearance).Base())))
	return nil
}

func buildMarkdownRenderer(style string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}

func roleNames() []string {
	names := make([]string, 0, len(palette.Roles()))
	for _, role := range palette.Roles() {
		names = append(names, role.String())
	}
	return names
}
