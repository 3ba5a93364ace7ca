package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

type showOptions struct {
	paletteFlags
	jsonOutput bool
	color      bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:       "show [light|dark]",
		Short:     "Print every palette color",
		Long:      `Print the base, semantic and translucent colors and the gradient stops of one appearance.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := ""
			if len(args) == 1 {
				explicit = args[0]
			}
			return runShow(cmd, flags, opts, explicit)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output colors as JSON")
	cmd.Flags().BoolVar(&opts.color, "color", false, "Print color swatches even when stdout is not a terminal")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions, explicit string) error {
	app, err := newAppContext(cmd, flags, opts.overrides(cmd))
	if err != nil {
		return err
	}
	appearance, err := app.appearance(explicit)
	if err != nil {
		return newCommandError("show", "resolving appearance", err, "Pass light or dark.")
	}
	pair, err := app.pair()
	if err != nil {
		return err
	}

	payload := collectColors(pair.Resolve(appearance), appearance)
	out := cmd.OutOrStdout()

	switch {
	case opts.jsonOutput:
		return renderShowJSON(out, payload)
	case isTerminal(out):
		return renderShowSwatches(out, termenv.NewOutput(out), payload)
	case opts.color:
		return renderShowSwatches(out, termenv.NewOutput(out, termenv.WithProfile(termenv.TrueColor)), payload)
	default:
		return renderShowTable(out, payload)
	}
}

type colorEntry struct {
	Group string `json:"group"`
	Name  string `json:"name"`
	Hex   string `json:"hex"`

	color palette.Color
}

type gradientEntry struct {
	Name  string   `json:"name"`
	Stops []string `json:"stops"`

	colors []palette.Color
}

type showPayload struct {
	Appearance string          `json:"appearance"`
	Alpha      float64         `json:"alpha"`
	Colors     []colorEntry    `json:"colors"`
	Gradients  []gradientEntry `json:"gradients"`

	background palette.Color
}

func collectColors(c *palette.Composite, appearance theme.Appearance) showPayload {
	base := c.Base()
	sem := c.Semantic()
	tr := c.Translucent()
	g := c.Gradients()

	payload := showPayload{
		Appearance: appearance.String(),
		Alpha:      c.Alpha(),
		background: base.Background(),
	}
	add := func(group, name string, col palette.Color) {
		payload.Colors = append(payload.Colors, colorEntry{Group: group, Name: name, Hex: col.Hex(), color: col})
	}

	for _, role := range palette.Roles() {
		add("base", role.String(), base.Color(role))
	}

	add("semantic", "text on primary", sem.TextOnPrimaryBackground())
	add("semantic", "text on secondary", sem.TextOnSecondaryBackground())
	add("semantic", "text on surface", sem.TextOnSurfaceBackground())
	add("semantic", "text on background", sem.TextOnMainBackground())
	add("semantic", "text on highlight", sem.TextOnHighlightBackground())
	add("semantic", "disabled", sem.Disabled())
	add("semantic", "divider", sem.Divider())

	add("translucent", "primary", tr.Primary())
	add("translucent", "secondary", tr.Secondary())
	add("translucent", "background", tr.Background())
	add("translucent", "surface", tr.Surface())
	add("translucent", "highlight", tr.Highlight())

	for _, named := range []struct {
		name     string
		gradient palette.LinearGradient
	}{
		{"primary", g.PrimaryGradient()},
		{"success", g.SuccessGradient()},
		{"highlight", g.HighlightGradient()},
	} {
		entry := gradientEntry{Name: named.name}
		for _, stop := range named.gradient.Colors() {
			entry.Stops = append(entry.Stops, stop.Hex())
			entry.colors = append(entry.colors, stop)
		}
		payload.Gradients = append(payload.Gradients, entry)
	}

	return payload
}

func renderShowJSON(w io.Writer, payload showPayload) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderShowTable(w io.Writer, payload showPayload) error {
	fmt.Fprintf(w, "Palette: %s (alpha %.2f)\n\n", payload.Appearance, payload.Alpha)
	fmt.Fprintf(w, "%-12s %-20s %s\n", "GROUP", "NAME", "HEX")
	for _, entry := range payload.Colors {
		fmt.Fprintf(w, "%-12s %-20s %s\n", entry.Group, entry.Name, entry.Hex)
	}

	fmt.Fprintf(w, "\nGradients:\n")
	for _, entry := range payload.Gradients {
		fmt.Fprintf(w, "  %-10s %s\n", entry.Name, strings.Join(entry.Stops, " → "))
	}
	return nil
}

// renderShowSwatches prints a chip per color. Translucent colors are
// flattened over the palette background since terminals have no alpha.
func renderShowSwatches(w io.Writer, out *termenv.Output, payload showPayload) error {
	backdrop := payload.background.Opaque()
	chip := func(c palette.Color) string {
		return out.String("    ").Background(out.Color(c.Over(backdrop).Hex())).String()
	}

	fmt.Fprintf(w, "%s\n\n", out.String(fmt.Sprintf("Palette: %s (alpha %.2f)", payload.Appearance, payload.Alpha)).Bold())

	group := ""
	for _, entry := range payload.Colors {
		if entry.Group != group {
			if group != "" {
				fmt.Fprintln(w)
			}
			group = entry.Group
			fmt.Fprintln(w, out.String(group).Underline())
		}
		fmt.Fprintf(w, "  %s %-20s %s\n", chip(entry.color), entry.Name, out.String(entry.Hex).Faint())
	}

	fmt.Fprintf(w, "\n%s\n", out.String("gradients").Underline())
	for _, entry := range payload.Gradients {
		var bar strings.Builder
		for _, c := range entry.colors {
			bar.WriteString(chip(c))
		}
		fmt.Fprintf(w, "  %s %-12s %s\n", bar.String(), entry.Name, out.String(strings.Join(entry.Stops, " → ")).Faint())
	}
	return nil
}
