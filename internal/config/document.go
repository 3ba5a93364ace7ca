package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	coolererrors "github.com/alexisbeaulieu97/cooler/pkg/errors"

	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Document is a user-authored palette file. Either variant may be omitted, in
// which case the matching preset is used.
type Document struct {
	Alpha *float64  `yaml:"alpha" validate:"omitempty,gte=0,lte=1"`
	Light *ColorSet `yaml:"light"`
	Dark  *ColorSet `yaml:"dark"`
}

// ColorSet lists the eight base colors of one variant as hex literals.
type ColorSet struct {
	Primary    string `yaml:"primary" validate:"required,palette_color"`
	Secondary  string `yaml:"secondary" validate:"required,palette_color"`
	Background string `yaml:"background" validate:"required,palette_color"`
	Surface    string `yaml:"surface" validate:"required,palette_color"`
	Success    string `yaml:"success" validate:"required,palette_color"`
	Warning    string `yaml:"warning" validate:"required,palette_color"`
	Error      string `yaml:"error" validate:"required,palette_color"`
	Highlight  string `yaml:"highlight" validate:"required,palette_color"`
}

// ParsePalette loads a palette document from disk and validates it.
func ParsePalette(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, coolererrors.NewParseError(path, 0, err)
	}
	return DecodePalette(path, data)
}

// DecodePalette decodes and validates a palette document. path is only used
// in error messages.
func DecodePalette(path string, data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, coolererrors.NewParseError(path, 0, errors.New("empty document"))
		}
		return nil, coolererrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ValidateDocument checks required colors, color syntax and the alpha range.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return coolererrors.NewValidationError("palette", "document is nil", nil)
	}
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// Pair builds the light/dark palettes described by the document. The
// document's alpha wins over fallbackAlpha when present.
func (d *Document) Pair(fallbackAlpha float64) (theme.Pair, error) {
	alpha := fallbackAlpha
	if d.Alpha != nil {
		alpha = *d.Alpha
	}

	light, err := d.Light.base("light", palette.Light())
	if err != nil {
		return theme.Pair{}, err
	}
	dark, err := d.Dark.base("dark", palette.Dark())
	if err != nil {
		return theme.Pair{}, err
	}

	return theme.Pair{
		Light: palette.NewComposite(light, palette.WithAlpha(alpha)),
		Dark:  palette.NewComposite(dark, palette.WithAlpha(alpha)),
	}, nil
}

func (s *ColorSet) base(variant string, preset *palette.Base) (*palette.Base, error) {
	if s == nil {
		return preset, nil
	}

	var colors palette.Colors
	fields := []struct {
		name  string
		value string
		dst   *palette.Color
	}{
		{"primary", s.Primary, &colors.Primary},
		{"secondary", s.Secondary, &colors.Secondary},
		{"background", s.Background, &colors.Background},
		{"surface", s.Surface, &colors.Surface},
		{"success", s.Success, &colors.Success},
		{"warning", s.Warning, &colors.Warning},
		{"error", s.Error, &colors.Error},
		{"highlight", s.Highlight, &colors.Highlight},
	}
	for _, f := range fields {
		c, err := palette.Hex(f.value)
		if err != nil {
			field := variant + "." + f.name
			return nil, coolererrors.NewValidationError(field, err.Error(), err)
		}
		*f.dst = c
	}
	return palette.NewBase(colors), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
