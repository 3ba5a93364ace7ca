package components

import (
	"github.com/alexisbeaulieu97/cooler/internal/palette"
	"github.com/alexisbeaulieu97/cooler/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is one palette role resolved to terminal colors.
//
//   - Base: the role color itself
//   - OnBase: legible text drawn on Base, picked by brightness
//   - Muted: the translucent variant of the role
//   - Text: the semantic text color for the role, drawn on the background
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Muted  lipgloss.Color
	Text   lipgloss.Color
}

// Palette holds every role of a Composite as opaque terminal colors.
type Palette struct {
	Primary    ColourSet
	Secondary  ColourSet
	Background ColourSet
	Surface    ColourSet
	Success    ColourSet
	Warning    ColourSet
	Error      ColourSet
	Highlight  ColourSet

	Divider  lipgloss.Color
	Disabled lipgloss.Color
}

// PaletteSlot selects one ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

// Slots for use with Background, Foreground and friends.
var (
	SlotPrimary    PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	SlotSecondary  PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	SlotBackground PaletteSlot = func(p Palette) ColourSet { return p.Background }
	SlotSurface    PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	SlotSuccess    PaletteSlot = func(p Palette) ColourSet { return p.Success }
	SlotWarning    PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	SlotError      PaletteSlot = func(p Palette) ColourSet { return p.Error }
	SlotHighlight  PaletteSlot = func(p Palette) ColourSet { return p.Highlight }
)

// SlotFor maps a palette role to its slot.
func SlotFor(role palette.Role) PaletteSlot {
	switch role {
	case palette.RoleSecondary:
		return SlotSecondary
	case palette.RoleBackground:
		return SlotBackground
	case palette.RoleSurface:
		return SlotSurface
	case palette.RoleSuccess:
		return SlotSuccess
	case palette.RoleWarning:
		return SlotWarning
	case palette.RoleError:
		return SlotError
	case palette.RoleHighlight:
		return SlotHighlight
	default:
		return SlotPrimary
	}
}

// SpacingSize enumerates spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores the padding and margin scales.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant names a typography preset.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCaption
	TypographyVariantCode
	TypographyVariantEmphasis
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// BorderVariant names a border shape.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups the border shapes.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// InputState is the interaction state of a text field.
type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateDisabled
)

// InputStyles describes text field frames per state.
type InputStyles struct {
	Default     lipgloss.Style
	Focus       lipgloss.Style
	Disabled    lipgloss.Style
	Placeholder lipgloss.Style
}

// VariantRegistry maps component variants to styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register maps variant to strategy.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is the rendering form of a palette.Composite. Build it with NewTheme
// and reuse it; it is never mutated after construction.
type Theme struct {
	Source     *palette.Composite
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// Composite returns the palette the theme was built from.
func (t Theme) Composite() *palette.Composite {
	if t.Source == nil {
		return theme.Default()
	}
	return t.Source
}

// DefaultTheme renders the default palette.
func DefaultTheme() Theme {
	return NewTheme(theme.Default())
}

// NewTheme resolves every color of c against its background. A nil c uses
// the default palette.
func NewTheme(c *palette.Composite) Theme {
	if c == nil {
		c = theme.Default()
	}

	bg := c.Base().Background().Opaque()
	sem := c.Semantic()
	set := func(role palette.Role, text palette.Color) ColourSet {
		base := c.Base().Color(role).Over(bg)
		return ColourSet{
			Base:   TerminalColor(base, bg),
			OnBase: TerminalColor(ContrastText(base), bg),
			Muted:  TerminalColor(translucentColor(c, role), bg),
			Text:   TerminalColor(text, bg),
		}
	}

	p := Palette{
		Primary:    set(palette.RolePrimary, sem.TextOnPrimaryBackground()),
		Secondary:  set(palette.RoleSecondary, sem.TextOnSecondaryBackground()),
		Background: set(palette.RoleBackground, sem.TextOnMainBackground()),
		Surface:    set(palette.RoleSurface, sem.TextOnSurfaceBackground()),
		Success:    set(palette.RoleSuccess, c.Base().Success()),
		Warning:    set(palette.RoleWarning, c.Base().Warning()),
		Error:      set(palette.RoleError, c.Base().Error()),
		Highlight:  set(palette.RoleHighlight, sem.TextOnHighlightBackground()),
		Divider:    TerminalColor(sem.Divider(), bg),
		Disabled:   TerminalColor(sem.Disabled(), bg),
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
	}

	t := Theme{
		Source:     c,
		Palette:    p,
		Borders:    borders,
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: newTypography(p),
		Input:      newInputStyles(p, borders),
		Variants:   NewVariantRegistry(),
	}
	registerButtonVariants(t.Variants)
	registerAlertVariants(t.Variants)
	return t
}

// TerminalColor flattens c over bg and returns it as a lipgloss hex color.
func TerminalColor(c, bg palette.Color) lipgloss.Color {
	return lipgloss.Color(c.Over(bg.Opaque()).Hex())
}

// ContrastText returns black for light colors and white for dark ones.
func ContrastText(c palette.Color) palette.Color {
	if c.IsLight() {
		return palette.Black
	}
	return palette.White
}

func translucentColor(c *palette.Composite, role palette.Role) palette.Color {
	t := c.Translucent()
	switch role {
	case palette.RolePrimary:
		return t.Primary()
	case palette.RoleSecondary:
		return t.Secondary()
	case palette.RoleBackground:
		return t.Background()
	case palette.RoleSurface:
		return t.Surface()
	case palette.RoleHighlight:
		return t.Highlight()
	default:
		return c.Base().Color(role).Opacity(t.Alpha())
	}
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
	}
}

func newTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Background.Text)
	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Secondary.Text),
		Caption:  body.Foreground(p.Disabled).Faint(true),
		Code:     body.Foreground(p.Secondary.Base).Background(p.Surface.Base).Padding(0, 1),
		Emphasis: body.Bold(true),
	}
}

func newInputStyles(p Palette, borders BorderSet) InputStyles {
	frame := lipgloss.NewStyle().
		BorderStyle(borders.Rounded).
		Padding(0, 1).
		Foreground(p.Surface.OnBase)
	return InputStyles{
		Default:     frame.BorderForeground(p.Divider),
		Focus:       frame.BorderForeground(p.Highlight.Base),
		Disabled:    frame.BorderForeground(p.Disabled).Foreground(p.Disabled),
		Placeholder: lipgloss.NewStyle().Foreground(p.Disabled),
	}
}

// BorderForVariant returns the border for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding for size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin for size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// InputStyle returns the text field frame for state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return theme.Input.Focus
	case InputStateDisabled:
		return theme.Input.Disabled
	default:
		return theme.Input.Default
	}
}

// Background fills with the slot color and sets the matching text color.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// MutedBackground fills with the translucent slot color.
func MutedBackground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Muted).Foreground(cs.Text)
	}
}

// Foreground colors text with the slot's semantic text color.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Text)
	}
}

// BorderColor tints the border with the slot color.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border applies a border shape.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// Disabled greys out text.
func Disabled() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.Disabled)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	fill := func(slot PaletteSlot) StyleStrategy {
		return NewCompositeStrategy(Background(slot), PaddingX(SpacingSizeMedium))
	}
	registry.Register(ButtonVariantPrimary, fill(SlotPrimary))
	registry.Register(ButtonVariantSecondary, fill(SlotSecondary))
	registry.Register(ButtonVariantSuccess, fill(SlotSuccess))
	registry.Register(ButtonVariantWarning, fill(SlotWarning))
	registry.Register(ButtonVariantError, fill(SlotError))
	registry.Register(ButtonVariantHighlight, fill(SlotHighlight))
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(MutedBackground(SlotSuccess), BorderColor(SlotSuccess)))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(MutedBackground(SlotWarning), BorderColor(SlotWarning)))
	registry.Register(AlertVariantError, NewCompositeStrategy(MutedBackground(SlotError), BorderColor(SlotError)))
	registry.Register(AlertVariantInfo, NewCompositeStrategy(MutedBackground(SlotHighlight), BorderColor(SlotHighlight)))
}
