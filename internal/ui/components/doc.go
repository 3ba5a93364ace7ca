// Package components is a small lipgloss component library whose colors come
// from a palette.Composite.
//
// # Themes
//
// A Theme is built once from a Composite and passed explicitly through a
// RenderContext. Terminals cannot draw translucent colors, so NewTheme
// flattens every color over the palette background before handing it to
// lipgloss:
//
//	theme := components.NewTheme(palette.NewComposite(palette.Dark()))
//	ctx := components.DefaultContext().WithTheme(theme)
//	out := components.PrimaryButton("Save").ViewWithContext(ctx)
//
// View() renders with DefaultTheme, which follows theme.Default.
//
// # Components
//
//   - Text, Divider: primitives
//   - Stack, Container: layout
//   - Card, ImageCard, GradientCard: grouped content on the surface color
//   - Button: filled, gradient or translucent fills per variant
//   - TextField: single-line input frame with focus highlighting
//   - Swatch, GradientBar: palette previews
//   - Alert: success, warning and error messages
//
// # Styling
//
// Styles are computed from StyleFuncs at render time, so the same component
// tree can be drawn under several themes:
//
//	text := components.NewText("Body").WithAppliers(
//		components.Foreground(components.SlotPrimary),
//		components.Typography(components.TypographyVariantEmphasis),
//	)
package components
