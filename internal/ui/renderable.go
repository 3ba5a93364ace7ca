// Package ui holds the interfaces shared by the component library and the
// demo program.
package ui

// Renderable is anything that can draw itself to a terminal string.
type Renderable interface {
	View() string
}
