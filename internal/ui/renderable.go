// Package ui holds the rendering contract shared by components and the TUI.
package ui

// Renderable is anything that can produce a terminal view.
type Renderable interface {
	View() string
}
