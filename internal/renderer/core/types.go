// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// Color represents a terminal color. The zero value is the terminal's
// default color.
type Color struct {
	R, G, B uint8
	// Set marks the color as an explicit RGB value rather than the
	// terminal default.
	Set bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return !c.Set
}

// Style describes how a cell is drawn.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attribute
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return Style{}
}

// Cell is a single screen cell: one rune plus its style.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// ScreenRect is a rectangular screen region. Right and Bottom are
// exclusive.
type ScreenRect struct {
	Left, Top     int
	Right, Bottom int
}

// Width returns the rectangle width.
func (r ScreenRect) Width() int {
	return r.Right - r.Left
}

// Height returns the rectangle height.
func (r ScreenRect) Height() int {
	return r.Bottom - r.Top
}

// Contains returns true if the point is inside the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}
