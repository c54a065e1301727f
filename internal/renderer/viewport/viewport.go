// Package viewport maps the rendered document onto the physical screen
// grid. It owns the scroll offsets (the rendered-text coordinate shown at
// screen cell 0,0) and answers which slice of which row is visible.
//
// A viewport belongs to exactly one session and is never shared across
// goroutines; the event loop mutates it strictly between frames.
package viewport

import (
	"github.com/loupeview/loupe/internal/engine/cursor"
	"github.com/loupeview/loupe/internal/engine/document"
)

// Viewport tracks the visible screen dimensions and the scroll offsets
// into the document.
type Viewport struct {
	// Size in screen cells
	width  int
	height int

	// Rendered-text coordinate at screen cell (0,0)
	rowOffset int
	colOffset int
}

// New creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	return v.height
}

// RowOffset returns the document row shown at the top of the screen.
func (v *Viewport) RowOffset() int {
	return v.rowOffset
}

// ColOffset returns the rendered column shown at the left of the screen.
func (v *Viewport) ColOffset() int {
	return v.colOffset
}

// RecomputeScroll adjusts the offsets so the cursor is inside the window.
// Four independent clamps: snap the top edge down to a cursor above the
// window, snap it up so a cursor below becomes the bottom visible row, and
// the same for columns. Postcondition, given dimensions >= 1:
//
//	rowOffset <= pos.Row < rowOffset+height
//	colOffset <= pos.Col < colOffset+width
//
// Offsets never go negative: the snap-down rules only assign the cursor
// coordinate itself and the snap-up rules only raise from a non-negative
// base.
func (v *Viewport) RecomputeScroll(pos cursor.Position) {
	if pos.Row < v.rowOffset {
		v.rowOffset = pos.Row
	}
	if pos.Row >= v.rowOffset+v.height {
		v.rowOffset = pos.Row - v.height + 1
	}

	if pos.Col < v.colOffset {
		v.colOffset = pos.Col
	}
	if pos.Col >= v.colOffset+v.width {
		v.colOffset = pos.Col - v.width + 1
	}
}

// VisibleSlice returns the part of fileRow's rendered text that falls
// within the window columns. pastEnd reports rows beyond the document,
// which the compositor paints with the filler glyph instead of text. A
// real row whose rendered text does not reach the column offset yields an
// empty slice.
func (v *Viewport) VisibleSlice(doc *document.Document, fileRow int) (text []rune, pastEnd bool) {
	if fileRow >= doc.RowCount() {
		return nil, true
	}

	rendered := doc.Rendered(fileRow)
	if len(rendered) <= v.colOffset {
		return nil, false
	}

	end := v.colOffset + v.width
	if end > len(rendered) {
		end = len(rendered)
	}
	return rendered[v.colOffset:end], false
}

// ScreenPosition converts a cursor position to screen cell coordinates.
// Only meaningful directly after RecomputeScroll for the same position.
func (v *Viewport) ScreenPosition(pos cursor.Position) (x, y int) {
	return pos.Col - v.colOffset, pos.Row - v.rowOffset
}
