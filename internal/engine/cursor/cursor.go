package cursor

import (
	"fmt"

	"github.com/loupeview/loupe/internal/engine/document"
)

// Direction is a cursor movement request.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Home:
		return "home"
	case End:
		return "end"
	case PageUp:
		return "page-up"
	case PageDown:
		return "page-down"
	default:
		return "unknown"
	}
}

// Position is a cursor location in rendered-text coordinates.
// Position is an immutable value type; movement returns a new value.
type Position struct {
	Row int
	Col int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Move returns the position after one movement step through doc. All
// transitions are total: movement at a boundary that cannot proceed
// returns the position unchanged.
//
// Left at column 0 wraps to the end of the previous row; Right at the end
// of a row wraps to the start of the next, except at the final row where it
// stays put. Down may step onto the virtual empty row one past the last
// real row; Up and Down keep the column provisionally and the final clamp
// shortens it to the destination row's rendered length.
func (p Position) Move(doc *document.Document, dir Direction) Position {
	switch dir {
	case Left:
		if p.Col > 0 {
			p.Col--
		} else if p.Row > 0 {
			p.Row--
			p.Col = doc.RenderedLen(p.Row)
		}
	case Right:
		if p.Col < doc.RenderedLen(p.Row) {
			p.Col++
		} else if p.Row+1 < doc.RowCount() {
			p.Row++
			p.Col = 0
		}
	case Up:
		if p.Row > 0 {
			p.Row--
		}
	case Down:
		if p.Row < doc.RowCount() {
			p.Row++
		}
	case Home:
		p.Col = 0
	case End:
		p.Col = doc.RenderedLen(p.Row)
	}

	return p.clamp(doc)
}

// MovePage returns the position after a page movement of pageSize rows.
// It reuses the single-step rules so every boundary invariant holds by
// construction.
func (p Position) MovePage(doc *document.Document, dir Direction, pageSize int) Position {
	if pageSize < 1 {
		pageSize = 1
	}
	step := Down
	if dir == PageUp {
		step = Up
	}
	for i := 0; i < pageSize; i++ {
		p = p.Move(doc, step)
	}
	return p
}

// Clamp pins the position to doc: the row to [0, RowCount] and the column
// to the rendered length of the settled row. Used when the document is
// swapped underneath the cursor (tab stop reload).
func (p Position) Clamp(doc *document.Document) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row > doc.RowCount() {
		p.Row = doc.RowCount()
	}
	return p.clamp(doc)
}

// clamp pins the column to the rendered length of the settled row. The
// virtual past-end row has rendered length 0, so the column collapses to 0
// there.
func (p Position) clamp(doc *document.Document) Position {
	if max := doc.RenderedLen(p.Row); p.Col > max {
		p.Col = max
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return p
}
