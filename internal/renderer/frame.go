package renderer

import (
	"github.com/loupeview/loupe/internal/engine/cursor"
	"github.com/loupeview/loupe/internal/engine/document"
	"github.com/loupeview/loupe/internal/renderer/viewport"
)

// FrameRow is the computed content of one screen row.
type FrameRow struct {
	// Text is the visible slice of the row's rendered text. Never longer
	// than the viewport width. Empty for real rows scrolled fully out of
	// view horizontally.
	Text []rune

	// Filler marks a row past the end of the document, painted with the
	// filler glyph instead of text.
	Filler bool
}

// Frame is one fully laid-out screen: a text row per screen row and the
// screen cell the cursor lands on.
type Frame struct {
	Rows    []FrameRow
	CursorX int
	CursorY int
}

// Compose runs the layout half of a render pass. It first recomputes the
// viewport offsets so the cursor is inside the window, then slices every
// visible row. Pure apart from the offset update on vp; composing twice
// with unchanged state yields identical frames.
func Compose(doc *document.Document, pos cursor.Position, vp *viewport.Viewport) Frame {
	vp.RecomputeScroll(pos)

	frame := Frame{
		Rows: make([]FrameRow, vp.Height()),
	}

	for y := 0; y < vp.Height(); y++ {
		fileRow := y + vp.RowOffset()
		text, pastEnd := vp.VisibleSlice(doc, fileRow)
		frame.Rows[y] = FrameRow{Text: text, Filler: pastEnd}
	}

	frame.CursorX, frame.CursorY = vp.ScreenPosition(pos)
	return frame
}
