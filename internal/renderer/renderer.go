package renderer

import (
	"github.com/loupeview/loupe/internal/engine/cursor"
	"github.com/loupeview/loupe/internal/engine/document"
	"github.com/loupeview/loupe/internal/renderer/backend"
	"github.com/loupeview/loupe/internal/renderer/core"
	"github.com/loupeview/loupe/internal/renderer/viewport"
)

// DefaultFiller is the glyph painted on rows past the end of the document.
const DefaultFiller = '~'

// Options configures the renderer.
type Options struct {
	// Filler is the glyph for past-end rows. Zero means DefaultFiller.
	Filler rune

	// FillerStyle styles the filler glyph.
	FillerStyle core.Style

	// TextStyle styles document text.
	TextStyle core.Style
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		Filler:      DefaultFiller,
		FillerStyle: core.Style{Attrs: core.AttrDim},
	}
}

// Renderer replays composed frames onto a backend.
type Renderer struct {
	backend backend.Backend
	vp      *viewport.Viewport
	opts    Options
}

// New creates a renderer over the given backend. The viewport starts at
// the backend's current size.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.Filler == 0 {
		opts.Filler = DefaultFiller
	}
	w, h := b.Size()
	return &Renderer{
		backend: b,
		vp:      viewport.New(w, h),
		opts:    opts,
	}
}

// Viewport returns the renderer's viewport.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.vp
}

// Resize updates the viewport to new terminal dimensions, taken directly
// from the terminal report.
func (r *Renderer) Resize(width, height int) {
	r.vp.Resize(width, height)
}

// SetOptions replaces the renderer options. A zero filler keeps the
// default glyph.
func (r *Renderer) SetOptions(opts Options) {
	if opts.Filler == 0 {
		opts.Filler = DefaultFiller
	}
	r.opts = opts
}

// Render performs one full render pass: recompute scroll from the cursor,
// paint every screen row, then place the terminal cursor. The cursor is
// hidden for the duration of the repaint to avoid flicker.
func (r *Renderer) Render(doc *document.Document, pos cursor.Position) {
	frame := Compose(doc, pos, r.vp)

	r.backend.HideCursor()

	for y, row := range frame.Rows {
		r.paintRow(y, row)
	}

	r.backend.ShowCursor(frame.CursorX, frame.CursorY)
	r.backend.Show()
}

// paintRow writes one frame row and clears the remainder of the physical
// line.
func (r *Renderer) paintRow(y int, row FrameRow) {
	x := 0

	if row.Filler {
		r.backend.SetCell(0, y, core.Cell{Rune: r.opts.Filler, Style: r.opts.FillerStyle})
		x = 1
	} else {
		for _, ch := range row.Text {
			r.backend.SetCell(x, y, core.Cell{Rune: ch, Style: r.opts.TextStyle})
			x++
		}
	}

	for ; x < r.vp.Width(); x++ {
		r.backend.SetCell(x, y, core.EmptyCell())
	}
}
