package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/loupeview/loupe/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output. tcell owns
// the alternate screen, raw input mode and the cell diff that keeps each
// repaint minimal.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return core.Cell{
		Rune:  mainc,
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := rect.Top; y < rect.Bottom && y < height; y++ {
		for x := rect.Left; x < rect.Right && x < width; x++ {
			if x >= 0 && y >= 0 {
				t.screen.SetContent(x, y, cell.Rune, nil, style)
			}
		}
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks for the next terminal event and converts it. Events the
// viewer does not react to come back as EventNone; the caller loops.
func (t *Terminal) PollEvent() (Event, error) {
	ev := t.screen.PollEvent()

	switch tev := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(tev), nil
	case *tcell.EventResize:
		w, h := tev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, nil
	case *tcell.EventInterrupt:
		if posted, ok := tev.Data().(Event); ok {
			return posted, nil
		}
		return Event{Type: EventNone}, nil
	case *tcell.EventError:
		return Event{Type: EventNone}, tev
	default:
		return Event{Type: EventNone}, nil
	}
}

// PostEvent rides on tcell's interrupt events so synthetic events (signals,
// config reloads) wake the same blocking poll as real input.
func (t *Terminal) PostEvent(event Event) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(event))
}

// convertKeyEvent maps a tcell key event to a backend event.
func convertKeyEvent(ev *tcell.EventKey) Event {
	var key Key

	switch ev.Key() {
	case tcell.KeyUp:
		key = KeyUp
	case tcell.KeyDown:
		key = KeyDown
	case tcell.KeyLeft:
		key = KeyLeft
	case tcell.KeyRight:
		key = KeyRight
	case tcell.KeyHome:
		key = KeyHome
	case tcell.KeyEnd:
		key = KeyEnd
	case tcell.KeyPgUp:
		key = KeyPageUp
	case tcell.KeyPgDn:
		key = KeyPageDown
	case tcell.KeyEscape:
		key = KeyEscape
	case tcell.KeyEnter:
		key = KeyEnter
	case tcell.KeyCtrlC:
		key = KeyCtrlC
	case tcell.KeyCtrlQ:
		key = KeyCtrlQ
	case tcell.KeyRune:
		return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}
	default:
		return Event{Type: EventNone}
	}

	return Event{Type: EventKey, Key: key}
}

// convertStyle converts a core style to a tcell style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Fg.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Fg.R), int32(s.Fg.G), int32(s.Fg.B)))
	}
	if !s.Bg.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Bg.R), int32(s.Bg.G), int32(s.Bg.B)))
	}

	if s.Attrs.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attrs.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attrs.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attrs.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertTcellStyle converts a tcell style back to a core style.
func convertTcellStyle(style tcell.Style) core.Style {
	fg, bg, attrs := style.Decompose()

	var s core.Style
	if fg != tcell.ColorDefault {
		r, g, b := fg.RGB()
		s.Fg = core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
	}
	if bg != tcell.ColorDefault {
		r, g, b := bg.RGB()
		s.Bg = core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
	}

	if attrs&tcell.AttrBold != 0 {
		s.Attrs |= core.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attrs |= core.AttrDim
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attrs |= core.AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attrs |= core.AttrReverse
	}

	return s
}
