package row

// DefaultTabStop is the tab stop width used when none is configured.
const DefaultTabStop = 8

// Row is one line of a document: the raw text as loaded, and the rendered
// rune sequence derived from it by tab expansion.
// Row is an immutable value type.
type Row struct {
	raw      string
	rendered []rune
}

// New builds a row from raw line text, expanding tabs at the given tab stop.
// A tabStop below 1 falls back to DefaultTabStop.
func New(raw string, tabStop int) Row {
	return Row{
		raw:      raw,
		rendered: Render(raw, tabStop),
	}
}

// Raw returns the original line text, without any trailing newline.
func (r Row) Raw() string {
	return r.raw
}

// Rendered returns the display form of the line.
// The returned slice must not be modified.
func (r Row) Rendered() []rune {
	return r.rendered
}

// RenderedLen returns the number of display cells in the rendered line.
func (r Row) RenderedLen() int {
	return len(r.rendered)
}

// Render expands the raw text into its display form. Each tab becomes at
// least one space and lands the following character on the next multiple of
// tabStop, measured from column 0 of the line. All other runes occupy one
// cell each; the result never contains a tab and is never shorter than the
// rune count of raw.
func Render(raw string, tabStop int) []rune {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}

	rendered := make([]rune, 0, len(raw))
	for _, ch := range raw {
		if ch != '\t' {
			rendered = append(rendered, ch)
			continue
		}
		rendered = append(rendered, ' ')
		for len(rendered)%tabStop != 0 {
			rendered = append(rendered, ' ')
		}
	}
	return rendered
}
