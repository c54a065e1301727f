package document

import (
	"github.com/loupeview/loupe/internal/engine/row"
)

// Document is an ordered sequence of rows. It is immutable after
// construction; a tab stop change produces a new Document via Rebuild.
type Document struct {
	rows    []row.Row
	tabStop int
}

// New builds a document from raw lines, rendering each through the row
// package at the given tab stop. An empty slice yields a zero-row document.
func New(lines []string, tabStop int) *Document {
	if tabStop < 1 {
		tabStop = row.DefaultTabStop
	}
	rows := make([]row.Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, row.New(line, tabStop))
	}
	return &Document{rows: rows, tabStop: tabStop}
}

// Load reads every line from the source and builds a document from them.
// A source failure is returned as-is for the caller to wrap.
func Load(src LineSource, tabStop int) (*Document, error) {
	lines, err := src.Lines()
	if err != nil {
		return nil, err
	}
	return New(lines, tabStop), nil
}

// RowCount returns the number of rows in the document.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// TabStop returns the tab stop width the rows were rendered at.
func (d *Document) TabStop() int {
	return d.tabStop
}

// Row returns the row at index i. The index must be in [0, RowCount).
func (d *Document) Row(i int) row.Row {
	return d.rows[i]
}

// Raw returns the original text of row i, or "" past the end.
func (d *Document) Raw(i int) string {
	if i < 0 || i >= len(d.rows) {
		return ""
	}
	return d.rows[i].Raw()
}

// Rendered returns the display form of row i, or nil past the end.
func (d *Document) Rendered(i int) []rune {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i].Rendered()
}

// RenderedLen returns the rendered cell count of row i. Indexes at or past
// the end (the virtual past-end row) report zero.
func (d *Document) RenderedLen(i int) int {
	if i < 0 || i >= len(d.rows) {
		return 0
	}
	return d.rows[i].RenderedLen()
}

// RawLines returns a copy of every raw line in order.
func (d *Document) RawLines() []string {
	lines := make([]string, len(d.rows))
	for i, r := range d.rows {
		lines[i] = r.Raw()
	}
	return lines
}

// Rebuild returns a new document over the same raw lines rendered at a
// different tab stop. The receiver is unchanged.
func (d *Document) Rebuild(tabStop int) *Document {
	return New(d.RawLines(), tabStop)
}
