// Package row converts raw document lines into their display form.
//
// A Row pairs the exact text of a line as it was read from disk with the
// rendered rune sequence shown on screen. Rendering expands tab characters
// to spaces aligned on fixed tab stops; everything else passes through
// one rune per cell.
//
// Rows are immutable value types: once built, both the raw text and the
// rendered form never change.
package row
