// Package renderer composes frames: one full render pass reconciles the
// cursor with the viewport offsets, lays out the visible slice of every
// screen row, and replays the result onto a terminal backend.
//
// The pass is split in two. Compose is pure layout: it produces a Frame (a
// grid of row texts plus the screen cursor cell) with no I/O, which is what
// the unit tests exercise. Renderer.Render replays a composed frame onto
// the backend; the backend's own cell buffer reduces the repaint to the
// minimal diff.
package renderer
