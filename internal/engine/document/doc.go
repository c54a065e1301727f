// Package document provides the in-memory buffer for a viewing session:
// an ordered, immutable sequence of rows built from a line source at load
// time. It exposes raw and rendered access per row plus the rendered length
// queries the cursor and viewport need.
//
// Indexes at or past the row count are valid queries and report a rendered
// length of zero; this is how the virtual row one past the end of the
// document (the floor for downward cursor movement) and the empty document
// are represented.
package document
