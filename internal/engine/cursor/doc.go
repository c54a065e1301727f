// Package cursor tracks the viewing position within a document and moves it
// in rendered-text coordinates.
//
// The position's row ranges from 0 to the document's row count inclusive;
// the row count itself addresses the virtual empty row one past the end of
// the file, the floor for downward movement. The column ranges from 0 to
// the rendered length of the settled row inclusive, one past the last cell
// meaning "after the last character".
//
// Every movement finishes with a column clamp against the destination row,
// so moving vertically onto a shorter line loses horizontal position. There
// is deliberately no memory of a desired column across vertical moves.
package cursor
