// Package core provides the grid-traversal engine shared by the puzzles.
// It contains no external dependencies so puzzle logic stays pure and testable.
package core

import (
	"bytes"
	"fmt"
	"strings"
)

// Grid is a rectangular character matrix kept exactly as it arrived:
// row-major bytes with a line terminator after each row.
// A grid is immutable once built.
type Grid struct {
	data   []byte
	stride int // Row length including the terminator
}

// RowStride returns the offset of the first line terminator plus one.
func RowStride(text string) (int, error) {
	i := bytes.IndexByte([]byte(text), '\n')
	if i < 0 {
		return 0, fmt.Errorf("%w: no line terminator in grid", ErrMalformedInput)
	}
	return i + 1, nil
}

// NewGrid builds a grid from raw puzzle text.
// CRLF line endings are folded to LF first so '\r' never becomes a cell.
// The stride is taken from the first row and assumed for every other row.
func NewGrid(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	stride, err := RowStride(text)
	if err != nil {
		return nil, err
	}
	return &Grid{data: []byte(text), stride: stride}, nil
}

// Advance computes index+delta. It only reports failure when the result
// would drop below zero; running past the end of the buffer is caught
// later, when At is asked for the byte.
func Advance(index, delta int) (int, bool) {
	next := index + delta
	if next < 0 {
		return 0, false
	}
	return next, true
}

// Stride returns the row length including the terminator.
func (g *Grid) Stride() int {
	return g.stride
}

// Cols returns the number of cells in each row.
func (g *Grid) Cols() int {
	return g.stride - 1
}

// Rows returns the number of rows, counting a final unterminated row.
func (g *Grid) Rows() int {
	return (len(g.data) + g.stride - 1) / g.stride
}

// At returns the byte at index i, or false when i lies outside the buffer.
func (g *Grid) At(i int) (byte, bool) {
	if i < 0 || i >= len(g.data) {
		return 0, false
	}
	return g.data[i], true
}

// Neighbor returns the byte one step from i in direction d.
// Absent neighbours report false and never equal any cell value.
func (g *Grid) Neighbor(i int, d Direction) (byte, bool) {
	next, ok := Advance(i, d.Delta(g.stride))
	if !ok {
		return 0, false
	}
	return g.At(next)
}

// IsCell reports whether i addresses a grid cell rather than a terminator
// or a position outside the buffer.
func (g *Grid) IsCell(i int) bool {
	b, ok := g.At(i)
	return ok && b != '\n'
}

// Find returns the index of the first byte that appears in set.
func (g *Grid) Find(set string) (int, bool) {
	i := bytes.IndexAny(g.data, set)
	return i, i >= 0
}

// Index converts a column/row pair to a linear index.
func (g *Grid) Index(x, y int) int {
	return y*g.stride + x
}

// Coord converts a linear index to its column and row.
func (g *Grid) Coord(i int) (x, y int) {
	return i % g.stride, i / g.stride
}
