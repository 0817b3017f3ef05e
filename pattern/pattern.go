// Package pattern implements labelled fixed-size bitmaps and ordered collections of them
package pattern

import "strings"

import "github.com/pkg/errors"
import "github.com/neurlang/associator/hash"

// ErrMalformed is returned when a pattern can't be built from the given label or grid
var ErrMalformed = errors.New("malformed pattern")

// ErrDimensionMismatch is returned when two patterns of different size are compared or mixed
var ErrDimensionMismatch = errors.New("pattern dimensions differ")

// Pattern is a labelled height×width bitmap. Cells are stored row-major.
// Patterns are values: no method modifies the receiver.
type Pattern struct {
	label  string
	height int
	width  int
	cells  []bool
}

// New creates a pattern from a boolean grid, the grid is copied.
func New(label string, grid [][]bool) (p Pattern, err error) {
	if label == "" {
		return p, errors.Wrap(ErrMalformed, "label is empty")
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return p, errors.Wrapf(ErrMalformed, "bitmap %q is incomplete", label)
	}
	var width = len(grid[0])
	var cells = make([]bool, 0, len(grid)*width)
	for i, row := range grid {
		if len(row) != width {
			return p, errors.Wrapf(ErrMalformed, "bitmap %q row %d has %d cells, expected %d", label, i, len(row), width)
		}
		cells = append(cells, row...)
	}
	p.label = label
	p.height = len(grid)
	p.width = width
	p.cells = cells
	return p, nil
}

// FromRows creates a pattern from text rows, 'X' marks a set cell and any other character a clear one.
func FromRows(label string, rows []string) (Pattern, error) {
	var grid = make([][]bool, len(rows))
	for i, row := range rows {
		for _, c := range row {
			grid[i] = append(grid[i], c == 'X')
		}
	}
	return New(label, grid)
}

// MustFromRows is like FromRows but panics on error
func MustFromRows(label string, rows ...string) Pattern {
	p, err := FromRows(label, rows)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Label returns the category name
func (p Pattern) Label() string {
	return p.label
}

// Height returns the number of rows
func (p Pattern) Height() int {
	return p.height
}

// Width returns the number of columns
func (p Pattern) Width() int {
	return p.width
}

// Size returns the number of cells
func (p Pattern) Size() int {
	return p.height * p.width
}

// At reports whether the cell at row, col is set. It panics when out of range.
func (p Pattern) At(row, col int) bool {
	if row < 0 || row >= p.height || col < 0 || col >= p.width {
		panic("pattern: cell out of range")
	}
	return p.cells[row*p.width+col]
}

// with returns a copy of p with one cell changed
func (p Pattern) with(row, col int, v bool) Pattern {
	var o = p.clone()
	o.cells[row*o.width+col] = v
	return o
}

func (p Pattern) clone() Pattern {
	var o = p
	o.cells = append([]bool(nil), p.cells...)
	return o
}

// Differences counts the cells in which p and other differ (Hamming distance).
func (p Pattern) Differences(other Pattern) (int, error) {
	if p.height != other.height || p.width != other.width {
		return 0, errors.Wrapf(ErrDimensionMismatch, "%dx%d vs %dx%d", p.height, p.width, other.height, other.width)
	}
	var n int
	for i, v := range p.cells {
		if v != other.cells[i] {
			n++
		}
	}
	return n, nil
}

// Equal reports whether both patterns have the same label, size and cells.
func (p Pattern) Equal(other Pattern) bool {
	if p.label != other.label {
		return false
	}
	d, err := p.Differences(other)
	return err == nil && d == 0
}

// Hash returns a fingerprint of label, size and cells. Equal patterns hash equal.
func (p Pattern) Hash() uint32 {
	var words = make([]uint32, 0, 2+len(p.label)+(len(p.cells)+31)/32)
	words = append(words, uint32(p.height), uint32(p.width))
	for _, c := range p.label {
		words = append(words, uint32(c))
	}
	var packed uint32
	for i, v := range p.cells {
		if v {
			packed |= 1 << uint(i%32)
		}
		if i%32 == 31 || i == len(p.cells)-1 {
			words = append(words, packed)
			packed = 0
		}
	}
	return hash.Fold(uint32(len(p.label)), words)
}

// String renders the label followed by one line per row, X for set and . for clear cells.
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteString(p.label)
	b.WriteByte('\n')
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			if p.cells[row*p.width+col] {
				b.WriteByte('X')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
