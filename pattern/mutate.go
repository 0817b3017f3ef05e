package pattern

import "math/rand"
import "time"

// source falls back to a time seeded generator when rng is nil
func source(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}

// SwapRandomly returns a copy of p in which two distinct random cells exchanged
// their values. A pattern with a single cell is returned unchanged.
func (p Pattern) SwapRandomly(rng *rand.Rand) Pattern {
	if p.Size() < 2 {
		return p.clone()
	}
	rng = source(rng)
	var row1, col1 = rng.Intn(p.height), rng.Intn(p.width)
	var row2, col2 int
	for {
		row2, col2 = rng.Intn(p.height), rng.Intn(p.width)
		if row1 != row2 || col1 != col2 {
			break
		}
	}
	var o = p.clone()
	var a, b = row1*p.width + col1, row2*p.width + col2
	o.cells[a], o.cells[b] = o.cells[b], o.cells[a]
	return o
}

// ChangeRandomly returns a copy of p with exactly one random cell inverted.
// A pattern without cells is returned unchanged.
func (p Pattern) ChangeRandomly(rng *rand.Rand) Pattern {
	if p.Size() == 0 {
		return p.clone()
	}
	rng = source(rng)
	var row, col = rng.Intn(p.height), rng.Intn(p.width)
	return p.with(row, col, !p.At(row, col))
}

// FlipHorizontally mirrors p at the horizontal axis (the first row becomes the last).
func (p Pattern) FlipHorizontally() Pattern {
	var o = p.clone()
	for row := 0; row < p.height; row++ {
		copy(o.cells[row*p.width:(row+1)*p.width], p.cells[(p.height-1-row)*p.width:(p.height-row)*p.width])
	}
	return o
}

// FlipVertically mirrors p at the vertical axis (the first column becomes the last).
func (p Pattern) FlipVertically() Pattern {
	var o = p.clone()
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			o.cells[row*p.width+col] = p.cells[row*p.width+p.width-1-col]
		}
	}
	return o
}

// Diagonal selects the mirror axis of FlipDiagonally
type Diagonal byte

const (
	// AntiDiagonal moves the top left corner to the bottom right
	AntiDiagonal Diagonal = iota
	// MainDiagonal moves the bottom left corner to the top right (transpose)
	MainDiagonal
)

// FlipDiagonally mirrors p at a diagonal. The result is width×height.
func (p Pattern) FlipDiagonally(d Diagonal) Pattern {
	var o = p.clone()
	o.height, o.width = p.width, p.height
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			var r, c = col, row
			if d == AntiDiagonal {
				r, c = p.width-1-col, p.height-1-row
			}
			o.cells[r*o.width+c] = p.cells[row*p.width+col]
		}
	}
	return o
}
