package matrix

import "fmt"

// Grid is a row-major matrix of int values, such as the 1×n per-line
// impact vector of LNN's global reordering.
type Grid struct {
	r, c int
	data []int
}

// NewGrid creates an r×c Grid initialized to zero.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.c }

func (g *Grid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r || col < 0 || col >= g.c {
		return 0, fmt.Errorf("Grid(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return row*g.c + col, nil
}

// At retrieves the code at (row, col).
func (g *Grid) At(row, col int) (int, error) {
	idx, err := g.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return g.data[idx], nil
}

// Set assigns code v at (row, col).
func (g *Grid) Set(row, col int, v int) error {
	idx, err := g.indexOf(row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v
	return nil
}

// Row returns a copy of row i.
func (g *Grid) Row(i int) []int {
	out := make([]int, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])
	return out
}
