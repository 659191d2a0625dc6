package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IntGrid is a dense rows x cols grid of integer values. Values are held in a
// gonum matrix so flips and transposes are plain matrix products; every value
// stays exact as long as it fits in a float64 mantissa.
type IntGrid struct {
	m *mat.Dense
}

// NewIntGrid creates a grid from row-major values.
func NewIntGrid(rows, cols int, values []int) *IntGrid {
	data := make([]float64, rows*cols)
	for i := range data {
		if i < len(values) {
			data[i] = float64(values[i])
		}
	}
	return &IntGrid{m: mat.NewDense(rows, cols, data)}
}

// NewSequentialGrid lays the range start, start+1, ... out row-major.
func NewSequentialGrid(rows, cols, start int) *IntGrid {
	values := make([]int, rows*cols)
	for i := range values {
		values[i] = start + i
	}
	return NewIntGrid(rows, cols, values)
}

// Dims returns the number of rows and columns.
func (g *IntGrid) Dims() (rows, cols int) {
	return g.m.Dims()
}

// At returns the value at (row, col), both 0-based.
func (g *IntGrid) At(row, col int) int {
	return int(math.Round(g.m.At(row, col)))
}

// Transpose returns a new grid with rows and columns swapped.
func (g *IntGrid) Transpose() *IntGrid {
	return &IntGrid{m: mat.DenseCopyOf(g.m.T())}
}

// MirrorColumns returns a new grid with every column reversed top to bottom
// (a flip about the horizontal axis).
func (g *IntGrid) MirrorColumns() *IntGrid {
	rows, _ := g.m.Dims()
	var out mat.Dense
	out.Mul(exchange(rows), g.m)
	return &IntGrid{m: &out}
}

// MirrorRows returns a new grid with every row reversed left to right
// (a flip about the vertical axis).
func (g *IntGrid) MirrorRows() *IntGrid {
	_, cols := g.m.Dims()
	var out mat.Dense
	out.Mul(g.m, exchange(cols))
	return &IntGrid{m: &out}
}

// Values returns the grid contents in row-major order.
func (g *IntGrid) Values() []int {
	rows, cols := g.m.Dims()
	out := make([]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, g.At(r, c))
		}
	}
	return out
}

// Equal reports whether two grids have the same shape and values.
func (g *IntGrid) Equal(other *IntGrid) bool {
	return mat.Equal(g.m, other.m)
}

// exchange returns the n x n anti-diagonal permutation matrix.
func exchange(n int) *mat.Dense {
	j := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		j.Set(i, n-1-i, 1)
	}
	return j
}
