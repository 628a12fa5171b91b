// Package field holds a dense 2D flow field that scenes are replayed onto.
//
// Grid stores density and velocity row-major: index [row][col] = [y][x].
// Rectangles and cells outside the grid are clipped silently.
package field

import (
	"math"

	"github.com/san-kum/fluidscene/internal/scene"
)

type Grid struct {
	Rows, Cols int
	Density    [][]float64
	VelY, VelX [][]float64
}

func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:    rows,
		Cols:    cols,
		Density: alloc(rows, cols),
		VelY:    alloc(rows, cols),
		VelX:    alloc(rows, cols),
	}
}

func alloc(rows, cols int) [][]float64 {
	buf := make([]float64, rows*cols)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = buf[i*cols : (i+1)*cols]
	}
	return out
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// clip returns the half-open row and column ranges of r inside the grid.
func (g *Grid) clip(r scene.Rect) (y0, y1, x0, x1 int) {
	y0, y1 = max(r.Y, 0), min(r.Y+r.H, g.Rows)
	x0, x1 = max(r.X, 0), min(r.X+r.W, g.Cols)
	return
}

func (g *Grid) AddDensity(r scene.Rect, amount float64) {
	y0, y1, x0, x1 := g.clip(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.Density[y][x] += amount
		}
	}
}

func (g *Grid) SetDensity(r scene.Rect, amount float64) {
	y0, y1, x0, x1 := g.clip(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.Density[y][x] = amount
		}
	}
}

func (g *Grid) SetVelocity(row, col int, dy, dx float64) {
	if !g.inside(row, col) {
		return
	}
	g.VelY[row][col] = dy
	g.VelX[row][col] = dx
}

// Clear zeroes density and velocity over r.
func (g *Grid) Clear(r scene.Rect) {
	y0, y1, x0, x1 := g.clip(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.Density[y][x] = 0
			g.VelY[y][x] = 0
			g.VelX[y][x] = 0
		}
	}
}

// Velocity returns the vector at a cell in (y, x) order.
func (g *Grid) Velocity(row, col int) (dy, dx float64) {
	if !g.inside(row, col) {
		return 0, 0
	}
	return g.VelY[row][col], g.VelX[row][col]
}

// Reset zeroes the whole grid.
func (g *Grid) Reset() {
	g.Clear(scene.Rect{W: g.Cols, H: g.Rows})
}

func (g *Grid) TotalDensity() float64 {
	total := 0.0
	for _, row := range g.Density {
		for _, v := range row {
			total += v
		}
	}
	return total
}

func (g *Grid) MaxDensity() float64 {
	peak := 0.0
	for _, row := range g.Density {
		for _, v := range row {
			peak = math.Max(peak, v)
		}
	}
	return peak
}

func (g *Grid) MaxSpeed() float64 {
	peak := 0.0
	for y := range g.VelY {
		for x := range g.VelY[y] {
			peak = math.Max(peak, math.Hypot(g.VelX[y][x], g.VelY[y][x]))
		}
	}
	return peak
}

// Occupied counts cells with non-zero density.
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.Density {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
