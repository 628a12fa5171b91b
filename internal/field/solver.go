package field

import "math"

// Solver is a minimal transport step: semi-Lagrangian density advection
// followed by exponential decay of density and damping of velocity. It makes
// no claim of incompressibility or stability.
type Solver struct {
	Advection float64
	Decay     float64
	Damping   float64

	scratch [][]float64
}

func NewSolver(advection, decay, damping float64) *Solver {
	return &Solver{Advection: advection, Decay: decay, Damping: damping}
}

func (s *Solver) Step(g *Grid, dt float64) {
	if s.Advection > 0 {
		s.advect(g, dt)
	}

	keep := math.Max(0, 1-s.Decay*dt)
	damp := math.Max(0, 1-s.Damping*dt)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			g.Density[y][x] *= keep
			g.VelY[y][x] *= damp
			g.VelX[y][x] *= damp
		}
	}
}

func (s *Solver) advect(g *Grid, dt float64) {
	if len(s.scratch) != g.Rows || (g.Rows > 0 && len(s.scratch[0]) != g.Cols) {
		s.scratch = alloc(g.Rows, g.Cols)
	}
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			py := float64(y) - dt*s.Advection*g.VelY[y][x]
			px := float64(x) - dt*s.Advection*g.VelX[y][x]
			s.scratch[y][x] = math.Max(g.sample(py, px), 0)
		}
	}
	for y := range s.scratch {
		copy(g.Density[y], s.scratch[y])
	}
}

// sample bilinearly interpolates density at a fractional cell position,
// clamped to the grid.
func (g *Grid) sample(y, x float64) float64 {
	if g.Rows == 0 || g.Cols == 0 {
		return 0
	}
	y = math.Min(math.Max(y, 0), float64(g.Rows-1))
	x = math.Min(math.Max(x, 0), float64(g.Cols-1))

	y0, x0 := int(y), int(x)
	y1, x1 := min(y0+1, g.Rows-1), min(x0+1, g.Cols-1)
	ty, tx := y-float64(y0), x-float64(x0)

	top := g.Density[y0][x0]*(1-tx) + g.Density[y0][x1]*tx
	bottom := g.Density[y1][x0]*(1-tx) + g.Density[y1][x1]*tx
	return top*(1-ty) + bottom*ty
}
