package metrics

import (
	"math"

	"github.com/san-kum/fluidscene/internal/field"
)

// Mass is the mean total density over the observed ticks.
type Mass struct {
	name    string
	total   float64
	samples int
}

func NewMass() *Mass {
	return &Mass{name: "mass"}
}

func (m *Mass) Name() string { return m.name }

func (m *Mass) Observe(g *field.Grid, tick int) {
	m.total += g.TotalDensity()
	m.samples++
}

func (m *Mass) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *Mass) Reset() {
	m.total = 0
	m.samples = 0
}

// PeakSpeed is the largest velocity magnitude seen in any cell.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(g *field.Grid, tick int) {
	p.peak = math.Max(p.peak, g.MaxSpeed())
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }

// Coverage is the fraction of cells holding density at the last tick.
type Coverage struct {
	name  string
	value float64
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(g *field.Grid, tick int) {
	cells := g.Rows * g.Cols
	if cells == 0 {
		c.value = 0
		return
	}
	c.value = float64(g.Occupied()) / float64(cells)
}

func (c *Coverage) Value() float64 { return c.value }

func (c *Coverage) Reset() { c.value = 0 }
