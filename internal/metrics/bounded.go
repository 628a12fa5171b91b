package metrics

import "github.com/san-kum/fluidscene/internal/field"

// Bounded is the fraction of ticks whose peak cell density stayed at or
// below a threshold. Additive scenes without decay drift towards 0.
type Bounded struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewBounded(threshold float64) *Bounded {
	return &Bounded{
		name:      "bounded",
		threshold: threshold,
	}
}

func (b *Bounded) Name() string {
	return b.name
}

func (b *Bounded) Observe(g *field.Grid, tick int) {
	b.samples++
	if g.MaxDensity() > b.threshold {
		b.violations++
	}
}

func (b *Bounded) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bounded) Reset() {
	b.violations = 0
	b.samples = 0
}
