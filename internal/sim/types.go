package sim

import (
	"errors"

	"github.com/san-kum/fluidscene/internal/field"
	"github.com/san-kum/fluidscene/internal/scene"
)

var ErrInvalidConfig = errors.New("sim: invalid run config")

// Stepper advances the flow field between compositions.
type Stepper interface {
	Step(g *field.Grid, dt float64)
}

type Metric interface {
	Name() string
	Observe(g *field.Grid, tick int)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(s *scene.Scene, g *field.Grid, tick int)
}

type Config struct {
	Ticks int
	Dt    float64
}

type Result struct {
	Ticks        int
	TotalDensity []float64
	MaxSpeed     []float64
	Metrics      map[string]float64
}
