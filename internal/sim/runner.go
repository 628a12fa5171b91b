package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/fluidscene/internal/compositor"
	"github.com/san-kum/fluidscene/internal/field"
	"github.com/san-kum/fluidscene/internal/scene"
)

// Runner replays a scene tick by tick: the stepper transports the field,
// then the compositor injects and masks the scene on top.
type Runner struct {
	compositor *compositor.Compositor
	stepper    Stepper
	metrics    []Metric
	observers  []Observer
}

// New creates a runner. A nil stepper leaves the field untouched between
// compositions.
func New(c *compositor.Compositor, stepper Stepper) *Runner {
	return &Runner{
		compositor: c,
		stepper:    stepper,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Tick runs one simulation step.
func (r *Runner) Tick(s *scene.Scene, g *field.Grid, dt float64) {
	if r.stepper != nil {
		r.stepper.Step(g, dt)
	}
	r.compositor.Apply(s, g)
}

func (r *Runner) Run(ctx context.Context, s *scene.Scene, g *field.Grid, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		TotalDensity: make([]float64, 0, cfg.Ticks),
		MaxSpeed:     make([]float64, 0, cfg.Ticks),
		Metrics:      make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		r.Tick(s, g, cfg.Dt)

		for _, m := range r.metrics {
			m.Observe(g, i)
		}
		for _, obs := range r.observers {
			obs.OnTick(s, g, i)
		}

		result.Ticks++
		result.TotalDensity = append(result.TotalDensity, g.TotalDensity())
		result.MaxSpeed = append(result.MaxSpeed, g.MaxSpeed())
	}

	r.collect(result)
	return result, nil
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalidConfig, cfg.Ticks)
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	return nil
}
