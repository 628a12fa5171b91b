package scene

// Scene is the full set of assets and palette choices for one run. Slice
// order is application order.
type Scene struct {
	Colormap   string
	Quiver     string
	Densities  []Density
	Velocities []*Velocity
	Solids     []Solid
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{
		Densities:  make([]Density, 0),
		Velocities: make([]*Velocity, 0),
		Solids:     make([]Solid, 0),
	}
}

// Clone deep-copies the scene. Injectors in the copy start from a fresh phase.
func (s *Scene) Clone() *Scene {
	c := &Scene{
		Colormap:   s.Colormap,
		Quiver:     s.Quiver,
		Densities:  make([]Density, len(s.Densities)),
		Velocities: make([]*Velocity, len(s.Velocities)),
		Solids:     make([]Solid, len(s.Solids)),
	}
	copy(c.Densities, s.Densities)
	copy(c.Solids, s.Solids)
	for i, v := range s.Velocities {
		c.Velocities[i] = v.Clone()
	}
	return c
}

// Reset rewinds every injector to its initial phase.
func (s *Scene) Reset() {
	for _, v := range s.Velocities {
		v.Reset()
	}
}

// Animated reports whether any injector has a non-static motion.
func (s *Scene) Animated() bool {
	for _, v := range s.Velocities {
		if v.Mode() != Normal {
			return true
		}
	}
	return false
}
