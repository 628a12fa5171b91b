package config

import (
	"sort"

	"github.com/san-kum/fluidscene/internal/scene"
)

// Presets are built-in scenes that can be written out as scene files.
var Presets = map[string]func() *scene.Scene{
	"config5": func() *scene.Scene {
		s := scene.New()
		s.Colormap, s.Quiver = "Paired", "b"
		s.Densities = append(s.Densities, scene.DefaultDensity(11, 26, 8, 8))
		s.Velocities = append(s.Velocities,
			scene.NewVelocity(5, 30, 2, 0, scene.Normal, 0),
			scene.NewVelocity(35, 30, -1, 0, scene.Normal, 0),
		)
		s.Solids = append(s.Solids,
			scene.Solid{PosX: 20, PosY: 25, SizeX: 4, SizeY: 4},
			scene.Solid{PosX: 20, PosY: 31, SizeX: 4, SizeY: 4},
			scene.Solid{PosX: 26, PosY: 20, SizeX: 3, SizeY: 15},
		)
		return s
	},
	"vortex": func() *scene.Scene {
		s := scene.New()
		s.Colormap, s.Quiver = "inferno", "w"
		s.Densities = append(s.Densities, scene.Density{PosX: 23, PosY: 23, SizeX: 4, SizeY: 4, Amount: 60})
		s.Velocities = append(s.Velocities,
			scene.NewVelocity(25, 15, 3, 3, scene.RotateCW, 12),
			scene.NewVelocity(25, 35, 3, 3, scene.RotateCCW, 12),
		)
		return s
	},
	"sweep": func() *scene.Scene {
		s := scene.New()
		s.Colormap, s.Quiver = "Wistia", "k"
		s.Densities = append(s.Densities, scene.Density{PosX: 4, PosY: 20, SizeX: 3, SizeY: 10, Amount: 80})
		s.Velocities = append(s.Velocities,
			scene.NewVelocity(6, 25, 3, 0, scene.ReturnY, 8),
			scene.NewVelocity(25, 45, 0, -2, scene.ReturnX, 10),
		)
		s.Solids = append(s.Solids, scene.Solid{PosX: 30, PosY: 10, SizeX: 2, SizeY: 30})
		return s
	},
	"chamber": func() *scene.Scene {
		s := scene.New()
		s.Colormap, s.Quiver = "winter", "r"
		s.Densities = append(s.Densities,
			scene.Density{PosX: 10, PosY: 10, SizeX: 30, SizeY: 30, Amount: 20},
			scene.Density{PosX: 22, PosY: 22, SizeX: 6, SizeY: 6, Amount: 90},
		)
		s.Velocities = append(s.Velocities, scene.NewVelocity(25, 25, 2, 2, scene.RotateCW, 5))
		s.Solids = append(s.Solids,
			scene.Solid{PosX: 8, PosY: 8, SizeX: 34, SizeY: 2},
			scene.Solid{PosX: 8, PosY: 40, SizeX: 34, SizeY: 2},
		)
		return s
	},
}

// GetPreset returns a fresh copy of a built-in scene, or nil.
func GetPreset(name string) *scene.Scene {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
