package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mazznoer/colorgrad"

	"github.com/san-kum/fluidscene/internal/field"
	"github.com/san-kum/fluidscene/internal/palette"
	"github.com/san-kum/fluidscene/internal/scene"
)

const (
	cellWidth  = 2
	solidGlyph = "▓▓"
)

var arrows = []string{"→", "↗", "↑", "↖", "←", "↙", "↓", "↘"}

// Arrow returns the glyph closest to a (row, column) direction. Rows grow
// downwards, so a positive dy points down.
func Arrow(dy, dx float64) string {
	if dy == 0 && dx == 0 {
		return "·"
	}
	angle := math.Atan2(-dy, dx)
	sector := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrows[sector]
}

// Colors holds the resolved scene palette.
type Colors struct {
	Gradient colorgrad.Gradient
	Quiver   string
}

func NewColors(colormap, quiver string) Colors {
	return Colors{Gradient: palette.Gradient(colormap), Quiver: palette.QuiverHex(quiver)}
}

// Heatmap renders g with solids and injectors of s drawn on top.
func Heatmap(g *field.Grid, s *scene.Scene, c Colors) string {
	peak := g.MaxDensity()

	solid := make(map[[2]int]bool)
	for _, sol := range s.Solids {
		for y := sol.PosY; y < sol.PosY+sol.SizeY; y++ {
			for x := sol.PosX; x < sol.PosX+sol.SizeX; x++ {
				solid[[2]int{y, x}] = true
			}
		}
	}
	injector := make(map[[2]int]*scene.Velocity)
	for _, v := range s.Velocities {
		injector[[2]int{v.PosY, v.PosX}] = v
	}

	quiver := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Quiver))
	styles := make(map[string]lipgloss.Style)

	var b strings.Builder
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			key := [2]int{y, x}
			if solid[key] {
				b.WriteString(solidStyle.Render(solidGlyph))
				continue
			}

			t := 0.0
			if peak > 0 {
				t = math.Max(g.Density[y][x], 0) / peak
			}
			hex := palette.Shade(c.Gradient, t)
			style, ok := styles[hex]
			if !ok {
				style = lipgloss.NewStyle().Background(lipgloss.Color(hex))
				styles[hex] = style
			}

			if v, ok := injector[key]; ok {
				dy, dx := v.Direction()
				b.WriteString(style.Inherit(quiver).Render(Arrow(dy, dx) + " "))
				continue
			}
			b.WriteString(style.Render(strings.Repeat(" ", cellWidth)))
		}
		if y < g.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
