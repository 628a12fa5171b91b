package render

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fluidscene/internal/scene"
)

// Summary lists the assets of a scene in application order.
func Summary(name string, s *scene.Scene) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(name)) + "\n")
	b.WriteString(labelStyle.Render("Colormap") + valueStyle.Render(orNone(s.Colormap)) + "\n")
	b.WriteString(labelStyle.Render("Quiver") + valueStyle.Render(orNone(s.Quiver)) + "\n")

	fmt.Fprintf(&b, "\nDENSITY (%d)\n", len(s.Densities))
	for i, d := range s.Densities {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  #%d", i+1)) +
			valueStyle.Render(fmt.Sprintf("at (%d,%d) size %dx%d amount %d", d.PosX, d.PosY, d.SizeX, d.SizeY, d.Amount)) + "\n")
	}

	fmt.Fprintf(&b, "\nVELOCITY (%d)\n", len(s.Velocities))
	for i, v := range s.Velocities {
		x, y := v.Origin()
		desc := fmt.Sprintf("at (%d,%d) strength (%d,%d) %s", x, y, v.StrengthX, v.StrengthY, v.Mode())
		if v.Mode().HasParam() {
			desc += fmt.Sprintf(" %d", v.Param())
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("  #%d", i+1)) + valueStyle.Render(desc) + "\n")
	}

	fmt.Fprintf(&b, "\nSOLID (%d)\n", len(s.Solids))
	for i, sol := range s.Solids {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  #%d", i+1)) +
			valueStyle.Render(fmt.Sprintf("at (%d,%d) size %dx%d", sol.PosX, sol.PosY, sol.SizeX, sol.SizeY)) + "\n")
	}
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// Chart plots a series, or returns an empty string when there is nothing to
// draw.
func Chart(series []float64, caption string, height, width int) string {
	if len(series) < 2 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
