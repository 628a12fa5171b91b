package palette

import (
	"strings"

	"github.com/mazznoer/colorgrad"
)

var gradients = map[string]func() colorgrad.Gradient{
	"viridis":   colorgrad.Viridis,
	"plasma":    colorgrad.Plasma,
	"inferno":   colorgrad.Inferno,
	"magma":     colorgrad.Magma,
	"cividis":   colorgrad.Cividis,
	"turbo":     colorgrad.Turbo,
	"rainbow":   colorgrad.Rainbow,
	"cool":      colorgrad.Cool,
	"spectral":  colorgrad.Spectral,
	"greys":     colorgrad.Greys,
	"purples":   colorgrad.Purples,
	"blues":     colorgrad.Blues,
	"greens":    colorgrad.Greens,
	"oranges":   colorgrad.Oranges,
	"reds":      colorgrad.Reds,
	"ylorbr":    colorgrad.YlOrBr,
	"ylorrd":    colorgrad.YlOrRd,
	"orrd":      colorgrad.OrRd,
	"purd":      colorgrad.PuRd,
	"rdpu":      colorgrad.RdPu,
	"bupu":      colorgrad.BuPu,
	"gnbu":      colorgrad.GnBu,
	"pubu":      colorgrad.PuBu,
	"ylgnbu":    colorgrad.YlGnBu,
	"pubugn":    colorgrad.PuBuGn,
	"bugn":      colorgrad.BuGn,
	"ylgn":      colorgrad.YlGn,
	"piyg":      colorgrad.PiYG,
	"prgn":      colorgrad.PRGn,
	"brbg":      colorgrad.BrBG,
	"puor":      colorgrad.PuOr,
	"rdgy":      colorgrad.RdGy,
	"rdbu":      colorgrad.RdBu,
	"rdylbu":    colorgrad.RdYlBu,
	"rdylgn":    colorgrad.RdYlGn,
	"cubehelix": colorgrad.CubehelixDefault,
}

// Colormaps without a built-in gradient, approximated by their end colors.
var stops = map[string][]string{
	"wistia":   {"#e4ff7a", "#ffe81a", "#ffbd00", "#ffa000", "#fc7f00"},
	"winter":   {"#0000ff", "#0080c0", "#00ff80"},
	"summer":   {"#008066", "#ffff66"},
	"spring":   {"#ff00ff", "#ffff00"},
	"autumn":   {"#ff0000", "#ffff00"},
	"hot":      {"#0b0000", "#ff0000", "#ffff00", "#ffffff"},
	"copper":   {"#000000", "#ffc77f"},
	"bone":     {"#000000", "#546474", "#a7c7c7", "#ffffff"},
	"gray":     {"#000000", "#ffffff"},
	"binary":   {"#ffffff", "#000000"},
	"jet":      {"#00007f", "#0000ff", "#00ffff", "#ffff00", "#ff0000", "#7f0000"},
	"ocean":    {"#008000", "#000080", "#00ffff", "#ffffff"},
	"bwr":      {"#0000ff", "#ffffff", "#ff0000"},
	"seismic":  {"#00004c", "#0000ff", "#ffffff", "#ff0000", "#800000"},
	"coolwarm": {"#3b4cc0", "#dddddd", "#b40426"},
}

// Gradient returns a color gradient approximating the named colormap.
// Unknown names use viridis.
func Gradient(name string) colorgrad.Gradient {
	key := strings.ToLower(name)
	if fn, ok := gradients[key]; ok {
		return fn()
	}
	if colors, ok := stops[key]; ok {
		if g, err := colorgrad.NewGradient().HtmlColors(colors...).Build(); err == nil {
			return g
		}
	}
	return colorgrad.Viridis()
}

// Shade returns the hex color of g at t in [0, 1].
func Shade(g colorgrad.Gradient, t float64) string {
	return g.At(t).Clamped().Hex()
}
