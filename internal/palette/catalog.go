package palette

// Colormaps lists the colormap names a scene may request.
var Colormaps = []string{
	"viridis", "plasma", "inferno", "magma", "cividis",
	"Greys", "Purples", "Blues", "Greens", "Oranges", "Reds",
	"YlOrBr", "YlOrRd", "OrRd", "PuRd", "RdPu", "BuPu", "GnBu", "PuBu", "YlGnBu", "PuBuGn", "BuGn", "YlGn",
	"binary", "gist_yarg", "gist_gray", "gray", "bone", "pink",
	"spring", "summer", "autumn", "winter", "cool", "Wistia",
	"hot", "afmhot", "gist_heat", "copper",
	"PiYG", "PRGn", "BrBG", "PuOr", "RdGy", "RdBu", "RdYlBu", "RdYlGn", "Spectral", "coolwarm", "bwr", "seismic",
	"twilight", "twilight_shifted", "hsv",
	"Pastel1", "Pastel2", "Paired", "Accent", "Dark2", "Set1", "Set2", "Set3", "tab10", "tab20", "tab20b", "tab20c",
	"flag", "prism", "ocean", "gist_earth", "terrain", "gist_stern", "gnuplot", "gnuplot2", "CMRmap",
	"cubehelix", "brg", "gist_rainbow", "rainbow", "jet", "turbo", "nipy_spectral", "gist_ncar",
}

// QuiverColors lists the single-letter arrow colors.
var QuiverColors = []string{"b", "g", "r", "c", "m", "y", "k", "w"}

var ColormapPresets = []Preset{
	{Label: "Purple to yellow", Name: "viridis"},
	{Label: "Yellow to orange", Name: "Wistia"},
	{Label: "Blue to green", Name: "winter"},
}

var QuiverPresets = []Preset{
	{Label: "Black", Name: "k"},
	{Label: "White", Name: "w"},
	{Label: "Red", Name: "r"},
}

// quiverHex maps arrow color codes to terminal colors.
var quiverHex = map[string]string{
	"b": "#1f77b4",
	"g": "#2ca02c",
	"r": "#d62728",
	"c": "#17becf",
	"m": "#e377c2",
	"y": "#bcbd22",
	"k": "#000000",
	"w": "#ffffff",
}

// QuiverHex returns the hex color for an arrow color code, or white.
func QuiverHex(code string) string {
	if hex, ok := quiverHex[code]; ok {
		return hex
	}
	return quiverHex["w"]
}
