// Package render draws scenes and flow fields in the terminal.
//
// [Heatmap] colors each density cell with the scene colormap and overlays
// velocity injectors as arrows in the quiver color. [Model] is a bubbletea
// program replaying a scene live; [Chart] plots a run series with asciigraph.
package render
