// Package palette resolves colormap and quiver color names against fixed
// catalogs. Names that do not resolve fall back to a Chooser, which may block
// on user input.
package palette

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrNoSelection = errors.New("palette: input closed before a selection was made")

// Preset is a curated menu entry.
type Preset struct {
	Label string
	Name  string
}

// Chooser picks one of presets and returns its index.
type Chooser interface {
	Choose(title string, presets []Preset) (int, error)
}

// First always picks the first preset.
type First struct{}

func (First) Choose(string, []Preset) (int, error) { return 0, nil }

// Prompt prints a numbered menu and reads lines until a valid number is
// entered. An empty line selects the first entry.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) Choose(title string, presets []Preset) (int, error) {
	for i, preset := range presets {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, preset.Label)
	}
	for {
		fmt.Fprintf(p.out, "Choose a %s (default 1): ", title)
		line, err := p.in.ReadString('\n')
		text := strings.TrimSpace(line)
		if n, convErr := strconv.Atoi(text); convErr == nil && n >= 1 && n <= len(presets) {
			return n - 1, nil
		}
		if err != nil {
			return 0, ErrNoSelection
		}
		if text == "" {
			return 0, nil
		}
	}
}

// Resolver maps a requested name to its canonical catalog entry.
type Resolver struct {
	Title   string
	Catalog []string
	Presets []Preset
	Chooser Chooser
}

func NewColormapResolver(c Chooser) *Resolver {
	return &Resolver{Title: "color", Catalog: Colormaps, Presets: ColormapPresets, Chooser: c}
}

func NewQuiverResolver(c Chooser) *Resolver {
	return &Resolver{Title: "quiver color", Catalog: QuiverColors, Presets: QuiverPresets, Chooser: c}
}

// Lookup finds name in the catalog, ignoring case.
func (r *Resolver) Lookup(name string) (string, bool) {
	for _, entry := range r.Catalog {
		if strings.EqualFold(name, entry) {
			return entry, true
		}
	}
	return "", false
}

// Resolve returns the canonical name, or asks the Chooser when name is
// empty, "None", or not in the catalog.
func (r *Resolver) Resolve(name string) (string, error) {
	if name != "" && name != "None" {
		if entry, ok := r.Lookup(name); ok {
			return entry, nil
		}
	}

	chooser := r.Chooser
	if chooser == nil {
		chooser = First{}
	}
	i, err := chooser.Choose(r.Title, r.Presets)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(r.Presets) {
		return "", fmt.Errorf("palette: selection %d out of range", i+1)
	}
	return r.Presets[i].Name, nil
}
