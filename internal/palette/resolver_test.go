package palette

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fixedChooser struct {
	index  int
	called int
}

func (f *fixedChooser) Choose(string, []Preset) (int, error) {
	f.called++
	return f.index, nil
}

func TestResolveCanonicalCase(t *testing.T) {
	c := &fixedChooser{}
	r := NewColormapResolver(c)

	tests := []struct {
		in, want string
	}{
		{"VIRIDIS", "viridis"},
		{"wistia", "Wistia"},
		{"rdylbu", "RdYlBu"},
		{"gist_ncar", "gist_ncar"},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.in)
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.in, tt.want, got)
		}
	}
	if c.called != 0 {
		t.Errorf("chooser should not run for catalog names, ran %d times", c.called)
	}
}

func TestResolveFallsBackToChooser(t *testing.T) {
	c := &fixedChooser{index: 2}
	r := NewColormapResolver(c)

	for _, name := range []string{"", "None", "not-a-map", "viridis2"} {
		got, err := r.Resolve(name)
		if err != nil {
			t.Fatalf("%q: %v", name, err)
		}
		if got != "winter" {
			t.Errorf("%q: expected winter, got %s", name, got)
		}
	}
	if c.called != 4 {
		t.Errorf("expected 4 chooser calls, got %d", c.called)
	}
}

func TestQuiverResolver(t *testing.T) {
	r := NewQuiverResolver(First{})

	got, err := r.Resolve("B")
	if err != nil || got != "b" {
		t.Errorf("expected b, got %s (%v)", got, err)
	}

	got, err = r.Resolve("blue")
	if err != nil || got != "k" {
		t.Errorf("expected first preset k, got %s (%v)", got, err)
	}
}

func TestNilChooserUsesFirst(t *testing.T) {
	r := &Resolver{Catalog: Colormaps, Presets: ColormapPresets}
	got, err := r.Resolve("")
	if err != nil || got != "viridis" {
		t.Errorf("expected viridis, got %s (%v)", got, err)
	}
}

func TestPromptRetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompt(strings.NewReader("7\nabc\n2\n"), &out)

	i, err := p.Choose("color", ColormapPresets)
	if err != nil {
		t.Fatalf("choose failed: %v", err)
	}
	if i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if n := strings.Count(out.String(), "Choose a color"); n != 3 {
		t.Errorf("expected 3 prompts, got %d", n)
	}
	if !strings.Contains(out.String(), "1. Purple to yellow") {
		t.Errorf("menu not printed: %q", out.String())
	}
}

func TestPromptDefault(t *testing.T) {
	p := NewPrompt(strings.NewReader("\n"), &bytes.Buffer{})
	i, err := p.Choose("color", ColormapPresets)
	if err != nil || i != 0 {
		t.Errorf("expected default index 0, got %d (%v)", i, err)
	}

	p = NewPrompt(strings.NewReader("3"), &bytes.Buffer{})
	i, err = p.Choose("color", ColormapPresets)
	if err != nil || i != 2 {
		t.Errorf("expected index 2 without trailing newline, got %d (%v)", i, err)
	}
}

func TestPromptClosedInput(t *testing.T) {
	p := NewPrompt(strings.NewReader("9\n"), &bytes.Buffer{})
	_, err := p.Choose("color", ColormapPresets)
	if !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}

	r := NewColormapResolver(NewPrompt(strings.NewReader(""), &bytes.Buffer{}))
	if _, err := r.Resolve(""); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection from resolver, got %v", err)
	}
}

func TestCatalogSizes(t *testing.T) {
	if len(Colormaps) < 80 {
		t.Errorf("expected at least 80 colormaps, got %d", len(Colormaps))
	}
	if len(QuiverColors) != 8 {
		t.Errorf("expected 8 quiver colors, got %d", len(QuiverColors))
	}
	for _, p := range ColormapPresets {
		if _, ok := NewColormapResolver(nil).Lookup(p.Name); !ok {
			t.Errorf("preset %s missing from catalog", p.Name)
		}
	}
}

func TestGradient(t *testing.T) {
	for _, name := range []string{"viridis", "Wistia", "winter", "unknown"} {
		g := Gradient(name)
		lo, hi := Shade(g, 0), Shade(g, 1)
		if !strings.HasPrefix(lo, "#") || len(lo) != 7 {
			t.Errorf("%s: bad hex %q", name, lo)
		}
		if lo == hi {
			t.Errorf("%s: gradient ends should differ", name)
		}
	}
	if Shade(Gradient("unknown"), 0) != Shade(Gradient("viridis"), 0) {
		t.Error("unknown names should fall back to viridis")
	}
}

func TestQuiverHex(t *testing.T) {
	if QuiverHex("k") != "#000000" {
		t.Errorf("expected black, got %s", QuiverHex("k"))
	}
	if QuiverHex("?") != "#ffffff" {
		t.Errorf("expected white fallback, got %s", QuiverHex("?"))
	}
}
