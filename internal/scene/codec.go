package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	keyColormap = "colormap"
	keyQuiver   = "quiver"
	keyDensity  = "density"
	keyVelocity = "velocity"
	keySolid    = "solid"

	noneValue = "None"
	extension = ".txt"
)

// headerOrder is the precedence used when a line matches more than one key.
var headerOrder = []string{keyColormap, keyQuiver, keyDensity, keyVelocity, keySolid}

type parseOptions struct {
	strict bool
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

// WithStrictHeaders recognizes a header only when the line starts with
// "<key>=". By default any line containing a key is a header, so a record
// such as "1, 1, 2, 2, 9 velocity=0" opens a new section.
func WithStrictHeaders() ParseOption {
	return func(o *parseOptions) { o.strict = true }
}

type parser struct {
	opts      parseOptions
	scene     *Scene
	section   string
	remaining int
}

// Parse reads a scene in a single forward pass. After a count header exactly
// that many following lines are records of the section; further lines are
// ignored until the next header. Any error aborts the whole scene.
func Parse(r io.Reader, opts ...ParseOption) (*Scene, error) {
	p := &parser{scene: New()}
	for _, opt := range opts {
		opt(&p.opts)
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if err := p.line(line); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Wrapped: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return p.scene, nil
}

// Unmarshal parses a scene from a string.
func Unmarshal(text string, opts ...ParseOption) (*Scene, error) {
	return Parse(strings.NewReader(text), opts...)
}

func (p *parser) line(line string) error {
	if key, ok := p.header(line); ok {
		return p.applyHeader(key, line)
	}
	if p.remaining <= 0 {
		return nil
	}
	p.remaining--

	switch p.section {
	case keyDensity:
		d, err := parseDensity(line)
		if err != nil {
			return err
		}
		p.scene.Densities = append(p.scene.Densities, d)
	case keyVelocity:
		v, err := parseVelocity(line)
		if err != nil {
			return err
		}
		p.scene.Velocities = append(p.scene.Velocities, v)
	case keySolid:
		s, err := parseSolid(line)
		if err != nil {
			return err
		}
		p.scene.Solids = append(p.scene.Solids, s)
	}
	return nil
}

func (p *parser) header(line string) (string, bool) {
	for _, key := range headerOrder {
		if p.opts.strict {
			if strings.HasPrefix(strings.TrimSpace(line), key+"=") {
				return key, true
			}
		} else if strings.Contains(line, key) {
			return key, true
		}
	}
	return "", false
}

func (p *parser) applyHeader(key, line string) error {
	_, value, ok := strings.Cut(line, "=")
	if !ok {
		return fmt.Errorf("%w: %s", ErrMalformedHeader, key)
	}
	value = strings.TrimSpace(value)

	switch key {
	case keyColormap:
		p.scene.Colormap = paletteValue(value)
	case keyQuiver:
		p.scene.Quiver = paletteValue(value)
	default:
		n, err := atoi(value)
		if err != nil {
			return err
		}
		p.section = key
		p.remaining = n
	}
	return nil
}

func paletteValue(v string) string {
	if v == noneValue {
		return ""
	}
	return v
}

func fields(line string, want int) ([]int, error) {
	parts := strings.Split(line, ",")
	if len(parts) < want {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrMalformedRecord, want, len(parts))
	}
	out := make([]int, len(parts))
	for i, part := range parts {
		n, err := atoi(part)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedField, strings.TrimSpace(s))
	}
	return n, nil
}

func parseDensity(line string) (Density, error) {
	f, err := fields(line, 5)
	if err != nil {
		return Density{}, err
	}
	return Density{PosX: f[0], PosY: f[1], SizeX: f[2], SizeY: f[3], Amount: f[4]}, nil
}

func parseSolid(line string) (Solid, error) {
	f, err := fields(line, 4)
	if err != nil {
		return Solid{}, err
	}
	return Solid{PosX: f[0], PosY: f[1], SizeX: f[2], SizeY: f[3]}, nil
}

func parseVelocity(line string) (*Velocity, error) {
	f, err := fields(line, 5)
	if err != nil {
		return nil, err
	}
	mode, err := ModeFromID(f[4])
	if err != nil {
		return nil, err
	}
	param := 0
	if mode.HasParam() {
		if len(f) < 6 {
			return nil, fmt.Errorf("%w: %s needs an animation parameter", ErrMalformedRecord, mode)
		}
		param = f[5]
	}
	return NewVelocity(f[0], f[1], f[2], f[3], mode, param), nil
}

// Format writes the scene in the text format, without a trailing newline.
func Format(w io.Writer, s *Scene) error {
	_, err := io.WriteString(w, Marshal(s))
	return err
}

// Marshal returns the scene in the text format.
func Marshal(s *Scene) string {
	lines := []string{
		keyColormap + "=" + paletteName(s.Colormap),
		keyQuiver + "=" + paletteName(s.Quiver),
		fmt.Sprintf("%s=%d", keyDensity, len(s.Densities)),
	}
	for _, d := range s.Densities {
		lines = append(lines, d.String())
	}
	lines = append(lines, fmt.Sprintf("%s=%d", keyVelocity, len(s.Velocities)))
	for _, v := range s.Velocities {
		lines = append(lines, v.String())
	}
	lines = append(lines, fmt.Sprintf("%s=%d", keySolid, len(s.Solids)))
	for _, sol := range s.Solids {
		lines = append(lines, sol.String())
	}
	return strings.Join(lines, "\n")
}

func paletteName(name string) string {
	if name == "" {
		return noneValue
	}
	return name
}

// Path returns the file location of a named scene inside dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+extension)
}

// Load reads the named scene from dir.
func Load(dir, name string, opts ...ParseOption) (*Scene, error) {
	path := Path(dir, name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSceneNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	s, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes the scene to dir, creating the directory if needed, and
// returns the file path.
func Save(dir, name string, s *Scene) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := Path(dir, name)
	if err := os.WriteFile(path, []byte(Marshal(s)), 0644); err != nil {
		return "", err
	}
	return path, nil
}
