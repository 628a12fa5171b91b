package scene

import (
	"fmt"
	"math"
)

// Mode enumerates injector animations. Values are the 1-based ids used in
// scene files.
type Mode int

const (
	Normal Mode = iota + 1
	RotateCW
	RotateCCW
	ReturnX
	ReturnY
)

var modeNames = map[Mode]string{
	Normal:    "normal",
	RotateCW:  "rotate_cw",
	RotateCCW: "rotate_ccw",
	ReturnX:   "return_x",
	ReturnY:   "return_y",
}

// ModeFromID converts a scene file animation id into a Mode.
func ModeFromID(id int) (Mode, error) {
	m := Mode(id)
	if _, ok := modeNames[m]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAnimation, id)
	}
	return m, nil
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// HasParam reports whether records of this mode carry an animation parameter.
func (m Mode) HasParam() bool {
	return m == RotateCW || m == RotateCCW || m == ReturnX || m == ReturnY
}

// Axis selects the coordinate an Oscillation moves along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Motion is the animation law of a Velocity injector. The concrete types are
// Static, Rotation and Oscillation.
type Motion interface {
	Mode() Mode
	Param() int
	advance(v *Velocity)
}

// Static keeps the injector direction equal to its strength.
type Static struct{}

func (Static) Mode() Mode          { return Normal }
func (Static) Param() int          { return 0 }
func (Static) advance(v *Velocity) {}

// Rotation turns the injector direction by Degrees every tick.
//
// Clockwise adds the angle and counter-clockwise subtracts it. With the
// direction computed as (sx*cos, sy*sin) this reads counter-clockwise on a
// y-up plot; scene files depend on the convention, so it is kept as is.
type Rotation struct {
	Degrees   int
	Clockwise bool
}

func (r Rotation) Mode() Mode {
	if r.Clockwise {
		return RotateCW
	}
	return RotateCCW
}

func (r Rotation) Param() int { return r.Degrees }

func (r Rotation) advance(v *Velocity) {
	delta := float64(r.Degrees) * math.Pi / 180
	if r.Clockwise {
		v.rotation += delta
	} else {
		v.rotation -= delta
	}
	v.dirX = float64(v.StrengthX) * math.Cos(v.rotation)
	v.dirY = float64(v.StrengthY) * math.Sin(v.rotation)
}

// Oscillation moves the injector back and forth along one axis as a
// triangle wave of the given Amplitude around its origin.
type Oscillation struct {
	Amplitude int
	Axis      Axis
}

func (o Oscillation) Mode() Mode {
	if o.Axis == AxisY {
		return ReturnY
	}
	return ReturnX
}

func (o Oscillation) Param() int { return o.Amplitude }

func (o Oscillation) advance(v *Velocity) {
	if abs(v.length) >= o.Amplitude {
		v.stepSign = -v.stepSign
	}
	v.length += v.stepSign

	switch o.Axis {
	case AxisX:
		v.PosX = v.originX + v.length
	case AxisY:
		v.PosY = v.originY + v.length
	}
}

// MotionFor builds the Motion for a mode and its parameter. Unknown modes
// fall back to Static.
func MotionFor(mode Mode, param int) Motion {
	switch mode {
	case RotateCW:
		return Rotation{Degrees: param, Clockwise: true}
	case RotateCCW:
		return Rotation{Degrees: param}
	case ReturnX:
		return Oscillation{Amplitude: param, Axis: AxisX}
	case ReturnY:
		return Oscillation{Amplitude: param, Axis: AxisY}
	default:
		return Static{}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
