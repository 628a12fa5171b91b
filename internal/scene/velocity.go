package scene

import (
	"fmt"
	"strconv"
)

// Velocity is a single-cell momentum injector.
//
// PosX and PosY hold the current cell; oscillating injectors move them on
// every Step. The origin they were constructed with is kept for Reset and
// serialization.
type Velocity struct {
	PosX, PosY           int
	StrengthX, StrengthY int

	motion           Motion
	originX, originY int

	dirX, dirY float64
	rotation   float64
	length     int
	stepSign   int
}

// NewVelocity creates an injector. Modes outside the enumeration are coerced
// to Normal, and the parameter is dropped for Normal.
func NewVelocity(posX, posY, strengthX, strengthY int, mode Mode, param int) *Velocity {
	return NewVelocityWithMotion(posX, posY, strengthX, strengthY, MotionFor(mode, param))
}

// NewVelocityWithMotion creates an injector from an explicit Motion. A nil
// motion means Static.
func NewVelocityWithMotion(posX, posY, strengthX, strengthY int, motion Motion) *Velocity {
	if motion == nil {
		motion = Static{}
	}
	v := &Velocity{
		StrengthX: strengthX,
		StrengthY: strengthY,
		motion:    motion,
		originX:   posX,
		originY:   posY,
	}
	v.Reset()
	return v
}

func (v *Velocity) Motion() Motion { return v.motion }
func (v *Velocity) Mode() Mode     { return v.motion.Mode() }
func (v *Velocity) Param() int     { return v.motion.Param() }

// Origin returns the position the injector was constructed with.
func (v *Velocity) Origin() (x, y int) { return v.originX, v.originY }

// Direction returns the vector to inject in (row, column) = (y, x) order.
func (v *Velocity) Direction() (dy, dx float64) {
	return v.dirY, v.dirX
}

// Phase returns the accumulated rotation in radians for rotating injectors,
// the current offset from the origin for oscillating ones, and 0 otherwise.
func (v *Velocity) Phase() float64 {
	switch v.motion.(type) {
	case Rotation:
		return v.rotation
	case Oscillation:
		return float64(v.length)
	}
	return 0
}

// Step advances the animation by one tick.
func (v *Velocity) Step() {
	v.motion.advance(v)
}

// Reset restores the initial phase and position.
func (v *Velocity) Reset() {
	v.PosX, v.PosY = v.originX, v.originY
	v.dirX = float64(v.StrengthX)
	v.dirY = float64(v.StrengthY)
	v.rotation = 0
	v.length = 0
	v.stepSign = 1
}

// Clone returns an injector with the same definition and a fresh phase.
func (v *Velocity) Clone() *Velocity {
	return NewVelocityWithMotion(v.originX, v.originY, v.StrengthX, v.StrengthY, v.motion)
}

func (v *Velocity) String() string {
	s := fmt.Sprintf("%d, %d, %d, %d, %d", v.originX, v.originY, v.StrengthX, v.StrengthY, int(v.Mode()))
	if v.Mode().HasParam() {
		s += ", " + strconv.Itoa(v.Param())
	}
	return s
}
