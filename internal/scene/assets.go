package scene

import "fmt"

// DefaultAmount is the fill amount used by DefaultDensity.
const DefaultAmount = 100

// Rect is an axis-aligned cell rectangle: top-left corner plus width and height.
type Rect struct {
	X, Y int
	W, H int
}

// Density is a rectangular mass source. It is never mutated by replay.
type Density struct {
	PosX, PosY   int
	SizeX, SizeY int
	Amount       int
}

// DefaultDensity returns a density source filled with DefaultAmount.
func DefaultDensity(posX, posY, sizeX, sizeY int) Density {
	return Density{PosX: posX, PosY: posY, SizeX: sizeX, SizeY: sizeY, Amount: DefaultAmount}
}

func (d Density) Rect() Rect { return Rect{X: d.PosX, Y: d.PosY, W: d.SizeX, H: d.SizeY} }

func (d Density) String() string {
	return fmt.Sprintf("%d, %d, %d, %d, %d", d.PosX, d.PosY, d.SizeX, d.SizeY, d.Amount)
}

// Solid is a rectangular obstacle. It carries no payload and only masks.
type Solid struct {
	PosX, PosY   int
	SizeX, SizeY int
}

func (s Solid) Rect() Rect { return Rect{X: s.PosX, Y: s.PosY, W: s.SizeX, H: s.SizeY} }

func (s Solid) String() string {
	return fmt.Sprintf("%d, %d, %d, %d", s.PosX, s.PosY, s.SizeX, s.SizeY)
}
