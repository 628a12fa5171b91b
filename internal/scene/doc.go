// Package scene describes authored fluid scenes and their text format.
//
// A [Scene] is an ordered set of assets replayed onto a flow field once per
// tick:
//
//   - [Density]: rectangular mass source
//   - [Velocity]: single-cell momentum injector with an optional [Motion]
//   - [Solid]: rectangular obstacle that masks the field
//
// Scenes are read with [Parse] or [Load] and written with [Format] or [Save].
//
// # Format
//
//	colormap=viridis
//	quiver=k
//	density=1
//	11, 26, 8, 8, 100
//	velocity=1
//	5, 30, 2, 0, 2, 15
//	solid=1
//	20, 25, 4, 4
//
// Velocity records end with the 1-based animation id and, for animated
// modes, the animation parameter.
//
// # Thread Safety
//
// Velocity injectors mutate their own phase on [Velocity.Step]. A Scene must
// not be stepped from more than one goroutine; use [Scene.Clone] to replay
// the same scene independently.
package scene
