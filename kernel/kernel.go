// Package kernel defines the geometry kernel contract the fabrication
// engine is built on. The engine only ever manipulates profiles and solids
// through a Kernel value passed in explicitly; there is no ambient
// document or session state.
package kernel

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis selects the extrusion axis of a fabricated part.
type Axis int

const (
	// AxisX extrudes along +X with the profile re-oriented into the YZ
	// plane: profile width becomes depth (Y), profile height becomes Z.
	AxisX Axis = iota
	// AxisZ extrudes along +Z leaving the profile in the XY plane as drawn.
	AxisZ
)

// Frame returns the unit axis, depth and height directions of the
// extrusion frame for a.
func (a Axis) Frame() (axis, depth, height r3.Vec) {
	if a == AxisZ {
		return r3.Vec{Z: 1}, r3.Vec{X: 1}, r3.Vec{Y: 1}
	}
	return r3.Vec{X: 1}, r3.Vec{Y: 1}, r3.Vec{Z: 1}
}

// Lift maps a point in the profile plane to its 3d position at the start
// of the extrusion.
func (a Axis) Lift(p r2.Vec) r3.Vec {
	if a == AxisZ {
		return r3.Vec{X: p.X, Y: p.Y}
	}
	return r3.Vec{Y: p.X, Z: p.Y}
}

// Region is a planar area bounded by one outer loop and zero or more
// holes. Evaluate returns the signed distance to the region boundary,
// negative inside.
type Region interface {
	Evaluate(p r2.Vec) float64
	Bounds() r2.Box
	Area() float64
}

// Solid is a 3d body. Evaluate returns the signed distance to the solid
// surface, negative inside. Bounds is kept tight through every kernel
// operation, including plane slicing.
type Solid interface {
	Evaluate(p r3.Vec) float64
	Bounds() r3.Box
}

// Kernel provides the primitive geometric operations the fabrication
// pipeline is expressed in. Implementations must be safe for concurrent
// use by independent fabrication requests.
type Kernel interface {
	// Polygon builds a region from a closed vertex loop. The loop is
	// closed automatically if the last vertex does not coincide with the
	// first. Open or degenerate input is an error.
	Polygon(vertex []r2.Vec) (Region, error)

	// Subtract returns outer with hole removed. The hole is expected to
	// lie fully inside outer.
	Subtract(outer, hole Region) (Region, error)

	// TranslateRegion displaces a region within the profile plane.
	TranslateRegion(reg Region, delta r2.Vec) Region

	// MirrorRegion reflects a region about the profile height axis
	// (u -> -u). Used for handed parts.
	MirrorRegion(reg Region) Region

	// Extrude sweeps a region along the extrusion axis from 0 to length.
	Extrude(reg Region, axis Axis, length float64) (Solid, error)

	// Slice cuts a solid with the plane through origin with the given
	// normal. The material on the side the normal points into remains.
	// Slicing that would discard the entire solid is an error and leaves
	// the argument untouched.
	Slice(s Solid, origin, normal r3.Vec) (Solid, error)

	// Place applies a rigid placement transform to a solid.
	Place(s Solid, t Transform) Solid
}
