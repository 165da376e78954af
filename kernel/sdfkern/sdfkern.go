// Package sdfkern implements the kernel.Kernel contract with signed
// distance fields. Regions and solids are immutable value wrappers; every
// operation returns a new value, so a Kern may serve any number of
// concurrent fabrication requests.
package sdfkern

import (
	"errors"

	"github.com/fabkit/diecut/kernel"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tolerance = 1e-9

// Compile-time interface check.
var _ kernel.Kernel = Kern{}

// Kern is the SDF-backed geometry kernel. The zero value is ready to use.
type Kern struct{}

// New returns a new SDF kernel.
func New() Kern { return Kern{} }

// Polygon builds a region from a closed vertex loop.
func (Kern) Polygon(vertex []r2.Vec) (kernel.Region, error) {
	return newPolygon(vertex)
}

// Subtract returns outer with hole removed.
func (Kern) Subtract(outer, hole kernel.Region) (kernel.Region, error) {
	if outer == nil || hole == nil {
		return nil, errors.New("nil region argument")
	}
	if hole.Area() >= outer.Area() {
		return nil, errors.New("hole area exceeds container area")
	}
	return &difference{outer: outer, hole: hole}, nil
}

// TranslateRegion displaces a region within the profile plane.
func (Kern) TranslateRegion(reg kernel.Region, delta r2.Vec) kernel.Region {
	if delta == (r2.Vec{}) {
		return reg
	}
	return &translated{reg: reg, delta: delta}
}

// MirrorRegion reflects a region about the profile height axis.
func (Kern) MirrorRegion(reg kernel.Region) kernel.Region {
	return &mirrored{reg: reg}
}

// Extrude sweeps a region along the extrusion axis from 0 to length.
func (Kern) Extrude(reg kernel.Region, axis kernel.Axis, length float64) (kernel.Solid, error) {
	if length <= 0 {
		return nil, errors.New("non-positive extrusion length")
	}
	bb := reg.Bounds()
	size := r2.Sub(bb.Max, bb.Min)
	if size.X <= tolerance || size.Y <= tolerance {
		return nil, errors.New("degenerate region extents")
	}
	return newExtrusion(reg, axis, length), nil
}

// Slice cuts a solid with a half-space. The side the normal points into
// remains.
func (Kern) Slice(s kernel.Solid, origin, normal r3.Vec) (kernel.Solid, error) {
	return newCut(s, origin, normal)
}

// Place applies a rigid placement transform to a solid.
func (Kern) Place(s kernel.Solid, t kernel.Transform) kernel.Solid {
	if t.IsIdentity() {
		return s
	}
	return &placed{
		solid: s,
		inv:   t.Inverse(),
		bb:    t.ApplyBox(s.Bounds()),
	}
}
