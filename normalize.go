package diecut

import (
	"fmt"

	"github.com/fabkit/diecut/internal/d2"
	"github.com/fabkit/diecut/kernel"
	"gonum.org/v1/gonum/spatial/r2"
)

// normalized is the profile in canonical placement, ready to extrude.
type normalized struct {
	regions []kernel.Region
	width   float64 // profile extent along the width (depth) axis
	height  float64
	anchor  *r2.Vec
	axis    kernel.Axis
}

// normalize moves the resolved regions into the canonical frame for
// extrusion: minimum width coordinate at 0 and, unless the original
// orientation is preserved, the height centered about 0. A handed request
// mirrors the width axis first, so mirrored and unmirrored variants of
// the same profile stay geometrically consistent. Already-normalized
// input passes through untouched.
func (e *Engine) normalize(regions []kernel.Region, anchor *r2.Vec, req Request) (normalized, error) {
	n := normalized{regions: regions, axis: req.axis()}
	if anchor != nil {
		a := *anchor
		n.anchor = &a
	}

	bb := d2.Box(regions[0].Bounds())
	for _, reg := range regions[1:] {
		bb = bb.Extend(d2.Box(reg.Bounds()))
	}
	size := bb.Size()
	n.width, n.height = size.X, size.Y
	if n.width <= 0 || n.height <= 0 {
		return n, fmt.Errorf("%w: degenerate extents %gx%g", ErrInvalidProfile, n.width, n.height)
	}

	if req.mirrored() {
		for i, reg := range n.regions {
			n.regions[i] = e.Kernel.MirrorRegion(reg)
		}
		if n.anchor != nil {
			n.anchor.X = -n.anchor.X
		}
		bb = d2.Box{
			Min: r2.Vec{X: -bb.Max.X, Y: bb.Min.Y},
			Max: r2.Vec{X: -bb.Min.X, Y: bb.Max.Y},
		}
	}

	delta := r2.Vec{X: -bb.Min.X}
	if !req.PreserveOrientation {
		delta.Y = -(bb.Min.Y + bb.Max.Y) / 2
	}
	for i, reg := range n.regions {
		n.regions[i] = e.Kernel.TranslateRegion(reg, delta)
	}
	if n.anchor != nil {
		*n.anchor = r2.Add(*n.anchor, delta)
	}
	return n, nil
}
