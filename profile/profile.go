// Package profile loads 2-D cross-section ("die") definitions for the
// fabrication engine. The supported external format is DXF; profiles may
// also be assembled in memory for tests and embedding callers.
package profile

import (
	"github.com/fabkit/diecut/kernel"
	"gonum.org/v1/gonum/spatial/r2"
)

// AnchorLayer is the DXF layer name that marks the profile work point.
// The first vertex of any entity on this layer becomes the anchor and the
// entity itself is not treated as profile geometry.
const AnchorLayer = "WORKPOINT"

// Curve is one polyline loop of a profile drawing.
type Curve struct {
	Vertex []r2.Vec
	// Closed records whether the source entity was a closed loop, either
	// by its DXF closed flag or by coincident first/last vertices.
	Closed bool
}

// Bounds returns the bounding box of the curve vertices.
func (c Curve) Bounds() r2.Box {
	bb := r2.Box{Min: c.Vertex[0], Max: c.Vertex[0]}
	for _, v := range c.Vertex[1:] {
		if v.X < bb.Min.X {
			bb.Min.X = v.X
		}
		if v.Y < bb.Min.Y {
			bb.Min.Y = v.Y
		}
		if v.X > bb.Max.X {
			bb.Max.X = v.X
		}
		if v.Y > bb.Max.Y {
			bb.Max.Y = v.Y
		}
	}
	return bb
}

// Definition is a loaded profile: an ordered set of closed curves or,
// alternatively, pre-built regions. A Definition is immutable once loaded.
type Definition struct {
	Curves []Curve
	// Regions, when non-nil, bypasses curve-to-region construction in the
	// resolver. Used by callers that already hold kernel regions.
	Regions []kernel.Region
	// Anchor is the optional work point tagged on the profile, used
	// downstream to align the part to an assembly feature.
	Anchor *r2.Vec
}
