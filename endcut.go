package diecut

import (
	"math"

	"github.com/fabkit/diecut/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// cutEnds slices every solid against the cutting plane of each end.
//
// The left end is only sliced when its spec is non-square. The right end
// is always sliced: the square right cut is what trims the overcut, so a
// {90,90}/{90,90} request yields exactly the nominal length.
func (e *Engine) cutEnds(parts []Part, n normalized, req Request) []Warning {
	var warns []Warning
	if left := req.LeftCut.orSquare(); !left.Square() {
		warns = append(warns, e.cutEnd(parts, n, LeftEnd, left, req.Length)...)
	}
	warns = append(warns, e.cutEnd(parts, n, RightEnd, req.RightCut.orSquare(), req.Length)...)
	return warns
}

func (e *Engine) cutEnd(parts []Part, n normalized, end End, spec CutSpec, length float64) []Warning {
	origin, normal := cutPlane(end, spec, n.axis, n.width, n.height, length)

	var warns []Warning
	for i := range parts {
		cut, err := e.Kernel.Slice(parts[i].Solid, origin, normal)
		if err != nil {
			e.Log.Printf("endcut: %s cut failed on solid %d: %v", end, i, err)
			warns = append(warns, CutWarning{Solid: i, End: end, Err: err})
			continue
		}
		parts[i].Solid = cut
	}
	return warns
}

// cutPlane computes the cutting plane of one end. The returned unit-scale
// normal points into the kept stock.
//
// With m = miter-90 and t = tilt-90 in radians, the normal is the
// spherical construction
//
//	n = a cos(t)cos(m) + d cos(t)sin(m) + h sin(t)
//
// over the frame (a, d, h) = (extrusion axis, depth, height). The right
// end is the mirror image of the left: its miter is first replaced by
// 180-miter and the axis and depth components of the normal are negated.
//
// Angles past 90 would make the plane slice through the stock twice if it
// stayed anchored at the end face, so the plane is moved into the stock
// by the larger of width*tan(m) and height*tan(t). At the canonical
// values this gives no offset at 45 and a full depth offset at 135. The
// tan() blows up for angles approaching 0 or 180; callers get a large
// but finite offset.
func cutPlane(end End, spec CutSpec, axis kernel.Axis, width, height, length float64) (origin, normal r3.Vec) {
	a, d, h := axis.Frame()

	miter := spec.Miter
	sign := 1.0
	if end == RightEnd {
		miter = 180 - miter
		sign = -1
	}
	m := (miter - 90) * math.Pi / 180
	t := (spec.Tilt - 90) * math.Pi / 180

	ct := math.Cos(t)
	normal = r3.Add(
		r3.Add(
			r3.Scale(sign*ct*math.Cos(m), a),
			r3.Scale(sign*ct*math.Sin(m), d),
		),
		r3.Scale(math.Sin(t), h),
	)

	var off float64
	if spec.Miter > 90 {
		off = width * math.Tan((spec.Miter-90)*math.Pi/180)
	}
	if spec.Tilt > 90 {
		off = math.Max(off, height*math.Tan((spec.Tilt-90)*math.Pi/180))
	}
	along := off
	if end == RightEnd {
		along = length - off
	}
	return r3.Scale(along, a), normal
}
