package kernel

import (
	"math"

	"github.com/fabkit/diecut/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a rigid spatial map: an orthonormal linear part (rotation,
// possibly combined with a mirror) followed by a translation. The zero
// value of Transform is the identity map.
//
// The linear part is stored with the identity matrix subtracted
// (d00 = x00-1 and so on) so that the zero value represents identity and
// identity checks reduce to t == Transform{}.
type Transform struct {
	d00, x01, x02 float64
	x10, d11, x12 float64
	x20, x21, d22 float64
	tx, ty, tz    float64
}

// Identity returns the identity Transform. Equivalent to Transform{}.
func Identity() Transform { return Transform{} }

// IsIdentity reports whether t is exactly the identity map.
func (t Transform) IsIdentity() bool { return t == Transform{} }

// Translation returns a pure translation by v.
func Translation(v r3.Vec) Transform {
	return Transform{tx: v.X, ty: v.Y, tz: v.Z}
}

// RotationX returns a rotation by theta radians about the X axis.
func RotationX(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{
		d11: c - 1, x12: -s,
		x21: s, d22: c - 1,
	}
}

// RotationY returns a rotation by theta radians about the Y axis.
func RotationY(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{
		d00: c - 1, x02: s,
		x20: -s, d22: c - 1,
	}
}

// RotationZ returns a rotation by theta radians about the Z axis.
func RotationZ(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{
		d00: c - 1, x01: -s,
		x10: s, d11: c - 1,
	}
}

// MirrorXZ returns a reflection through the XZ plane (Y negated).
func MirrorXZ() Transform {
	return Transform{d11: -2}
}

// Apply maps the point p through the transform.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*p.X + t.x01*p.Y + t.x02*p.Z + t.tx,
		Y: t.x10*p.X + (t.d11+1)*p.Y + t.x12*p.Z + t.ty,
		Z: t.x20*p.X + t.x21*p.Y + (t.d22+1)*p.Z + t.tz,
	}
}

// ApplyDir maps the direction v through the linear part of the transform,
// ignoring translation.
func (t Transform) ApplyDir(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z,
	}
}

// Mul returns the composition t∘b: b applied first, then t.
func (t Transform) Mul(b Transform) Transform {
	if t.IsIdentity() {
		return b
	}
	if b.IsIdentity() {
		return t
	}
	a00, a11, a22 := t.d00+1, t.d11+1, t.d22+1
	b00, b11, b22 := b.d00+1, b.d11+1, b.d22+1
	var m Transform
	m.d00 = a00*b00 + t.x01*b.x10 + t.x02*b.x20 - 1
	m.x01 = a00*b.x01 + t.x01*b11 + t.x02*b.x21
	m.x02 = a00*b.x02 + t.x01*b.x12 + t.x02*b22
	m.x10 = t.x10*b00 + a11*b.x10 + t.x12*b.x20
	m.d11 = t.x10*b.x01 + a11*b11 + t.x12*b.x21 - 1
	m.x12 = t.x10*b.x02 + a11*b.x12 + t.x12*b22
	m.x20 = t.x20*b00 + t.x21*b.x10 + a22*b.x20
	m.x21 = t.x20*b.x01 + t.x21*b11 + a22*b.x21
	m.d22 = t.x20*b.x02 + t.x21*b.x12 + a22*b22 - 1
	bt := t.ApplyDir(r3.Vec{X: b.tx, Y: b.ty, Z: b.tz})
	m.tx = bt.X + t.tx
	m.ty = bt.Y + t.ty
	m.tz = bt.Z + t.tz
	return m
}

// Inverse returns the inverse map. Because the linear part is orthonormal
// the inverse of the linear part is its transpose.
func (t Transform) Inverse() Transform {
	if t.IsIdentity() {
		return t
	}
	inv := Transform{
		d00: t.d00, x01: t.x10, x02: t.x20,
		x10: t.x01, d11: t.d11, x12: t.x21,
		x20: t.x02, x21: t.x12, d22: t.d22,
	}
	nt := inv.ApplyDir(r3.Vec{X: -t.tx, Y: -t.ty, Z: -t.tz})
	inv.tx, inv.ty, inv.tz = nt.X, nt.Y, nt.Z
	return inv
}

// ApplyBox returns the axis-aligned box enclosing the transformed corners
// of b.
func (t Transform) ApplyBox(b r3.Box) r3.Box {
	v := d3.Box(b).Vertices()
	bb := d3.Box{Min: t.Apply(v[0]), Max: t.Apply(v[0])}
	for _, p := range v[1:] {
		bb = bb.Include(t.Apply(p))
	}
	return r3.Box(bb)
}
