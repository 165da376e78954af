package kernel

import (
	"math"
	"testing"

	"github.com/fabkit/diecut/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

func TestZeroValueIsIdentity(t *testing.T) {
	var zero Transform
	if !zero.IsIdentity() {
		t.Error("zero Transform is not identity")
	}
	if Identity() != zero {
		t.Error("Identity() differs from zero value")
	}
	p := r3.Vec{X: 1, Y: -2, Z: 3}
	if got := zero.Apply(p); got != p {
		t.Errorf("identity moved %v to %v", p, got)
	}
}

func TestRotations(t *testing.T) {
	for _, test := range []struct {
		name string
		tr   Transform
		in   r3.Vec
		want r3.Vec
	}{
		{"x90", RotationX(math.Pi / 2), r3.Vec{Y: 1}, r3.Vec{Z: 1}},
		{"y90", RotationY(math.Pi / 2), r3.Vec{Z: 1}, r3.Vec{X: 1}},
		{"z90", RotationZ(math.Pi / 2), r3.Vec{X: 1}, r3.Vec{Y: 1}},
		{"mirror", MirrorXZ(), r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 1, Y: -2, Z: 3}},
	} {
		got := test.tr.Apply(test.in)
		if !d3.EqualWithin(got, test.want, tol) {
			t.Errorf("%s: got %v, want %v", test.name, got, test.want)
		}
	}
}

func TestMulOrder(t *testing.T) {
	// rotate about Z, then translate: composition applies right to left.
	tr := Translation(r3.Vec{X: 10}).Mul(RotationZ(math.Pi / 2))
	got := tr.Apply(r3.Vec{X: 1})
	want := r3.Vec{X: 10, Y: 1}
	if !d3.EqualWithin(got, want, tol) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	tr := Translation(r3.Vec{X: 3, Y: -7, Z: 2}).
		Mul(RotationZ(0.3)).
		Mul(RotationX(-1.1)).
		Mul(MirrorXZ())
	inv := tr.Inverse()
	for _, p := range []r3.Vec{{}, {X: 1}, {X: -4, Y: 2, Z: 9}, {X: 0.5, Y: 0.5, Z: -0.5}} {
		got := inv.Apply(tr.Apply(p))
		if !d3.EqualWithin(got, p, 1e-9) {
			t.Errorf("round trip moved %v to %v", p, got)
		}
	}
}

func TestApplyBox(t *testing.T) {
	b := r3.Box{Min: r3.Vec{}, Max: r3.Vec{X: 2, Y: 1, Z: 1}}
	got := RotationZ(math.Pi / 2).ApplyBox(b)
	want := r3.Box{Min: r3.Vec{X: -1}, Max: r3.Vec{Y: 2, Z: 1}}
	if !d3.Box(got).Equals(d3.Box(want), 1e-12) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
