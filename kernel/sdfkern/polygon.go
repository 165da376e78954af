package sdfkern

import (
	"errors"
	"math"

	"github.com/fabkit/diecut/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// polygon is a region bounded by a closed loop of line segments.
// Signed distance by segment projection, inside test by winding number.
type polygon struct {
	vertex []r2.Vec  // closed loop, vertex[0] == vertex[len-1]
	vector []r2.Vec  // unit segment vectors
	length []float64 // segment lengths
	area   float64
	bb     r2.Box
}

func newPolygon(vertex []r2.Vec) (*polygon, error) {
	if len(vertex) < 3 {
		return nil, errors.New("polygon needs at least 3 vertices")
	}
	p := polygon{}
	p.vertex = vertex
	if !d2.EqualWithin(vertex[0], vertex[len(vertex)-1], tolerance) {
		p.vertex = append(append([]r2.Vec{}, vertex...), vertex[0])
	}

	p.area = math.Abs(d2.Shoelace(p.vertex[:len(p.vertex)-1]))
	if p.area <= tolerance {
		return nil, errors.New("zero-area polygon")
	}

	nseg := len(p.vertex) - 1
	p.vector = make([]r2.Vec, nseg)
	p.length = make([]float64, nseg)
	vmin, vmax := p.vertex[0], p.vertex[0]
	for i := 0; i < nseg; i++ {
		seg := r2.Sub(p.vertex[i+1], p.vertex[i])
		p.length[i] = r2.Norm(seg)
		if p.length[i] <= tolerance {
			return nil, errors.New("coincident consecutive vertices")
		}
		p.vector[i] = r2.Scale(1/p.length[i], seg)
		vmin = d2.MinElem(vmin, p.vertex[i])
		vmax = d2.MaxElem(vmax, p.vertex[i])
	}
	p.bb = r2.Box{Min: vmin, Max: vmax}
	return &p, nil
}

// Evaluate returns the signed distance from p to the polygon boundary,
// negative inside.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64
	wn := 0

	nseg := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])
	for i := 0; i < nseg; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]
		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X})

		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa))
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb))
		default:
			dd = math.Min(dd, dn*dn)
		}

		// crossing-count winding, see geomalgorithms.com/a03-_inclusion
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 {
				wn++
			}
		} else {
			if b.Y <= p.Y && dn > 0 {
				wn--
			}
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the polygon bounding box.
func (s *polygon) Bounds() r2.Box { return s.bb }

// Area returns the enclosed area (shoelace).
func (s *polygon) Area() float64 { return s.area }
