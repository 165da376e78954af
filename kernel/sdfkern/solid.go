package sdfkern

import (
	"errors"
	"math"

	"github.com/fabkit/diecut/internal/d3"
	"github.com/fabkit/diecut/kernel"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// extrusion sweeps a region along an axis over [0, length].
type extrusion struct {
	reg    kernel.Region
	axis   kernel.Axis
	length float64
	bb     r3.Box
}

func newExtrusion(reg kernel.Region, axis kernel.Axis, length float64) *extrusion {
	s := extrusion{reg: reg, axis: axis, length: length}
	rb := reg.Bounds()
	if axis == kernel.AxisZ {
		s.bb = r3.Box{
			Min: r3.Vec{X: rb.Min.X, Y: rb.Min.Y, Z: 0},
			Max: r3.Vec{X: rb.Max.X, Y: rb.Max.Y, Z: length},
		}
	} else {
		s.bb = r3.Box{
			Min: r3.Vec{X: 0, Y: rb.Min.X, Z: rb.Min.Y},
			Max: r3.Vec{X: length, Y: rb.Max.X, Z: rb.Max.Y},
		}
	}
	return &s
}

// project splits p into the profile-plane coordinates and the distance
// along the extrusion axis.
func (s *extrusion) project(p r3.Vec) (uv r2.Vec, w float64) {
	if s.axis == kernel.AxisZ {
		return r2.Vec{X: p.X, Y: p.Y}, p.Z
	}
	return r2.Vec{X: p.Y, Y: p.Z}, p.X
}

func (s *extrusion) Evaluate(p r3.Vec) float64 {
	uv, w := s.project(p)
	a := s.reg.Evaluate(uv)
	b := math.Max(-w, w-s.length) // distance to the [0,length] slab
	return math.Max(a, b)
}

func (s *extrusion) Bounds() r3.Box { return s.bb }

// cut is a solid truncated by a half-space. The side the unit normal
// points into remains.
type cut struct {
	solid  kernel.Solid
	origin r3.Vec
	normal r3.Vec // unit
	bb     r3.Box
}

func newCut(s kernel.Solid, origin, normal r3.Vec) (*cut, error) {
	n := r3.Norm(normal)
	if n <= tolerance {
		return nil, errors.New("zero-length cut normal")
	}
	unit := r3.Scale(1/n, normal)
	bb, err := clipBox(s.Bounds(), origin, unit)
	if err != nil {
		return nil, err
	}
	return &cut{solid: s, origin: origin, normal: unit, bb: bb}, nil
}

func (s *cut) Evaluate(p r3.Vec) float64 {
	// distance to the discarded half-space, positive on the waste side
	plane := r3.Dot(r3.Sub(s.origin, p), s.normal)
	return math.Max(plane, s.solid.Evaluate(p))
}

func (s *cut) Bounds() r3.Box { return s.bb }

// clipBox clips an axis-aligned box by the half-space (p-origin)·n >= 0
// and returns the box of the kept piece. An empty result is an error.
func clipBox(b r3.Box, origin, n r3.Vec) (r3.Box, error) {
	v := d3.Box(b).Vertices()
	dist := make([]float64, len(v))
	for i, p := range v {
		dist[i] = r3.Dot(r3.Sub(p, origin), n)
	}

	var kept d3.Set
	for i, p := range v {
		if dist[i] >= -tolerance {
			kept = append(kept, p)
		}
	}
	// Vertex i has corner bits (x=1, y=2, z=4); an edge joins i and i|bit.
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit != 0 {
				continue
			}
			j := i | bit
			if dist[i]*dist[j] < 0 {
				t := dist[i] / (dist[i] - dist[j])
				kept = append(kept, r3.Add(v[i], r3.Scale(t, r3.Sub(v[j], v[i]))))
			}
		}
	}
	if len(kept) == 0 {
		return r3.Box{}, errors.New("cut plane discards the entire solid")
	}
	return r3.Box{Min: kept.Min(), Max: kept.Max()}, nil
}

// placed is a solid under a rigid placement transform.
type placed struct {
	solid kernel.Solid
	inv   kernel.Transform
	bb    r3.Box
}

func (s *placed) Evaluate(p r3.Vec) float64 {
	return s.solid.Evaluate(s.inv.Apply(p))
}

func (s *placed) Bounds() r3.Box { return s.bb }
