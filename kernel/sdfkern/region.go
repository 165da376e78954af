package sdfkern

import (
	"math"

	"github.com/fabkit/diecut/kernel"
	"gonum.org/v1/gonum/spatial/r2"
)

// difference is a region with a hole subtracted.
type difference struct {
	outer kernel.Region
	hole  kernel.Region
}

func (s *difference) Evaluate(p r2.Vec) float64 {
	return math.Max(s.outer.Evaluate(p), -s.hole.Evaluate(p))
}

func (s *difference) Bounds() r2.Box { return s.outer.Bounds() }

// Area assumes the hole lies fully inside the outer boundary, which the
// region resolver guarantees before subtracting.
func (s *difference) Area() float64 { return s.outer.Area() - s.hole.Area() }

// translated displaces a region within the profile plane.
type translated struct {
	reg   kernel.Region
	delta r2.Vec
}

func (s *translated) Evaluate(p r2.Vec) float64 {
	return s.reg.Evaluate(r2.Sub(p, s.delta))
}

func (s *translated) Bounds() r2.Box {
	bb := s.reg.Bounds()
	return r2.Box{Min: r2.Add(bb.Min, s.delta), Max: r2.Add(bb.Max, s.delta)}
}

func (s *translated) Area() float64 { return s.reg.Area() }

// mirrored reflects a region about the height axis (u -> -u).
type mirrored struct {
	reg kernel.Region
}

func (s *mirrored) Evaluate(p r2.Vec) float64 {
	return s.reg.Evaluate(r2.Vec{X: -p.X, Y: p.Y})
}

func (s *mirrored) Bounds() r2.Box {
	bb := s.reg.Bounds()
	return r2.Box{
		Min: r2.Vec{X: -bb.Max.X, Y: bb.Min.Y},
		Max: r2.Vec{X: -bb.Min.X, Y: bb.Max.Y},
	}
}

func (s *mirrored) Area() float64 { return s.reg.Area() }
