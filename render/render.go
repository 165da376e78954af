// Package render tessellates kernel solids into triangle meshes and
// persists them as binary STL. Tessellation runs marching cubes from
// github.com/deadsy/sdfx over the solid's signed distance field.
package render

import (
	"errors"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fabkit/diecut/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultCells is the marching cubes resolution along the longest axis.
const DefaultCells = 200

// Triangle3 is a triangle in 3-D space.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// sdfSolid adapts a kernel.Solid to the sdfx sdf.SDF3 contract.
type sdfSolid struct {
	s kernel.Solid
}

func (a sdfSolid) Evaluate(p v3.Vec) float64 {
	return a.s.Evaluate(r3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

func (a sdfSolid) BoundingBox() sdf.Box3 {
	bb := a.s.Bounds()
	return sdf.Box3{
		Min: v3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z},
		Max: v3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z},
	}
}

// Mesh tessellates a solid with uniform marching cubes. cells <= 0 uses
// DefaultCells.
func Mesh(s kernel.Solid, cells int) ([]Triangle3, error) {
	if s == nil {
		return nil, errors.New("nil solid")
	}
	if cells <= 0 {
		cells = DefaultCells
	}
	renderer := sdfxrender.NewMarchingCubesUniform(cells)
	src := sdfxrender.ToTriangles(sdfSolid{s: s}, renderer)
	if len(src) == 0 {
		return nil, errors.New("tessellation produced no triangles")
	}
	model := make([]Triangle3, len(src))
	for i, tri := range src {
		for j := 0; j < 3; j++ {
			model[i].V[j] = r3.Vec{X: tri[j].X, Y: tri[j].Y, Z: tri[j].Z}
		}
	}
	return model, nil
}
